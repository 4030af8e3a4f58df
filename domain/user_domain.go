package domain

import "errors"

var (
	MessageSuccessRegister     = "user registered successfully"
	MessageSuccessLogin        = "login successful"
	MessageSuccessGetMe        = "user profile retrieved successfully"
	MessageSuccessUpdateUser   = "user updated successfully"
	MessageSuccessGetUsers     = "users retrieved successfully"
	MessageSuccessDeactivate   = "user deactivated successfully"
	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedGetMe         = "failed to retrieve user profile"
	MessageFailedUpdateUser    = "failed to update user"
	MessageFailedGetUsers      = "failed to retrieve users"
	MessageFailedDeactivate    = "failed to deactivate user"

	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrCredentialsInvalid  = errors.New("invalid email or password")
	ErrRoleInvalid         = errors.New("invalid role")
	ErrUserDeactivated     = errors.New("user account is deactivated")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required,min=2"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Role     string `json:"role" validate:"required,oneof=admin manager kitchen waiter"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UpdateUserRequest struct {
		Name     string `json:"name,omitempty" validate:"omitempty,min=2"`
		Password string `json:"password,omitempty" validate:"omitempty,min=8"`
	}

	UserResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		IsActive bool   `json:"is_active"`
	}
)
