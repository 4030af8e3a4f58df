package table

import (
	"Resto-POS-Backend/domain"
	"Resto-POS-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	TableService interface {
		CreateTable(ctx context.Context, req domain.CreateTableRequest) (*entities.DiningTable, error)
		GetTables(ctx context.Context) ([]*entities.DiningTable, error)
		UpdateTable(ctx context.Context, id string, req domain.UpdateTableRequest) error

		CreateReservation(ctx context.Context, req domain.CreateReservationRequest) (*entities.Reservation, error)
		GetReservations(ctx context.Context, status string, page, limit int) ([]*entities.Reservation, int64, error)
		UpdateReservationStatus(ctx context.Context, id string, req domain.UpdateReservationStatusRequest) error
	}

	tableService struct {
		tableRepository TableRepository
	}
)

func NewTableService(tableRepository TableRepository) TableService {
	return &tableService{tableRepository: tableRepository}
}

func (s *tableService) CreateTable(ctx context.Context, req domain.CreateTableRequest) (*entities.DiningTable, error) {
	if _, err := s.tableRepository.GetTableByNumber(ctx, req.Number); err == nil {
		return nil, domain.ErrTableNumberTaken
	}

	table := &entities.DiningTable{
		Number:   req.Number,
		Capacity: req.Capacity,
		Status:   domain.TableStatusAvailable,
	}
	if err := s.tableRepository.CreateTable(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *tableService) GetTables(ctx context.Context) ([]*entities.DiningTable, error) {
	return s.tableRepository.GetTables(ctx)
}

func (s *tableService) UpdateTable(ctx context.Context, id string, req domain.UpdateTableRequest) error {
	table, err := s.tableRepository.GetTableByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTableNotFound
		}
		return err
	}

	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}
	if req.Status != "" {
		table.Status = req.Status
	}

	return s.tableRepository.UpdateTable(ctx, table)
}

func (s *tableService) CreateReservation(ctx context.Context, req domain.CreateReservationRequest) (*entities.Reservation, error) {
	reservedAt, err := time.Parse(time.RFC3339, req.ReservedAt)
	if err != nil {
		return nil, domain.ErrReservationTimeInvalid
	}
	if reservedAt.Before(time.Now()) {
		return nil, domain.ErrReservationTimeInvalid
	}

	reservation := &entities.Reservation{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		PartySize:     req.PartySize,
		ReservedAt:    reservedAt,
		Status:        domain.ReservationStatusPending,
		Notes:         req.Notes,
	}

	if req.TableID != "" {
		tableUUID, err := uuid.Parse(req.TableID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		if _, err := s.tableRepository.GetTableByID(ctx, req.TableID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrTableNotFound
			}
			return nil, err
		}
		reservation.TableID = &tableUUID
	}

	if err := s.tableRepository.CreateReservation(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

func (s *tableService) GetReservations(ctx context.Context, status string, page, limit int) ([]*entities.Reservation, int64, error) {
	return s.tableRepository.GetReservations(ctx, status, page, limit)
}

func (s *tableService) UpdateReservationStatus(ctx context.Context, id string, req domain.UpdateReservationStatusRequest) error {
	reservation, err := s.tableRepository.GetReservationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReservationNotFound
		}
		return err
	}

	reservation.Status = req.Status

	if err := s.tableRepository.UpdateReservation(ctx, reservation); err != nil {
		return err
	}

	// Seating a reservation marks its table as occupied.
	if req.Status == domain.ReservationStatusSeated && reservation.TableID != nil {
		table, err := s.tableRepository.GetTableByID(ctx, reservation.TableID.String())
		if err == nil {
			table.Status = domain.TableStatusOccupied
			return s.tableRepository.UpdateTable(ctx, table)
		}
	}

	return nil
}
