package table

import (
	"Resto-POS-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	TableRepository interface {
		CreateTable(ctx context.Context, table *entities.DiningTable) error
		GetTableByID(ctx context.Context, id string) (*entities.DiningTable, error)
		GetTableByNumber(ctx context.Context, number int) (*entities.DiningTable, error)
		GetTables(ctx context.Context) ([]*entities.DiningTable, error)
		UpdateTable(ctx context.Context, table *entities.DiningTable) error

		CreateReservation(ctx context.Context, reservation *entities.Reservation) error
		GetReservationByID(ctx context.Context, id string) (*entities.Reservation, error)
		GetReservations(ctx context.Context, status string, page, limit int) ([]*entities.Reservation, int64, error)
		UpdateReservation(ctx context.Context, reservation *entities.Reservation) error
	}

	tableRepository struct {
		db *gorm.DB
	}
)

func NewTableRepository(db *gorm.DB) TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) CreateTable(ctx context.Context, table *entities.DiningTable) error {
	return r.db.WithContext(ctx).Create(table).Error
}

func (r *tableRepository) GetTableByID(ctx context.Context, id string) (*entities.DiningTable, error) {
	var table entities.DiningTable
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) GetTableByNumber(ctx context.Context, number int) (*entities.DiningTable, error) {
	var table entities.DiningTable
	if err := r.db.WithContext(ctx).Where("number = ?", number).First(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) GetTables(ctx context.Context) ([]*entities.DiningTable, error) {
	var tables []*entities.DiningTable
	if err := r.db.WithContext(ctx).Order("number asc").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *tableRepository) UpdateTable(ctx context.Context, table *entities.DiningTable) error {
	return r.db.WithContext(ctx).Save(table).Error
}

func (r *tableRepository) CreateReservation(ctx context.Context, reservation *entities.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *tableRepository) GetReservationByID(ctx context.Context, id string) (*entities.Reservation, error) {
	var reservation entities.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Table").
		Where("id = ?", id).
		First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *tableRepository) GetReservations(ctx context.Context, status string, page, limit int) ([]*entities.Reservation, int64, error) {
	var reservations []*entities.Reservation
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Reservation{})
	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Table").Order("reserved_at asc").Offset(offset).Limit(limit).Find(&reservations).Error; err != nil {
		return nil, 0, err
	}

	return reservations, count, nil
}

func (r *tableRepository) UpdateReservation(ctx context.Context, reservation *entities.Reservation) error {
	return r.db.WithContext(ctx).Save(reservation).Error
}
