package repository

import (
	"context"

	"hotelier/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationRepository interface {
	Create(ctx context.Context, res *model.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error)
	List(ctx context.Context, offset, limit int) ([]model.Reservation, int64, error)
	Update(ctx context.Context, res *model.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type reservationRepo struct{ db *gorm.DB }

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepo{db: db}
}

func (r *reservationRepo) DB() *gorm.DB { return r.db }

func (r *reservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *reservationRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	var res model.Reservation
	err := r.db.WithContext(ctx).
		Preload("Client").Preload("Room").Preload("ReservationStatus").
		First(&res, "id = ?", id).Error
	return &res, err
}

func (r *reservationRepo) List(ctx context.Context, offset, limit int) ([]model.Reservation, int64, error) {
	var list []model.Reservation
	var total int64
	q := r.db.WithContext(ctx).Model(&model.Reservation{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	// Newest first
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}

func (r *reservationRepo) Update(ctx context.Context, res *model.Reservation) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *reservationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Reservation{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
