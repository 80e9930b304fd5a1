package repository

import (
	"context"

	"hotelier/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Room, error)
	FindByNumber(ctx context.Context, number string) (*model.Room, error)
	List(ctx context.Context, offset, limit int) ([]model.Room, int64, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, room *model.Room) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type roomRepo struct{ db *gorm.DB }

func NewRoomRepository(db *gorm.DB) RoomRepository { return &roomRepo{db: db} }

func (r *roomRepo) Create(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Room, error) {
	var room model.Room
	err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error
	return &room, err
}

func (r *roomRepo) FindByNumber(ctx context.Context, number string) (*model.Room, error) {
	var room model.Room
	err := r.db.WithContext(ctx).Where("room_number = ?", number).First(&room).Error
	return &room, err
}

func (r *roomRepo) List(ctx context.Context, offset, limit int) ([]model.Room, int64, error) {
	var rooms []model.Room
	var total int64
	q := r.db.WithContext(ctx).Model(&model.Room{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("room_number ASC").Offset(offset).Limit(limit).Find(&rooms).Error
	return rooms, total, err
}

func (r *roomRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Room{}).Count(&total).Error
	return total, err
}

func (r *roomRepo) Update(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *roomRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	res := r.db.WithContext(ctx).Model(&model.Room{}).Where("id = ?", id).Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
