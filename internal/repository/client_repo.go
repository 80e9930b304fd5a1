package repository

import (
	"context"

	"hotelier/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(ctx context.Context, c *model.Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Client, error)
	// FindDuplicate returns a client matching any of the unique fields,
	// used for pre-insert conflict checks.
	FindDuplicate(ctx context.Context, phone, email, identification string) (*model.Client, error)
	List(ctx context.Context, offset, limit int) ([]model.Client, int64, error)
	Update(ctx context.Context, c *model.Client) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type clientRepo struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) ClientRepository { return &clientRepo{db: db} }

func (r *clientRepo) Create(ctx context.Context, c *model.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clientRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	var c model.Client
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *clientRepo) FindDuplicate(ctx context.Context, phone, email, identification string) (*model.Client, error) {
	var c model.Client
	err := r.db.WithContext(ctx).
		Where("phone = ? OR LOWER(email) = LOWER(?) OR number_identification = ?",
			phone, email, identification).
		First(&c).Error
	return &c, err
}

func (r *clientRepo) List(ctx context.Context, offset, limit int) ([]model.Client, int64, error) {
	var clients []model.Client
	var total int64
	q := r.db.WithContext(ctx).Model(&model.Client{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&clients).Error
	return clients, total, err
}

func (r *clientRepo) Update(ctx context.Context, c *model.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clientRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	res := r.db.WithContext(ctx).Model(&model.Client{}).Where("id = ?", id).Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
