package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LookupRepository is a generic store for the reference tables. The four
// lookup models share one shape, so one implementation serves them all;
// T is instantiated per table in the router.
type LookupRepository[T any] interface {
	Create(ctx context.Context, e *T) error
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindByName(ctx context.Context, name string) (*T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, e *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type lookupRepo[T any] struct{ db *gorm.DB }

func NewLookupRepository[T any](db *gorm.DB) LookupRepository[T] {
	return &lookupRepo[T]{db: db}
}

func (r *lookupRepo[T]) Create(ctx context.Context, e *T) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *lookupRepo[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var e T
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *lookupRepo[T]) FindByName(ctx context.Context, name string) (*T, error) {
	var e T
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&e).Error
	return &e, err
}

func (r *lookupRepo[T]) List(ctx context.Context) ([]T, error) {
	var list []T
	err := r.db.WithContext(ctx).Order("name ASC").Find(&list).Error
	return list, err
}

func (r *lookupRepo[T]) Update(ctx context.Context, e *T) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *lookupRepo[T]) Delete(ctx context.Context, id uuid.UUID) error {
	var e T
	res := r.db.WithContext(ctx).Delete(&e, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
