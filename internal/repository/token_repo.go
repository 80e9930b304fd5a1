package repository

import (
	"context"
	"time"

	"hotelier/internal/model"

	"gorm.io/gorm"
)

type TokenRepository interface {
	Create(ctx context.Context, t *model.Token) error
	FindByToken(ctx context.Context, token string) (*model.Token, error)
	Revoke(ctx context.Context, token string) error
	// ExpireStale flips active rows past their expiry to expired and
	// returns how many were touched. Called by the background sweeper.
	ExpireStale(ctx context.Context) (int64, error)
}

type tokenRepo struct{ db *gorm.DB }

func NewTokenRepository(db *gorm.DB) TokenRepository { return &tokenRepo{db: db} }

func (r *tokenRepo) Create(ctx context.Context, t *model.Token) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tokenRepo) FindByToken(ctx context.Context, token string) (*model.Token, error) {
	var t model.Token
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&t).Error
	return &t, err
}

func (r *tokenRepo) Revoke(ctx context.Context, token string) error {
	res := r.db.WithContext(ctx).Model(&model.Token{}).
		Where("token = ? AND status = ?", token, model.TokenActive).
		Update("status", model.TokenRevoked)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *tokenRepo) ExpireStale(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Token{}).
		Where("status = ? AND expires_at < ?", model.TokenActive, time.Now()).
		Update("status", model.TokenExpired)
	return res.RowsAffected, res.Error
}
