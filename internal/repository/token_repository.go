package repository

import (
	"context"
	"errors"
	"time"

	"github.com/h4ks-com/agri-ledger/internal/models"
	"gorm.io/gorm"
)

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(ctx context.Context, token *models.APIToken) error {
	return r.db.WithContext(ctx).Omit("Farmer").Create(token).Error
}

// FindLive returns the stored token if it has not expired, or nil.
func (r *TokenRepository) FindLive(ctx context.Context, raw string, now time.Time) (*models.APIToken, error) {
	var token models.APIToken
	err := r.db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", raw, now).
		First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *TokenRepository) ListForFarmer(ctx context.Context, farmerID uint) ([]models.APIToken, error) {
	var tokens []models.APIToken
	err := r.db.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC, id DESC").
		Find(&tokens).Error
	return tokens, err
}

// Revoke removes a token owned by farmerID. Tokens of other farmers are
// left untouched.
func (r *TokenRepository) Revoke(ctx context.Context, id, farmerID uint) error {
	return r.db.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Delete(&models.APIToken{}, id).Error
}

// PurgeBefore deletes tokens that expired before cutoff and reports how
// many were removed.
func (r *TokenRepository) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < ?", cutoff).
		Delete(&models.APIToken{})
	return res.RowsAffected, res.Error
}
