package repository

import (
	"context"

	"github.com/h4ks-com/agri-ledger/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SchemeRepository struct {
	db *gorm.DB
}

func NewSchemeRepository(db *gorm.DB) *SchemeRepository {
	return &SchemeRepository{db: db}
}

func (r *SchemeRepository) CreateBatch(ctx context.Context, schemes []models.SchemeRecommendation) error {
	if len(schemes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).CreateInBatches(schemes, 50).Error
}

// ActiveByFarmer lists active recommendations newest first. limit <= 0
// returns all of them.
func (r *SchemeRepository) ActiveByFarmer(ctx context.Context, farmerID uint, limit int) ([]models.SchemeRecommendation, error) {
	var schemes []models.SchemeRecommendation
	q := r.db.WithContext(ctx).
		Where("farmer_id = ? AND active = ?", farmerID, true).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&schemes).Error
	return schemes, err
}
