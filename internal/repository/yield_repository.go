package repository

import (
	"context"
	"errors"

	"github.com/h4ks-com/agri-ledger/internal/models"
	"gorm.io/gorm"
)

type YieldRepository struct {
	db *gorm.DB
}

func NewYieldRepository(db *gorm.DB) *YieldRepository {
	return &YieldRepository{db: db}
}

func (r *YieldRepository) Create(tx *gorm.DB, y *models.Yield) error {
	return tx.Create(y).Error
}

func (r *YieldRepository) FindByCycleID(tx *gorm.DB, cycleID uint) (*models.Yield, error) {
	var y models.Yield
	err := tx.Where("cycle_id = ?", cycleID).First(&y).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &y, nil
}

func (r *YieldRepository) ListByFarmer(ctx context.Context, farmerID uint) ([]models.Yield, error) {
	var yields []models.Yield
	err := r.db.WithContext(ctx).
		Joins("JOIN crop_cycles ON crop_cycles.id = yields.cycle_id").
		Where("crop_cycles.farmer_id = ?", farmerID).
		Find(&yields).Error
	return yields, err
}
