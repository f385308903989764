package repository

import (
	"context"
	"strings"

	"github.com/h4ks-com/agri-ledger/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CropRepository struct {
	db *gorm.DB
}

func NewCropRepository(db *gorm.DB) *CropRepository {
	return &CropRepository{db: db}
}

func (r *CropRepository) Create(tx *gorm.DB, cycle *models.CropCycle) error {
	return tx.Omit(clause.Associations).Create(cycle).Error
}

func (r *CropRepository) UpdateInTx(tx *gorm.DB, cycle *models.CropCycle) error {
	return tx.Omit(clause.Associations).Save(cycle).Error
}

func (r *CropRepository) FindByIDForUpdate(tx *gorm.DB, id uint) (*models.CropCycle, error) {
	var cycle models.CropCycle
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&cycle, id).Error
	if err != nil {
		return nil, err
	}
	return &cycle, nil
}

func (r *CropRepository) FindByID(ctx context.Context, id uint) (*models.CropCycle, error) {
	var cycle models.CropCycle
	err := r.db.WithContext(ctx).
		Preload("Expenses", func(db *gorm.DB) *gorm.DB { return db.Order("date DESC") }).
		Preload("Yield").
		First(&cycle, id).Error
	if err != nil {
		return nil, err
	}
	return &cycle, nil
}

// ActiveByFarmer returns the farmer's ACTIVE cycles, skipping excludeID
// (0 excludes nothing).
func (r *CropRepository) ActiveByFarmer(tx *gorm.DB, farmerID, excludeID uint) ([]models.CropCycle, error) {
	var cycles []models.CropCycle
	q := tx.Where("farmer_id = ? AND status = ?", farmerID, models.StatusActive)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Find(&cycles).Error
	return cycles, err
}

func (r *CropRepository) ListByFarmer(ctx context.Context, farmerID uint, status models.CycleStatus) ([]models.CropCycle, error) {
	var cycles []models.CropCycle
	q := r.db.WithContext(ctx).Preload("Expenses").Preload("Yield").Where("farmer_id = ?", farmerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("start_date DESC").Order("id DESC").Find(&cycles).Error
	return cycles, err
}

func (r *CropRepository) RecentByFarmer(ctx context.Context, farmerID uint, limit int) ([]models.CropCycle, error) {
	var cycles []models.CropCycle
	err := r.db.WithContext(ctx).
		Preload("Expenses").
		Preload("Yield").
		Where("farmer_id = ?", farmerID).
		Order("start_date DESC").
		Order("id DESC").
		Limit(limit).
		Find(&cycles).Error
	return cycles, err
}

// HarvestedByCropName matches crop names case-insensitively on the exact
// trimmed name.
func (r *CropRepository) HarvestedByCropName(ctx context.Context, cropName string) ([]models.CropCycle, error) {
	var cycles []models.CropCycle
	err := r.db.WithContext(ctx).
		Preload("Expenses").
		Preload("Yield").
		Where("LOWER(TRIM(crop_name)) = ? AND status = ?", strings.ToLower(strings.TrimSpace(cropName)), models.StatusHarvested).
		Order("id ASC").
		Find(&cycles).Error
	return cycles, err
}

func (r *CropRepository) CountByFarmer(ctx context.Context, farmerID uint, status models.CycleStatus) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.CropCycle{}).Where("farmer_id = ?", farmerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Count(&count).Error
	return count, err
}
