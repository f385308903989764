package repository

import (
	"context"
	"errors"

	"github.com/h4ks-com/agri-ledger/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FarmerRepository struct {
	db *gorm.DB
}

func NewFarmerRepository(db *gorm.DB) *FarmerRepository {
	return &FarmerRepository{db: db}
}

func (r *FarmerRepository) Create(tx *gorm.DB, farmer *models.Farmer) error {
	return tx.Create(farmer).Error
}

func (r *FarmerRepository) FindByCode(ctx context.Context, code string) (*models.Farmer, error) {
	var farmer models.Farmer
	err := r.db.WithContext(ctx).Where("farmer_code = ?", code).First(&farmer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &farmer, nil
}

func (r *FarmerRepository) FindByID(ctx context.Context, id uint) (*models.Farmer, error) {
	var farmer models.Farmer
	err := r.db.WithContext(ctx).First(&farmer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &farmer, nil
}

// FindByCodeForUpdate locks the farmer row for the rest of tx. All land
// allocation writes for one farmer serialize on this lock.
func (r *FarmerRepository) FindByCodeForUpdate(tx *gorm.DB, code string) (*models.Farmer, error) {
	var farmer models.Farmer
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("farmer_code = ?", code).
		First(&farmer).Error
	if err != nil {
		return nil, err
	}
	return &farmer, nil
}

func (r *FarmerRepository) ExistsByRegistrationKey(tx *gorm.DB, key string) (bool, error) {
	var count int64
	err := tx.Model(&models.Farmer{}).Where("registration_key = ?", key).Count(&count).Error
	return count > 0, err
}

func (r *FarmerRepository) ExistsByCode(tx *gorm.DB, code string) (bool, error) {
	var count int64
	err := tx.Model(&models.Farmer{}).Where("farmer_code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *FarmerRepository) UpdateInTx(tx *gorm.DB, farmer *models.Farmer) error {
	return tx.Save(farmer).Error
}

func (r *FarmerRepository) FindAll(ctx context.Context) ([]models.Farmer, error) {
	var farmers []models.Farmer
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&farmers).Error
	return farmers, err
}
