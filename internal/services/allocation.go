package services

import (
	"errors"
	"fmt"

	"github.com/h4ks-com/agri-ledger/internal/models"
	"github.com/h4ks-com/agri-ledger/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInsufficientLand = errors.New("insufficient land")

// InsufficientLandError reports a rejected allocation together with the
// farmer's free land at the time of the check.
type InsufficientLandError struct {
	FreeLand decimal.Decimal
}

func (e *InsufficientLandError) Error() string {
	return fmt.Sprintf("insufficient land: free space %s acres", e.FreeLand.StringFixed(2))
}

func (e *InsufficientLandError) Is(target error) bool {
	return target == ErrInsufficientLand
}

// LandAllocator enforces that a farmer's ACTIVE crop area never exceeds the
// farmer's total land. It always re-derives usage from the cycle rows.
type LandAllocator struct {
	cropRepo *repository.CropRepository
}

func NewLandAllocator(cropRepo *repository.CropRepository) *LandAllocator {
	return &LandAllocator{cropRepo: cropRepo}
}

// ActiveArea sums area_used over the farmer's ACTIVE cycles, leaving out
// excludeID.
func (a *LandAllocator) ActiveArea(tx *gorm.DB, farmerID, excludeID uint) (decimal.Decimal, error) {
	cycles, err := a.cropRepo.ActiveByFarmer(tx, farmerID, excludeID)
	if err != nil {
		return decimal.Zero, err
	}

	used := decimal.Zero
	for _, c := range cycles {
		used = used.Add(c.AreaUsed)
	}
	return used, nil
}

func (a *LandAllocator) FreeLand(tx *gorm.DB, farmer *models.Farmer) (decimal.Decimal, error) {
	used, err := a.ActiveArea(tx, farmer.ID, 0)
	if err != nil {
		return decimal.Zero, err
	}
	return farmer.TotalLandArea.Sub(used), nil
}

// ValidateAllocation checks candidate against the farmer's land before it is
// written. The candidate's own stored row is excluded, so the same call
// covers creation and re-validation on update.
func (a *LandAllocator) ValidateAllocation(tx *gorm.DB, farmer *models.Farmer, candidate *models.CropCycle) error {
	if !candidate.IsActive() {
		return nil
	}

	used, err := a.ActiveArea(tx, farmer.ID, candidate.ID)
	if err != nil {
		return err
	}

	if used.Add(candidate.AreaUsed).GreaterThan(farmer.TotalLandArea) {
		free, err := a.FreeLand(tx, farmer)
		if err != nil {
			return err
		}
		return &InsufficientLandError{FreeLand: free}
	}
	return nil
}

// ValidateTotalLand checks that newTotal still covers every ACTIVE cycle.
func (a *LandAllocator) ValidateTotalLand(tx *gorm.DB, farmer *models.Farmer, newTotal decimal.Decimal) error {
	used, err := a.ActiveArea(tx, farmer.ID, 0)
	if err != nil {
		return err
	}
	if used.GreaterThan(newTotal) {
		return &InsufficientLandError{FreeLand: farmer.TotalLandArea.Sub(used)}
	}
	return nil
}
