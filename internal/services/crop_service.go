package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/h4ks-com/agri-ledger/internal/models"
	"github.com/h4ks-com/agri-ledger/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrInvalidArea           = errors.New("area must be greater than zero")
	ErrCropNameRequired      = errors.New("crop name is required")
	ErrCycleNotFound         = errors.New("crop cycle not found")
	ErrCycleHarvested        = errors.New("crop cycle is already harvested")
	ErrCycleAlreadyHarvested = errors.New("crop cycle already has a yield")
	ErrItemNameRequired      = errors.New("item name is required")
	ErrInvalidCost           = errors.New("cost must not be negative")
	ErrInvalidYield          = errors.New("quantity and selling price must not be negative")
)

type StartCycleInput struct {
	CropName  string
	AreaUsed  decimal.Decimal
	StartDate time.Time
	Notes     string
}

type UpdateCycleInput struct {
	CropName  *string
	AreaUsed  *decimal.Decimal
	StartDate *time.Time
	Notes     *string
}

type ExpenseInput struct {
	ItemName   string
	Cost       decimal.Decimal
	Date       time.Time
	ReceiptRef string
}

type HarvestInput struct {
	QuantityProduced decimal.Decimal
	SellingPrice     decimal.Decimal
	DateSold         time.Time
	ReceiptRef       string
}

// ImportCycleInput is one historical record: a cycle, its expenses and,
// when it was already sold, its yield.
type ImportCycleInput struct {
	Cycle    StartCycleInput
	Expenses []ExpenseInput
	Harvest  *HarvestInput
}

type CropService struct {
	farmerRepo  *repository.FarmerRepository
	cropRepo    *repository.CropRepository
	expenseRepo *repository.ExpenseRepository
	yieldRepo   *repository.YieldRepository
	allocator   *LandAllocator
	schemes     *SchemeService
	db          *gorm.DB
	log         *zap.Logger

	allowPostHarvestExpenses bool
}

func NewCropService(
	farmerRepo *repository.FarmerRepository,
	cropRepo *repository.CropRepository,
	expenseRepo *repository.ExpenseRepository,
	yieldRepo *repository.YieldRepository,
	allocator *LandAllocator,
	schemes *SchemeService,
	db *gorm.DB,
	log *zap.Logger,
	allowPostHarvestExpenses bool,
) *CropService {
	return &CropService{
		farmerRepo:               farmerRepo,
		cropRepo:                 cropRepo,
		expenseRepo:              expenseRepo,
		yieldRepo:                yieldRepo,
		allocator:                allocator,
		schemes:                  schemes,
		db:                       db,
		log:                      log,
		allowPostHarvestExpenses: allowPostHarvestExpenses,
	}
}

func (s *CropService) StartCycle(ctx context.Context, farmerCode string, input StartCycleInput) (*models.CropCycle, error) {
	if err := validateCycleInput(&input); err != nil {
		return nil, err
	}

	var farmer *models.Farmer
	var cycle *models.CropCycle

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		farmer, err = s.lockFarmer(tx, farmerCode)
		if err != nil {
			return err
		}

		cycle = &models.CropCycle{
			FarmerID:  farmer.ID,
			CropName:  input.CropName,
			AreaUsed:  input.AreaUsed,
			StartDate: input.StartDate,
			Status:    models.StatusActive,
			Notes:     input.Notes,
		}

		if err := s.allocator.ValidateAllocation(tx, farmer, cycle); err != nil {
			return err
		}

		return s.cropRepo.Create(tx, cycle)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Crop cycle started",
		zap.String("farmer", farmer.FarmerCode),
		zap.Uint("cycle", cycle.ID),
		zap.String("crop", cycle.CropName),
		zap.String("area", cycle.AreaUsed.String()))

	// outside the transaction: the farmer lock is already released
	if s.schemes != nil {
		s.schemes.RecommendAsync(*farmer, *cycle)
	}

	return cycle, nil
}

func (s *CropService) UpdateCycle(ctx context.Context, farmerCode string, cycleID uint, input UpdateCycleInput) (*models.CropCycle, error) {
	if input.CropName != nil {
		name := strings.TrimSpace(*input.CropName)
		if name == "" {
			return nil, ErrCropNameRequired
		}
		input.CropName = &name
	}
	if input.AreaUsed != nil && !input.AreaUsed.IsPositive() {
		return nil, ErrInvalidArea
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		farmer, err := s.lockFarmer(tx, farmerCode)
		if err != nil {
			return err
		}

		cycle, err := s.lockOwnedCycle(tx, farmer, cycleID)
		if err != nil {
			return err
		}

		if input.CropName != nil {
			cycle.CropName = *input.CropName
		}
		if input.AreaUsed != nil {
			cycle.AreaUsed = *input.AreaUsed
		}
		if input.StartDate != nil {
			cycle.StartDate = *input.StartDate
		}
		if input.Notes != nil {
			cycle.Notes = *input.Notes
		}

		if err := s.allocator.ValidateAllocation(tx, farmer, cycle); err != nil {
			return err
		}

		return s.cropRepo.UpdateInTx(tx, cycle)
	})
	if err != nil {
		return nil, err
	}

	return s.cropRepo.FindByID(ctx, cycleID)
}

// LogExpense records spending against a cycle. Expenses on a harvested
// cycle are rejected unless the post-harvest policy is enabled.
func (s *CropService) LogExpense(ctx context.Context, farmerCode string, cycleID uint, input ExpenseInput) (*models.Expense, error) {
	if err := validateExpenseInput(&input); err != nil {
		return nil, err
	}

	var expense *models.Expense

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		farmer, err := s.lockFarmer(tx, farmerCode)
		if err != nil {
			return err
		}

		cycle, err := s.lockOwnedCycle(tx, farmer, cycleID)
		if err != nil {
			return err
		}

		if !cycle.IsActive() && !s.allowPostHarvestExpenses {
			return ErrCycleHarvested
		}

		expense = &models.Expense{
			CycleID:    cycle.ID,
			ItemName:   input.ItemName,
			Cost:       input.Cost,
			Date:       input.Date,
			ReceiptRef: input.ReceiptRef,
		}
		return s.expenseRepo.Create(tx, expense)
	})
	if err != nil {
		return nil, err
	}

	return expense, nil
}

// Harvest records the cycle's yield and flips it to HARVESTED, releasing its
// land. The transition is one-way.
func (s *CropService) Harvest(ctx context.Context, farmerCode string, cycleID uint, input HarvestInput) (*models.CropCycle, error) {
	if err := validateHarvestInput(&input); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		farmer, err := s.lockFarmer(tx, farmerCode)
		if err != nil {
			return err
		}

		cycle, err := s.lockOwnedCycle(tx, farmer, cycleID)
		if err != nil {
			return err
		}

		if !cycle.IsActive() {
			return ErrCycleAlreadyHarvested
		}

		existing, err := s.yieldRepo.FindByCycleID(tx, cycle.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrCycleAlreadyHarvested
		}

		return s.closeCycle(tx, cycle, input)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Crop cycle harvested",
		zap.String("farmer", farmerCode),
		zap.Uint("cycle", cycleID))

	return s.cropRepo.FindByID(ctx, cycleID)
}

// ImportCycle writes one historical record in a single transaction. It goes
// through the same land check as StartCycle; already-sold records are
// stored HARVESTED and take no land.
func (s *CropService) ImportCycle(ctx context.Context, farmerCode string, input ImportCycleInput) (*models.CropCycle, error) {
	if err := validateCycleInput(&input.Cycle); err != nil {
		return nil, err
	}
	for i := range input.Expenses {
		if err := validateExpenseInput(&input.Expenses[i]); err != nil {
			return nil, err
		}
	}
	if input.Harvest != nil {
		if err := validateHarvestInput(input.Harvest); err != nil {
			return nil, err
		}
	}

	var cycle *models.CropCycle

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		farmer, err := s.lockFarmer(tx, farmerCode)
		if err != nil {
			return err
		}

		cycle = &models.CropCycle{
			FarmerID:  farmer.ID,
			CropName:  input.Cycle.CropName,
			AreaUsed:  input.Cycle.AreaUsed,
			StartDate: input.Cycle.StartDate,
			Status:    models.StatusActive,
			Notes:     input.Cycle.Notes,
		}
		if input.Harvest != nil {
			cycle.Status = models.StatusHarvested
		}

		if err := s.allocator.ValidateAllocation(tx, farmer, cycle); err != nil {
			return err
		}
		if err := s.cropRepo.Create(tx, cycle); err != nil {
			return err
		}

		for _, e := range input.Expenses {
			expense := &models.Expense{
				CycleID:    cycle.ID,
				ItemName:   e.ItemName,
				Cost:       e.Cost,
				Date:       e.Date,
				ReceiptRef: e.ReceiptRef,
			}
			if err := s.expenseRepo.Create(tx, expense); err != nil {
				return err
			}
		}

		if input.Harvest != nil {
			return s.closeCycle(tx, cycle, *input.Harvest)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cycle, nil
}

func (s *CropService) GetCycle(ctx context.Context, farmerCode string, cycleID uint) (*models.CropCycle, error) {
	farmer, err := s.farmerRepo.FindByCode(ctx, farmerCode)
	if err != nil {
		return nil, err
	}
	if farmer == nil {
		return nil, ErrFarmerNotFound
	}

	cycle, err := s.cropRepo.FindByID(ctx, cycleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCycleNotFound
		}
		return nil, err
	}
	if cycle.FarmerID != farmer.ID {
		return nil, ErrCycleNotFound
	}
	return cycle, nil
}

func (s *CropService) ListCycles(ctx context.Context, farmerCode string, status models.CycleStatus) ([]models.CropCycle, error) {
	farmer, err := s.farmerRepo.FindByCode(ctx, farmerCode)
	if err != nil {
		return nil, err
	}
	if farmer == nil {
		return nil, ErrFarmerNotFound
	}
	return s.cropRepo.ListByFarmer(ctx, farmer.ID, status)
}

func (s *CropService) closeCycle(tx *gorm.DB, cycle *models.CropCycle, input HarvestInput) error {
	y := &models.Yield{
		CycleID:          cycle.ID,
		QuantityProduced: input.QuantityProduced,
		SellingPrice:     input.SellingPrice,
		DateSold:         input.DateSold,
		ReceiptRef:       input.ReceiptRef,
	}
	if err := s.yieldRepo.Create(tx, y); err != nil {
		return err
	}

	cycle.Status = models.StatusHarvested
	return s.cropRepo.UpdateInTx(tx, cycle)
}

func (s *CropService) lockFarmer(tx *gorm.DB, code string) (*models.Farmer, error) {
	farmer, err := s.farmerRepo.FindByCodeForUpdate(tx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFarmerNotFound
		}
		return nil, err
	}
	return farmer, nil
}

// lockOwnedCycle hides cycles of other farmers behind ErrCycleNotFound.
func (s *CropService) lockOwnedCycle(tx *gorm.DB, farmer *models.Farmer, cycleID uint) (*models.CropCycle, error) {
	cycle, err := s.cropRepo.FindByIDForUpdate(tx, cycleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCycleNotFound
		}
		return nil, err
	}
	if cycle.FarmerID != farmer.ID {
		return nil, ErrCycleNotFound
	}
	return cycle, nil
}

func validateCycleInput(input *StartCycleInput) error {
	input.CropName = strings.TrimSpace(input.CropName)
	if input.CropName == "" {
		return ErrCropNameRequired
	}
	if !input.AreaUsed.IsPositive() {
		return ErrInvalidArea
	}
	if input.StartDate.IsZero() {
		input.StartDate = today()
	}
	return nil
}

func validateExpenseInput(input *ExpenseInput) error {
	input.ItemName = strings.TrimSpace(input.ItemName)
	if input.ItemName == "" {
		return ErrItemNameRequired
	}
	if input.Cost.IsNegative() {
		return ErrInvalidCost
	}
	if input.Date.IsZero() {
		input.Date = today()
	}
	return nil
}

func validateHarvestInput(input *HarvestInput) error {
	if input.QuantityProduced.IsNegative() || input.SellingPrice.IsNegative() {
		return ErrInvalidYield
	}
	if input.DateSold.IsZero() {
		input.DateSold = today()
	}
	return nil
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
