package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/h4ks-com/agri-ledger/internal/models"
	"github.com/h4ks-com/agri-ledger/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrFarmerNotFound          = errors.New("farmer not found")
	ErrFarmerExists            = errors.New("registration key already registered")
	ErrRegistrationKeyRequired = errors.New("registration key is required")
	ErrInvalidLandArea         = errors.New("total land area must not be negative")
	ErrInvalidCategory         = errors.New("invalid farmer category")
	ErrFarmerCodeExhausted     = errors.New("could not allocate a unique farmer code")
)

const (
	farmerCodePrefix   = "FMR-"
	farmerCodeAttempts = 8

	dashboardExpenseLimit = 5
	dashboardSchemeLimit  = 5
)

type RegisterFarmerInput struct {
	RegistrationKey string
	Name            string
	TotalLandArea   decimal.Decimal
	State           string
	District        string
	Category        models.Category
	HasKCC          bool
	Language        string
}

// UpdateFarmerInput carries optional profile changes; nil fields are left
// untouched.
type UpdateFarmerInput struct {
	Name          *string
	TotalLandArea *decimal.Decimal
	State         *string
	District      *string
	Category      *models.Category
	HasKCC        *bool
	Language      *string
}

type Dashboard struct {
	Farmer         *models.Farmer
	ActiveCrops    []models.CropCycle
	RecentExpenses []models.Expense
	Schemes        []models.SchemeRecommendation
	FreeLand       decimal.Decimal
}

type FarmerService struct {
	farmerRepo  *repository.FarmerRepository
	cropRepo    *repository.CropRepository
	expenseRepo *repository.ExpenseRepository
	schemeRepo  *repository.SchemeRepository
	allocator   *LandAllocator
	db          *gorm.DB
	log         *zap.Logger
}

func NewFarmerService(
	farmerRepo *repository.FarmerRepository,
	cropRepo *repository.CropRepository,
	expenseRepo *repository.ExpenseRepository,
	schemeRepo *repository.SchemeRepository,
	allocator *LandAllocator,
	db *gorm.DB,
	log *zap.Logger,
) *FarmerService {
	return &FarmerService{
		farmerRepo:  farmerRepo,
		cropRepo:    cropRepo,
		expenseRepo: expenseRepo,
		schemeRepo:  schemeRepo,
		allocator:   allocator,
		db:          db,
		log:         log,
	}
}

// NewFarmerCode returns "FMR-" followed by four uppercase hex characters.
func NewFarmerCode() string {
	return farmerCodePrefix + strings.ToUpper(uuid.NewString()[:4])
}

func (s *FarmerService) Register(ctx context.Context, input RegisterFarmerInput) (*models.Farmer, error) {
	key := strings.TrimSpace(input.RegistrationKey)
	if key == "" {
		return nil, ErrRegistrationKeyRequired
	}
	if input.TotalLandArea.IsNegative() {
		return nil, ErrInvalidLandArea
	}
	if input.Category == "" {
		input.Category = models.CategoryGeneral
	}
	if !input.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if input.Language == "" {
		input.Language = "en"
	}

	var farmer *models.Farmer

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.farmerRepo.ExistsByRegistrationKey(tx, key)
		if err != nil {
			return err
		}
		if exists {
			return ErrFarmerExists
		}

		code, err := s.allocateCode(tx)
		if err != nil {
			return err
		}

		farmer = &models.Farmer{
			FarmerCode:      code,
			RegistrationKey: key,
			Name:            strings.TrimSpace(input.Name),
			TotalLandArea:   input.TotalLandArea,
			State:           strings.TrimSpace(input.State),
			District:        strings.TrimSpace(input.District),
			Category:        input.Category,
			HasKCC:          input.HasKCC,
			Language:        input.Language,
		}
		return s.farmerRepo.Create(tx, farmer)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Farmer registered",
		zap.String("farmer", farmer.FarmerCode),
		zap.String("land", farmer.TotalLandArea.String()))
	return farmer, nil
}

func (s *FarmerService) allocateCode(tx *gorm.DB) (string, error) {
	for i := 0; i < farmerCodeAttempts; i++ {
		code := NewFarmerCode()
		taken, err := s.farmerRepo.ExistsByCode(tx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrFarmerCodeExhausted
}

func (s *FarmerService) GetFarmer(ctx context.Context, code string) (*models.Farmer, error) {
	farmer, err := s.farmerRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if farmer == nil {
		return nil, ErrFarmerNotFound
	}
	return farmer, nil
}

func (s *FarmerService) UpdateProfile(ctx context.Context, code string, input UpdateFarmerInput) (*models.Farmer, error) {
	if input.TotalLandArea != nil && input.TotalLandArea.IsNegative() {
		return nil, ErrInvalidLandArea
	}
	if input.Category != nil && !input.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	var farmer *models.Farmer

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		farmer, err = s.farmerRepo.FindByCodeForUpdate(tx, code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFarmerNotFound
			}
			return err
		}

		if input.TotalLandArea != nil {
			if err := s.allocator.ValidateTotalLand(tx, farmer, *input.TotalLandArea); err != nil {
				return err
			}
			farmer.TotalLandArea = *input.TotalLandArea
		}
		if input.Name != nil {
			farmer.Name = strings.TrimSpace(*input.Name)
		}
		if input.State != nil {
			farmer.State = strings.TrimSpace(*input.State)
		}
		if input.District != nil {
			farmer.District = strings.TrimSpace(*input.District)
		}
		if input.Category != nil {
			farmer.Category = *input.Category
		}
		if input.HasKCC != nil {
			farmer.HasKCC = *input.HasKCC
		}
		if input.Language != nil && *input.Language != "" {
			farmer.Language = *input.Language
		}

		return s.farmerRepo.UpdateInTx(tx, farmer)
	})
	if err != nil {
		return nil, err
	}

	return farmer, nil
}

func (s *FarmerService) FreeLand(ctx context.Context, code string) (decimal.Decimal, error) {
	farmer, err := s.GetFarmer(ctx, code)
	if err != nil {
		return decimal.Zero, err
	}
	return s.allocator.FreeLand(s.db.WithContext(ctx), farmer)
}

func (s *FarmerService) Dashboard(ctx context.Context, code string) (*Dashboard, error) {
	farmer, err := s.GetFarmer(ctx, code)
	if err != nil {
		return nil, err
	}

	active, err := s.cropRepo.ListByFarmer(ctx, farmer.ID, models.StatusActive)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.RecentByFarmer(ctx, farmer.ID, dashboardExpenseLimit)
	if err != nil {
		return nil, err
	}

	schemes, err := s.schemeRepo.ActiveByFarmer(ctx, farmer.ID, dashboardSchemeLimit)
	if err != nil {
		return nil, err
	}

	free, err := s.allocator.FreeLand(s.db.WithContext(ctx), farmer)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Farmer:         farmer,
		ActiveCrops:    active,
		RecentExpenses: expenses,
		Schemes:        schemes,
		FreeLand:       free,
	}, nil
}
