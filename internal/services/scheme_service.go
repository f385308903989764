package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/h4ks-com/agri-ledger/internal/models"
	"github.com/h4ks-com/agri-ledger/internal/repository"
	"github.com/h4ks-com/agri-ledger/internal/schemes"
	"go.uber.org/zap"
)

// SchemeService attaches recommender output to farmers. Fetches run in the
// background and can never fail the write that triggered them.
type SchemeService struct {
	schemeRepo  *repository.SchemeRepository
	farmerRepo  *repository.FarmerRepository
	recommender schemes.Recommender
	timeout     time.Duration
	log         *zap.Logger
	wg          sync.WaitGroup
}

func NewSchemeService(
	schemeRepo *repository.SchemeRepository,
	farmerRepo *repository.FarmerRepository,
	recommender schemes.Recommender,
	timeout time.Duration,
	log *zap.Logger,
) *SchemeService {
	return &SchemeService{
		schemeRepo:  schemeRepo,
		farmerRepo:  farmerRepo,
		recommender: recommender,
		timeout:     timeout,
		log:         log,
	}
}

// RecommendAsync fetches and stores recommendations for a freshly started
// cycle. It returns immediately; failures are only logged.
func (s *SchemeService) RecommendAsync(farmer models.Farmer, cycle models.CropCycle) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		n, err := s.Recommend(ctx, &farmer, &cycle)
		if err != nil {
			s.log.Warn("Scheme recommendation failed",
				zap.String("farmer", farmer.FarmerCode),
				zap.Uint("cycle", cycle.ID),
				zap.Error(err))
			return
		}
		s.log.Info("Scheme recommendations stored",
			zap.String("farmer", farmer.FarmerCode),
			zap.Int("count", n))
	}()
}

// Recommend runs one fetch synchronously and returns how many records were
// stored.
func (s *SchemeService) Recommend(ctx context.Context, farmer *models.Farmer, cycle *models.CropCycle) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recommender panicked: %v", r)
		}
	}()

	recs, err := s.recommender.Recommend(ctx,
		schemes.FarmerSnapshot{
			State:         farmer.State,
			District:      farmer.District,
			Category:      farmer.Category.DisplayName(),
			TotalLandArea: farmer.TotalLandArea.String(),
			HasKCC:        farmer.HasKCC,
		},
		schemes.CycleSnapshot{
			CropName:  cycle.CropName,
			StartDate: cycle.StartDate,
			AreaUsed:  cycle.AreaUsed.String(),
		},
	)
	if err != nil {
		return 0, err
	}
	if len(recs) > schemes.MaxRecommendations {
		recs = recs[:schemes.MaxRecommendations]
	}

	rows := make([]models.SchemeRecommendation, 0, len(recs))
	for _, r := range recs {
		name := r.SchemeName
		if name == "" {
			name = "Unknown Scheme"
		}
		rows = append(rows, models.SchemeRecommendation{
			FarmerID:            farmer.ID,
			SchemeName:          name,
			Description:         r.Description,
			Benefits:            r.Benefits,
			EligibilityCriteria: r.EligibilityCriteria,
			Link:                r.ApplicationLink,
			Active:              true,
		})
	}

	if err := s.schemeRepo.CreateBatch(ctx, rows); err != nil {
		return 0, fmt.Errorf("failed to store recommendations: %w", err)
	}
	return len(rows), nil
}

func (s *SchemeService) ListForFarmer(ctx context.Context, code string) ([]models.SchemeRecommendation, error) {
	farmer, err := s.farmerRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if farmer == nil {
		return nil, ErrFarmerNotFound
	}
	return s.schemeRepo.ActiveByFarmer(ctx, farmer.ID, 0)
}

// Wait blocks until every background fetch has finished.
func (s *SchemeService) Wait() {
	s.wg.Wait()
}
