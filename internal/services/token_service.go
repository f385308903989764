package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/h4ks-com/agri-ledger/internal/models"
	"github.com/h4ks-com/agri-ledger/internal/repository"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const tokenIssuer = "agriledger"

type TokenClaims struct {
	FarmerCode string `json:"farmer_code"`
	jwt.RegisteredClaims
}

type TokenService struct {
	tokenRepo  *repository.TokenRepository
	farmerRepo *repository.FarmerRepository
	jwtSecret  string
}

func NewTokenService(tokenRepo *repository.TokenRepository, farmerRepo *repository.FarmerRepository, jwtSecret string) *TokenService {
	return &TokenService{
		tokenRepo:  tokenRepo,
		farmerRepo: farmerRepo,
		jwtSecret:  jwtSecret,
	}
}

func (s *TokenService) GenerateToken(ctx context.Context, farmerCode string, expiresIn time.Duration) (string, error) {
	farmer, err := s.farmerRepo.FindByCode(ctx, farmerCode)
	if err != nil {
		return "", err
	}
	if farmer == nil {
		return "", ErrFarmerNotFound
	}

	now := time.Now()
	claims := TokenClaims{
		FarmerCode: farmer.FarmerCode,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			// tokens minted in the same second must still differ
			ID: uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	apiToken := &models.APIToken{
		FarmerID:  farmer.ID,
		Token:     tokenString,
		ExpiresAt: now.Add(expiresIn),
	}

	if err := s.tokenRepo.Create(ctx, apiToken); err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken checks the signature and expiry of tokenString and that it
// has not been revoked.
func (s *TokenService) ValidateToken(ctx context.Context, tokenString string) (*TokenClaims, error) {
	var claims TokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, s.signingKey,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	}

	stored, err := s.tokenRepo.FindLive(ctx, tokenString, time.Now())
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}

func (s *TokenService) signingKey(*jwt.Token) (interface{}, error) {
	return []byte(s.jwtSecret), nil
}

func (s *TokenService) ListFarmerTokens(ctx context.Context, farmerCode string) ([]models.APIToken, error) {
	farmerID, err := s.farmerID(ctx, farmerCode)
	if err != nil {
		return nil, err
	}
	return s.tokenRepo.ListForFarmer(ctx, farmerID)
}

func (s *TokenService) DeleteToken(ctx context.Context, tokenID uint, farmerCode string) error {
	farmerID, err := s.farmerID(ctx, farmerCode)
	if err != nil {
		return err
	}
	return s.tokenRepo.Revoke(ctx, tokenID, farmerID)
}

// PurgeExpired removes every token past its expiry.
func (s *TokenService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.tokenRepo.PurgeBefore(ctx, time.Now())
}

func (s *TokenService) farmerID(ctx context.Context, farmerCode string) (uint, error) {
	farmer, err := s.farmerRepo.FindByCode(ctx, farmerCode)
	if err != nil {
		return 0, err
	}
	if farmer == nil {
		return 0, ErrFarmerNotFound
	}
	return farmer.ID, nil
}
