package crm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	interf "github.com/glkeru/crm/internal/interfaces"
	models "github.com/glkeru/crm/internal/models"
	"go.uber.org/zap"
)

// попытки записи при конкурентном обновлении счета
const casAttempts = 5

type LoyaltyService struct {
	logger *zap.Logger
	db     interf.LoyaltyStorage
	cache  interf.CacheStorage
}

func NewLoyaltyService(logger *zap.Logger, db interf.LoyaltyStorage, cache interf.CacheStorage) *LoyaltyService {
	return &LoyaltyService{logger, db, cache}
}

type AccrualResult struct {
	PointsEarned int64  `json:"points_earned"`
	NewTier      string `json:"new_tier"`
}

// Счет лояльности
func (s *LoyaltyService) GetProfile(ctx context.Context, customerID string) (models.LoyaltyProfile, error) {
	// cache
	if s.cache != nil {
		profile, err := s.cache.GetProfile(ctx, customerID)
		if err == nil {
			return profile, nil
		}
	}
	profile, err := s.db.Get(ctx, customerID)
	if err != nil {
		return models.LoyaltyProfile{}, err
	}
	if s.cache != nil {
		_ = s.cache.SetProfile(ctx, profile)
	}
	return profile, nil
}

// Списание баллов, возвращает новый баланс
func (s *LoyaltyService) Redeem(ctx context.Context, customerID string, points int64) (int64, error) {
	if points <= 0 {
		return 0, fmt.Errorf("%w: points_to_redeem must be a positive integer", models.ErrValidation)
	}

	for i := 0; i < casAttempts; i++ {
		profile, err := s.db.Get(ctx, customerID)
		if err != nil {
			return 0, err
		}
		if profile.Points < points {
			return 0, models.ErrInsufficientPoints
		}
		// уровень при списании не пересчитывается
		err = s.db.CompareAndSwap(ctx, customerID, profile.Version, profile.Points-points, profile.Tier)
		if err != nil {
			if errors.Is(err, models.ErrConflict) {
				continue
			}
			return 0, err
		}
		s.invalidate(ctx, customerID)
		return profile.Points - points, nil
	}
	return 0, models.ErrConflict
}

// Применение реферального кода: бонус владельцу кода
func (s *LoyaltyService) ApplyReferral(ctx context.Context, code string, customerID string) (string, error) {
	if code == "" {
		return "", fmt.Errorf("%w: referral_code is required", models.ErrValidation)
	}

	referrer, err := s.db.GetByReferralCode(ctx, code)
	if err != nil {
		return "", err
	}
	if referrer.CustomerID == customerID {
		return "", models.ErrSelfReferral
	}

	// чистый инкремент, полная транзакция не нужна
	if err := s.db.AddPoints(ctx, referrer.CustomerID, models.ReferralBonus); err != nil {
		return "", err
	}
	s.invalidate(ctx, referrer.CustomerID)
	return referrer.CustomerID, nil
}

// Начисление баллов за покупку: один балл за единицу валюты,
// единственная операция, пересчитывающая уровень
func (s *LoyaltyService) AccrueFromPurchase(ctx context.Context, customerID string, amount float64) (AccrualResult, error) {
	if amount <= 0 {
		return AccrualResult{}, fmt.Errorf("%w: amount must be positive", models.ErrValidation)
	}
	earned := int64(math.Floor(amount))

	for i := 0; i < casAttempts; i++ {
		profile, err := s.db.Get(ctx, customerID)
		if err != nil {
			return AccrualResult{}, err
		}
		newPoints := profile.Points + earned
		newTier := models.TierForPoints(newPoints)

		err = s.db.CompareAndSwap(ctx, customerID, profile.Version, newPoints, newTier)
		if err != nil {
			if errors.Is(err, models.ErrConflict) {
				continue
			}
			return AccrualResult{}, err
		}
		if newTier != profile.Tier {
			s.logger.Info("tier upgrade",
				zap.String("customer", customerID),
				zap.String("tier", newTier),
			)
		}
		s.invalidate(ctx, customerID)
		return AccrualResult{PointsEarned: earned, NewTier: newTier}, nil
	}
	return AccrualResult{}, models.ErrConflict
}

func (s *LoyaltyService) invalidate(ctx context.Context, customerID string) {
	if s.cache != nil {
		if err := s.cache.InvalidateProfile(ctx, customerID); err != nil {
			s.logger.Error(err.Error())
		}
	}
}

// Событие завершенной покупки из платежного сервиса
type PurchaseEvent struct {
	CustomerID string  `json:"customerId"`
	Amount     float64 `json:"amount"`
}

func ParsePurchase(eventJSON string) (customerID string, amount float64, err error) {
	event := &PurchaseEvent{}
	err = json.Unmarshal([]byte(eventJSON), event)
	if err != nil {
		return "", 0, err
	}

	if event.CustomerID == "" {
		return "", 0, fmt.Errorf("%w: customerId field is required", models.ErrValidation)
	}
	if event.Amount <= 0 {
		return "", 0, fmt.Errorf("%w: amount must be positive", models.ErrValidation)
	}
	return event.CustomerID, event.Amount, nil
}
