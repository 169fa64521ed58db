package crm

import (
	"context"
	"errors"
	"fmt"
	"time"

	interf "github.com/glkeru/crm/internal/interfaces"
	models "github.com/glkeru/crm/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// попытки создания при коллизии реферального кода
const createAttempts = 3

type CustomerService struct {
	logger *zap.Logger
	db     interf.CustomerStorage
}

func NewCustomerService(logger *zap.Logger, db interf.CustomerStorage) *CustomerService {
	return &CustomerService{logger, db}
}

// Создание клиента вместе со счетом лояльности
func (s *CustomerService) Create(ctx context.Context, name, email, phone, company string) (models.Customer, models.LoyaltyProfile, error) {
	if name == "" || email == "" {
		return models.Customer{}, models.LoyaltyProfile{}, fmt.Errorf("%w: name and email are required", models.ErrValidation)
	}

	customer := models.Customer{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Company:   company,
		CreatedAt: time.Now().UTC(),
	}

	for i := 0; i < createAttempts; i++ {
		code, err := GenerateReferralCode(name)
		if err != nil {
			return models.Customer{}, models.LoyaltyProfile{}, err
		}
		profile := models.LoyaltyProfile{
			CustomerID:   customer.ID,
			Points:       0,
			Tier:         models.TierBronze,
			ReferralCode: code,
			CreatedAt:    customer.CreatedAt,
		}

		err = s.db.CustomerCreate(ctx, customer, profile)
		if err != nil {
			// коллизия кода - генерируем новый
			if errors.Is(err, models.ErrConflict) {
				s.logger.Info("referral code collision", zap.String("code", code))
				continue
			}
			return models.Customer{}, models.LoyaltyProfile{}, err
		}
		return customer, profile, nil
	}
	return models.Customer{}, models.LoyaltyProfile{}, models.ErrConflict
}
