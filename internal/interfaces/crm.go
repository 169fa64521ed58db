package crm

import (
	"context"

	models "github.com/glkeru/crm/internal/models"
)

//go:generate mockgen -destination=./../services/mock_crm_test.go -package=crm . LoyaltyStorage,CacheStorage,CustomerStorage

type LoyaltyStorage interface {
	Get(ctx context.Context, customerID string) (models.LoyaltyProfile, error)
	GetByReferralCode(ctx context.Context, code string) (models.LoyaltyProfile, error)
	// запись при совпадении версии, иначе ErrConflict
	CompareAndSwap(ctx context.Context, customerID string, version int64, points int64, tier string) error
	// атомарный инкремент без чтения
	AddPoints(ctx context.Context, customerID string, delta int64) error
}

type CacheStorage interface {
	GetProfile(ctx context.Context, customerID string) (models.LoyaltyProfile, error)
	SetProfile(ctx context.Context, profile models.LoyaltyProfile) error
	InvalidateProfile(ctx context.Context, customerID string) error
}

type CustomerStorage interface {
	// клиент и счет лояльности создаются одной транзакцией
	CustomerCreate(ctx context.Context, customer models.Customer, profile models.LoyaltyProfile) error
	CustomerGet(ctx context.Context, id string) (models.Customer, error)
	CustomerList(ctx context.Context) ([]models.Customer, error)
	CustomerUpdate(ctx context.Context, id string, fields map[string]any) error
	// удаляет клиента вместе со счетом лояльности
	CustomerDelete(ctx context.Context, id string) error
}

type LeadStorage interface {
	LeadCreate(ctx context.Context, lead models.Lead) error
	LeadConvert(ctx context.Context, leadID string) (models.Opportunity, error)
	LeadAssign(ctx context.Context, leadID string, repID string, repName string) error
	OpportunitySetStage(ctx context.Context, oppID string, stage string) error
}

type TicketStorage interface {
	TicketCreate(ctx context.Context, ticket models.Ticket) error
}
