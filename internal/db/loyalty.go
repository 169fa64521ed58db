package crm

import (
	"context"
	"errors"

	models "github.com/glkeru/crm/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Получить счет лояльности
func (c *CRMDB) Get(ctx context.Context, customerID string) (models.LoyaltyProfile, error) {
	var profile models.LoyaltyProfile
	err := c.loyalty.FindOne(ctx, bson.M{"_id": customerID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.LoyaltyProfile{}, models.ErrNotFound
		}
		return models.LoyaltyProfile{}, err
	}
	return profile, nil
}

// Найти счет по реферальному коду
func (c *CRMDB) GetByReferralCode(ctx context.Context, code string) (models.LoyaltyProfile, error) {
	var profile models.LoyaltyProfile
	err := c.loyalty.FindOne(ctx, bson.M{"referral_code": code}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.LoyaltyProfile{}, models.ErrNotFound
		}
		return models.LoyaltyProfile{}, err
	}
	return profile, nil
}

// Запись баланса и уровня при совпадении версии
func (c *CRMDB) CompareAndSwap(ctx context.Context, customerID string, version int64, points int64, tier string) error {
	res, err := c.loyalty.UpdateOne(ctx,
		bson.M{"_id": customerID, "version": version},
		bson.M{
			"$set": bson.M{"points": points, "tier": tier},
			"$inc": bson.M{"version": 1},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// версия ушла вперед - конкурентное обновление
		return models.ErrConflict
	}
	return nil
}

// Атомарный инкремент баллов
func (c *CRMDB) AddPoints(ctx context.Context, customerID string, delta int64) error {
	res, err := c.loyalty.UpdateOne(ctx,
		bson.M{"_id": customerID},
		bson.M{"$inc": bson.M{"points": delta, "version": 1}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
