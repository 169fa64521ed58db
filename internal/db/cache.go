package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	config "github.com/glkeru/crm/internal/config"
	models "github.com/glkeru/crm/internal/models"
	redis "github.com/redis/go-redis/v9"
)

const profileTTL = 5 * time.Minute

type CacheService struct {
	client *redis.Client
}

func NewCacheService(cfg *config.Config) (serv *CacheService, err error) {
	if cfg.CacheAddr == "" {
		return nil, fmt.Errorf("env CRM_CACHE_URL is not set")
	}

	// redis
	db := redis.NewClient(&redis.Options{
		Addr:        cfg.CacheAddr,
		Password:    cfg.CachePassword,
		Username:    cfg.CacheUser,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = db.Ping(context.Background()).Err()
	if err != nil {
		return nil, err
	}

	return &CacheService{db}, nil
}

func profileKey(customerID string) string {
	return "loyalty:" + customerID
}

func (c *CacheService) GetProfile(ctx context.Context, customerID string) (models.LoyaltyProfile, error) {
	val, err := c.client.Get(ctx, profileKey(customerID)).Result()
	if err == redis.Nil {
		return models.LoyaltyProfile{}, models.ErrNotFound
	} else if err != nil {
		return models.LoyaltyProfile{}, err
	}

	var profile models.LoyaltyProfile
	if err := json.Unmarshal([]byte(val), &profile); err != nil {
		return models.LoyaltyProfile{}, err
	}
	return profile, nil
}

func (c *CacheService) SetProfile(ctx context.Context, profile models.LoyaltyProfile) error {
	val, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, profileKey(profile.CustomerID), val, profileTTL).Err()
}

func (c *CacheService) InvalidateProfile(ctx context.Context, customerID string) error {
	return c.client.Del(ctx, profileKey(customerID)).Err()
}
