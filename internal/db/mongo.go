package crm

import (
	"context"
	"fmt"
	"time"

	config "github.com/glkeru/crm/internal/config"
	models "github.com/glkeru/crm/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type CRMDB struct {
	client        *mongo.Client
	customers     *mongo.Collection
	leads         *mongo.Collection
	opportunities *mongo.Collection
	tickets       *mongo.Collection
	loyalty       *mongo.Collection
	logger        *zap.Logger
}

func NewCRMDB(cfg *config.Config, logger *zap.Logger) (*CRMDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().ApplyURI(cfg.MongoURI)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	db := client.Database(cfg.MongoDatabase)

	c := &CRMDB{
		client:        client,
		customers:     db.Collection("customers"),
		leads:         db.Collection("leads"),
		opportunities: db.Collection("opportunities"),
		tickets:       db.Collection("tickets"),
		loyalty:       db.Collection("loyalty_profiles"),
		logger:        logger,
	}

	// уникальность реферальных кодов
	_, err = c.loyalty.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "referral_code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (c *CRMDB) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
