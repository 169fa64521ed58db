package crm

import (
	"context"
	"errors"

	models "github.com/glkeru/crm/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Создание клиента вместе со счетом лояльности одной транзакцией
func (c *CRMDB) CustomerCreate(ctx context.Context, customer models.Customer, profile models.LoyaltyProfile) error {
	session, err := c.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := c.customers.InsertOne(sc, customer); err != nil {
			return nil, err
		}
		if _, err := c.loyalty.InsertOne(sc, profile); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// коллизия реферального кода, вызывающий генерирует новый
			return models.ErrConflict
		}
		return err
	}
	return nil
}

func (c *CRMDB) CustomerGet(ctx context.Context, id string) (models.Customer, error) {
	var customer models.Customer
	err := c.customers.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Customer{}, models.ErrNotFound
		}
		return models.Customer{}, err
	}
	return customer, nil
}

func (c *CRMDB) CustomerList(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	result, err := c.customers.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer result.Close(ctx)

	for result.Next(ctx) {
		var customer models.Customer
		if err := result.Decode(&customer); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, result.Err()
}

// Частичное обновление клиента
func (c *CRMDB) CustomerUpdate(ctx context.Context, id string, fields map[string]any) error {
	res, err := c.customers.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Удаление клиента вместе со счетом лояльности
func (c *CRMDB) CustomerDelete(ctx context.Context, id string) error {
	session, err := c.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := c.customers.DeleteOne(sc, bson.M{"_id": id})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, models.ErrNotFound
		}
		if _, err := c.loyalty.DeleteOne(sc, bson.M{"_id": id}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}
