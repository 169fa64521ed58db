package crm

import (
	"context"
	"errors"
	"time"

	models "github.com/glkeru/crm/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (c *CRMDB) LeadCreate(ctx context.Context, lead models.Lead) error {
	_, err := c.leads.InsertOne(ctx, lead)
	return err
}

// Конвертация лида в сделку: смена статуса и создание сделки одной транзакцией
func (c *CRMDB) LeadConvert(ctx context.Context, leadID string) (models.Opportunity, error) {
	session, err := c.client.StartSession()
	if err != nil {
		return models.Opportunity{}, err
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var lead models.Lead
		err := c.leads.FindOne(sc, bson.M{"_id": leadID}).Decode(&lead)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, models.ErrNotFound
			}
			return nil, err
		}

		now := time.Now().UTC()
		_, err = c.leads.UpdateOne(sc, bson.M{"_id": leadID},
			bson.M{"$set": bson.M{"status": models.LeadStatusConverted, "converted_at": now}})
		if err != nil {
			return nil, err
		}

		opp := models.Opportunity{
			ID:        uuid.NewString(),
			LeadID:    leadID,
			Name:      lead.Name,
			Email:     lead.Email,
			Source:    lead.Source,
			Stage:     models.StageQualification,
			Amount:    0,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := c.opportunities.InsertOne(sc, opp); err != nil {
			return nil, err
		}
		return opp, nil
	})
	if err != nil {
		return models.Opportunity{}, err
	}
	return result.(models.Opportunity), nil
}

func (c *CRMDB) LeadAssign(ctx context.Context, leadID string, repID string, repName string) error {
	now := time.Now().UTC()
	res, err := c.leads.UpdateOne(ctx, bson.M{"_id": leadID},
		bson.M{"$set": bson.M{
			"assigned_to_id":   repID,
			"assigned_to_name": repName,
			"assigned_at":      now,
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (c *CRMDB) OpportunitySetStage(ctx context.Context, oppID string, stage string) error {
	now := time.Now().UTC()
	set := bson.M{"stage": stage, "updated_at": now}
	if stage == models.StageWon || stage == models.StageLost {
		set["closed_at"] = now
	}
	res, err := c.opportunities.UpdateOne(ctx, bson.M{"_id": oppID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
