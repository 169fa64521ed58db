package crm

import (
	"context"

	models "github.com/glkeru/crm/internal/models"
)

func (c *CRMDB) TicketCreate(ctx context.Context, ticket models.Ticket) error {
	_, err := c.tickets.InsertOne(ctx, ticket)
	return err
}
