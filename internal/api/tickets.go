package crm

import (
	"encoding/json"
	"net/http"
	"time"

	models "github.com/glkeru/crm/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ticketRequest struct {
	CustomerID string `json:"customer_id"`
	Issue      string `json:"issue"`
	Priority   string `json:"priority"`
}

// Создание тикета поддержки, дедлайн SLA - 24 часа с момента создания
func (h *CRMHandler) CreateTicketHandler(w http.ResponseWriter, req *http.Request) {
	request := &ticketRequest{}
	if err := json.NewDecoder(req.Body).Decode(request); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{"missing required fields: customer_id, issue"})
		return
	}
	defer req.Body.Close()

	if request.CustomerID == "" || request.Issue == "" {
		h.logger.Warn("failed ticket creation: missing required fields",
			zap.String("customer", request.CustomerID),
		)
		h.writeJSON(w, http.StatusBadRequest, errorResponse{"missing required fields: customer_id, issue"})
		return
	}

	priority := request.Priority
	if priority == "" {
		priority = models.TicketPriorityDefault
	}

	now := time.Now().UTC()
	ticket := models.Ticket{
		ID:          uuid.NewString(),
		CustomerID:  request.CustomerID,
		Issue:       request.Issue,
		Status:      models.TicketStatusOpen,
		Priority:    priority,
		CreatedAt:   now,
		SLADeadline: now.Add(models.TicketSLA),
	}
	if err := h.tickets.TicketCreate(req.Context(), ticket); err != nil {
		h.writeError(w, "CreateTicketHandler", err)
		return
	}

	h.logger.Info("new support ticket created",
		zap.String("ticket", ticket.ID),
		zap.String("customer", ticket.CustomerID),
	)
	h.writeJSON(w, http.StatusCreated, ticket)
}
