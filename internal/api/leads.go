package crm

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	models "github.com/glkeru/crm/internal/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type leadRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Source string `json:"source"`
}

// Захват нового лида
func (h *CRMHandler) CaptureLeadHandler(w http.ResponseWriter, req *http.Request) {
	request := &leadRequest{}
	if err := json.NewDecoder(req.Body).Decode(request); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{"name, email, and source are required"})
		return
	}
	defer req.Body.Close()

	if request.Name == "" || request.Email == "" || request.Source == "" {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{"name, email, and source are required"})
		return
	}

	lead := models.Lead{
		ID:        uuid.NewString(),
		Name:      request.Name,
		Email:     request.Email,
		Source:    request.Source,
		Status:    models.LeadStatusNew,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.leads.LeadCreate(req.Context(), lead); err != nil {
		h.writeError(w, "CaptureLeadHandler", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, successResponse{Success: true, ID: lead.ID})
}

type convertResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	OpportunityID string `json:"opportunity_id"`
}

// Конвертация лида в сделку
func (h *CRMHandler) ConvertLeadHandler(w http.ResponseWriter, req *http.Request) {
	leadID := mux.Vars(req)["id"]

	opp, err := h.leads.LeadConvert(req.Context(), leadID)
	if err != nil {
		h.writeError(w, "ConvertLeadHandler", err)
		return
	}
	h.writeJSON(w, http.StatusOK, convertResponse{
		Success:       true,
		Message:       fmt.Sprintf("Lead %s converted to Opportunity.", leadID),
		OpportunityID: opp.ID,
	})
}

type assignRequest struct {
	RepID   string `json:"rep_id"`
	RepName string `json:"rep_name"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Назначение лида менеджеру
func (h *CRMHandler) AssignLeadHandler(w http.ResponseWriter, req *http.Request) {
	leadID := mux.Vars(req)["id"]

	request := &assignRequest{}
	if err := json.NewDecoder(req.Body).Decode(request); err != nil || request.RepID == "" {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{"sales rep ID (rep_id) is required for assignment"})
		return
	}
	defer req.Body.Close()

	repName := request.RepName
	if repName == "" {
		repName = "Unspecified"
	}

	if err := h.leads.LeadAssign(req.Context(), leadID, request.RepID, repName); err != nil {
		h.writeError(w, "AssignLeadHandler", err)
		return
	}
	h.writeJSON(w, http.StatusOK, messageResponse{
		Success: true,
		Message: fmt.Sprintf("Lead %s assigned to %s (%s)", leadID, repName, request.RepID),
	})
}

type stageRequest struct {
	Stage string `json:"stage"`
}

type stageErrorResponse struct {
	Error       string   `json:"error"`
	ValidStages []string `json:"valid_stages"`
}

// Смена стадии сделки
func (h *CRMHandler) OpportunityStatusHandler(w http.ResponseWriter, req *http.Request) {
	oppID := mux.Vars(req)["id"]

	request := &stageRequest{}
	if err := json.NewDecoder(req.Body).Decode(request); err != nil || request.Stage == "" {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{"stage is required in the request body"})
		return
	}
	defer req.Body.Close()

	if !models.IsValidStage(request.Stage) {
		h.writeJSON(w, http.StatusBadRequest, stageErrorResponse{
			Error:       "invalid stage provided",
			ValidStages: models.Stages,
		})
		return
	}

	if err := h.leads.OpportunitySetStage(req.Context(), oppID, request.Stage); err != nil {
		h.writeError(w, "OpportunityStatusHandler", err)
		return
	}
	h.writeJSON(w, http.StatusOK, messageResponse{
		Success: true,
		Message: fmt.Sprintf("Opportunity %s status updated to %s", oppID, request.Stage),
	})
}
