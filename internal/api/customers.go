package crm

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type customerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

type customerCreatedResponse struct {
	Success      bool   `json:"success"`
	ID           string `json:"id"`
	ReferralCode string `json:"referral_code"`
}

// Создание клиента вместе со счетом лояльности
func (h *CRMHandler) CreateCustomerHandler(w http.ResponseWriter, req *http.Request) {
	request := &customerRequest{}
	if err := json.NewDecoder(req.Body).Decode(request); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{"name and email are required"})
		return
	}
	defer req.Body.Close()

	customer, profile, err := h.customers.Create(req.Context(),
		request.Name, request.Email, request.Phone, request.Company)
	if err != nil {
		h.writeError(w, "CreateCustomerHandler", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, customerCreatedResponse{
		Success:      true,
		ID:           customer.ID,
		ReferralCode: profile.ReferralCode,
	})
}

func (h *CRMHandler) ListCustomersHandler(w http.ResponseWriter, req *http.Request) {
	customers, err := h.db.CustomerList(req.Context())
	if err != nil {
		h.writeError(w, "ListCustomersHandler", err)
		return
	}
	h.writeJSON(w, http.StatusOK, customers)
}

func (h *CRMHandler) GetCustomerHandler(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	customer, err := h.db.CustomerGet(req.Context(), id)
	if err != nil {
		h.writeError(w, "GetCustomerHandler", err)
		return
	}
	h.writeJSON(w, http.StatusOK, customer)
}

type successResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// Частичное обновление: применяются только переданные поля
func (h *CRMHandler) UpdateCustomerHandler(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	body := map[string]any{}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{"no update data provided"})
		return
	}
	defer req.Body.Close()

	fields := map[string]any{}
	for _, key := range []string{"name", "email", "phone", "company"} {
		if v, ok := body[key]; ok {
			fields[key] = v
		}
	}
	if len(fields) == 0 {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{"no update data provided"})
		return
	}

	if err := h.db.CustomerUpdate(req.Context(), id, fields); err != nil {
		h.writeError(w, "UpdateCustomerHandler", err)
		return
	}
	h.writeJSON(w, http.StatusOK, successResponse{Success: true, ID: id})
}

// Удаление клиента вместе со счетом лояльности
func (h *CRMHandler) DeleteCustomerHandler(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	if err := h.db.CustomerDelete(req.Context(), id); err != nil {
		h.writeError(w, "DeleteCustomerHandler", err)
		return
	}
	h.writeJSON(w, http.StatusOK, successResponse{Success: true, ID: id})
}
