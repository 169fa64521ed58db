package crm

import (
	"encoding/json"
	"errors"
	"net/http"

	interf "github.com/glkeru/crm/internal/interfaces"
	models "github.com/glkeru/crm/internal/models"
	service "github.com/glkeru/crm/internal/services"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type CRMHandler struct {
	router    *mux.Router
	customers *service.CustomerService
	loyalty   *service.LoyaltyService
	db        interf.CustomerStorage
	leads     interf.LeadStorage
	tickets   interf.TicketStorage
	logger    *zap.Logger
}

func NewHandler(customers *service.CustomerService, loyalty *service.LoyaltyService,
	db interf.CustomerStorage, leads interf.LeadStorage, tickets interf.TicketStorage,
	logger *zap.Logger) *CRMHandler {

	router := mux.NewRouter()
	handler := &CRMHandler{router, customers, loyalty, db, leads, tickets, logger}
	router.Use(MiddlewareLog())

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	router.HandleFunc("/api/customer", handler.CreateCustomerHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/customers", handler.ListCustomersHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/customer/{id}", handler.GetCustomerHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/customer/{id}", handler.UpdateCustomerHandler).Methods(http.MethodPut)
	router.HandleFunc("/api/customer/{id}", handler.DeleteCustomerHandler).Methods(http.MethodDelete)

	router.HandleFunc("/api/lead", handler.CaptureLeadHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/lead/{id}/convert", handler.ConvertLeadHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/lead/{id}/assign", handler.AssignLeadHandler).Methods(http.MethodPut)
	router.HandleFunc("/api/opportunity/{id}/status", handler.OpportunityStatusHandler).Methods(http.MethodPut)

	router.HandleFunc("/api/tickets", handler.CreateTicketHandler).Methods(http.MethodPost)

	router.HandleFunc("/api/loyalty/{id}", handler.GetLoyaltyHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/loyalty/{id}/redeem", handler.RedeemHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/loyalty/{id}/use-referral", handler.UseReferralHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/loyalty/{id}/purchase", handler.PurchaseHandler).Methods(http.MethodPost)

	return handler
}

func (h *CRMHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *CRMHandler) Log(msg string, service string, err error) {
	h.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *CRMHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	j, err := json.Marshal(body)
	if err != nil {
		h.Log("Marshal", "writeJSON", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(j)
}

// Маппинг ошибок на HTTP-статусы
func (h *CRMHandler) writeError(w http.ResponseWriter, service string, err error) {
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrInsufficientPoints),
		errors.Is(err, models.ErrSelfReferral):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{err.Error()})
	case errors.Is(err, models.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{err.Error()})
	case errors.Is(err, models.ErrUnavailable), errors.Is(err, models.ErrConflict):
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{err.Error()})
	default:
		// детали только в лог
		h.Log("internal error", service, err)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{"internal error"})
	}
}
