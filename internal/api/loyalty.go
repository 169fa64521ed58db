package crm

import (
	"encoding/json"
	"fmt"
	"net/http"

	models "github.com/glkeru/crm/internal/models"
	"github.com/gorilla/mux"
)

// Счет лояльности клиента
func (h *CRMHandler) GetLoyaltyHandler(w http.ResponseWriter, req *http.Request) {
	customerID := mux.Vars(req)["id"]

	profile, err := h.loyalty.GetProfile(req.Context(), customerID)
	if err != nil {
		h.writeError(w, "GetLoyaltyHandler", err)
		return
	}
	h.writeJSON(w, http.StatusOK, profile)
}

type redeemRequest struct {
	PointsToRedeem int64 `json:"points_to_redeem"`
}

type redeemResponse struct {
	Message          string `json:"message"`
	NewPointsBalance int64  `json:"new_points_balance"`
}

// Списание баллов
func (h *CRMHandler) RedeemHandler(w http.ResponseWriter, req *http.Request) {
	customerID := mux.Vars(req)["id"]

	request := &redeemRequest{}
	if err := json.NewDecoder(req.Body).Decode(request); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{"invalid points_to_redeem"})
		return
	}
	defer req.Body.Close()

	balance, err := h.loyalty.Redeem(req.Context(), customerID, request.PointsToRedeem)
	if err != nil {
		h.writeError(w, "RedeemHandler", err)
		return
	}
	h.writeJSON(w, http.StatusOK, redeemResponse{
		Message:          "Redemption successful",
		NewPointsBalance: balance,
	})
}

type referralRequest struct {
	ReferralCode string `json:"referral_code"`
}

type referralResponse struct {
	Message string `json:"message"`
}

// Применение реферального кода: id в пути - новый клиент, бонус получает владелец кода
func (h *CRMHandler) UseReferralHandler(w http.ResponseWriter, req *http.Request) {
	customerID := mux.Vars(req)["id"]

	request := &referralRequest{}
	if err := json.NewDecoder(req.Body).Decode(request); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{"referral code required"})
		return
	}
	defer req.Body.Close()

	referrerID, err := h.loyalty.ApplyReferral(req.Context(), request.ReferralCode, customerID)
	if err != nil {
		h.writeError(w, "UseReferralHandler", err)
		return
	}
	h.writeJSON(w, http.StatusOK, referralResponse{
		Message: fmt.Sprintf("Referral successful! User %s earned %d points.", referrerID, models.ReferralBonus),
	})
}

type purchaseRequest struct {
	Amount float64 `json:"amount"`
}

// Демонстрационная точка начисления за покупку,
// основной поток - события из платежного сервиса (cmd/purchases)
func (h *CRMHandler) PurchaseHandler(w http.ResponseWriter, req *http.Request) {
	customerID := mux.Vars(req)["id"]

	request := &purchaseRequest{}
	if err := json.NewDecoder(req.Body).Decode(request); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{"invalid amount"})
		return
	}
	defer req.Body.Close()

	result, err := h.loyalty.AccrueFromPurchase(req.Context(), customerID, request.Amount)
	if err != nil {
		h.writeError(w, "PurchaseHandler", err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}
