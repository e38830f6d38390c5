package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"beresinBack/internal/models"
	"beresinBack/internal/services"
)

type SubscriptionHandler struct {
	Service *services.SubscriptionService
}

// OrderBoost lets a listing owner request a boost; the order starts pending
// until an admin resolves it.
func (h *SubscriptionHandler) OrderBoost(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusForbidden, msgForbiddenEdit)
		return
	}

	var req models.BoostOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Permintaan tidak valid.")
		return
	}

	sub, err := h.Service.OrderBoost(r.Context(), serviceID, callerID(r), req)
	if err != nil {
		var vErr *models.ValidationError
		switch {
		case errors.Is(err, models.ErrServiceForbidden):
			writeError(w, http.StatusForbidden, msgForbiddenEdit)
		case errors.As(err, &vErr):
			writeError(w, http.StatusBadRequest, vErr.Error())
		default:
			log.Printf("Failed to order boost for service %d: %v", serviceID, err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]interface{}{"subscription": sub})
}

func (h *SubscriptionHandler) ListBoostOrders(w http.ResponseWriter, r *http.Request) {
	subs, err := h.Service.ListOrders(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		log.Printf("Failed to list boost orders: %v", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	if subs == nil {
		subs = []models.Subscription{}
	}
	writeSuccess(w, http.StatusOK, map[string]interface{}{"subscriptions": subs})
}

func (h *SubscriptionHandler) ModerateBoost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Boost tidak ditemukan.")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Permintaan tidak valid.")
		return
	}

	sub, err := h.Service.Moderate(r.Context(), id, body.Status)
	if err != nil {
		var vErr *models.ValidationError
		switch {
		case errors.As(err, &vErr):
			writeError(w, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, models.ErrSubscriptionNotFound):
			writeError(w, http.StatusNotFound, "Boost tidak ditemukan.")
		default:
			log.Printf("Failed to moderate boost %d: %v", id, err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"subscription": sub})
}
