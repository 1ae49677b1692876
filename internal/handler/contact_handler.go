package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sportsmessenger/backend/internal/model"
	"github.com/sportsmessenger/backend/internal/service"
)

// ContactHandler は連絡先一覧と交換リクエストの HTTP ハンドラ
type ContactHandler struct {
	contactList service.ContactListService
	exchanges   service.ExchangeService
}

// NewContactHandler は ContactHandler を生成する
func NewContactHandler(contactList service.ContactListService, exchanges service.ExchangeService) *ContactHandler {
	return &ContactHandler{contactList: contactList, exchanges: exchanges}
}

// List は GET /api/contacts?user_id= を処理する
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "user_id_required")
		return
	}

	list, err := h.contactList.ListContacts(r.Context(), userID)
	if errors.Is(err, service.ErrUserNotFound) {
		respondError(w, http.StatusNotFound, "user_not_found")
		return
	}
	if err != nil {
		slog.Error("list contacts failed", "error", err, "user_id", userID)
		respondError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	respondJSON(w, http.StatusOK, list)
}

type exchangeRequestBody struct {
	FromUserID string `json:"from_user_id"`
	ToUserID   string `json:"to_user_id"`
}

// RequestExchange は POST /api/contacts/exchange/request を処理する
func (h *ContactHandler) RequestExchange(w http.ResponseWriter, r *http.Request) {
	var body exchangeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.FromUserID == "" || body.ToUserID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	exchange, err := h.exchanges.Request(r.Context(), body.FromUserID, body.ToUserID)
	if err != nil {
		h.respondExchangeError(w, err, body.FromUserID)
		return
	}
	respondJSON(w, http.StatusCreated, exchange)
}

type exchangeActionBody struct {
	UserID string `json:"user_id"`
}

// Accept は POST /api/contacts/exchange/{id}/accept を処理する
func (h *ContactHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.exchanges.Accept)
}

// Reject は POST /api/contacts/exchange/{id}/reject を処理する
func (h *ContactHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.exchanges.Reject)
}

func (h *ContactHandler) respond(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, exchangeID, userID string) (*model.ContactExchange, error)) {
	exchangeID := r.PathValue("id")
	if exchangeID == "" {
		respondError(w, http.StatusBadRequest, "id_required")
		return
	}

	var body exchangeActionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.UserID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	exchange, err := action(r.Context(), exchangeID, body.UserID)
	if err != nil {
		h.respondExchangeError(w, err, body.UserID)
		return
	}
	respondJSON(w, http.StatusOK, exchange)
}

// Disconnect は DELETE /api/contacts/exchange/{id}?user_id= を処理する
func (h *ContactHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	exchangeID := r.PathValue("id")
	if exchangeID == "" {
		respondError(w, http.StatusBadRequest, "id_required")
		return
	}
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "user_id_required")
		return
	}

	if err := h.exchanges.Disconnect(r.Context(), exchangeID, userID); err != nil {
		h.respondExchangeError(w, err, userID)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "disconnected"})
}

// respondExchangeError は ExchangeService のエラーを HTTP ステータスへ変換する
func (h *ContactHandler) respondExchangeError(w http.ResponseWriter, err error, userID string) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "user_not_found")
	case errors.Is(err, service.ErrExchangeNotFound):
		respondError(w, http.StatusNotFound, "exchange_not_found")
	case errors.Is(err, service.ErrRolesEqual):
		respondError(w, http.StatusBadRequest, "roles_equal")
	case errors.Is(err, service.ErrAlreadyPending):
		respondError(w, http.StatusBadRequest, "already_pending")
	case errors.Is(err, service.ErrAlreadyAccepted):
		respondError(w, http.StatusBadRequest, "already_accepted")
	case errors.Is(err, service.ErrOwnRequest):
		respondError(w, http.StatusBadRequest, "cannot_act_on_own_request")
	case errors.Is(err, service.ErrNotParticipant):
		respondError(w, http.StatusForbidden, "not_a_participant")
	default:
		slog.Error("exchange operation failed", "error", err, "user_id", userID)
		respondError(w, http.StatusInternalServerError, "internal_error")
	}
}
