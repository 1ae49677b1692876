package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sportsmessenger/backend/internal/model"
	"github.com/sportsmessenger/backend/internal/service"
)

// MessageHandler はメッセージ送受信の HTTP ハンドラ
type MessageHandler struct {
	messages service.MessageService
}

// NewMessageHandler は MessageHandler を生成する
func NewMessageHandler(messages service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

type sendMessageBody struct {
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	Content     string `json:"content"`
}

// Send は POST /api/messages を処理する。拒否された場合は判定結果を
// そのまま返し、上限系のコードは 429、それ以外は 400 にマップする
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var body sendMessageBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.SenderID == "" || body.RecipientID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	msg, decision, err := h.messages.Send(r.Context(), body.SenderID, body.RecipientID, body.Content)
	if errors.Is(err, service.ErrInvalidContent) {
		respondError(w, http.StatusBadRequest, "invalid_content")
		return
	}
	if err != nil {
		slog.Error("send message failed", "error", err, "sender_id", body.SenderID, "recipient_id", body.RecipientID)
		respondError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	if !decision.Allowed {
		status := http.StatusBadRequest
		if decision.Code.IsLimit() {
			status = http.StatusTooManyRequests
		}
		respondJSON(w, status, decision)
		return
	}
	respondJSON(w, http.StatusCreated, msg)
}

// Conversation は GET /api/messages?user_id=&contact_id= を処理する。
// 返却と同時に contact からの未読メッセージを既読にする
func (h *MessageHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	contactID := r.URL.Query().Get("contact_id")
	if userID == "" || contactID == "" {
		respondError(w, http.StatusBadRequest, "user_id_and_contact_id_required")
		return
	}

	messages, err := h.messages.Conversation(r.Context(), userID, contactID)
	if err != nil {
		slog.Error("get conversation failed", "error", err, "user_id", userID, "contact_id", contactID)
		respondError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	if messages == nil {
		messages = []*model.Message{}
	}
	respondJSON(w, http.StatusOK, messages)
}

// Limits は GET /api/messages/limits?user_id=&official_id= を処理する
func (h *MessageHandler) Limits(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "user_id_required")
		return
	}
	officialID := r.URL.Query().Get("official_id")

	report, err := h.messages.Limits(r.Context(), userID, officialID)
	if err != nil {
		slog.Error("get limits failed", "error", err, "user_id", userID)
		respondError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// Validate は POST /api/messages/validate?sender_id=&recipient_id= を処理
// する。送信せずに判定結果だけを返す
func (h *MessageHandler) Validate(w http.ResponseWriter, r *http.Request) {
	senderID := r.URL.Query().Get("sender_id")
	recipientID := r.URL.Query().Get("recipient_id")
	if senderID == "" || recipientID == "" {
		respondError(w, http.StatusBadRequest, "sender_id_and_recipient_id_required")
		return
	}

	decision, err := h.messages.Validate(r.Context(), senderID, recipientID)
	if err != nil {
		slog.Error("validate message failed", "error", err, "sender_id", senderID, "recipient_id", recipientID)
		respondError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	respondJSON(w, http.StatusOK, decision)
}
