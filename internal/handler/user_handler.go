package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sportsmessenger/backend/internal/model"
	"github.com/sportsmessenger/backend/internal/repository"
)

// UserHandler はユーザー参照の HTTP ハンドラ
type UserHandler struct {
	users repository.UserRepository
}

// NewUserHandler は UserHandler を生成する
func NewUserHandler(users repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// List は GET /api/users を処理する。全ユーザーを返す
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		slog.Error("list users failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	if users == nil {
		users = []*model.User{}
	}
	respondJSON(w, http.StatusOK, users)
}

// Get は GET /api/users/{id} を処理する
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "id_required")
		return
	}

	user, err := h.users.FindByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "user_not_found")
		return
	}
	if err != nil {
		slog.Error("get user failed", "error", err, "user_id", id)
		respondError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	respondJSON(w, http.StatusOK, user)
}
