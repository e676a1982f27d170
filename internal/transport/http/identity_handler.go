package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/social-wave/backend/internal/domain"
	"github.com/social-wave/backend/internal/service"
	"github.com/social-wave/backend/pkg/httputil"
)

type IdentityHandler struct {
	identity *service.IdentityService
}

func NewIdentityHandler(identity *service.IdentityService) *IdentityHandler {
	return &IdentityHandler{identity: identity}
}

// POST /auth {action: register|login|logout, ...}
func (h *IdentityHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Fail(w, http.StatusBadRequest, "invalid json")
		return
	}

	switch req.Action {
	case "register":
		u, err := h.identity.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}
		httputil.OK(w, map[string]any{"user": toUserItem(u, false)})

	case "login":
		u, err := h.identity.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}
		httputil.OK(w, map[string]any{"user": toUserItem(u, false)})

	case "logout":
		if err := h.identity.Logout(r.Context(), domain.UserID(req.UserID)); err != nil {
			writeError(w, err)
			return
		}
		httputil.OK(w, nil)

	default:
		writeMethodNotAllowed(w)
	}
}

// PUT /auth {user_id, avatar_url}
func (h *IdentityHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Fail(w, http.StatusBadRequest, "invalid json")
		return
	}

	u, err := h.identity.UpdateProfile(r.Context(), domain.UserID(req.UserID), req.AvatarURL)
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.OK(w, map[string]any{"user": toUserItem(u, false)})
}

// GET /auth?user_id=
func (h *IdentityHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil || id <= 0 {
		httputil.Fail(w, http.StatusNotFound, "user not found")
		return
	}

	u, err := h.identity.GetUser(r.Context(), domain.UserID(id))
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.OK(w, map[string]any{"user": toUserItem(u, true)})
}
