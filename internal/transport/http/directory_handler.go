package http

import (
	"net/http"

	"github.com/social-wave/backend/internal/service"
	"github.com/social-wave/backend/pkg/httputil"
)

type DirectoryHandler struct {
	directory *service.DirectoryService
}

func NewDirectoryHandler(directory *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// GET /users?search=
func (h *DirectoryHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.directory.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]userItem, 0, len(users))
	for i := range users {
		items = append(items, toUserItem(&users[i], true))
	}

	httputil.OK(w, map[string]any{"users": items})
}
