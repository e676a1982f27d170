package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/social-wave/backend/internal/errs"
	"github.com/social-wave/backend/pkg/httputil"
)

// writeError переводит доменные ошибки в статус и единый envelope;
// неизвестные ошибки наружу не просачиваются.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidCredentials):
		httputil.Fail(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrUserNotFound), errors.Is(err, errs.ErrChatNotFound):
		httputil.Fail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrUserExists):
		httputil.Fail(w, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidInput),
		errors.Is(err, errs.ErrEmptyMessage),
		errors.Is(err, errs.ErrEmptyUsername),
		errors.Is(err, errs.ErrInvalidEmail),
		errors.Is(err, errs.ErrPasswordTooShort):
		httputil.Fail(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("unhandled request error", slog.Any("err", err))
		httputil.Fail(w, http.StatusInternalServerError, "internal error")
	}
}

func writeMethodNotAllowed(w http.ResponseWriter) {
	httputil.Fail(w, http.StatusMethodNotAllowed, "method not allowed")
}
