package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type envelope map[string]any

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json response failed", slog.Any("err", err))
	}
}

// OK — успешный ответ: {"success": true, ...payload}.
func OK(w http.ResponseWriter, payload map[string]any) {
	body := envelope{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	JSON(w, http.StatusOK, body)
}

// Fail — унифицированная ошибка: {"success": false, "error": msg}.
func Fail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, envelope{"success": false, "error": msg})
}
