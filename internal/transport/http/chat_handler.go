package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/social-wave/backend/internal/domain"
	"github.com/social-wave/backend/internal/service"
	"github.com/social-wave/backend/pkg/httputil"
)

type ChatHandler struct {
	chat *service.ChatService
}

func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// POST /chats {action: create_chat|send_message, ...}
func (h *ChatHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Fail(w, http.StatusBadRequest, "invalid json")
		return
	}

	switch req.Action {
	case "create_chat":
		id, err := h.chat.CreateOrGetChat(r.Context(), domain.UserID(req.User1ID), domain.UserID(req.User2ID))
		if err != nil {
			writeError(w, err)
			return
		}
		httputil.OK(w, map[string]any{"chat_id": int64(id)})

	case "send_message":
		m, err := h.chat.SendMessage(r.Context(), domain.ChatID(req.ChatID), domain.UserID(req.SenderID), req.Content, req.ImageURL)
		if err != nil {
			writeError(w, err)
			return
		}
		httputil.OK(w, map[string]any{"message": toMessageItem(*m)})

	default:
		writeMethodNotAllowed(w)
	}
}

// GET /chats?action=get_user_chats&user_id= | action=get_messages&chat_id=
func (h *ChatHandler) Get(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("action") {
	case "get_user_chats":
		userID, _ := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
		chats, err := h.chat.UserChats(r.Context(), domain.UserID(userID))
		if err != nil {
			writeError(w, err)
			return
		}
		items := make([]chatItem, 0, len(chats))
		for _, c := range chats {
			items = append(items, toChatItem(c))
		}
		httputil.OK(w, map[string]any{"chats": items})

	case "get_messages":
		chatID, _ := strconv.ParseInt(r.URL.Query().Get("chat_id"), 10, 64)
		messages, err := h.chat.Messages(r.Context(), domain.ChatID(chatID))
		if err != nil {
			writeError(w, err)
			return
		}
		items := make([]messageItem, 0, len(messages))
		for _, m := range messages {
			items = append(items, toMessageItemDetailed(m))
		}
		httputil.OK(w, map[string]any{"messages": items})

	default:
		writeMethodNotAllowed(w)
	}
}
