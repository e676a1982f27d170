package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/social-wave/backend/internal/domain"
	"github.com/social-wave/backend/internal/repository"
)

// fakeStore — общая in-memory замена трех репозиториев для тестов сервисов.
type fakeStore struct {
	mu sync.Mutex

	userSeq int64
	users   map[domain.UserID]*domain.User

	chatSeq      int64
	chats        map[domain.ChatID]*domain.Chat
	participants map[domain.ChatID][]domain.UserID

	msgSeq   int64
	messages []domain.Message
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        map[domain.UserID]*domain.User{},
		chats:        map[domain.ChatID]*domain.Chat{},
		participants: map[domain.ChatID][]domain.UserID{},
	}
}

// --- repository.UserRepository ---

func (f *fakeStore) Create(_ context.Context, u *domain.User) (domain.UserID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return 0, repository.ErrAlreadyExists
		}
	}
	f.userSeq++
	id := domain.UserID(f.userSeq)
	cp := *u
	cp.ID = id
	f.users[id] = &cp
	return id, nil
}

func (f *fakeStore) GetByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStore) List(_ context.Context, search string) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	needle := strings.ToLower(search)
	var out []domain.User
	for _, u := range f.users {
		if needle == "" ||
			strings.Contains(strings.ToLower(u.Username), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsOnline != out[j].IsOnline {
			return out[i].IsOnline
		}
		return out[i].Username < out[j].Username
	})
	return out, nil
}

func (f *fakeStore) SetOnline(_ context.Context, id domain.UserID, online bool, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.IsOnline = online
	u.LastSeen = now
	return nil
}

func (f *fakeStore) UpdateAvatar(_ context.Context, id domain.UserID, avatarURL *string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.AvatarURL = avatarURL
	cp := *u
	return &cp, nil
}

// --- repository.ChatRepository ---

func (f *fakeStore) GetOrCreateDirect(_ context.Context, a, b domain.UserID) (domain.ChatID, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if a > b {
		a, b = b, a
	}
	for id, members := range f.participants {
		if len(members) == 2 && members[0] == a && members[1] == b && !f.chats[id].IsGroup {
			return id, false, nil
		}
	}
	if _, ok := f.users[a]; !ok {
		return 0, false, repository.ErrNotFound
	}
	if _, ok := f.users[b]; !ok {
		return 0, false, repository.ErrNotFound
	}

	f.chatSeq++
	id := domain.ChatID(f.chatSeq)
	f.chats[id] = &domain.Chat{ID: id, CreatedAt: time.Now()}
	f.participants[id] = []domain.UserID{a, b}
	return id, true, nil
}

func (f *fakeStore) ListByUser(_ context.Context, userID domain.UserID) ([]domain.ChatSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.ChatSummary
	for id, members := range f.participants {
		for i, m := range members {
			if m != userID {
				continue
			}
			other := f.users[members[1-i]]
			s := domain.ChatSummary{
				ChatID:        id,
				CreatedAt:     f.chats[id].CreatedAt,
				OtherUserID:   other.ID,
				OtherUsername: other.Username,
				OtherAvatar:   other.AvatarURL,
				OtherIsOnline: other.IsOnline,
			}
			for j := len(f.messages) - 1; j >= 0; j-- {
				if f.messages[j].ChatID == id {
					s.LastMessage = f.messages[j].Content
					at := f.messages[j].CreatedAt
					s.LastMessageAt = &at
					break
				}
			}
			out = append(out, s)
		}
	}
	return out, nil
}

// --- repository.MessageRepository ---

func (f *fakeStore) Save(_ context.Context, m *domain.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.saveLocked(m)
	return nil
}

func (f *fakeStore) SaveWithAutoReply(_ context.Context, m *domain.Message, replyFrom domain.UserID, replyText string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.chats[m.ChatID]; !ok {
		return false, repository.ErrNotFound
	}
	f.saveLocked(m)

	for _, member := range f.participants[m.ChatID] {
		if member == replyFrom {
			text := replyText
			reply := &domain.Message{ChatID: m.ChatID, SenderID: replyFrom, Content: &text}
			f.saveLocked(reply)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) ListByChat(_ context.Context, chatID domain.ChatID) ([]domain.MessageDetailed, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.MessageDetailed
	for _, m := range f.messages {
		if m.ChatID != chatID {
			continue
		}
		d := domain.MessageDetailed{Message: m}
		if u, ok := f.users[m.SenderID]; ok {
			d.SenderUsername = u.Username
			d.SenderAvatar = u.AvatarURL
		}
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeStore) saveLocked(m *domain.Message) {
	f.msgSeq++
	m.ID = domain.MessageID(f.msgSeq)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	f.messages = append(f.messages, *m)
}

func (f *fakeStore) chatMessages(chatID domain.ChatID) []domain.Message {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.Message
	for _, m := range f.messages {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out
}

func (f *fakeStore) addUser(username, email string, online bool) domain.UserID {
	id, _ := f.Create(context.Background(), &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: "x",
		IsOnline:     online,
		LastSeen:     time.Now(),
	})
	return id
}
