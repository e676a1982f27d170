package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/social-wave/backend/internal/domain"
	"github.com/social-wave/backend/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Интеграционные тесты против реального PostgreSQL; без TEST_DATABASE_URL
// пакет тестируется только через сервисный слой.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("pgxpool.New failed: %v", err)
	}
	t.Cleanup(pool.Close)

	schema, err := os.ReadFile("../../../migrations/0001_init.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		t.Fatalf("apply migration: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE messages, chat_participants, chats, users RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	return pool
}

func mustCreateUser(t *testing.T, repo *UserRepo, username, email string) domain.UserID {
	t.Helper()
	u, err := domain.NewUser(username, email, "hash-"+username, time.Now().UTC())
	if err != nil {
		t.Fatalf("NewUser(%s): %v", username, err)
	}
	id, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create(%s): %v", username, err)
	}
	return id
}

func TestUserRepoUniqueEmail(t *testing.T) {
	pool := setupDB(t)
	repo := NewUserRepoFromPool(pool)
	ctx := context.Background()

	mustCreateUser(t, repo, "alice", "alice@x.com")

	dup, _ := domain.NewUser("alice2", "alice@x.com", "hash", time.Now().UTC())
	_, err := repo.Create(ctx, dup)
	if !errors.Is(err, repository.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestUserRepoSearchOrdering(t *testing.T) {
	pool := setupDB(t)
	repo := NewUserRepoFromPool(pool)
	ctx := context.Background()

	alice := mustCreateUser(t, repo, "alice", "alice@x.com")
	mustCreateUser(t, repo, "alicia", "alicia@y.com")
	mustCreateUser(t, repo, "bob", "bob@x.com")

	// alice уходит в оффлайн: alicia (онлайн) должна стать первой
	if err := repo.SetOnline(ctx, alice, false, time.Now().UTC()); err != nil {
		t.Fatalf("SetOnline: %v", err)
	}

	users, err := repo.List(ctx, "ALIC")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(users))
	}
	if users[0].Username != "alicia" || users[1].Username != "alice" {
		t.Fatalf("unexpected order: %s, %s", users[0].Username, users[1].Username)
	}
}

func TestChatRepoDedup(t *testing.T) {
	pool := setupDB(t)
	users := NewUserRepoFromPool(pool)
	chats := NewChatRepo(pool)
	ctx := context.Background()

	a := mustCreateUser(t, users, "alice", "alice@x.com")
	b := mustCreateUser(t, users, "bob", "bob@x.com")

	first, created, err := chats.GetOrCreateDirect(ctx, a, b)
	if err != nil {
		t.Fatalf("first GetOrCreateDirect: %v", err)
	}
	if !created {
		t.Fatal("first call must create the chat")
	}

	second, created, err := chats.GetOrCreateDirect(ctx, b, a)
	if err != nil {
		t.Fatalf("second GetOrCreateDirect: %v", err)
	}
	if created {
		t.Fatal("second call must reuse the chat")
	}
	if first != second {
		t.Fatalf("chat ids differ: %d vs %d", first, second)
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM chats`).Scan(&count); err != nil {
		t.Fatalf("count chats: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 chat row, got %d", count)
	}
}

func TestMessageRepoAutoReply(t *testing.T) {
	pool := setupDB(t)
	users := NewUserRepoFromPool(pool)
	chats := NewChatRepo(pool)
	messages := NewMessageRepo(pool)
	ctx := context.Background()

	assistant := mustCreateUser(t, users, "assistant", "assistant@x.com")
	a := mustCreateUser(t, users, "alice", "alice@x.com")

	chatID, _, err := chats.GetOrCreateDirect(ctx, a, assistant)
	if err != nil {
		t.Fatalf("GetOrCreateDirect: %v", err)
	}

	hi := "привет"
	m := &domain.Message{ChatID: chatID, SenderID: a, Content: &hi}
	replied, err := messages.SaveWithAutoReply(ctx, m, assistant, "заглушка")
	if err != nil {
		t.Fatalf("SaveWithAutoReply: %v", err)
	}
	if !replied {
		t.Fatal("expected auto-reply for chat with assistant")
	}
	if m.ID == 0 || m.CreatedAt.IsZero() {
		t.Fatalf("server fields not filled: %+v", m)
	}

	list, err := messages.ListByChat(ctx, chatID)
	if err != nil {
		t.Fatalf("ListByChat: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(list))
	}
	if list[1].SenderID != assistant {
		t.Fatalf("reply sender = %d, want assistant", list[1].SenderID)
	}
}

func TestMessageRepoNoReplyWithoutAssistant(t *testing.T) {
	pool := setupDB(t)
	users := NewUserRepoFromPool(pool)
	chats := NewChatRepo(pool)
	messages := NewMessageRepo(pool)
	ctx := context.Background()

	assistant := mustCreateUser(t, users, "assistant", "assistant@x.com")
	a := mustCreateUser(t, users, "alice", "alice@x.com")
	b := mustCreateUser(t, users, "bob", "bob@x.com")

	chatID, _, err := chats.GetOrCreateDirect(ctx, a, b)
	if err != nil {
		t.Fatalf("GetOrCreateDirect: %v", err)
	}

	hi := "hi"
	replied, err := messages.SaveWithAutoReply(ctx, &domain.Message{ChatID: chatID, SenderID: a, Content: &hi}, assistant, "заглушка")
	if err != nil {
		t.Fatalf("SaveWithAutoReply: %v", err)
	}
	if replied {
		t.Fatal("no reply expected when assistant is not a participant")
	}

	list, err := messages.ListByChat(ctx, chatID)
	if err != nil {
		t.Fatalf("ListByChat: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 row, got %d", len(list))
	}
}

func TestMessagesChronologicalOrder(t *testing.T) {
	pool := setupDB(t)
	users := NewUserRepoFromPool(pool)
	chats := NewChatRepo(pool)
	messages := NewMessageRepo(pool)
	ctx := context.Background()

	a := mustCreateUser(t, users, "alice", "alice@x.com")
	b := mustCreateUser(t, users, "bob", "bob@x.com")
	chatID, _, err := chats.GetOrCreateDirect(ctx, a, b)
	if err != nil {
		t.Fatalf("GetOrCreateDirect: %v", err)
	}

	for _, text := range []string{"one", "two", "three"} {
		text := text
		if err := messages.Save(ctx, &domain.Message{ChatID: chatID, SenderID: a, Content: &text}); err != nil {
			t.Fatalf("Save(%s): %v", text, err)
		}
	}

	list, err := messages.ListByChat(ctx, chatID)
	if err != nil {
		t.Fatalf("ListByChat: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.Before(list[i-1].CreatedAt) {
			t.Fatalf("messages out of order at %d", i)
		}
	}
	if *list[0].Content != "one" || *list[2].Content != "three" {
		t.Fatalf("unexpected contents: %v, %v", *list[0].Content, *list[2].Content)
	}
}

func TestChatSummaries(t *testing.T) {
	pool := setupDB(t)
	users := NewUserRepoFromPool(pool)
	chats := NewChatRepo(pool)
	messages := NewMessageRepo(pool)
	ctx := context.Background()

	a := mustCreateUser(t, users, "alice", "alice@x.com")
	b := mustCreateUser(t, users, "bob", "bob@x.com")
	c := mustCreateUser(t, users, "carol", "carol@x.com")

	ab, _, err := chats.GetOrCreateDirect(ctx, a, b)
	if err != nil {
		t.Fatalf("GetOrCreateDirect(a,b): %v", err)
	}
	ac, _, err := chats.GetOrCreateDirect(ctx, a, c)
	if err != nil {
		t.Fatalf("GetOrCreateDirect(a,c): %v", err)
	}

	// свежее сообщение в старшем чате поднимает его наверх
	text := "newest"
	if err := messages.Save(ctx, &domain.Message{ChatID: ab, SenderID: b, Content: &text}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	list, err := chats.ListByUser(ctx, a)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 chats, got %d", len(list))
	}
	if list[0].ChatID != ab {
		t.Fatalf("expected most recently active chat first, got %d", list[0].ChatID)
	}
	if list[0].OtherUsername != "bob" {
		t.Fatalf("other participant = %s, want bob", list[0].OtherUsername)
	}
	if list[0].LastMessage == nil || *list[0].LastMessage != text {
		t.Fatalf("last message = %v, want %q", list[0].LastMessage, text)
	}
	if list[1].ChatID != ac || list[1].LastMessage != nil {
		t.Fatalf("unexpected second row: %+v", list[1])
	}
}
