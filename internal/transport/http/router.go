package http

import (
	"net/http"
	"time"

	httpmw "github.com/social-wave/backend/internal/transport/http/middleware"
	"github.com/social-wave/backend/pkg/httputil"

	"github.com/go-chi/chi/v5"
	middlewareChi "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type RouterConfig struct {
	AllowedOrigins     []string
	RequestTimeout     time.Duration
	RateLimitPerMinute int
}

func NewRouter(ih *IdentityHandler, dh *DirectoryHandler, ch *ChatHandler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewareChi.RealIP)
	r.Use(middlewareChi.Recoverer)
	r.Use(middlewareChi.Compress(5))
	if cfg.RequestTimeout > 0 {
		r.Use(middlewareChi.Timeout(cfg.RequestTimeout))
	}
	r.Use(httputil.MiddlewareRequestID)
	r.Use(httputil.MiddlewareLogging)

	if cfg.RateLimitPerMinute > 0 {
		limiter := httpmw.NewLimiterStore(cfg.RateLimitPerMinute, 0, time.Minute)
		r.Use(limiter.RateLimit)
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID", "X-User-Id"},
		MaxAge:         86400,
	}))

	// Неподдерживаемый метод — тот же envelope, что и остальные ошибки.
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeMethodNotAllowed(w)
	})

	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/", ih.Post)
		ar.Put("/", ih.UpdateProfile)
		ar.Get("/", ih.GetUser)
	})

	r.Get("/users", dh.ListUsers)

	r.Route("/chats", func(cr chi.Router) {
		cr.Post("/", ch.Post)
		cr.Get("/", ch.Get)
	})

	// health
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
