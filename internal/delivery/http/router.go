package http

import (
	"log/slog"
	"net/http"

	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterConfig carries the dependencies of the HTTP API.
type RouterConfig struct {
	Logger             *slog.Logger
	Events             domain.EventService
	Categories         domain.CategoryService
	Users              domain.UserService
	TokenVerifier      domain.TokenVerifier
	UserWebhookSecret  string
	CORSAllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes and
// wraps it in the metrics, logging and CORS middleware.
func NewRouter(cfg RouterConfig) http.Handler {
	events := controllers.NewEventController(cfg.Events)
	categories := controllers.NewCategoryController(cfg.Categories)
	users := controllers.NewUserController(cfg.Logger, cfg.Users)

	auth := middleware.RequireAuth(cfg.TokenVerifier, cfg.Logger)
	registered := middleware.RequireRegisteredUser(cfg.Users)
	// member guards writes: a valid token whose subject was never synced is refused.
	member := func(next http.HandlerFunc) http.HandlerFunc {
		return auth(registered(next))
	}
	webhook := middleware.RequireWebhookSecret(cfg.UserWebhookSecret, cfg.Logger)

	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /events", events.ListEvents)
	mux.HandleFunc("POST /events", member(events.CreateEvent))
	mux.HandleFunc("GET /events/{eventID}", events.GetEventByID)
	mux.HandleFunc("PUT /events/{eventID}", member(events.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", member(events.DeleteEvent))

	// Categories
	mux.HandleFunc("GET /categories", categories.ListCategories)
	mux.HandleFunc("POST /categories", member(categories.CreateCategory))
	mux.HandleFunc("GET /categories/{categoryID}/events", events.ListRelatedEvents)

	// Users
	mux.HandleFunc("POST /users", webhook(users.SyncUser))
	mux.HandleFunc("GET /users/{userID}", auth(users.GetUser))
	mux.HandleFunc("GET /users/{userID}/events", events.ListEventsByOrganizer)

	// Operations
	mux.HandleFunc("GET /health", health)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var h http.Handler = mux
	h = middleware.CORS(cfg.CORSAllowedOrigins, h)
	h = middleware.LoggingMiddleware(cfg.Logger, h)
	return middleware.Metrics(h)
}

func health(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
