package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/kebabmane/toDo/docs"
	"github.com/kebabmane/toDo/internal/handlers"
	"github.com/kebabmane/toDo/internal/metrics"
	"github.com/kebabmane/toDo/internal/middlewares"
)

// AuthService serves the /auth routes.
type AuthService interface {
	handlers.Registerer
	handlers.Loginer
	handlers.MeGetter
	handlers.PasswordResetter
}

// Services groups the application services behind the HTTP API.
type Services struct {
	Auth      AuthService
	Todos     handlers.TodoManager
	Lists     handlers.TodoListManager
	ListTodos handlers.ListTodoManager
	Users     handlers.UserManager
}

type options struct {
	limiter    middlewares.Limiter
	limit      int64
	version    string
	swaggerURL string
}

// Option configures the router.
type Option func(*options)

// WithRateLimit enables per-client rate limiting.
func WithRateLimit(limiter middlewares.Limiter, limit int64) Option {
	return func(o *options) {
		o.limiter = limiter
		o.limit = limit
	}
}

// WithVersion sets the version reported by the index route.
func WithVersion(version string) Option {
	return func(o *options) { o.version = version }
}

// WithSwaggerURL sets the location of the OpenAPI document served to the UI.
func WithSwaggerURL(url string) Option {
	return func(o *options) { o.swaggerURL = url }
}

// NewRouter assembles the HTTP API. Every API request runs inside its own
// transaction; protected routes authenticate before the transaction is opened.
func NewRouter(db *sqlx.DB, tokener middlewares.Tokener, svc Services, opts ...Option) *chi.Mux {
	o := &options{version: "1.0.0", swaggerURL: "/swagger/doc.json"}
	for _, opt := range opts {
		opt(o)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.RecovererMiddleware)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(metrics.HTTPMetricsMiddleware)
	if o.limiter != nil {
		r.Use(middlewares.RateLimitMiddleware(o.limiter, o.limit))
	}

	// Must be registered before any subrouter is mounted so that they inherit them.
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/", newIndexHandler(o.version))
	r.Get("/healthz", newHealthHandler(db))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(o.swaggerURL)))

	tx := middlewares.TxMiddleware(db)
	auth := middlewares.AuthMiddleware(tokener)

	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(tx)
			r.Post("/register", handlers.NewRegisterHandler(svc.Auth))
			r.Post("/login", handlers.NewLoginHandler(svc.Auth))
			r.Post("/request-password-reset", handlers.NewRequestPasswordResetHandler(svc.Auth))
			r.Post("/reset-password", handlers.NewResetPasswordHandler(svc.Auth))
		})
		r.With(auth, tx).Get("/me", handlers.NewMeHandler(svc.Auth))
	})

	r.Group(func(r chi.Router) {
		r.Use(auth, tx)

		r.Route("/todos", func(r chi.Router) {
			r.Get("/", handlers.NewGetTodosHandler(svc.Todos))
			r.Post("/", handlers.NewCreateTodoHandler(svc.Todos))
			r.Get("/stats", handlers.NewTodoStatsHandler(svc.Todos))
			r.Put("/reorder", handlers.NewReorderTodosHandler(svc.Todos))
			r.Get("/{id}", handlers.NewGetTodoHandler(svc.Todos))
			r.Put("/{id}", handlers.NewUpdateTodoHandler(svc.Todos))
			r.Delete("/{id}", handlers.NewDeleteTodoHandler(svc.Todos))
		})

		r.Route("/todolists", func(r chi.Router) {
			r.Get("/", handlers.NewGetTodoListsHandler(svc.Lists))
			r.Post("/", handlers.NewCreateTodoListHandler(svc.Lists))

			r.Route("/{listID}", func(r chi.Router) {
				r.Get("/", handlers.NewGetTodoListHandler(svc.Lists))
				r.Put("/", handlers.NewUpdateTodoListHandler(svc.Lists))
				r.Delete("/", handlers.NewDeleteTodoListHandler(svc.Lists))

				r.Route("/todos", func(r chi.Router) {
					r.Get("/", handlers.NewGetListTodosHandler(svc.ListTodos))
					r.Post("/", handlers.NewCreateListTodoHandler(svc.ListTodos))
					r.Put("/reorder", handlers.NewReorderListTodosHandler(svc.ListTodos))
					r.Get("/{id}", handlers.NewGetListTodoHandler(svc.ListTodos))
					r.Put("/{id}", handlers.NewUpdateListTodoHandler(svc.ListTodos))
					r.Delete("/{id}", handlers.NewDeleteListTodoHandler(svc.ListTodos))
				})
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", handlers.NewGetUsersHandler(svc.Users))
			r.Get("/{id}", handlers.NewGetUserHandler(svc.Users))
			r.Put("/{id}", handlers.NewUpdateUserHandler(svc.Users))
			r.Delete("/{id}", handlers.NewDeleteUserHandler(svc.Users))
			r.Post("/{id}/reset-password", handlers.NewResetUserPasswordHandler(svc.Users))
		})
	})

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Endpoint not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
