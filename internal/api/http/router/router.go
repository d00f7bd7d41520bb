package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dtroode/todo-server/internal/api/http/handler"
	"github.com/dtroode/todo-server/internal/api/http/middleware"
	"github.com/dtroode/todo-server/internal/logger"
	"github.com/dtroode/todo-server/internal/model"
)

const (
	authBasePath  = "/api/auth"
	usersBasePath = "/api/users"
	todosBasePath = "/api/todos"
	healthPath    = "/healthz"
)

// Options holds router settings that are not dependencies.
type Options struct {
	// MaxBodyBytes caps request bodies; zero disables the limit.
	MaxBodyBytes int64
	// AllowedOrigins enables CORS for the listed origins; empty disables it.
	AllowedOrigins []string
}

// Router wires handlers and middleware into an http.Handler.
type Router struct {
	authService    handler.AuthService
	userService    handler.UserService
	todoService    handler.TodoService
	tokenParser    middleware.TokenParser
	accounts       middleware.AccountLookup
	healthChecker  model.HealthChecker
	contextManager model.ContextManager
	logger         *logger.Logger
	options        Options
}

// New creates new Router instance. A nil accounts disables the per-request
// account existence check.
func New(
	authService handler.AuthService,
	userService handler.UserService,
	todoService handler.TodoService,
	tokenParser middleware.TokenParser,
	accounts middleware.AccountLookup,
	healthChecker model.HealthChecker,
	contextManager model.ContextManager,
	logger *logger.Logger,
	options Options,
) *Router {
	return &Router{
		authService:    authService,
		userService:    userService,
		todoService:    todoService,
		tokenParser:    tokenParser,
		accounts:       accounts,
		healthChecker:  healthChecker,
		contextManager: contextManager,
		logger:         logger,
		options:        options,
	}
}

// Register builds the routing tree.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenParser, r.accounts, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(logging.Handle)
	mux.Use(chimiddleware.Recoverer)
	if r.options.MaxBodyBytes > 0 {
		mux.Use(chimiddleware.RequestSize(r.options.MaxBodyBytes))
	}
	if len(r.options.AllowedOrigins) > 0 {
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins: r.options.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:         int((5 * time.Minute).Seconds()),
		}))
	}

	mux.NotFound(notFound)
	mux.MethodNotAllowed(methodNotAllowed)

	healthHandler := handler.NewHealth(r.healthChecker, r.logger)
	mux.Get(healthPath, healthHandler.Check)

	r.registerAuthRoutes(mux)
	mux.Group(func(private chi.Router) {
		private.Use(authenticate.Handle)
		r.registerUserRoutes(private)
		r.registerTodoRoutes(private)
	})

	return mux
}

func (r *Router) registerAuthRoutes(mux chi.Router) {
	authHandler := handler.NewAuth(r.authService, r.logger)
	mux.Route(authBasePath, func(auth chi.Router) {
		auth.Post("/register", authHandler.Register)
		auth.Post("/login", authHandler.Login)
	})
}

func (r *Router) registerUserRoutes(mux chi.Router) {
	userHandler := handler.NewUser(r.userService, r.contextManager, r.logger)
	mux.Route(usersBasePath, func(users chi.Router) {
		users.Get("/profile", userHandler.Profile)
		users.Put("/password", userHandler.UpdatePassword)
		users.Delete("/delete-account", userHandler.DeleteAccount)
	})
}

func (r *Router) registerTodoRoutes(mux chi.Router) {
	todoHandler := handler.NewTodo(r.todoService, r.contextManager, r.logger)
	mux.Route(todosBasePath, func(todos chi.Router) {
		todos.Get("/", todoHandler.List)
		todos.Post("/", todoHandler.Create)
		todos.Put("/{"+handler.TodoIDParam+"}", todoHandler.Update)
		todos.Delete("/{"+handler.TodoIDParam+"}", todoHandler.Delete)
	})
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(`{"message":"Not found"}`))
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusMethodNotAllowed)
	_, _ = w.Write([]byte(`{"message":"Method not allowed"}`))
}
