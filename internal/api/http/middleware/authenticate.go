package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	apiErrors "github.com/dtroode/todo-server/internal/errors"
	"github.com/dtroode/todo-server/internal/logger"
	"github.com/dtroode/todo-server/internal/model"
)

const bearerScheme = "Bearer"

// TokenParser verifies bearer tokens.
type TokenParser interface {
	ParseToken(token string) (model.Identity, error)
}

// AccountLookup resolves a user by id.
type AccountLookup interface {
	GetByID(ctx context.Context, id uint) (model.User, error)
}

// Authenticate validates bearer tokens and injects the identity into the
// request context. When accounts is set, the token's user must still exist.
type Authenticate struct {
	tokenParser    TokenParser
	accounts       AccountLookup
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance. A nil
// accounts skips the account existence check.
func NewAuthenticate(
	tokenParser TokenParser,
	accounts AccountLookup,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Authenticate {
	return &Authenticate{
		tokenParser:    tokenParser,
		accounts:       accounts,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle is a chi-compatible middleware.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := m.authenticate(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			m.reject(w, r, err)
			return
		}

		ctx := m.contextManager.SetIdentityToContext(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) authenticate(ctx context.Context, header string) (model.Identity, error) {
	scheme, tokenString, _ := strings.Cut(strings.TrimSpace(header), " ")
	tokenString = strings.TrimSpace(tokenString)
	if !strings.EqualFold(scheme, bearerScheme) || tokenString == "" {
		return model.Identity{}, apiErrors.NewErrMissingAuthorizationToken()
	}

	identity, err := m.tokenParser.ParseToken(tokenString)
	if err != nil || identity.UserID == 0 {
		return model.Identity{}, apiErrors.NewErrInvalidAuthorizationToken()
	}

	if m.accounts == nil {
		return identity, nil
	}

	_, err = m.accounts.GetByID(ctx, identity.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Identity{}, apiErrors.NewErrAccountGone()
	}
	if err != nil {
		return model.Identity{}, apiErrors.NewErrInternalServerError(err)
	}

	return identity, nil
}

func (m *Authenticate) reject(w http.ResponseWriter, r *http.Request, err error) {
	apiErr, ok := apiErrors.As(err)
	if !ok {
		apiErr = apiErrors.NewErrInternalServerError(err)
	}

	if apiErr.HTTPCode >= http.StatusInternalServerError {
		m.logger.Error("Authenticate middleware: account lookup failed",
			"path", r.URL.Path,
			"error", err.Error())
	} else {
		m.logger.Debug("Authenticate middleware: request rejected",
			"path", r.URL.Path,
			"status", apiErr.HTTPCode)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(apiErr.HTTPCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": apiErr.Message})
}
