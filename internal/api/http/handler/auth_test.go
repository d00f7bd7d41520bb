package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apiErrors "github.com/dtroode/todo-server/internal/errors"
	"github.com/dtroode/todo-server/internal/mocks"
	"github.com/dtroode/todo-server/internal/model"
	"github.com/dtroode/todo-server/internal/testutil"
)

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setup      func(svc *mocks.AuthService)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "created",
			body: `{"email":"a@x.io","password":"pw1","name":"Alice"}`,
			setup: func(svc *mocks.AuthService) {
				svc.On("Register", mock.Anything, mock.MatchedBy(func(p model.RegisterParams) bool {
					return p.Email == "a@x.io" && p.Password == "pw1" && p.Name != nil && *p.Name == "Alice"
				})).Return(model.User{ID: 1, Email: "a@x.io", Password: "hash"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate",
			body: `{"email":"a@x.io","password":"pw1"}`,
			setup: func(svc *mocks.AuthService) {
				svc.On("Register", mock.Anything, mock.Anything).Return(model.User{}, apiErrors.NewErrEmailIsTaken())
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "User already exists",
		},
		{
			name:       "malformed body",
			body:       `{"email":`,
			setup:      func(*mocks.AuthService) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request body",
		},
		{
			name: "unexpected failure is hidden",
			body: `{"email":"a@x.io","password":"pw1"}`,
			setup: func(svc *mocks.AuthService) {
				svc.On("Register", mock.Anything, mock.Anything).Return(model.User{}, errors.New("pq: connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			tt.setup(svc)
			h := NewAuth(svc, testutil.MakeNoopLogger())

			rec := httptest.NewRecorder()
			h.Register(rec, newRequest(t, http.MethodPost, "/api/auth/register", tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, contentTypeJSON, rec.Header().Get("Content-Type"))
			body := decodeBody(t, rec)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body["message"])
				return
			}
			assert.Equal(t, "a@x.io", body["email"])
			assert.NotContains(t, body, "password")
		})
	}
}

func TestAuth_Register_EmptyBodyReachesValidation(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("Register", mock.Anything, model.RegisterParams{}).Return(model.User{}, apiErrors.NewErrCredentialsRequired())
	h := NewAuth(svc, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Register(rec, newRequest(t, http.MethodPost, "/api/auth/register", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email and password are required", decodeBody(t, rec)["message"])
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAuthService(t)
		svc.On("Login", mock.Anything, "a@x.io", "pw1").Return(model.Session{
			User:  model.User{ID: 1, Email: "a@x.io", Password: "hash"},
			Token: "signed",
		}, nil)
		h := NewAuth(svc, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Login(rec, newRequest(t, http.MethodPost, "/api/auth/login", `{"email":"a@x.io","password":"pw1"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "signed", body["token"])
		user, ok := body["user"].(map[string]any)
		assert.True(t, ok)
		assert.NotContains(t, user, "password")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAuthService(t)
		svc.On("Login", mock.Anything, "a@x.io", "bad").Return(model.Session{}, apiErrors.NewErrInvalidCredentials())
		h := NewAuth(svc, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Login(rec, newRequest(t, http.MethodPost, "/api/auth/login", `{"email":"a@x.io","password":"bad"}`))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid email or password", decodeBody(t, rec)["message"])
	})
}
