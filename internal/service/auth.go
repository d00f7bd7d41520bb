package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	apiErrors "github.com/dtroode/todo-server/internal/errors"
	"github.com/dtroode/todo-server/internal/logger"
	"github.com/dtroode/todo-server/internal/model"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// dummyPassword is hashed once and compared against when the login email is
// unknown, so both failure paths cost one bcrypt comparison.
const dummyPassword = "todo-server-dummy-password"

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.User, error) {
	if params.Email == "" || params.Password == "" {
		return model.User{}, apiErrors.NewErrCredentialsRequired()
	}
	if !emailPattern.MatchString(params.Email) {
		return model.User{}, apiErrors.NewErrInvalidEmailFormat()
	}
	if len(params.Password) > model.MaxPasswordBytes {
		return model.User{}, apiErrors.NewErrPasswordTooLong()
	}

	a.logger.Debug("Auth service: registering user",
		"email", params.Email)

	_, err := a.userStore.GetByEmail(ctx, params.Email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"email", params.Email)
		return model.User{}, apiErrors.NewErrEmailIsTaken()
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Email:     params.Email,
		Name:      params.Name,
		Password:  hash,
		CreatedAt: time.Now(),
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		a.logger.Info("Auth service: user created concurrently",
			"email", params.Email)
		return model.User{}, apiErrors.NewErrEmailIsTaken()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", user.ID)

	return user, nil
}

func (a *Auth) Login(ctx context.Context, email, password string) (model.Session, error) {
	if email == "" || password == "" {
		return model.Session{}, apiErrors.NewErrCredentialsRequired()
	}

	if len(password) > model.MaxPasswordBytes {
		return model.Session{}, apiErrors.NewErrInvalidCredentials()
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.compareDummy(password)
		a.logger.Info("Auth service: login for unknown email")
		return model.Session{}, apiErrors.NewErrInvalidCredentials()
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	ok, err := a.hasher.Compare(user.Password, password)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to compare password: %w", err)
	}
	if !ok {
		a.logger.Info("Auth service: wrong password",
			"user_id", user.ID)
		return model.Session{}, apiErrors.NewErrInvalidCredentials()
	}

	token, err := a.tokenManager.GenerateToken(model.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to generate token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return model.Session{User: user, Token: token}, nil
}

func (a *Auth) compareDummy(password string) {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Error("Auth service: failed to hash dummy password",
				"error", err.Error())
			return
		}
		a.dummyHash = hash
	})
	if a.dummyHash == "" {
		return
	}
	_, _ = a.hasher.Compare(a.dummyHash, password)
}
