// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/webbooks/internal/platform/apperr"
	"github.com/taibuivan/webbooks/internal/platform/ctxutil"
	"github.com/taibuivan/webbooks/internal/platform/dberr"
	"github.com/taibuivan/webbooks/internal/platform/sec"
)

// # Test Doubles

type memoryUsers struct {
	mu    sync.Mutex
	users map[string]*User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: make(map[string]*User)}
}

func (m *memoryUsers) FindByID(_ context.Context, id string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return nil, dberr.ErrNotFound
}

func (m *memoryUsers) FindByLogin(_ context.Context, login string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Username == login || user.Email == login {
			return user, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (m *memoryUsers) Count(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users), nil
}

func (m *memoryUsers) Create(_ context.Context, user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == user.Username {
			return apperr.Conflict("Username is already taken")
		}
		if existing.Email == user.Email {
			return apperr.Conflict("Email is already registered")
		}
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *memoryUsers) UpdateRole(_ context.Context, id string, role sec.UserRole) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return dberr.ErrNotFound
	}
	user.Role = role
	return nil
}

func (m *memoryUsers) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

type stubTokens struct {
	err error
}

func (s stubTokens) GenerateAccessToken(userID, _, role string, _ time.Duration) (string, error) {
	return "token-" + userID + "-" + role, s.err
}

func newTestService(tokens TokenProvider) (*Service, *memoryUsers) {
	users := newMemoryUsers()
	return NewService(users, tokens, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil))), users
}

func register(t *testing.T, service *Service, username string) *User {
	t.Helper()
	user, err := service.Register(context.Background(), RegisterInput{
		Username: username,
		Email:    username + "@library.test",
		Password: "correct horse",
	})
	require.NoError(t, err)
	return user
}

// # Registration

/*
TestService_Register_FirstUserIsAdmin verifies the bootstrap role assignment.
*/
func TestService_Register_FirstUserIsAdmin(t *testing.T) {
	service, _ := newTestService(stubTokens{})

	first := register(t, service, "librarian")
	second := register(t, service, "reader")

	assert.Equal(t, sec.RoleAdmin, first.Role)
	assert.Equal(t, sec.RoleMember, second.Role)
	assert.NotEqual(t, "correct horse", second.PasswordHash)
}

func TestService_Register_Normalizes(t *testing.T) {
	service, _ := newTestService(stubTokens{})

	user, err := service.Register(context.Background(), RegisterInput{
		Username: "  Alice ", Email: "Alice@Library.TEST", Password: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@library.test", user.Email)
}

func TestService_Register_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     RegisterInput
		wantField string
	}{
		{"Short username", RegisterInput{Username: "al", Email: "al@x.test", Password: "correct horse"}, FieldUsername},
		{"Username with at sign", RegisterInput{Username: "al@x", Email: "al@x.test", Password: "correct horse"}, FieldUsername},
		{"Bad email", RegisterInput{Username: "alice", Email: "alice", Password: "correct horse"}, FieldEmail},
		{"Short password", RegisterInput{Username: "alice", Email: "al@x.test", Password: "short"}, FieldPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, users := newTestService(stubTokens{})

			_, err := service.Register(context.Background(), tt.input)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantField, appErr.Details[0].Field)
			assert.Empty(t, users.users)
		})
	}
}

func TestService_Register_Duplicate(t *testing.T) {
	service, _ := newTestService(stubTokens{})
	register(t, service, "alice")

	_, err := service.Register(context.Background(), RegisterInput{
		Username: "ALICE", Email: "other@library.test", Password: "correct horse",
	})

	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
}

// # Login

func TestService_Login(t *testing.T) {
	service, _ := newTestService(stubTokens{})
	user := register(t, service, "alice")

	tests := []struct {
		name     string
		input    LoginInput
		wantCode string
	}{
		{"By username", LoginInput{Login: "Alice", Password: "correct horse"}, ""},
		{"By email", LoginInput{Login: "alice@library.test", Password: "correct horse"}, ""},
		{"Wrong password", LoginInput{Login: "alice", Password: "battery staple"}, apperr.CodeUnauthorized},
		{"Unknown login", LoginInput{Login: "bob", Password: "correct horse"}, apperr.CodeUnauthorized},
		{"Missing password", LoginInput{Login: "alice"}, apperr.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := service.Login(context.Background(), tt.input)

			if tt.wantCode != "" {
				assert.True(t, apperr.HasCode(err, tt.wantCode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token-"+user.ID+"-admin", session.AccessToken)
			assert.Equal(t, TokenType, session.TokenType)
			assert.Equal(t, 3600, session.ExpiresIn)
		})
	}
}

func TestService_Login_SigningFailure(t *testing.T) {
	service, _ := newTestService(stubTokens{err: errors.New("no key")})
	register(t, service, "alice")

	_, err := service.Login(context.Background(), LoginInput{Login: "alice", Password: "correct horse"})

	assert.True(t, apperr.HasCode(err, apperr.CodeInternal))
}

// # Account Management

func TestService_ChangeRoleAndDelete(t *testing.T) {
	service, users := newTestService(stubTokens{})
	ctx := context.Background()
	admin := register(t, service, "admin")
	member := register(t, service, "reader")

	require.NoError(t, service.ChangeRole(ctx, admin.ID, member.ID, sec.RoleLibrarian))
	assert.Equal(t, sec.RoleLibrarian, users.users[member.ID].Role)

	assert.True(t, apperr.HasCode(service.ChangeRole(ctx, admin.ID, member.ID, "owner"), apperr.CodeValidation))
	assert.True(t, apperr.HasCode(service.ChangeRole(ctx, admin.ID, admin.ID, sec.RoleMember), apperr.CodeForbidden))
	assert.True(t, apperr.HasCode(service.DeleteUser(ctx, admin.ID, admin.ID), apperr.CodeForbidden))

	require.NoError(t, service.DeleteUser(ctx, admin.ID, member.ID))
	assert.NotContains(t, users.users, member.ID)

	err := service.DeleteUser(ctx, admin.ID, member.ID)
	assert.Equal(t, "User not found", apperr.As(err).Message)
}

// # Handlers

func withClaims(request *http.Request, user *User) *http.Request {
	claims := &sec.AuthClaims{UserID: user.ID, Username: user.Username, Role: string(user.Role)}
	return request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
}

func TestHandler_RegisterAndMe(t *testing.T) {
	service, _ := newTestService(stubTokens{})
	router := NewHandler(service).Routes()

	body := `{"username":"alice","email":"alice@library.test","password":"correct horse"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "correct horse")
	assert.NotContains(t, recorder.Body.String(), "password")

	anonymous := httptest.NewRecorder()
	router.ServeHTTP(anonymous, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)
}

func TestHandler_UserRoutesRequireAdmin(t *testing.T) {
	service, _ := newTestService(stubTokens{})
	admin := register(t, service, "admin")
	member := register(t, service, "reader")
	router := NewHandler(service).UserRoutes()

	tests := []struct {
		name     string
		caller   *User
		target   string
		wantCode int
	}{
		{"Member is forbidden", member, "/" + admin.ID, http.StatusForbidden},
		{"Malformed id", admin, "/not-a-uuid", http.StatusNotFound},
		{"Admin deletes member", admin, "/" + member.ID, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := withClaims(httptest.NewRequest(http.MethodDelete, tt.target, nil), tt.caller)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}
