// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/webbooks/internal/platform/apperr"
	"github.com/taibuivan/webbooks/internal/platform/dberr"
	"github.com/taibuivan/webbooks/internal/platform/sec"
	"github.com/taibuivan/webbooks/internal/platform/validate"
	"github.com/taibuivan/webbooks/pkg/normalize"
	"github.com/taibuivan/webbooks/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements the account use cases.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
	tokenTTL       time.Duration
	logger         *slog.Logger
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider, tokenTTL time.Duration, logger *slog.Logger) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
		tokenTTL:       tokenTTL,
		logger:         logger,
	}
}

// # Registration Flow

/*
Register validates, hashes, and persists a brand new account.

The first account ever registered becomes the administrator so that a fresh
installation can be managed without touching the database. Everyone after
that starts as a member.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - err: Validation, Conflict (taken identity) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	input.normalize()

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, MinUsernameLength).
		MaxLen(FieldUsername, input.Username, MaxUsernameLength).
		Custom(FieldUsername, strings.Contains(input.Username, "@"), "Usernames cannot contain @")
	validator.Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		MaxLen(FieldEmail, input.Email, MaxEmailLength)
	validator.Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, MinPasswordLength).
		Custom(FieldPassword, len(input.Password) > sec.MaxPasswordBytes, "Maximum 72 bytes")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	existing, err := service.userRepository.Count(context)
	if err != nil {
		return nil, err
	}

	role := sec.RoleMember
	if existing == 0 {
		role = sec.RoleAdmin
	}

	// Prevent storing plain-text passwords.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_hash_failed: %w", err))
	}

	user := &User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_registered", slog.String("user_id", user.ID), slog.String("role", string(user.Role)))
	return user, nil
}

// # Authentication Flow

/*
Login validates credentials and issues an access token.

Unknown logins and wrong passwords produce the same error so accounts cannot
be enumerated.

Returns:
  - *LoginSession: Bearer token and account
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	login := normalize.Identity(input.Login)

	validator := &validate.Validator{}
	validator.Required(FieldLogin, login)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.userRepository.FindByLogin(context, login)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			sec.CheckPasswordHash(input.Password, "")
			return nil, apperr.Unauthorized("Invalid login credentials")
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		service.logger.Warn("login_rejected", slog.String("user_id", user.ID))
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, string(user.Role), service.tokenTTL)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_token_generation_failed: %w", err))
	}

	return &LoginSession{
		AccessToken: accessToken,
		TokenType:   TokenType,
		ExpiresIn:   int(service.tokenTTL.Seconds()),
		User:        user,
	}, nil
}

// # Account Management

// GetUser returns the account with the given id.
func (service *Service) GetUser(context context.Context, id string) (*User, error) {
	user, err := service.userRepository.FindByID(context, id)
	return user, dberr.NotFound(err, "User")
}

/*
ChangeRole grants an account a new role.

An administrator cannot change their own role, which keeps at least the
acting admin in place.
*/
func (service *Service) ChangeRole(context context.Context, actorID, targetID string, role sec.UserRole) error {
	if !role.IsValid() {
		return validate.RequiredError(FieldRole, "Must be one of admin, librarian, member")
	}
	if actorID == targetID {
		return apperr.Forbidden("You cannot change your own role")
	}

	if err := service.userRepository.UpdateRole(context, targetID, role); err != nil {
		return dberr.NotFound(err, "User")
	}

	service.logger.Warn("user_role_changed",
		slog.String("actor_id", actorID),
		slog.String("user_id", targetID),
		slog.String("role", string(role)),
	)
	return nil
}

// DeleteUser removes an account. Copies on loan to it no longer have a borrower.
func (service *Service) DeleteUser(context context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return apperr.Forbidden("You cannot delete your own account")
	}

	if err := service.userRepository.Delete(context, targetID); err != nil {
		return dberr.NotFound(err, "User")
	}

	service.logger.Warn("user_deleted", slog.String("actor_id", actorID), slog.String("user_id", targetID))
	return nil
}
