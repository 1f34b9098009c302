package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"induparts-system/internal/apperr"
	"induparts-system/internal/auth"
)

type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ChangePassword(ctx context.Context, actor auth.Actor, current, newPassword, confirm string) error
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Actor     auth.Actor
}

type service struct {
	users    auth.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewService(users auth.UserRepository, secret []byte, tokenTTL time.Duration) Service {
	return &service{users: users, secret: secret, tokenTTL: tokenTTL}
}

func (s *service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}
	if !auth.ValidEmail(email) {
		return nil, apperr.Validation("invalid email address")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Authorization("incorrect password")
	}

	role, ok := auth.ParseRole(user.Role)
	if !ok {
		return nil, apperr.Authorization("user has no recognized role")
	}

	actor := auth.Actor{UserID: user.ID, Name: user.Name, Role: role}
	token, exp, err := auth.GenerateToken(s.secret, actor, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, ExpiresAt: exp, Actor: actor}, nil
}

func (s *service) ChangePassword(ctx context.Context, actor auth.Actor, current, newPassword, confirm string) error {
	if current == "" || newPassword == "" || confirm == "" {
		return apperr.Validation("all password fields are required")
	}
	if newPassword != confirm {
		return apperr.Validation("new passwords do not match")
	}
	if !auth.ValidPassword(newPassword) {
		return apperr.Validation("new password does not meet the policy")
	}

	user, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("user not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return apperr.Authorization("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, user.ID, string(hash))
}
