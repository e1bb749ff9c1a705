package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/mro/internal/entity"
)

func (s *Service) Login(ctx context.Context, in entity.LoginInput) (entity.AccessToken, error) {
	err := validateInput(in)
	if err != nil {
		return entity.AccessToken{}, err
	}

	u, err := s.repo.UserByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.AccessToken{}, entity.ErrInvalidCredentials
		}

		return entity.AccessToken{}, fmt.Errorf("get user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password))
	if err != nil {
		return entity.AccessToken{}, entity.ErrInvalidCredentials
	}

	token, err := s.issueToken(u.ID, time.Now())
	if err != nil {
		return entity.AccessToken{}, err
	}

	s.record(ctx, u.Principal(), entity.ActionLogin, entity.ResourceSession, u.ID, u.Email, nil)

	return token, nil
}

func (s *Service) issueToken(userID uuid.UUID, now time.Time) (entity.AccessToken, error) {
	exp := now.Add(s.auth.AccessTokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.auth.JWTSecret))
	if err != nil {
		return entity.AccessToken{}, fmt.Errorf("sign token: %w", err)
	}

	return entity.AccessToken{AccessToken: signed, ExpiresAt: exp}, nil
}

// Authenticate turns a bearer token into the principal of its user. Any failure is ErrUnauthenticated.
func (s *Service) Authenticate(ctx context.Context, token string) (entity.Principal, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (any, error) {
		return []byte(s.auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		slog.DebugContext(ctx, "invalid access token", "error", err)
		return entity.Principal{}, entity.ErrUnauthenticated
	}

	userID, err := uuid.FromString(claims.Subject)
	if err != nil {
		return entity.Principal{}, entity.ErrUnauthenticated
	}

	u, err := s.repo.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Principal{}, entity.ErrUnauthenticated
		}

		return entity.Principal{}, fmt.Errorf("get user: %w", err)
	}

	return u.Principal(), nil
}

func (s *Service) Me(ctx context.Context) (entity.Principal, error) {
	return entity.PrincipalFromContext(ctx)
}

// CompanyUsers lists the users of the principal's company. Admins and managers only.
func (s *Service) CompanyUsers(ctx context.Context) ([]entity.User, error) {
	p, err := entity.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if p.Privilege != entity.PrivilegeAdmin && p.Privilege != entity.PrivilegeManager {
		return nil, entity.ErrForbidden
	}

	users, err := s.repo.CompanyUsers(ctx, p.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}
