package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

// permission returns the stored flags of the principal, creating the privilege defaults on first access.
func (s *Service) permission(ctx context.Context, p entity.Principal) (entity.UserPermission, error) {
	return s.permissionOf(ctx, p.CompanyID, p.UserID, p.Privilege)
}

func (s *Service) permissionOf(
	ctx context.Context,
	companyID, userID uuid.UUID,
	privilege entity.Privilege,
) (entity.UserPermission, error) {
	perm, err := s.repo.Permission(ctx, companyID, userID)
	if err == nil {
		return perm, nil
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.UserPermission{}, err
	}

	perm, err = s.repo.CreatePermission(ctx, entity.UserPermission{
		UserID:              userID,
		CompanyID:           companyID,
		UpdatedAt:           time.Now(),
		UserPermissionFlags: entity.DefaultPermissions(privilege),
	})
	if err != nil {
		return entity.UserPermission{}, fmt.Errorf("create default permissions: %w", err)
	}

	return perm, nil
}

func (s *Service) MyPermissions(ctx context.Context) (entity.UserPermission, error) {
	p, err := entity.PrincipalFromContext(ctx)
	if err != nil {
		return entity.UserPermission{}, err
	}

	return s.permission(ctx, p)
}

// UserPermissions is readable by admins and by the user themselves.
func (s *Service) UserPermissions(ctx context.Context, userID uuid.UUID) (entity.UserPermission, error) {
	p, err := entity.PrincipalFromContext(ctx)
	if err != nil {
		return entity.UserPermission{}, err
	}

	if userID == p.UserID {
		return s.permission(ctx, p)
	}

	if !p.IsAdmin() {
		return entity.UserPermission{}, entity.ErrForbidden
	}

	u, err := s.repo.CompanyUser(ctx, p.CompanyID, userID)
	if err != nil {
		return entity.UserPermission{}, fmt.Errorf("get user: %w", err)
	}

	return s.permissionOf(ctx, u.CompanyID, u.ID, u.Privilege)
}

// UpdateUserPermissions replaces every flag of another user of the same company.
func (s *Service) UpdateUserPermissions(
	ctx context.Context,
	userID uuid.UUID,
	in entity.UpdateUserPermissionInput,
) (entity.UserPermission, error) {
	p, err := requireAdmin(ctx)
	if err != nil {
		return entity.UserPermission{}, err
	}

	if userID == p.UserID {
		return entity.UserPermission{}, fmt.Errorf("%w: own permissions cannot be changed", entity.ErrForbidden)
	}

	u, err := s.repo.CompanyUser(ctx, p.CompanyID, userID)
	if err != nil {
		return entity.UserPermission{}, fmt.Errorf("get user: %w", err)
	}

	perm, err := s.permissionOf(ctx, u.CompanyID, u.ID, u.Privilege)
	if err != nil {
		return entity.UserPermission{}, err
	}

	previous := perm.UserPermissionFlags

	perm.UserPermissionFlags = in.UserPermissionFlags
	perm.UpdatedBy = uuid.NullUUID{UUID: p.UserID, Valid: true}
	perm.UpdatedAt = time.Now()

	err = s.repo.UpdatePermission(ctx, perm)
	if err != nil {
		return entity.UserPermission{}, fmt.Errorf("update permissions: %w", err)
	}

	s.record(ctx, p, entity.ActionPermissionUpdate, entity.ResourceUserPermission, u.ID, u.Username, map[string]any{
		"previous": previous,
		"new":      perm.UserPermissionFlags,
	})

	return perm, nil
}
