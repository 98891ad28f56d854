package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/example/platterflow/pkg/apperr"
	"github.com/example/platterflow/pkg/models"
	"github.com/example/platterflow/pkg/repository"
)

// AuthService is the access gate: registration with credential policy checks
// and a login that verifies the stored bcrypt hash. No token or session is
// minted; login returns a plain confirmation.
type AuthService struct {
	users      repository.UserRepository
	audit      Auditor
	logger     *zap.Logger
	bcryptCost int
}

func NewAuthService(users repository.UserRepository, audit Auditor, logger *zap.Logger, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, audit: audit, logger: logger, bcryptCost: bcryptCost}
}

// Login verifies credentials. Unknown usernames and wrong passwords are both
// Unauthorized; deactivated accounts are Forbidden.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.Unauthorized, "invalid credentials")
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.New(apperr.Unauthorized, "invalid credentials")
	}

	if !user.IsActive {
		return nil, apperr.New(apperr.Forbidden, "user is inactive")
	}

	return user, nil
}

// Register policy-validates the credentials, rejects taken usernames, and
// stores only the bcrypt hash.
func (s *AuthService) Register(ctx context.Context, username, password, fullName, role string) (*models.User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if fullName == "" {
		return nil, apperr.Field("full_name", "full name is required")
	}
	if !models.KnownRole(role) {
		return nil, apperr.Field("role", "unknown role "+role)
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, apperr.New(apperr.Conflict, "username already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.Internal, "failed to look up user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to hash password", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         role,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user", zap.String("username", username), zap.Error(err))
		return nil, apperr.Wrap(apperr.Internal, "failed to create user", err)
	}

	go s.audit.CreateAuditLog(context.Background(), &repository.AuditLog{
		Service:  "access-gate",
		Action:   "register_user",
		EntityID: auditID("user", user.ID),
		Data:     bson.M{"username": user.Username, "role": user.Role},
	})

	return user, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to list users", err)
	}
	return users, nil
}

// UpdateUser patches full name, password, or active flag. A new password goes
// through the same policy and is re-hashed.
func (s *AuthService) UpdateUser(ctx context.Context, userID uint, fullName, password *string, isActive *bool) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.NotFound, "user %d not found", userID)
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to look up user", err)
	}

	updates := map[string]interface{}{}
	if fullName != nil {
		if *fullName == "" {
			return nil, apperr.Field("full_name", "full name is required")
		}
		updates["full_name"] = *fullName
		user.FullName = *fullName
	}
	if password != nil {
		if err := validatePassword(*password); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), s.bcryptCost)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, "failed to hash password", err)
		}
		updates["password_hash"] = string(hash)
		user.PasswordHash = string(hash)
	}
	if isActive != nil {
		updates["is_active"] = *isActive
		user.IsActive = *isActive
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := s.users.Update(ctx, user, updates); err != nil {
		s.logger.Error("failed to update user", zap.Uint("user_id", userID), zap.Error(err))
		return nil, apperr.Wrap(apperr.Internal, "failed to update user", err)
	}
	return user, nil
}
