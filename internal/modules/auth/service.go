package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"
	jwtsvc "github.com/RamadhaniRO/voya-travel-platform/internal/pkg/jwt"
	"github.com/RamadhaniRO/voya-travel-platform/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	users *repository.UserRepository
	jwt   *jwtsvc.Service
}

func NewService(users *repository.UserRepository, jwt *jwtsvc.Service) *Service {
	return &Service{users: users, jwt: jwt}
}

func (s *Service) SignUp(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := domain.RoleTraveler
	if req.Role == string(domain.RoleHost) {
		role = domain.RoleHost
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		Phone:        req.Phone,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: user}, nil
}

func (s *Service) SignIn(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: user}, nil
}

// CurrentUser resolves the profile for a validated token. A token whose
// profile row is missing gets one created from the claims, so first login
// after an import still lands on a profile.
func (s *Service) CurrentUser(ctx context.Context, claims *jwtsvc.Claims) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &domain.User{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  domain.UserRole(claims.Role),
	}
	if created.Role == "" {
		created.Role = domain.RoleTraveler
	}
	if err := s.users.Create(ctx, created); err != nil {
		if isUniqueViolation(err) {
			return s.users.GetByID(ctx, claims.UserID)
		}
		return nil, err
	}
	return created, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if len(updates) == 0 {
		return s.users.GetByID(ctx, userID)
	}
	return s.users.Update(ctx, userID, updates)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// sqlite reports constraint failures by message only
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
