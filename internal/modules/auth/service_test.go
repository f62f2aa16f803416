package auth

import (
	"context"
	"testing"
	"time"

	"github.com/RamadhaniRO/voya-travel-platform/internal/database"
	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"
	jwtsvc "github.com/RamadhaniRO/voya-travel-platform/internal/pkg/jwt"
	"github.com/RamadhaniRO/voya-travel-platform/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	users := repository.NewUserRepository(db)
	return NewService(users, jwtsvc.New("test-secret", time.Hour))
}

func TestSignUpAndSignIn(t *testing.T) {
	svc := newTestService(t)

	signedUp, err := svc.SignUp(context.Background(), RegisterRequest{
		Email:     "Tom@Example.com",
		Password:  "password123",
		FirstName: "Tom",
		LastName:  "Reed",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, signedUp.Token)
	assert.Equal(t, "tom@example.com", signedUp.User.Email)
	assert.Equal(t, domain.RoleTraveler, signedUp.User.Role)
	assert.NotEqual(t, "password123", signedUp.User.PasswordHash, "password must never be stored in clear")

	signedIn, err := svc.SignIn(context.Background(), LoginRequest{
		Email:    "tom@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, signedUp.User.ID, signedIn.User.ID)
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	req := RegisterRequest{Email: "tom@example.com", Password: "password123"}
	_, err := svc.SignUp(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestSignUpHonorsHostRole(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.SignUp(context.Background(), RegisterRequest{
		Email:    "host@example.com",
		Password: "password123",
		Role:     "host",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleHost, res.User.Role)

	// Unknown roles fall back to traveler; nobody self-registers as admin.
	res, err = svc.SignUp(context.Background(), RegisterRequest{
		Email:    "sneaky@example.com",
		Password: "password123",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleTraveler, res.User.Role)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SignUp(context.Background(), RegisterRequest{
		Email: "tom@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.SignIn(context.Background(), LoginRequest{Email: "tom@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUserCreatesMissingProfile(t *testing.T) {
	svc := newTestService(t)

	claims := &jwtsvc.Claims{UserID: 77, Email: "imported@example.com", Role: "traveler"}
	user, err := svc.CurrentUser(context.Background(), claims)
	require.NoError(t, err)
	assert.Equal(t, int64(77), user.ID)
	assert.Equal(t, "imported@example.com", user.Email)

	// Second call finds the created row instead of inserting again.
	again, err := svc.CurrentUser(context.Background(), claims)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestUpdateProfilePatchesOnlyProvidedFields(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.SignUp(context.Background(), RegisterRequest{
		Email: "tom@example.com", Password: "password123", FirstName: "Tom", LastName: "Reed",
	})
	require.NoError(t, err)

	phone := "+255700000000"
	updated, err := svc.UpdateProfile(context.Background(), res.User.ID, UpdateProfileRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, "Tom", updated.FirstName, "unspecified fields stay put")

	same, err := svc.UpdateProfile(context.Background(), res.User.ID, UpdateProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, updated.Phone, same.Phone)
}
