package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/RamadhaniRO/voya-travel-platform/internal/database"
	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"
	"github.com/RamadhaniRO/voya-travel-platform/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decliningGateway struct{}

func (decliningGateway) Authorize(context.Context, float64, string, string) (GatewayResult, error) {
	return GatewayResult{}, errors.New("insufficient funds")
}

func newTestRepo(t *testing.T) *repository.PaymentRepository {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Payment{}))
	return repository.NewPaymentRepository(db)
}

func TestChargeSettlesCompletedPayment(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewService(repo, NewStubGateway())

	p, err := svc.Charge(context.Background(), 42, 480, "USD", "card")
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentCompleted, p.Status)
	assert.Equal(t, int64(42), p.BookingID)
	assert.Equal(t, 480.0, p.Amount)
	assert.Contains(t, p.PaymentIntentID, "pi_")
	assert.Contains(t, p.TransactionID, "txn_")
}

func TestChargeDefaultsCurrencyAndMethod(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewService(repo, NewStubGateway())

	p, err := svc.Charge(context.Background(), 42, 100, "", "")
	require.NoError(t, err)
	assert.Equal(t, "USD", p.Currency)
	assert.Equal(t, "card", p.Method)
}

func TestChargeRejectsNonPositiveAmount(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewService(repo, NewStubGateway())

	_, err := svc.Charge(context.Background(), 42, 0, "USD", "card")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestChargeRecordsDecline(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewService(repo, decliningGateway{})

	_, err := svc.Charge(context.Background(), 42, 480, "USD", "card")
	assert.ErrorIs(t, err, ErrDeclined)

	rows, err := repo.GetByBooking(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.PaymentFailed, rows[0].Status)
	assert.Equal(t, "insufficient funds", rows[0].FailureReason)
}

func TestMarkCompletedIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)

	p := &domain.Payment{BookingID: 42, Amount: 10, Currency: "USD", Method: "card", Status: domain.PaymentProcessing}
	require.NoError(t, repo.Create(context.Background(), p))

	changed, err := repo.MarkCompleted(context.Background(), p.ID, "pi_a", "txn_a")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.MarkCompleted(context.Background(), p.ID, "pi_b", "txn_b")
	require.NoError(t, err)
	assert.False(t, changed, "settled payment must not change again")

	stored, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "pi_a", stored.PaymentIntentID)
}
