package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RamadhaniRO/voya-travel-platform/internal/database"
	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"
	"github.com/RamadhaniRO/voya-travel-platform/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingProvider struct{}

func (failingProvider) Deliver(context.Context, string, string, string, map[string]any) error {
	return errors.New("smtp down")
}

func TestSendMarksRowSent(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.EmailNotification{}))
	svc := NewService(repository.NewEmailRepository(db), LogProvider{})

	err = svc.SendBookingConfirmation(context.Background(),
		"tom@example.com", "Alfama Rooftop Flat",
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC),
		480)
	require.NoError(t, err)

	var rows []domain.EmailNotification
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.EmailSent, rows[0].Status)
	assert.Equal(t, "booking_confirmation", rows[0].TemplateName)
	assert.NotNil(t, rows[0].SentAt)
}

func TestSendMarksRowFailedOnProviderError(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.EmailNotification{}))
	svc := NewService(repository.NewEmailRepository(db), failingProvider{})

	err = svc.Send(context.Background(), "tom@example.com", "hello", "generic", nil)
	assert.Error(t, err)

	var rows []domain.EmailNotification
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.EmailFailed, rows[0].Status)
	assert.Nil(t, rows[0].SentAt)
}
