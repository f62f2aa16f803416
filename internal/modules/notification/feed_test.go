package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) FetchRecent(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if rows := args.Get(0); rows != nil {
		return rows.([]domain.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) MarkRead(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *mockStore) MarkAllRead(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockStore) Delete(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func notif(id int64, read bool) domain.Notification {
	return domain.Notification{
		ID:        id,
		UserID:    1,
		Type:      domain.NotifBooking,
		Title:     "Booking confirmed",
		Read:      read,
		CreatedAt: time.Now(),
	}
}

// assertCounterInvariant checks that the unread counter equals the number of
// unread entries in the mirror.
func assertCounterInvariant(t *testing.T, f *Feed) {
	t.Helper()
	items, unread := f.Snapshot()
	actual := 0
	for _, n := range items {
		if !n.Read {
			actual++
		}
	}
	assert.Equal(t, actual, unread, "unread counter diverged from mirror")
}

func TestLoadReplacesMirror(t *testing.T) {
	store := new(mockStore)
	store.On("FetchRecent", mock.Anything, int64(1), feedLimit).
		Return([]domain.Notification{notif(3, false), notif(2, true), notif(1, false)}, nil)

	f := NewFeed(1, store)
	require.NoError(t, f.Load(context.Background()))

	items, unread := f.Snapshot()
	assert.Len(t, items, 3)
	assert.Equal(t, 2, unread)
	assertCounterInvariant(t, f)
}

func TestLoadFailureRetainsPreviousMirror(t *testing.T) {
	store := new(mockStore)
	store.On("FetchRecent", mock.Anything, int64(1), feedLimit).
		Return([]domain.Notification{notif(1, false)}, nil).Once()
	store.On("FetchRecent", mock.Anything, int64(1), feedLimit).
		Return(nil, errors.New("store offline")).Once()

	f := NewFeed(1, store)
	require.NoError(t, f.Load(context.Background()))

	err := f.Load(context.Background())
	assert.ErrorIs(t, err, ErrFetch)

	items, unread := f.Snapshot()
	assert.Len(t, items, 1)
	assert.Equal(t, 1, unread)
	assertCounterInvariant(t, f)
}

func TestOnPushPrependsAndDeduplicates(t *testing.T) {
	f := NewFeed(1, new(mockStore))

	f.OnPush(notif(1, false))
	f.OnPush(notif(2, false))
	f.OnPush(notif(1, false)) // redelivery
	f.OnPush(notif(2, false)) // redelivery

	items, unread := f.Snapshot()
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
	assert.Equal(t, int64(1), items[1].ID)
	assert.Equal(t, 2, unread)
	assertCounterInvariant(t, f)
}

func TestOnPushIgnoresOtherUsers(t *testing.T) {
	f := NewFeed(1, new(mockStore))

	other := notif(5, false)
	other.UserID = 2
	f.OnPush(other)

	items, unread := f.Snapshot()
	assert.Empty(t, items)
	assert.Zero(t, unread)
}

func TestMarkReadCommits(t *testing.T) {
	store := new(mockStore)
	store.On("MarkRead", mock.Anything, int64(1), int64(1)).Return(nil)

	f := NewFeed(1, store)
	f.OnPush(notif(1, false))

	require.NoError(t, f.MarkRead(context.Background(), 1))
	items, unread := f.Snapshot()
	assert.True(t, items[0].Read)
	assert.Zero(t, unread)
	assertCounterInvariant(t, f)
}

func TestMarkReadRollsBackOnStoreFailure(t *testing.T) {
	store := new(mockStore)
	store.On("MarkRead", mock.Anything, int64(1), int64(1)).Return(errors.New("store offline"))

	f := NewFeed(1, store)
	f.OnPush(notif(1, false))
	f.OnPush(notif(2, true))

	err := f.MarkRead(context.Background(), 1)
	assert.Error(t, err)

	items, unread := f.Snapshot()
	assert.False(t, items[1].Read, "flip must be rolled back")
	assert.Equal(t, 1, unread)
	assertCounterInvariant(t, f)
}

func TestMarkReadOnReadOrUnknownEntryIsNoop(t *testing.T) {
	store := new(mockStore)

	f := NewFeed(1, store)
	f.OnPush(notif(1, true))

	require.NoError(t, f.MarkRead(context.Background(), 1))
	require.NoError(t, f.MarkRead(context.Background(), 99))
	store.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything, mock.Anything)
	assertCounterInvariant(t, f)
}

func TestMarkAllReadCommits(t *testing.T) {
	store := new(mockStore)
	store.On("MarkAllRead", mock.Anything, int64(1)).Return(nil)

	f := NewFeed(1, store)
	f.OnPush(notif(1, false))
	f.OnPush(notif(2, true))
	f.OnPush(notif(3, false))

	require.NoError(t, f.MarkAllRead(context.Background()))

	items, unread := f.Snapshot()
	for _, n := range items {
		assert.True(t, n.Read)
	}
	assert.Zero(t, unread)
	assertCounterInvariant(t, f)
}

func TestMarkAllReadRollsBackEveryFlip(t *testing.T) {
	store := new(mockStore)
	store.On("MarkAllRead", mock.Anything, int64(1)).Return(errors.New("store offline"))

	f := NewFeed(1, store)
	f.OnPush(notif(1, false))
	f.OnPush(notif(2, true))
	f.OnPush(notif(3, false))

	err := f.MarkAllRead(context.Background())
	assert.Error(t, err)

	items, unread := f.Snapshot()
	assert.False(t, items[0].Read) // id 3
	assert.True(t, items[1].Read)  // id 2 was read before
	assert.False(t, items[2].Read) // id 1
	assert.Equal(t, 2, unread)
	assertCounterInvariant(t, f)
}

func TestMarkAllReadWithNothingUnreadSkipsStore(t *testing.T) {
	store := new(mockStore)

	f := NewFeed(1, store)
	f.OnPush(notif(1, true))

	require.NoError(t, f.MarkAllRead(context.Background()))
	store.AssertNotCalled(t, "MarkAllRead", mock.Anything, mock.Anything)
}

func TestDeleteCommits(t *testing.T) {
	store := new(mockStore)
	store.On("Delete", mock.Anything, int64(2), int64(1)).Return(nil)

	f := NewFeed(1, store)
	f.OnPush(notif(1, true))
	f.OnPush(notif(2, false))
	f.OnPush(notif(3, false))

	require.NoError(t, f.Delete(context.Background(), 2))

	items, unread := f.Snapshot()
	require.Len(t, items, 2)
	assert.Equal(t, int64(3), items[0].ID)
	assert.Equal(t, int64(1), items[1].ID)
	assert.Equal(t, 1, unread)
	assertCounterInvariant(t, f)
}

func TestDeleteRestoresEntryAtOriginalPositionOnFailure(t *testing.T) {
	store := new(mockStore)
	store.On("Delete", mock.Anything, int64(2), int64(1)).Return(errors.New("store offline"))

	f := NewFeed(1, store)
	f.OnPush(notif(1, true))
	f.OnPush(notif(2, false))
	f.OnPush(notif(3, false))

	err := f.Delete(context.Background(), 2)
	assert.Error(t, err)

	items, unread := f.Snapshot()
	require.Len(t, items, 3)
	assert.Equal(t, int64(3), items[0].ID)
	assert.Equal(t, int64(2), items[1].ID)
	assert.Equal(t, int64(1), items[2].ID)
	assert.Equal(t, 2, unread)
	assertCounterInvariant(t, f)
}

func TestDeleteUnknownEntryIsNoop(t *testing.T) {
	store := new(mockStore)

	f := NewFeed(1, store)
	f.OnPush(notif(1, false))

	require.NoError(t, f.Delete(context.Background(), 99))
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	assertCounterInvariant(t, f)
}

// The invariant must hold after any interleaving of operations, including
// ones that fail at the store.
func TestCounterInvariantAcrossMixedSequence(t *testing.T) {
	store := new(mockStore)
	store.On("MarkRead", mock.Anything, int64(1), int64(1)).Return(nil)
	store.On("MarkRead", mock.Anything, int64(3), int64(1)).Return(errors.New("store offline"))
	store.On("MarkAllRead", mock.Anything, int64(1)).Return(errors.New("store offline"))
	store.On("Delete", mock.Anything, int64(2), int64(1)).Return(nil)
	store.On("Delete", mock.Anything, int64(4), int64(1)).Return(errors.New("store offline"))

	f := NewFeed(1, store)
	f.OnPush(notif(1, false))
	f.OnPush(notif(2, false))
	f.OnPush(notif(3, false))
	f.OnPush(notif(4, false))
	assertCounterInvariant(t, f)

	require.NoError(t, f.MarkRead(context.Background(), 1))
	assertCounterInvariant(t, f)

	assert.Error(t, f.MarkRead(context.Background(), 3))
	assertCounterInvariant(t, f)

	assert.Error(t, f.MarkAllRead(context.Background()))
	assertCounterInvariant(t, f)

	require.NoError(t, f.Delete(context.Background(), 2))
	assertCounterInvariant(t, f)

	assert.Error(t, f.Delete(context.Background(), 4))
	assertCounterInvariant(t, f)

	f.OnPush(notif(5, false))
	f.OnPush(notif(5, false))
	assertCounterInvariant(t, f)

	assert.Equal(t, 4, f.UnreadCount())
}
