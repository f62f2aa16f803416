package notification

import (
	"testing"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestHubPublishReachesSubscribers(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	var received []domain.Notification
	sub := hub.Subscribe(1, func(n domain.Notification) {
		received = append(received, n)
	})
	defer sub.Close()

	delivered := hub.Publish(notif(1, false))
	assert.True(t, delivered)
	assert.Len(t, received, 1)
	assert.Equal(t, int64(1), received[0].ID)
}

func TestHubPublishSkipsOtherUsers(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	called := false
	sub := hub.Subscribe(2, func(domain.Notification) { called = true })
	defer sub.Close()

	delivered := hub.Publish(notif(1, false)) // belongs to user 1
	assert.False(t, delivered)
	assert.False(t, called)
}

func TestSubscriptionCloseIsIdempotent(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	count := 0
	sub := hub.Subscribe(1, func(domain.Notification) { count++ })

	hub.Publish(notif(1, false))
	assert.Equal(t, 1, count)

	sub.Close()
	sub.Close()
	sub.Close()

	hub.Publish(notif(2, false))
	assert.Equal(t, 1, count, "closed subscription must not receive")
}

func TestHubSupportsMultipleSubscriptionsPerUser(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	var first, second int
	subA := hub.Subscribe(1, func(domain.Notification) { first++ })
	subB := hub.Subscribe(1, func(domain.Notification) { second++ })
	defer subB.Close()

	hub.Publish(notif(1, false))
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)

	subA.Close()
	hub.Publish(notif(2, false))
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestHubOnlineBookkeeping(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	assert.False(t, hub.IsOnline(1))
	assert.Zero(t, hub.OnlineCount())

	hub.Register(1, nil)
	assert.True(t, hub.IsOnline(1))
	assert.Equal(t, 1, hub.OnlineCount())

	hub.Unregister(1)
	assert.False(t, hub.IsOnline(1))
	assert.Zero(t, hub.OnlineCount())
}
