package notification

import (
	"context"
	"fmt"
	"sync"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"
)

// feedLimit caps how many rows the initial load pulls; pushes beyond that
// accumulate on top.
const feedLimit = 50

// Feed is one user's in-memory mirror of their notification rows plus a
// derived unread counter. All mutation funnels through the five operations
// below, which maintain the invariant
//
//	unread == |{n in items : !n.Read}|
//
// after every call, including calls that fail at the store and roll back.
// Local state never diverges from durable state on failure.
type Feed struct {
	userID int64
	store  Store

	mu     sync.Mutex
	items  []domain.Notification
	unread int
}

func NewFeed(userID int64, store Store) *Feed {
	return &Feed{userID: userID, store: store}
}

// Load replaces the mirror wholesale with the most recent rows, newest
// first, and recomputes the unread count. On store failure the previous
// mirror is retained.
func (f *Feed) Load(ctx context.Context) error {
	rows, err := f.store.FetchRecent(ctx, f.userID, feedLimit)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetch, err)
	}

	unread := 0
	for _, n := range rows {
		if !n.Read {
			unread++
		}
	}

	f.mu.Lock()
	f.items = rows
	f.unread = unread
	f.mu.Unlock()
	return nil
}

// OnPush applies one pushed insert. Delivery is at-least-once and may be
// reordered, so duplicates are dropped by id rather than by position.
func (f *Feed) OnPush(n domain.Notification) {
	if n.UserID != f.userID {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.indexOf(n.ID) >= 0 {
		return
	}

	f.items = append([]domain.Notification{n}, f.items...)
	if !n.Read {
		f.unread++
	}
}

// MarkRead flips one entry locally, then commits the flip to the store. If
// the commit fails the local flip is rolled back before the error is
// reported.
func (f *Feed) MarkRead(ctx context.Context, id int64) error {
	f.mu.Lock()
	i := f.indexOf(id)
	if i < 0 || f.items[i].Read {
		f.mu.Unlock()
		return nil
	}
	f.items[i].Read = true
	if f.unread > 0 {
		f.unread--
	}
	f.mu.Unlock()

	if err := f.store.MarkRead(ctx, id, f.userID); err != nil {
		f.mu.Lock()
		if j := f.indexOf(id); j >= 0 {
			f.items[j].Read = false
			f.unread++
		}
		f.mu.Unlock()
		return err
	}
	return nil
}

// MarkAllRead flips every unread entry and issues a single bulk update.
// All-or-nothing: a store failure rolls back the entire local flip.
func (f *Feed) MarkAllRead(ctx context.Context) error {
	f.mu.Lock()
	var flipped []int64
	for i := range f.items {
		if !f.items[i].Read {
			f.items[i].Read = true
			flipped = append(flipped, f.items[i].ID)
		}
	}
	f.unread = 0
	f.mu.Unlock()

	if len(flipped) == 0 {
		return nil
	}

	if err := f.store.MarkAllRead(ctx, f.userID); err != nil {
		f.mu.Lock()
		for _, id := range flipped {
			if j := f.indexOf(id); j >= 0 {
				f.items[j].Read = false
			}
		}
		f.unread = f.countUnreadLocked()
		f.mu.Unlock()
		return err
	}
	return nil
}

// Delete removes an entry locally and then durably. On store failure the
// entry is re-inserted at its original position and the counter restored.
func (f *Feed) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	i := f.indexOf(id)
	if i < 0 {
		f.mu.Unlock()
		return nil
	}
	removed := f.items[i]
	f.items = append(f.items[:i], f.items[i+1:]...)
	if !removed.Read && f.unread > 0 {
		f.unread--
	}
	f.mu.Unlock()

	if err := f.store.Delete(ctx, id, f.userID); err != nil {
		f.mu.Lock()
		if f.indexOf(id) < 0 {
			if i > len(f.items) {
				i = len(f.items)
			}
			f.items = append(f.items[:i], append([]domain.Notification{removed}, f.items[i:]...)...)
			if !removed.Read {
				f.unread++
			}
		}
		f.mu.Unlock()
		return err
	}
	return nil
}

// Snapshot returns a copy of the mirror and the unread count.
func (f *Feed) Snapshot() ([]domain.Notification, int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.Notification, len(f.items))
	copy(out, f.items)
	return out, f.unread
}

func (f *Feed) UnreadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unread
}

func (f *Feed) indexOf(id int64) int {
	for i := range f.items {
		if f.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (f *Feed) countUnreadLocked() int {
	n := 0
	for i := range f.items {
		if !f.items[i].Read {
			n++
		}
	}
	return n
}
