package notification

import "github.com/RamadhaniRO/voya-travel-platform/internal/domain"

type listResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unread_count"`
}
