package model

import "time"

// ContactEntry is one row of a user's contact list. CanMessage entries may
// be messaged right now; the rest are potential contacts that first need an
// accepted exchange. LastMessage/LastMessageTime/UnreadCount are a derived
// read projection and carry no authority.
type ContactEntry struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Role            Role            `json:"type"`
	ExchangeStatus  *ExchangeStatus `json:"exchange_status"`
	ExchangeID      *string         `json:"exchange_id"`
	CanMessage      bool            `json:"can_message"`
	CanSendRequest  bool            `json:"can_send_request"`
	LastMessage     *string         `json:"last_message"`
	LastMessageTime *time.Time      `json:"last_message_time"`
	UnreadCount     int             `json:"unread_count"`
}

// PendingRequest は自分宛の未応答の交換リクエスト
type PendingRequest struct {
	ExchangeID string         `json:"exchange_id"`
	FromUser   User           `json:"from_user"`
	ToUser     User           `json:"to_user"`
	Status     ExchangeStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
}

// ContactList is the full contact view for one user.
type ContactList struct {
	Contacts          []ContactEntry   `json:"contacts"`
	PotentialContacts []ContactEntry   `json:"potential_contacts"`
	PendingRequests   []PendingRequest `json:"pending_requests"`
}
