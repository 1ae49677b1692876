package model

import "time"

// ExchangeStatus is the lifecycle state of a contact exchange request.
// PENDING moves to ACCEPTED or REJECTED exactly once; a record in any state
// can be deleted by either participant (disconnect), after which the pair
// may be requested anew.
type ExchangeStatus string

const (
	ExchangePending  ExchangeStatus = "PENDING"
	ExchangeAccepted ExchangeStatus = "ACCEPTED"
	ExchangeRejected ExchangeStatus = "REJECTED"
)

// ContactExchange は選手と役員の間の連絡先交換レコード。
// (athlete_id, official_id) の組につき高々 1 件（uq_athlete_official 制約で保証）
type ContactExchange struct {
	ID          string         `json:"id"`
	AthleteID   string         `json:"athlete_id"`
	OfficialID  string         `json:"official_id"`
	Status      ExchangeStatus `json:"status"`
	InitiatedBy string         `json:"initiated_by"`
	CreatedAt   time.Time      `json:"created_at"`
	RespondedAt *time.Time     `json:"responded_at,omitempty"`
}

// HasParticipant reports whether userID is the athlete or the official of
// this exchange.
func (e *ContactExchange) HasParticipant(userID string) bool {
	return userID == e.AthleteID || userID == e.OfficialID
}
