package model

import "time"

// MaxMessageLength is the maximum message content length in runes.
const MaxMessageLength = 1000

// Message はユーザー間のテキストメッセージ。作成後は read フラグ以外不変
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	Read        bool      `json:"read"`
}
