package model

import "time"

// Role はユーザー種別。メッセージ送信ルールは (送信者 Role, 受信者 Role) の組で決まる
type Role string

const (
	// RoleAthlete is a player/competitor. Athletes message each other freely
	// and message officials only after an accepted contact exchange.
	RoleAthlete Role = "ATHLETE"
	// RoleOfficial is a manager/coach. Officials message athletes only after
	// an accepted contact exchange and never message other officials.
	RoleOfficial Role = "OFFICIAL"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAthlete || r == RoleOfficial
}

// User はシステムの利用者（選手または役員）。Role は作成後に変更されない
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
