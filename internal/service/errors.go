package service

import "errors"

// ビジネスルール違反を表す番兵エラー。ハンドラ層で HTTP ステータスへ変換される
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrExchangeNotFound = errors.New("exchange not found")
	ErrRolesEqual       = errors.New("contact exchange only allowed between athlete and official")
	ErrAlreadyPending   = errors.New("request already pending")
	ErrAlreadyAccepted  = errors.New("contact already connected")
	ErrOwnRequest       = errors.New("cannot act on own request")
	ErrNotParticipant   = errors.New("not a participant of this exchange")
	ErrInvalidContent   = errors.New("message content must be 1-1000 characters")
)
