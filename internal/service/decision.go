package service

// DecisionCode is the machine-readable reason attached to a send denial.
type DecisionCode string

const (
	CodeUserNotFound               DecisionCode = "USER_NOT_FOUND"
	CodeOfficialsCannotMessage     DecisionCode = "OFFICIALS_CANNOT_MESSAGE"
	CodeExchangeRequired           DecisionCode = "EXCHANGE_REQUIRED"
	CodeDailyLimitExceeded         DecisionCode = "DAILY_LIMIT_EXCEEDED"
	CodeOfficialDailyLimitExceeded DecisionCode = "OFFICIAL_DAILY_LIMIT_EXCEEDED"
)

// IsLimit reports whether the code denotes a rate-limit denial. The HTTP
// boundary maps these to 429 and everything else to 400.
func (c DecisionCode) IsLimit() bool {
	return c == CodeDailyLimitExceeded || c == CodeOfficialDailyLimitExceeded
}

// Decision is the outcome of a send-permission check. A denial carries the
// reason code; limit denials additionally carry the day's counters. The
// check itself persists nothing — callers store the message only when
// Allowed is true.
type Decision struct {
	Allowed bool         `json:"allowed"`
	Code    DecisionCode `json:"code,omitempty"`
	Reason  string       `json:"reason,omitempty"`
	Current int          `json:"current,omitempty"`
	Limit   int          `json:"limit,omitempty"`
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(code DecisionCode, reason string) Decision {
	return Decision{Code: code, Reason: reason}
}

func denyLimit(code DecisionCode, reason string, status LimitStatus) Decision {
	return Decision{Code: code, Reason: reason, Current: status.Count, Limit: status.Limit}
}
