package service

import "context"

// PermissionService decides whether a message may be sent. The decision is
// advisory — it persists nothing — and business denials come back as a
// Decision, never as an error. Errors are reserved for storage faults.
type PermissionService interface {
	CanSend(ctx context.Context, senderID, recipientID string) (Decision, error)
}
