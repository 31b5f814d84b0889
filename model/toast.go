package model

import "time"

// ToastKind classifies a notification for display.
type ToastKind string

const (
	ToastInfo    ToastKind = "info"
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is one transient user-facing message. It disappears on its own
// after a fixed duration unless the user dismisses it first.
type Toast struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Kind      ToastKind `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}
