package session

import (
	"time"

	"github.com/google/uuid"
)

// Variant is the visual weight of a notification
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a transient toast raised by a state transition
type Notification struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     Variant   `json:"variant"`
	At          time.Time `json:"at"`
}

// Notifier receives notifications synchronously, in emission order
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(n Notification)

// Notify calls f
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

type discard struct{}

func (discard) Notify(Notification) {}
