package tui

import (
	"time"

	"github.com/existflow/ironplan/internal/session"
)

const (
	toastTTL   = 4 * time.Second
	toastLimit = 3
)

type toast struct {
	session.Notification
	expires time.Time
}

// toastQueue collects the notifications raised by the session and keeps
// them on screen for toastTTL.
type toastQueue struct {
	items []toast
	now   func() time.Time
}

func newToastQueue() *toastQueue {
	return &toastQueue{now: time.Now}
}

// Notify implements session.Notifier
func (q *toastQueue) Notify(n session.Notification) {
	q.items = append(q.items, toast{Notification: n, expires: q.now().Add(toastTTL)})
	if len(q.items) > toastLimit {
		q.items = q.items[len(q.items)-toastLimit:]
	}
}

// expire drops toasts past their deadline and reports whether any went
func (q *toastQueue) expire() bool {
	now := q.now()
	kept := q.items[:0]
	for _, t := range q.items {
		if now.Before(t.expires) {
			kept = append(kept, t)
		}
	}
	dropped := len(kept) != len(q.items)
	q.items = kept
	return dropped
}

func (q *toastQueue) latest() (session.Notification, bool) {
	if len(q.items) == 0 {
		return session.Notification{}, false
	}
	return q.items[len(q.items)-1].Notification, true
}
