package logic

import (
	"sync"
	"time"

	"hrmslite/attendance/model"
)

// DefaultToastTTL is how long a notification stays live before it expires
// on its own.
const DefaultToastTTL = 5000 * time.Millisecond

// ToastQueue holds the currently visible notifications. Each toast gets
// its own expiry timer; dismissing or expiring one never disturbs the
// others.
type ToastQueue struct {
	ttl time.Duration

	mu     sync.Mutex
	toasts []model.Toast
	timers map[int64]*time.Timer
	lastID int64
}

func NewToastQueue(ttl time.Duration) *ToastQueue {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return &ToastQueue{
		ttl:    ttl,
		timers: make(map[int64]*time.Timer),
	}
}

// Push appends a notification and schedules its removal after the queue's
// TTL. The returned id can be used to dismiss it earlier. Ids are unique
// among live toasts and increase with creation time.
func (q *ToastQueue) Push(message string, kind model.ToastKind) int64 {
	q.mu.Lock()
	defer q.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= q.lastID {
		id = q.lastID + 1
	}
	q.lastID = id

	q.toasts = append(q.toasts, model.Toast{
		ID:        id,
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
	})
	q.timers[id] = time.AfterFunc(q.ttl, func() {
		q.Dismiss(id)
	})

	return id
}

func (q *ToastQueue) Success(message string) int64 {
	return q.Push(message, model.ToastSuccess)
}

func (q *ToastQueue) Error(message string) int64 {
	return q.Push(message, model.ToastError)
}

func (q *ToastQueue) Info(message string) int64 {
	return q.Push(message, model.ToastInfo)
}

// Dismiss removes the toast with the given id and stops its expiry timer.
// Dismissing an id that already expired or never existed does nothing, so
// a manual dismiss racing the timer settles on a single removal.
func (q *ToastQueue) Dismiss(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}
	for i, toast := range q.toasts {
		if toast.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			break
		}
	}
}

// Active returns the live notifications, oldest first.
func (q *ToastQueue) Active() []model.Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]model.Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}
