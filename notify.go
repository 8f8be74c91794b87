package bondbook

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity grades a notification.
type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityError
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Notification is a transient user-facing message. Many may be live at
// once; each one is independently dismissible before its timer fires.
type Notification struct {
	ID       string   `json:"id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Notifier is the sink the core reports outcomes to. It never fails and
// never blocks: rendering is entirely the implementation's concern.
type Notifier interface {
	Post(sev Severity, msg string) Notification
}

// DefaultLifetime is how long a posted notification stays live before its
// scheduled removal fires.
const DefaultLifetime = 4 * time.Second

// Center tracks live notifications and their removal timers.
//
// Each posted notification gets a cancellable one-shot timer; dismissing it
// early turns the scheduled removal into a no-op. Removal is delivered
// exactly once per id, whether it came from the timer or from Dismiss.
type Center struct {
	lifetime time.Duration
	onPost   func(Notification)
	onRemove func(id string)

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewCenter creates a notification center. onPost and onRemove are invoked
// for every notification lifecycle event; either may be nil. A zero
// lifetime means DefaultLifetime.
func NewCenter(lifetime time.Duration, onPost func(Notification), onRemove func(id string)) *Center {
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &Center{
		lifetime: lifetime,
		onPost:   onPost,
		onRemove: onRemove,
		timers:   make(map[string]*time.Timer),
	}
}

// Post creates a notification with a fresh id and schedules its removal.
func (c *Center) Post(sev Severity, msg string) Notification {
	n := Notification{ID: uuid.NewString(), Severity: sev, Message: msg}

	c.mu.Lock()
	c.timers[n.ID] = time.AfterFunc(c.lifetime, func() { c.Dismiss(n.ID) })
	c.mu.Unlock()

	if c.onPost != nil {
		c.onPost(n)
	}
	return n
}

// Dismiss removes a live notification and cancels its timer. Dismissing an
// unknown or already-removed id is a no-op.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	timer, live := c.timers[id]
	if live {
		delete(c.timers, id)
	}
	c.mu.Unlock()

	if !live {
		return
	}
	timer.Stop()
	if c.onRemove != nil {
		c.onRemove(id)
	}
}

// Live returns the number of notifications still awaiting removal.
func (c *Center) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}
