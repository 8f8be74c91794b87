package bondbook

import (
	"sync"
	"testing"
	"time"
)

// recorder collects lifecycle events from a Center.
type recorder struct {
	mu      sync.Mutex
	posted  []Notification
	removed []string
}

func (r *recorder) post(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posted = append(r.posted, n)
}

func (r *recorder) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removed = append(r.removed, id)
}

func (r *recorder) removedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.removed)
}

func TestCenter_PostExpires(t *testing.T) {
	rec := &recorder{}
	c := NewCenter(10*time.Millisecond, rec.post, rec.remove)

	n := c.Post(SeveritySuccess, "added 3 bonds")
	if n.ID == "" {
		t.Fatal("posted notification must carry an id")
	}
	if len(rec.posted) != 1 {
		t.Fatalf("posted = %d, want 1", len(rec.posted))
	}

	deadline := time.Now().Add(time.Second)
	for c.Live() > 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if c.Live() != 0 {
		t.Fatal("notification did not expire")
	}
	if rec.removedCount() != 1 {
		t.Errorf("removed = %d, want 1", rec.removedCount())
	}
}

func TestCenter_EarlyDismissCancelsTimer(t *testing.T) {
	rec := &recorder{}
	c := NewCenter(20*time.Millisecond, rec.post, rec.remove)

	n := c.Post(SeverityWarning, "nothing new")
	c.Dismiss(n.ID)

	if c.Live() != 0 {
		t.Fatal("dismissed notification still live")
	}
	// Wait past the original lifetime: the scheduled removal must have
	// become a no-op, not a second removal.
	time.Sleep(40 * time.Millisecond)
	if got := rec.removedCount(); got != 1 {
		t.Errorf("removed = %d, want exactly 1", got)
	}
}

func TestCenter_DismissUnknownIsNoop(t *testing.T) {
	rec := &recorder{}
	c := NewCenter(time.Second, rec.post, rec.remove)

	c.Dismiss("no-such-id")
	if rec.removedCount() != 0 {
		t.Errorf("removed = %d, want 0", rec.removedCount())
	}
}

func TestCenter_ManyLiveConcurrently(t *testing.T) {
	c := NewCenter(time.Minute, nil, nil)
	ids := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		n := c.Post(SeverityError, "boom")
		ids[n.ID] = struct{}{}
	}
	if len(ids) != 5 {
		t.Errorf("ids are not unique: %d distinct of 5", len(ids))
	}
	if c.Live() != 5 {
		t.Errorf("Live() = %d, want 5", c.Live())
	}
	for id := range ids {
		c.Dismiss(id)
		c.Dismiss(id) // double dismissal is harmless
	}
	if c.Live() != 0 {
		t.Errorf("Live() = %d, want 0", c.Live())
	}
}

func TestSeverity_String(t *testing.T) {
	pairs := map[Severity]string{
		SeveritySuccess: "success",
		SeverityError:   "error",
		SeverityWarning: "warning",
	}
	for sev, want := range pairs {
		if got := sev.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", sev, got, want)
		}
	}
}
