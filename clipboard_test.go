package bondbook

import (
	"errors"
	"testing"
	"time"
)

// fakeClipboard records what was copied, or fails on demand.
type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

// capture is a Notifier that keeps the last posted notification.
type capture struct {
	last Notification
}

func (c *capture) Post(sev Severity, msg string) Notification {
	c.last = Notification{ID: "test", Severity: sev, Message: msg}
	return c.last
}

func TestCopyVisible(t *testing.T) {
	c := NewCollection()
	c.Insert([]Identifier{"0000001", "1234567", "1234568"})

	clip := &fakeClipboard{}
	notes := &capture{}
	CopyVisible(c, "1234", clip, notes)

	if want := "1234568\n1234567"; clip.text != want {
		t.Errorf("copied %q, want %q", clip.text, want)
	}
	if notes.last.Severity != SeveritySuccess {
		t.Errorf("severity = %v, want success", notes.last.Severity)
	}
	if want := "copied 2 bonds"; notes.last.Message != want {
		t.Errorf("message = %q, want %q", notes.last.Message, want)
	}
}

func TestCopyVisible_EmptyViewIsWarning(t *testing.T) {
	c := NewCollection()
	c.Insert([]Identifier{"0000001"})

	clip := &fakeClipboard{}
	notes := &capture{}
	CopyVisible(c, "9", clip, notes)

	if clip.text != "" {
		t.Errorf("nothing should be copied, got %q", clip.text)
	}
	if notes.last.Severity != SeverityWarning {
		t.Errorf("severity = %v, want warning", notes.last.Severity)
	}
}

func TestCopyVisible_FailureIsCaught(t *testing.T) {
	c := NewCollection()
	c.Insert([]Identifier{"0000001"})

	clip := &fakeClipboard{err: errors.New("no display")}
	notes := &capture{}
	// Must not panic or propagate: the failure surfaces as a notification.
	CopyVisible(c, "", clip, notes)

	if notes.last.Severity != SeverityError {
		t.Errorf("severity = %v, want error", notes.last.Severity)
	}
}

// The Center satisfies the Notifier contract used by CopyVisible.
var _ Notifier = NewCenter(time.Second, nil, nil)
