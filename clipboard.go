package bondbook

import (
	"fmt"
	"log"
	"strings"
)

// Clipboard is the system clipboard boundary. It is the only operation
// besides persistence that can fail independently of the core logic.
type Clipboard interface {
	WriteAll(text string) error
}

// CopySeparator joins identifiers in the copied text blob.
const CopySeparator = "\n"

// CopyVisible copies the filtered view of the collection to the clipboard,
// exactly as Filter would return it, and reports the result through the
// notifier. An empty view is a no-op reported as a warning. A clipboard
// failure is caught here and reported as an error notification, never
// returned to the caller.
func CopyVisible(c *Collection, query string, clip Clipboard, n Notifier) {
	visible := c.Filter(query)
	if len(visible) == 0 {
		n.Post(SeverityWarning, "no bonds to copy")
		return
	}
	parts := make([]string, len(visible))
	for i, id := range visible {
		parts[i] = string(id)
	}
	if err := clip.WriteAll(strings.Join(parts, CopySeparator)); err != nil {
		log.Printf("clipboard-failed err=%q", err)
		n.Post(SeverityError, "clipboard unavailable")
		return
	}
	n.Post(SeveritySuccess, fmt.Sprintf("copied %d bonds", len(visible)))
}
