package kvstore

import "fmt"

// Open creates the store selected by backend name: "file" (folder of json
// files), "sqlite" (single database file), or "memory" (ephemeral).
func Open(backend, path string) (Store, error) {
	switch backend {
	case "file":
		return NewFile(path)
	case "sqlite":
		return NewSQLite(path)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (want file, sqlite or memory)", backend)
	}
}
