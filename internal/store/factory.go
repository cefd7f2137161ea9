package store

import (
	"fmt"
	"strings"
)

// Storage engine names accepted by Open.
const (
	EngineSQLite = "sqlite"
	EngineJSON   = "json"
)

// Open creates a Store for the named engine at path. An empty engine
// defaults to SQLite.
func Open(engine, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineSQLite:
		return OpenSQLite(path)
	case EngineJSON:
		return OpenJSON(path)
	default:
		return nil, fmt.Errorf("unsupported store engine %q", engine)
	}
}
