// Package historystore persists completed run snapshots outside the
// decision path. The engine never reads run history when deciding; this
// package exists only so a host application has somewhere real to put it.
package historystore

import (
	"context"
	"errors"
	"time"

	"duskcrawl/combat"
)

// ErrNotFound is returned when a run ID has no stored record.
var ErrNotFound = errors.New("historystore: run not found")

// Record is one completed run's snapshot, keyed by an opaque ID assigned by
// the caller (typically a google/uuid string minted by the transport layer).
type Record struct {
	ID        string
	Final     combat.RunState
	Steps     int
	Survived  bool
	UpdatedAt time.Time
}

// Store persists and retrieves Records. Every method takes a context since
// the redis and sqlite backends both perform real I/O.
type Store interface {
	Save(ctx context.Context, r Record) error
	Load(ctx context.Context, id string) (Record, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
	Close() error
}
