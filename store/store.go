/*
Package store defines the persistence contracts the adapter layer uses.

PURPOSE:
  The engine is pure and never performs I/O; these interfaces describe the
  external collaborators it is fed from - a record store holding punch
  records with their derived accounting, and an employee directory. The
  sqlite and memory subpackages implement them.

CONSISTENCY:
  Stores guarantee that a reader sees a consistent snapshot of a period's
  records (no partial double-counting while a bulk recompute rewrites
  derived fields). The engine deliberately does not re-check this.

SEE ALSO:
  - store/sqlite: database/sql + go-sqlite3 implementation
  - store/memory: in-memory implementation for tests and demos
*/
package store

import (
	"context"
	"errors"
	"time"

	"github.com/esc4n0rx/pontoflex/engine"
)

var (
	// ErrNotFound is returned when a record or employee does not exist.
	ErrNotFound = errors.New("not found")
)

// Employee is a directory entry: identity plus the profile the engine
// consumes.
type Employee struct {
	ID      string
	Name    string
	Profile engine.Profile
}

// Record is one persisted punch record: the raw shift inputs plus the
// derived accounting. The derived part is overwritten whenever the raw
// inputs change or a bulk recompute runs; the raw part is never derived.
type Record struct {
	ID         string
	EmployeeID string
	Shift      engine.Shift
	Accounting engine.DailyAccounting
}

// EmployeeStore is the employee directory.
type EmployeeStore interface {
	SaveEmployee(ctx context.Context, emp Employee) error
	GetEmployee(ctx context.Context, id string) (*Employee, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
}

// RecordStore persists punch records.
type RecordStore interface {
	SaveRecord(ctx context.Context, rec Record) error
	GetRecord(ctx context.Context, id string) (*Record, error)

	// ListRecords returns an employee's records with dates in
	// [from, to] inclusive, ordered by date.
	ListRecords(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)

	// ListAllRecords returns every record in the store, for bulk
	// recomputation.
	ListAllRecords(ctx context.Context) ([]Record, error)

	// UpdateAccounting overwrites only the derived fields of a record.
	UpdateAccounting(ctx context.Context, id string, acc engine.DailyAccounting) error

	DeleteRecord(ctx context.Context, id string) error
}

// Store combines both collaborators; the concrete implementations satisfy
// it in full.
type Store interface {
	EmployeeStore
	RecordStore
}
