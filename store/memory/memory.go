// Package memory provides an in-memory Store implementation.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/esc4n0rx/pontoflex/engine"
	"github.com/esc4n0rx/pontoflex/store"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu        sync.RWMutex
	employees map[string]store.Employee
	records   map[string]store.Record
}

func New() *Memory {
	return &Memory{
		employees: make(map[string]store.Employee),
		records:   make(map[string]store.Record),
	}
}

func (m *Memory) SaveEmployee(_ context.Context, emp store.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.employees[emp.ID] = emp
	return nil
}

func (m *Memory) GetEmployee(_ context.Context, id string) (*store.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	emp, ok := m.employees[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &emp, nil
}

func (m *Memory) ListEmployees(_ context.Context) ([]store.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]store.Employee, 0, len(m.employees))
	for _, emp := range m.employees {
		out = append(out, emp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) SaveRecord(_ context.Context, rec store.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = rec
	return nil
}

func (m *Memory) GetRecord(_ context.Context, id string) (*store.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &rec, nil
}

func (m *Memory) ListRecords(_ context.Context, employeeID string, from, to time.Time) ([]store.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []store.Record
	for _, rec := range m.records {
		if rec.EmployeeID != employeeID {
			continue
		}
		d := rec.Shift.Date
		if d.Before(from) || d.After(to) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Shift.Date.Before(out[j].Shift.Date) })
	return out, nil
}

func (m *Memory) ListAllRecords(_ context.Context) ([]store.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]store.Record, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) UpdateAccounting(_ context.Context, id string, acc engine.DailyAccounting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return store.ErrNotFound
	}
	rec.Accounting = acc
	m.records[id] = rec
	return nil
}

func (m *Memory) DeleteRecord(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

// Compile-time check.
var _ store.Store = (*Memory)(nil)
