/*
Package sqlite provides a SQLite-backed implementation of the storage
interfaces.

PURPOSE:
  Implements store.Store (employee directory + punch records) using
  database/sql and go-sqlite3. In production the same patterns apply to
  PostgreSQL - only minor SQL dialect differences.

KEY TABLES:
  employees:  Directory entries with schedule, salary and monthly quota
  records:    Punch records - raw shift columns plus the derived
              accounting columns, overwritten on every recompute

DERIVED COLUMNS:
  total_hours, banked_hours, overtime_hours, deficit_hours, night_hours,
  is_holiday and multiplier are all recomputable from the raw columns
  (clock_in, clock_out, night_shift, day) plus the employee profile. The
  bulk recompute rewrites them via UpdateAccounting; the raw columns are
  never updated by that path.

DECIMALS:
  Hour and currency quantities are stored as TEXT and parsed back through
  decimal.NewFromString, so values round-trip without binary float loss.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  multiple readers don't block, a single writer at a time. A sync.RWMutex
  serializes access on top; with PostgreSQL the database's own
  concurrency control would handle this instead.

USAGE:
  st, err := sqlite.New("./data/pontoflex.db")
  if err != nil {
      log.Fatal(err)
  }
  defer st.Close()

SEE ALSO:
  - store/store.go: Interface definitions
  - store/memory: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/esc4n0rx/pontoflex/engine"
	"github.com/esc4n0rx/pontoflex/store"
)

const dateLayout = "2006-01-02"

// Store implements store.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	st := &Store{db: db}
	if err := st.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return st, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		schedule TEXT NOT NULL,
		monthly_salary TEXT NOT NULL,
		monthly_quota TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS records (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		day TEXT NOT NULL,
		clock_in TEXT NOT NULL,
		clock_out TEXT NOT NULL,
		night_shift INTEGER NOT NULL DEFAULT 0,

		total_hours TEXT NOT NULL,
		banked_hours TEXT NOT NULL,
		overtime_hours TEXT NOT NULL,
		deficit_hours TEXT NOT NULL,
		night_hours TEXT NOT NULL,
		is_holiday INTEGER NOT NULL DEFAULT 0,
		multiplier TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_records_employee_day
		ON records(employee_id, day);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (s *Store) SaveEmployee(ctx context.Context, emp store.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO employees (id, name, schedule, monthly_salary, monthly_quota)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			schedule = excluded.schedule,
			monthly_salary = excluded.monthly_salary,
			monthly_quota = excluded.monthly_quota`,
		emp.ID, emp.Name, string(emp.Profile.Schedule),
		emp.Profile.MonthlySalary.String(), emp.Profile.MonthlyHoursQuota.String())
	return err
}

func (s *Store) GetEmployee(ctx context.Context, id string) (*store.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, schedule, monthly_salary, monthly_quota
		FROM employees WHERE id = ?`, id)
	emp, err := scanEmployee(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return emp, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]store.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, schedule, monthly_salary, monthly_quota
		FROM employees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *emp)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row scanner) (*store.Employee, error) {
	var emp store.Employee
	var schedule, salary, quota string
	if err := row.Scan(&emp.ID, &emp.Name, &schedule, &salary, &quota); err != nil {
		return nil, err
	}
	emp.Profile.Schedule = engine.ScheduleType(schedule)
	var err error
	if emp.Profile.MonthlySalary, err = decimal.NewFromString(salary); err != nil {
		return nil, fmt.Errorf("corrupt monthly_salary %q: %w", salary, err)
	}
	if emp.Profile.MonthlyHoursQuota, err = decimal.NewFromString(quota); err != nil {
		return nil, fmt.Errorf("corrupt monthly_quota %q: %w", quota, err)
	}
	return &emp, nil
}

// =============================================================================
// RECORDS
// =============================================================================

func (s *Store) SaveRecord(ctx context.Context, rec store.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (
			id, employee_id, day, clock_in, clock_out, night_shift,
			total_hours, banked_hours, overtime_hours, deficit_hours,
			night_hours, is_holiday, multiplier)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			day = excluded.day,
			clock_in = excluded.clock_in,
			clock_out = excluded.clock_out,
			night_shift = excluded.night_shift,
			total_hours = excluded.total_hours,
			banked_hours = excluded.banked_hours,
			overtime_hours = excluded.overtime_hours,
			deficit_hours = excluded.deficit_hours,
			night_hours = excluded.night_hours,
			is_holiday = excluded.is_holiday,
			multiplier = excluded.multiplier`,
		rec.ID, rec.EmployeeID, rec.Shift.Date.Format(dateLayout),
		rec.Shift.ClockIn, rec.Shift.ClockOut, boolToInt(rec.Shift.NightShift),
		rec.Accounting.Total.String(), rec.Accounting.Banked.String(),
		rec.Accounting.Overtime.String(), rec.Accounting.Deficit.String(),
		rec.Accounting.NightDiff.String(), boolToInt(rec.Accounting.Holiday),
		rec.Accounting.Multiplier.String())
	return err
}

const recordColumns = `
	id, employee_id, day, clock_in, clock_out, night_shift,
	total_hours, banked_hours, overtime_hours, deficit_hours,
	night_hours, is_holiday, multiplier`

func (s *Store) GetRecord(ctx context.Context, id string) (*store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM records WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Store) ListRecords(ctx context.Context, employeeID string, from, to time.Time) ([]store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryRecords(ctx, `
		SELECT `+recordColumns+` FROM records
		WHERE employee_id = ? AND day >= ? AND day <= ?
		ORDER BY day`,
		employeeID, from.Format(dateLayout), to.Format(dateLayout))
}

func (s *Store) ListAllRecords(ctx context.Context) ([]store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryRecords(ctx,
		`SELECT `+recordColumns+` FROM records ORDER BY employee_id, day`)
}

func (s *Store) UpdateAccounting(ctx context.Context, id string, acc engine.DailyAccounting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		UPDATE records SET
			total_hours = ?, banked_hours = ?, overtime_hours = ?,
			deficit_hours = ?, night_hours = ?, is_holiday = ?, multiplier = ?
		WHERE id = ?`,
		acc.Total.String(), acc.Banked.String(), acc.Overtime.String(),
		acc.Deficit.String(), acc.NightDiff.String(), boolToInt(acc.Holiday),
		acc.Multiplier.String(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteRecord(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) queryRecords(ctx context.Context, query string, args ...any) ([]store.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func scanRecord(row scanner) (*store.Record, error) {
	var rec store.Record
	var day string
	var nightShift, isHoliday int
	var total, banked, overtime, deficit, night, multiplier string

	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &day, &rec.Shift.ClockIn, &rec.Shift.ClockOut,
		&nightShift, &total, &banked, &overtime, &deficit, &night,
		&isHoliday, &multiplier)
	if err != nil {
		return nil, err
	}

	if rec.Shift.Date, err = time.Parse(dateLayout, day); err != nil {
		return nil, fmt.Errorf("corrupt day %q: %w", day, err)
	}
	rec.Shift.NightShift = nightShift != 0
	rec.Accounting.Holiday = isHoliday != 0

	for _, field := range []struct {
		dst *decimal.Decimal
		src string
	}{
		{&rec.Accounting.Total, total},
		{&rec.Accounting.Banked, banked},
		{&rec.Accounting.Overtime, overtime},
		{&rec.Accounting.Deficit, deficit},
		{&rec.Accounting.NightDiff, night},
		{&rec.Accounting.Multiplier, multiplier},
	} {
		if *field.dst, err = decimal.NewFromString(field.src); err != nil {
			return nil, fmt.Errorf("corrupt decimal %q: %w", field.src, err)
		}
	}
	return &rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Compile-time check.
var _ store.Store = (*Store)(nil)
