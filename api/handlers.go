/*
handlers.go - HTTP API handlers for the accounting engine

PURPOSE:
  Exposes the engine via REST. Handlers parse and validate input, call
  the pure engine packages, persist through the store interfaces and
  serialize the result. No business rule lives here.

ENDPOINTS:
  Employees:
    GET    /api/employees                    List employees
    POST   /api/employees                    Create employee
    GET    /api/employees/{id}               Get employee

  Records:
    POST   /api/employees/{id}/records       Submit a punch record
    GET    /api/employees/{id}/records       List records (?from&to)
    GET    /api/employees/{id}/summary       Period summary (?date)
    GET    /api/employees/{id}/bank          Hour-bank statement
    PUT    /api/records/{id}                 Correct a record
    DELETE /api/records/{id}                 Delete a record

  Payroll:
    GET    /api/periods                      Past pay periods (?n)
    POST   /api/severance                    Termination settlement

  Admin:
    POST   /api/admin/recalculate            Bulk recompute all records

ERROR HANDLING:
  Engine validation failures map to 400, store.ErrNotFound to 404,
  everything else to 500. Bodies are {"error": "..."} JSON.

SEE ALSO:
  - dto.go: Request/response shapes
  - recalc.go: The bulk recompute shared with the cron job
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/esc4n0rx/pontoflex/engine"
	"github.com/esc4n0rx/pontoflex/payroll"
	"github.com/esc4n0rx/pontoflex/severance"
	"github.com/esc4n0rx/pontoflex/store"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store      store.Store
	Accountant *engine.Accountant
	Logger     *logrus.Logger

	validate *validator.Validate

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

// NewHandler creates a handler over the given store and accountant.
func NewHandler(st store.Store, acc *engine.Accountant, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		Store:      st,
		Accountant: acc,
		Logger:     logger,
		validate:   validator.New(),
		now:        time.Now,
	}
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if !h.decode(w, r, &req) {
		return
	}

	emp := store.Employee{
		ID:   uuid.NewString(),
		Name: req.Name,
		Profile: engine.Profile{
			Schedule:          engine.ScheduleType(req.Schedule),
			MonthlySalary:     decimal.NewFromFloat(req.MonthlySalary),
			MonthlyHoursQuota: decimal.NewFromFloat(req.MonthlyHoursQuota),
		},
	}
	if err := h.Store.SaveEmployee(r.Context(), emp); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toEmployeeDTO(emp))
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Store.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	emps, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	dtos := make([]EmployeeDTO, 0, len(emps))
	for _, emp := range emps {
		dtos = append(dtos, toEmployeeDTO(emp))
	}
	h.writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// RECORDS
// =============================================================================

func (h *Handler) SubmitRecord(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	var req SubmitRecordRequest
	if !h.decode(w, r, &req) {
		return
	}

	emp, err := h.Store.GetEmployee(r.Context(), employeeID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	rec, err := h.buildRecord(uuid.NewString(), employeeID, req, &emp.Profile)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.Store.SaveRecord(r.Context(), *rec); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toRecordDTO(*rec))
}

// UpdateRecord re-derives the accounting from corrected raw inputs and
// overwrites the stored record.
func (h *Handler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req SubmitRecordRequest
	if !h.decode(w, r, &req) {
		return
	}

	existing, err := h.Store.GetRecord(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	emp, err := h.Store.GetEmployee(r.Context(), existing.EmployeeID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	rec, err := h.buildRecord(id, existing.EmployeeID, req, &emp.Profile)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.Store.SaveRecord(r.Context(), *rec); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toRecordDTO(*rec))
}

func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteRecord(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	// Default range: the current pay period.
	period := payroll.CurrentPeriod(h.now())
	from, to := period.Start, period.End
	var err error
	if v := r.URL.Query().Get("from"); v != "" {
		if from, err = time.Parse(dateLayout, v); err != nil {
			h.badRequest(w, "invalid 'from' date")
			return
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if to, err = time.Parse(dateLayout, v); err != nil {
			h.badRequest(w, "invalid 'to' date")
			return
		}
	}

	records, err := h.Store.ListRecords(r.Context(), employeeID, from, to)
	if err != nil {
		h.writeError(w, err)
		return
	}
	dtos := make([]RecordDTO, 0, len(records))
	for _, rec := range records {
		dtos = append(dtos, toRecordDTO(rec))
	}
	h.writeJSON(w, http.StatusOK, dtos)
}

// buildRecord runs the full accounting pipeline for one submitted record:
// parse the date, enforce the shift-length cap, classify, assemble.
func (h *Handler) buildRecord(id, employeeID string, req SubmitRecordRequest, profile *engine.Profile) (*store.Record, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, err
	}
	shift := engine.Shift{
		Date:       date,
		ClockIn:    req.ClockIn,
		ClockOut:   req.ClockOut,
		NightShift: req.NightShift,
	}

	acc, err := h.Accountant.Account(shift, profile)
	if err != nil {
		return nil, err
	}
	// The rollover heuristic cannot tell a genuine overnight shift from a
	// swapped clock pair, so implausibly long results are rejected here
	// rather than inside the pure duration function.
	if err := engine.ValidateShiftLength(acc.Total); err != nil {
		return nil, err
	}

	return &store.Record{
		ID:         id,
		EmployeeID: employeeID,
		Shift:      shift,
		Accounting: acc,
	}, nil
}

// =============================================================================
// PAYROLL
// =============================================================================

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	anchor := h.now()
	if v := r.URL.Query().Get("date"); v != "" {
		var err error
		if anchor, err = time.Parse(dateLayout, v); err != nil {
			h.badRequest(w, "invalid 'date'")
			return
		}
	}
	period := payroll.CurrentPeriod(anchor)

	emp, err := h.Store.GetEmployee(r.Context(), employeeID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	records, err := h.Store.ListRecords(r.Context(), employeeID, period.Start, period.End)
	if err != nil {
		h.writeError(w, err)
		return
	}

	accountings := make([]engine.DailyAccounting, 0, len(records))
	for _, rec := range records {
		accountings = append(accountings, rec.Accounting)
	}
	summary, err := payroll.Summarize(accountings, &emp.Profile)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toSummaryDTO(period, len(records), summary))
}

// GetBank replays the employee's full record history into the hour-bank
// statement. The balance is computed, never stored.
func (h *Handler) GetBank(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	if _, err := h.Store.GetEmployee(r.Context(), employeeID); err != nil {
		h.writeError(w, err)
		return
	}
	records, err := h.Store.ListRecords(r.Context(), employeeID, time.Time{}, h.now())
	if err != nil {
		h.writeError(w, err)
		return
	}

	accountings := make([]engine.DailyAccounting, 0, len(records))
	for _, rec := range records {
		accountings = append(accountings, rec.Accounting)
	}
	h.writeJSON(w, http.StatusOK, toBankDTO(payroll.BankBalance(accountings)))
}

func (h *Handler) ListPeriods(w http.ResponseWriter, r *http.Request) {
	n := 12
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 60 {
			h.badRequest(w, "invalid 'n'")
			return
		}
		n = parsed
	}
	periods := payroll.PastPeriods(n, h.now())
	dtos := make([]PeriodDTO, 0, len(periods))
	for _, p := range periods {
		dtos = append(dtos, toPeriodDTO(p))
	}
	h.writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) ComputeSeverance(w http.ResponseWriter, r *http.Request) {
	var req SeveranceRequest
	if !h.decode(w, r, &req) {
		return
	}

	admission, err := time.Parse(dateLayout, req.AdmissionDate)
	if err != nil {
		h.badRequest(w, "invalid admission_date")
		return
	}
	termination, err := time.Parse(dateLayout, req.TerminationDate)
	if err != nil {
		h.badRequest(w, "invalid termination_date")
		return
	}

	breakdown, err := severance.Compute(severance.Input{
		AdmissionDate:   admission,
		TerminationDate: termination,
		Salary:          decimal.NewFromFloat(req.Salary),
		Reason:          severance.Reason(req.Reason),
		NoticeServed:    req.NoticeServed,
		ExpiredVacation: req.ExpiredVacation,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toSeveranceDTO(breakdown))
}

// =============================================================================
// ADMIN
// =============================================================================

func (h *Handler) RecalculateAll(w http.ResponseWriter, r *http.Request) {
	started := h.now()
	processed, failed, err := h.Recalculate(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, RecalculateResponse{
		Processed: processed,
		Failed:    failed,
		StartedAt: started,
	})
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.badRequest(w, "invalid JSON body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.badRequest(w, err.Error())
		return false
	}
	return true
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case engine.IsClientError(err):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		h.Logger.WithError(err).Error("internal error")
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.Logger.WithError(err).Error("failed to encode response")
	}
}
