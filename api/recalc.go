/*
recalc.go - Bulk recompute orchestration and its cron schedule

PURPOSE:
  Re-derives every stored record's accounting from its raw shift inputs.
  This is the adapter around engine.RecomputeAll: it loads the snapshot,
  groups records per employee (each employee has their own profile),
  runs the concurrent recompute and writes the derived fields back.

  The same routine serves two callers:
  - POST /api/admin/recalculate (manual trigger)
  - a nightly cron job (RecalcScheduler)

  Per-record failures don't abort the batch; they are logged and counted,
  matching the original bulk-recompute behavior.

SEE ALSO:
  - engine/recompute.go: The pure concurrent map
  - handlers.go: The HTTP trigger
*/
package api

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/esc4n0rx/pontoflex/engine"
	"github.com/esc4n0rx/pontoflex/store"
)

// Recalculate re-derives all stored records. Returns how many records
// were successfully rewritten and how many failed.
func (h *Handler) Recalculate(ctx context.Context) (processed, failed int, err error) {
	records, err := h.Store.ListAllRecords(ctx)
	if err != nil {
		return 0, 0, err
	}

	byEmployee := make(map[string][]store.Record)
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = append(byEmployee[rec.EmployeeID], rec)
	}

	for employeeID, recs := range byEmployee {
		emp, err := h.Store.GetEmployee(ctx, employeeID)
		if err != nil {
			h.Logger.WithError(err).WithField("employee_id", employeeID).
				Error("recalculate: employee lookup failed")
			failed += len(recs)
			continue
		}

		shifts := make([]engine.Shift, len(recs))
		for i, rec := range recs {
			shifts[i] = rec.Shift
		}

		results := h.Accountant.RecomputeAll(ctx, shifts, &emp.Profile, engine.DefaultRecomputeWorkers)
		for _, res := range results {
			rec := recs[res.Index]
			if res.Err != nil {
				h.Logger.WithError(res.Err).WithField("record_id", rec.ID).
					Warn("recalculate: record failed")
				failed++
				continue
			}
			if err := h.Store.UpdateAccounting(ctx, rec.ID, res.Accounting); err != nil {
				h.Logger.WithError(err).WithField("record_id", rec.ID).
					Error("recalculate: update failed")
				failed++
				continue
			}
			processed++
		}
	}

	h.Logger.WithFields(logrus.Fields{
		"processed": processed,
		"failed":    failed,
	}).Info("bulk recalculate finished")
	return processed, failed, nil
}

// =============================================================================
// SCHEDULER
// =============================================================================

// RecalcScheduler runs the bulk recompute on a cron schedule, so derived
// fields converge after rule or holiday-table changes without manual
// intervention.
type RecalcScheduler struct {
	Handler *Handler
	Spec    string // cron expression, e.g. "0 3 * * *"

	cron *cron.Cron
}

// NewRecalcScheduler creates a scheduler; Spec defaults to 03:00 daily.
func NewRecalcScheduler(h *Handler, spec string) *RecalcScheduler {
	if spec == "" {
		spec = "0 3 * * *"
	}
	return &RecalcScheduler{Handler: h, Spec: spec}
}

// Start registers the job and starts the cron loop.
func (s *RecalcScheduler) Start() error {
	s.cron = cron.New()
	_, err := s.cron.AddFunc(s.Spec, func() {
		if _, _, err := s.Handler.Recalculate(context.Background()); err != nil {
			s.Handler.Logger.WithError(err).Error("scheduled recalculate failed")
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.Handler.Logger.WithField("spec", s.Spec).Info("recalculate scheduler started")
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *RecalcScheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}
