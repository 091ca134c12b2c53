/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's value objects from the external API contract. All hour and
  currency quantities serialize as strings (decimal fixed-point), never
  binary floats.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Request types carry go-playground/validator tags; handlers run
  validate.Struct before touching the engine, so the engine only ever
  sees well-formed values (the engine still enforces its own contract).

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/esc4n0rx/pontoflex/engine"
	"github.com/esc4n0rx/pontoflex/payroll"
	"github.com/esc4n0rx/pontoflex/severance"
	"github.com/esc4n0rx/pontoflex/store"
)

const dateLayout = "2006-01-02"

// =============================================================================
// EMPLOYEES
// =============================================================================

type CreateEmployeeRequest struct {
	Name              string  `json:"name" validate:"required"`
	Schedule          string  `json:"schedule" validate:"required,oneof=6x1 5x2"`
	MonthlySalary     float64 `json:"monthly_salary" validate:"required,gt=0"`
	MonthlyHoursQuota float64 `json:"monthly_hours_quota" validate:"required,gt=0"`
}

type EmployeeDTO struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Schedule          string `json:"schedule"`
	MonthlySalary     string `json:"monthly_salary"`
	MonthlyHoursQuota string `json:"monthly_hours_quota"`
}

func toEmployeeDTO(emp store.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:                emp.ID,
		Name:              emp.Name,
		Schedule:          string(emp.Profile.Schedule),
		MonthlySalary:     emp.Profile.MonthlySalary.StringFixed(2),
		MonthlyHoursQuota: emp.Profile.MonthlyHoursQuota.String(),
	}
}

// =============================================================================
// PUNCH RECORDS
// =============================================================================

type SubmitRecordRequest struct {
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	ClockIn    string `json:"clock_in" validate:"required"`
	ClockOut   string `json:"clock_out" validate:"required"`
	NightShift bool   `json:"night_shift"`
}

type RecordDTO struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	ClockIn    string `json:"clock_in"`
	ClockOut   string `json:"clock_out"`
	NightShift bool   `json:"night_shift"`

	TotalHours    string `json:"total_hours"`     // "HH:MM:SS"
	BankedHours   string `json:"banked_hours"`    // "HH:MM:SS"
	OvertimeHours string `json:"overtime_hours"`  // "HH:MM:SS"
	DeficitHours  string `json:"deficit_hours"`   // "HH:MM:SS"
	NightHours    string `json:"night_hours"`     // "HH:MM:SS"
	Holiday       bool   `json:"is_holiday"`
	Multiplier    string `json:"multiplier"`
}

func toRecordDTO(rec store.Record) RecordDTO {
	return RecordDTO{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		Date:          rec.Shift.Date.Format(dateLayout),
		ClockIn:       rec.Shift.ClockIn,
		ClockOut:      rec.Shift.ClockOut,
		NightShift:    rec.Shift.NightShift,
		TotalHours:    engine.FormatHours(rec.Accounting.Total),
		BankedHours:   engine.FormatHours(rec.Accounting.Banked),
		OvertimeHours: engine.FormatHours(rec.Accounting.Overtime),
		DeficitHours:  engine.FormatHours(rec.Accounting.Deficit),
		NightHours:    engine.FormatHours(rec.Accounting.NightDiff),
		Holiday:       rec.Accounting.Holiday,
		Multiplier:    rec.Accounting.Multiplier.String(),
	}
}

// =============================================================================
// PERIODS AND SUMMARIES
// =============================================================================

type PeriodDTO struct {
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func toPeriodDTO(p payroll.Period) PeriodDTO {
	return PeriodDTO{
		Label: p.Label,
		Start: p.Start.Format(dateLayout),
		End:   p.End.Format(dateLayout),
	}
}

type SummaryDTO struct {
	Period        PeriodDTO `json:"period"`
	Records       int       `json:"records"`
	TotalHours    string    `json:"total_hours"`
	BankedHours   string    `json:"banked_hours"`
	OvertimeHours string    `json:"overtime_hours"`
	DeficitHours  string    `json:"deficit_hours"`
	NightHours    string    `json:"night_hours"`
	TotalPayable  string    `json:"total_payable"`
}

func toSummaryDTO(p payroll.Period, count int, s payroll.Summary) SummaryDTO {
	return SummaryDTO{
		Period:        toPeriodDTO(p),
		Records:       count,
		TotalHours:    engine.FormatHours(s.TotalHours),
		BankedHours:   engine.FormatHours(s.BankedHours),
		OvertimeHours: engine.FormatHours(s.OvertimeHours),
		DeficitHours:  engine.FormatHours(s.DeficitHours),
		NightHours:    engine.FormatHours(s.NightHours),
		TotalPayable:  s.TotalPayable.StringFixed(2),
	}
}

// =============================================================================
// HOUR BANK
// =============================================================================

type BankDTO struct {
	TotalCredited string `json:"total_credited"` // "HH:MM:SS"
	TotalDebited  string `json:"total_debited"`  // "HH:MM:SS"
	Balance       string `json:"balance"`        // signed decimal hours
	InDebt        bool   `json:"in_debt"`
	Entries       int    `json:"entries"`
}

func toBankDTO(s payroll.BankStatement) BankDTO {
	return BankDTO{
		TotalCredited: engine.FormatHours(s.TotalCredited),
		TotalDebited:  engine.FormatHours(s.TotalDebited),
		Balance:       s.Balance.String(),
		InDebt:        s.InDebt(),
		Entries:       len(s.Entries),
	}
}

// =============================================================================
// SEVERANCE
// =============================================================================

type SeveranceRequest struct {
	AdmissionDate   string  `json:"admission_date" validate:"required,datetime=2006-01-02"`
	TerminationDate string  `json:"termination_date" validate:"required,datetime=2006-01-02"`
	Salary          float64 `json:"salary" validate:"required,gt=0"`
	Reason          string  `json:"reason" validate:"required,oneof=employee_initiated for_cause without_cause"`
	NoticeServed    bool    `json:"notice_served"`
	ExpiredVacation bool    `json:"expired_vacation"`
}

type SeveranceDTO struct {
	SalaryBalance        string `json:"salary_balance"`
	ExpiredVacationPay   string `json:"expired_vacation_pay"`
	ProportionalVacation string `json:"proportional_vacation"`
	ProportionalThirteen string `json:"proportional_thirteenth"`
	NoticePay            string `json:"notice_pay"`
	FundBalance          string `json:"fund_balance"`
	FundPenalty          string `json:"fund_penalty"`
	TotalPayable         string `json:"total_payable"`
}

func toSeveranceDTO(b severance.Breakdown) SeveranceDTO {
	return SeveranceDTO{
		SalaryBalance:        b.SalaryBalance.StringFixed(2),
		ExpiredVacationPay:   b.ExpiredVacationPay.StringFixed(2),
		ProportionalVacation: b.ProportionalVacation.StringFixed(2),
		ProportionalThirteen: b.ProportionalThirteen.StringFixed(2),
		NoticePay:            b.NoticePay.StringFixed(2),
		FundBalance:          b.FundBalance.StringFixed(2),
		FundPenalty:          b.FundPenalty.StringFixed(2),
		TotalPayable:         b.TotalPayable.StringFixed(2),
	}
}

// =============================================================================
// ADMIN
// =============================================================================

type RecalculateResponse struct {
	Processed int       `json:"processed"`
	Failed    int       `json:"failed"`
	StartedAt time.Time `json:"started_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}
