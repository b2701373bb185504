package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownEmployer is the sentinel used when no employer name could be
// recovered from a deposit row.
const UnknownEmployer = "Unknown"

// ParsedDeposit is one recovered row of the Meitav deposit table.
type ParsedDeposit struct {
	DepositDate time.Time       `json:"deposit_date"`       // day the funds were deposited, UTC midnight
	SalaryMonth time.Time       `json:"salary_month"`       // payroll month, always the 1st, UTC midnight
	Amount      decimal.Decimal `json:"amount"`             // total deposit for the month, in (0, 50000]
	Employer    string          `json:"employer"`           // employer name or UnknownEmployer
	RawText     string          `json:"raw_text,omitempty"` // original source line, kept for debugging
}

// ParseResult is the whole-document outcome of parsing one statement.
// Failures are carried as data in Errors/Warnings; Success is true iff
// at least one deposit was extracted from a recognized Meitav document.
type ParseResult struct {
	Success      bool            `json:"success"`
	Deposits     []ParsedDeposit `json:"deposits"`
	Errors       []string        `json:"errors"`
	Warnings     []string        `json:"warnings"`
	ProviderName string          `json:"provider_name,omitempty"`
	ReportDate   *time.Time      `json:"report_date,omitempty"`
	MemberName   string          `json:"member_name,omitempty"`
}
