package meitav

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pensionbox/meitav-import/dto"
	"github.com/shopspring/decimal"
)

// maxDepositAmount is a sanity bound on a single monthly pension deposit.
// Amounts above it are treated as mis-extraction, not as legitimate
// large deposits.
var maxDepositAmount = decimal.NewFromInt(50000)

// errNotDataRow marks lines that are not deposit rows at all (headers,
// free text, summaries). These are skipped silently; most lines in a
// statement are not data rows.
var errNotDataRow = errors.New("not a data row")

// headerMarkers are column-label phrases from the deposit table header.
var headerMarkers = []string{
	"שם מעסיק",
	"חודש שכר",
	"תאריך הפקדה",
}

// totalMarkers are the spellings of סה"כ used on subtotal rows.
var totalMarkers = []string{
	"סה\"כ",
	"סה״כ",
	"סה”כ",
}

// extractRow classifies one statement line and, for deposit rows,
// extracts the typed record. A nil deposit with errNotDataRow means the
// line was noise; any other error is a real rejected row.
func extractRow(line string) (*dto.ParsedDeposit, error) {
	if !isCandidateRow(line) {
		return nil, errNotDataRow
	}
	if isHeaderOrSummary(line) {
		return nil, errNotDataRow
	}

	depositDate, dateStart, ok := findDepositDate(line)
	if !ok {
		return nil, errors.New("no deposit date")
	}

	salaryMonth, monthStart, ok := findSalaryMonth(line, dateStart)
	if !ok {
		return nil, errors.New("no salary month")
	}

	employer, ok := findEmployer(line)
	if !ok {
		employer = dto.UnknownEmployer
	}

	// Everything before the salary-month token is the concatenated
	// numeric columns; the first number in reading order is the total.
	amount, ok := findFirstAmount(line[:monthStart])
	if !ok {
		return nil, errors.New("could not extract amounts")
	}
	if amount.GreaterThan(maxDepositAmount) {
		return nil, fmt.Errorf("invalid amount %s", amount)
	}

	return &dto.ParsedDeposit{
		DepositDate: depositDate,
		SalaryMonth: salaryMonth,
		Amount:      amount,
		Employer:    employer,
		RawText:     line,
	}, nil
}

// isCandidateRow is the row gate: a deposit row must carry a full date
// pattern, a legal-entity suffix and a standalone month/year candidate
// before the date.
func isCandidateRow(line string) bool {
	loc := depositDateRe.FindStringIndex(line)
	if loc == nil {
		return false
	}
	if !containsLegalSuffix(line) {
		return false
	}
	return monthYearRe.MatchString(line[:loc[0]])
}

// isHeaderOrSummary rejects table headers and subtotal rows that could
// otherwise pass the gate.
func isHeaderOrSummary(line string) bool {
	for _, marker := range headerMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	for _, marker := range totalMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// findSalaryMonth resolves the MM/YYYY vs DD/MM/YYYY overlap. The
// provider prints the salary month immediately before the deposit date,
// so a month/year token ending where the date starts is the primary
// match; otherwise fall back to the leftmost month/year in the text
// before the date.
func findSalaryMonth(line string, dateStart int) (time.Time, int, bool) {
	prefix := line[:dateStart]

	if loc := adjacentMonthRe.FindStringIndex(prefix); loc != nil {
		if t, ok := parseSalaryMonth(prefix[loc[0]:loc[1]]); ok {
			return t, loc[0], true
		}
	}

	for _, loc := range monthYearRe.FindAllStringIndex(prefix, -1) {
		if t, ok := parseSalaryMonth(prefix[loc[0]:loc[1]]); ok {
			return t, loc[0], true
		}
	}

	return time.Time{}, 0, false
}
