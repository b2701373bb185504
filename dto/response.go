package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// RawTextResponse carries the unprocessed statement text for recognizer
// debugging.
type RawTextResponse struct {
	Text string `json:"text"`
}

// ImportResponse reports a bulk import outcome, including row-level
// diagnostics so callers can show partial success.
type ImportResponse struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// DepositImport is the exported shape of one deposit as the bulk-import
// API expects it: ISO-8601 dates, plain numeric amount, no raw text.
type DepositImport struct {
	DepositDate string  `json:"deposit_date"`
	SalaryMonth string  `json:"salary_month"`
	Amount      float64 `json:"amount"`
	Employer    string  `json:"employer"`
}

// BulkImportRequest is the payload sent to the bulk-import API.
type BulkImportRequest struct {
	AccountID string          `json:"account_id"`
	Deposits  []DepositImport `json:"deposits"`
}

const isoDate = "2006-01-02"

// NewBulkImportRequest maps parsed deposits to the bulk-import payload.
func NewBulkImportRequest(accountID string, deposits []ParsedDeposit) BulkImportRequest {
	req := BulkImportRequest{
		AccountID: accountID,
		Deposits:  make([]DepositImport, 0, len(deposits)),
	}
	for _, d := range deposits {
		req.Deposits = append(req.Deposits, DepositImport{
			DepositDate: d.DepositDate.UTC().Format(isoDate),
			SalaryMonth: d.SalaryMonth.UTC().Format(isoDate),
			Amount:      d.Amount.InexactFloat64(),
			Employer:    d.Employer,
		})
	}
	return req
}
