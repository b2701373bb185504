package service

import (
	"errors"
	"testing"
	"time"

	"github.com/pensionbox/meitav-import/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// fakePDFProcessor substitutes the binary-to-text boundary in tests.
type fakePDFProcessor struct {
	text string
	err  error
}

func (f *fakePDFProcessor) ExtractText(pdfData []byte, password string) (string, error) {
	return f.text, f.err
}

const sampleStatement = `דוח תקופתי לעמית
מיטב דש גמל ופנסיה בע"מ
שם העמית: ישראל ישראלי תאריך הדוח: 15.02.2025
שם מעסיקחודש שכרתאריך הפקדהסכום הפקדה
3,1551,0501,0551,05010,50012/202402/01/2025אלפא טכנולוגיות בע"מ
`

func TestParseStatement(t *testing.T) {
	svc := NewStatementService(&fakePDFProcessor{text: sampleStatement}, nil)

	result := svc.ParseStatement([]byte("%PDF"), "")

	assert.True(t, result.Success)
	assert.Equal(t, 1, len(result.Deposits))
	assert.Equal(t, "3155", result.Deposits[0].Amount.String())
}

func TestParseStatementExtractionFailure(t *testing.T) {
	svc := NewStatementService(&fakePDFProcessor{err: errors.New("broken xref table")}, nil)

	result := svc.ParseStatement([]byte("not a pdf"), "")

	assert.False(t, result.Success)
	assert.Empty(t, result.Deposits)
	assert.Equal(t, 1, len(result.Errors))
	assert.Contains(t, result.Errors[0], "failed to read statement")
	assert.Contains(t, result.Errors[0], "broken xref table")
}

func TestRawTextPassthrough(t *testing.T) {
	svc := NewStatementService(&fakePDFProcessor{text: sampleStatement}, nil)

	text, err := svc.RawText([]byte("%PDF"), "")

	assert.NoError(t, err)
	assert.Equal(t, sampleStatement, text)
}

func TestImportDepositsRequiresDeposits(t *testing.T) {
	svc := NewStatementService(&fakePDFProcessor{}, nil)

	err := svc.ImportDeposits("acc-1", nil)

	assert.Error(t, err)
}

func TestExtractTextRejectsInvalidPDF(t *testing.T) {
	// malformed input must surface as an error, never a panic
	p := NewPDFProcessor()

	_, err := p.ExtractText([]byte("not a pdf at all"), "")

	assert.Error(t, err)
}

func TestBulkImportRequestMapping(t *testing.T) {
	deposits := []dto.ParsedDeposit{
		{
			DepositDate: time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
			SalaryMonth: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.NewFromInt(3155),
			Employer:    `אלפא טכנולוגיות בע"מ`,
			RawText:     "should not be exported",
		},
	}

	req := dto.NewBulkImportRequest("acc-1", deposits)

	assert.Equal(t, "acc-1", req.AccountID)
	assert.Equal(t, 1, len(req.Deposits))
	assert.Equal(t, "2025-01-02", req.Deposits[0].DepositDate)
	assert.Equal(t, "2024-12-01", req.Deposits[0].SalaryMonth)
	assert.Equal(t, 3155.0, req.Deposits[0].Amount)
	assert.Equal(t, `אלפא טכנולוגיות בע"מ`, req.Deposits[0].Employer)
}
