package service

import (
	"fmt"
	"log"

	"github.com/pensionbox/meitav-import/client"
	"github.com/pensionbox/meitav-import/dto"
	"github.com/pensionbox/meitav-import/utils/meitav"
)

// StatementService ties the binary-to-text step, the Meitav parser and
// the bulk-import consumer together.
type StatementService struct {
	pdfProcessor PDFProcessor
	importClient *client.ImportClient
}

func NewStatementService(pdfProcessor PDFProcessor, importClient *client.ImportClient) *StatementService {
	return &StatementService{
		pdfProcessor: pdfProcessor,
		importClient: importClient,
	}
}

// ParseStatement extracts text from a statement PDF and runs the deposit
// parser over it. Extraction failures become a failed ParseResult rather
// than an error, so callers always get diagnostics in one shape.
func (s *StatementService) ParseStatement(pdfData []byte, password string) *dto.ParseResult {
	text, err := s.pdfProcessor.ExtractText(pdfData, password)
	if err != nil {
		log.Printf("Statement text extraction failed: %v", err)
		return &dto.ParseResult{
			Success: false,
			Errors:  []string{fmt.Sprintf("failed to read statement: %v", err)},
		}
	}

	result := meitav.Parse(text)
	log.Printf("Parsed statement: success=%v deposits=%d errors=%d warnings=%d",
		result.Success, len(result.Deposits), len(result.Errors), len(result.Warnings))
	return &result
}

// RawText runs only the binary-to-text step, for recognizer debugging.
func (s *StatementService) RawText(pdfData []byte, password string) (string, error) {
	return s.pdfProcessor.ExtractText(pdfData, password)
}

// ImportDeposits forwards parsed deposits to the bulk-import API.
func (s *StatementService) ImportDeposits(accountID string, deposits []dto.ParsedDeposit) error {
	if len(deposits) == 0 {
		return fmt.Errorf("no deposits to import")
	}
	req := dto.NewBulkImportRequest(accountID, deposits)
	if err := s.importClient.BulkImport(req); err != nil {
		return fmt.Errorf("bulk import failed: %w", err)
	}
	log.Printf("Imported %d deposits for account %s", len(deposits), accountID)
	return nil
}
