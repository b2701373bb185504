package service

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFProcessor is the binary-to-text boundary of the parser. Tests
// substitute a fake implementation.
type PDFProcessor interface {
	ExtractText(pdfData []byte, password string) (string, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// ExtractText returns the plain text of a statement PDF, decrypting it
// first when a password is given. ledongthuc/pdf panics on some
// malformed files, so panics are converted to errors here; a non-error
// panic value is reported distinctly from an error one.
func (p *pdfProcessor) ExtractText(pdfData []byte, password string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("pdf text extraction failed: %w", e)
			} else {
				err = fmt.Errorf("pdf text extraction failed: unexpected failure: %v", r)
			}
		}
	}()

	if password != "" {
		pdfData, err = decryptPDF(pdfData, password)
		if err != nil {
			return "", fmt.Errorf("failed to decrypt pdf: %w", err)
		}
	}

	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", err
	}

	var textBuilder bytes.Buffer
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, _ := page.GetTextByRow()
		for _, row := range rows {
			for _, word := range row.Content {
				textBuilder.WriteString(word.S)
			}
			textBuilder.WriteString("\n")
		}
	}
	return textBuilder.String(), nil
}

// decryptPDF removes password protection using pdfcpu. pdfcpu's decrypt
// API is file-based, so the data takes a round trip through temp files.
func decryptPDF(pdfData []byte, password string) ([]byte, error) {
	inFile, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(inFile.Name())

	if _, err := inFile.Write(pdfData); err != nil {
		inFile.Close()
		return nil, fmt.Errorf("failed to write pdf data: %w", err)
	}
	inFile.Close()

	outFile, err := os.CreateTemp("", "statement-decrypted-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	outFile.Close()
	defer os.Remove(outFile.Name())

	conf := model.NewDefaultConfiguration()
	conf.UserPW = password

	if err := api.DecryptFile(inFile.Name(), outFile.Name(), conf); err != nil {
		return nil, err
	}

	return os.ReadFile(outFile.Name())
}
