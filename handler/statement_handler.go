package handler

import (
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/pensionbox/meitav-import/dto"
	"github.com/pensionbox/meitav-import/service"

	"github.com/gin-gonic/gin"
)

type StatementHandler struct {
	statementService *service.StatementService
	maxFileSize      int64
}

func NewStatementHandler(statementService *service.StatementService, maxFileSize int64) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
		maxFileSize:      maxFileSize,
	}
}

// ParseStatement handles POST /statements/parse
func (h *StatementHandler) ParseStatement(c *gin.Context) {
	log.Println("Received statement parse request")

	req, data, ok := h.readStatement(c)
	if !ok {
		return
	}

	result := h.statementService.ParseStatement(data, req.Password)

	// Partial results and diagnostics travel together; a failed parse is
	// still a well-formed response, not an HTTP error.
	c.JSON(http.StatusOK, result)
}

// RawText handles POST /statements/raw-text: binary-to-text only, for
// tuning the recognizers against a real statement.
func (h *StatementHandler) RawText(c *gin.Context) {
	req, data, ok := h.readStatement(c)
	if !ok {
		return
	}

	text, err := h.statementService.RawText(data, req.Password)
	if err != nil {
		h.sendError(c, http.StatusUnprocessableEntity, "Failed to extract statement text", err)
		return
	}

	c.JSON(http.StatusOK, dto.RawTextResponse{Text: text})
}

// ImportStatement handles POST /statements/import: parse, then forward
// the recovered deposits to the bulk-import API.
func (h *StatementHandler) ImportStatement(c *gin.Context) {
	log.Println("Received statement import request")

	req, data, ok := h.readStatement(c)
	if !ok {
		return
	}
	if req.AccountID == "" {
		h.sendError(c, http.StatusBadRequest, "account_id is required", nil)
		return
	}

	result := h.statementService.ParseStatement(data, req.Password)
	if !result.Success {
		c.JSON(http.StatusUnprocessableEntity, dto.ImportResponse{
			Imported: 0,
			Errors:   result.Errors,
			Warnings: result.Warnings,
		})
		return
	}

	if err := h.statementService.ImportDeposits(req.AccountID, result.Deposits); err != nil {
		h.sendError(c, http.StatusBadGateway, "Failed to import deposits", err)
		return
	}

	c.JSON(http.StatusOK, dto.ImportResponse{
		Imported: len(result.Deposits),
		Errors:   result.Errors,
		Warnings: result.Warnings,
	})
}

// readStatement binds and validates the multipart request and reads the
// uploaded file into memory. On failure it writes the error response and
// returns ok=false.
func (h *StatementHandler) readStatement(c *gin.Context) (*dto.StatementRequest, []byte, bool) {
	var req dto.StatementRequest
	if err := c.ShouldBind(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to parse multipart form", err)
		return nil, nil, false
	}

	if err := req.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return nil, nil, false
	}

	if req.File.Size > h.maxFileSize {
		h.sendError(c, http.StatusRequestEntityTooLarge, "Statement file is too large", nil)
		return nil, nil, false
	}

	data, err := readFile(req.File)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to read uploaded file", err)
		return nil, nil, false
	}

	return &req, data, true
}

func readFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// sendError sends a structured error response
func (h *StatementHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "STATEMENT_PARSE_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
