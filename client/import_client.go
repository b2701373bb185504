package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/pensionbox/meitav-import/dto"
)

// ImportClient posts parsed deposits to the bulk-import API of the main
// pension-tracking backend.
type ImportClient struct {
	apiURL     string
	httpClient *http.Client
}

func NewImportClient(apiURL string) *ImportClient {
	return &ImportClient{
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BulkImport sends one bulk-import payload. Non-2xx responses are
// returned as errors with the response body for context.
func (c *ImportClient) BulkImport(req dto.BulkImportRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal import payload: %w", err)
	}

	resp, err := c.httpClient.Post(c.apiURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to call import API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("import API returned status %d: %s", resp.StatusCode, string(body))
	}

	log.Printf("Import API accepted %d deposits for account %s", len(req.Deposits), req.AccountID)
	return nil
}
