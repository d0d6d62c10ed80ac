package wsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ofx-tools/wsexport/pkg/config"
)

// Client issues authenticated GraphQL requests against the brokerage API.
// Every call is a single best-effort attempt: no retries and no timeout, the
// export is an interactive action and the caller aborts on the first failure.
type Client struct {
	endpoint        string
	token           string
	identityID      string
	pageSize        int
	accountPageSize int
	hc              *http.Client
}

func New(cfg config.Config, token, identityID string) *Client {
	return &Client{
		endpoint:        cfg.Endpoint,
		token:           token,
		identityID:      identityID,
		pageSize:        cfg.PageSize,
		accountPageSize: cfg.AccountPageSize,
		hc:              http.DefaultClient,
	}
}

// FetchError is any non-success HTTP status from the brokerage API. It keeps
// the raw response body for diagnosis and is fatal to the export action.
type FetchError struct {
	StatusCode int
	Body       string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("brokerage API returned status %d: %s", e.StatusCode, e.Body)
}

type request struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
}

// do posts one GraphQL request and returns the raw data payload.
func (c *Client) do(ctx context.Context, operationName, query string, vars map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(request{
		OperationName: operationName,
		Query:         query,
		Variables:     vars,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", operationName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", operationName, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	logrus.Debugf("issuing %s request", operationName)
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s request: %w", operationName, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", operationName, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", operationName, err)
	}

	return envelope.Data, nil
}
