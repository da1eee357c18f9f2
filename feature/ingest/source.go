package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RawRecord is one source-defined device record. Sources disagree on field
// naming and casing; the normalizer resolves that.
type RawRecord map[string]any

// FetchError reports a failed source fetch: unreachable endpoint, timeout,
// non-2xx response, or a malformed body.
type FetchError struct {
	// Source is the label of the source that failed.
	Source string
	// Err is the underlying cause.
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch from %s failed: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher pulls device lists from external sources over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a fetcher whose requests are bounded by timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// sourceEnvelope is the wrapped list shape some sources respond with.
type sourceEnvelope struct {
	Data []RawRecord `json:"data"`
}

// Fetch retrieves the device list from one source. An empty list is a
// valid result, not an error. Fetch does not retry; a failed source fails
// the whole run and retries belong to the scheduler re-triggering the job.
func (f *Fetcher) Fetch(ctx context.Context, src Source) ([]RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.Endpoint+"/devices", nil)
	if err != nil {
		return nil, &FetchError{Source: src.Label, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: src.Label, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Source: src.Label, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: src.Label, Err: err}
	}

	records, err := decodeDeviceList(body)
	if err != nil {
		return nil, &FetchError{Source: src.Label, Err: err}
	}
	return records, nil
}

// decodeDeviceList accepts either a bare JSON array of records or the
// {"data": [...]} envelope the stock sources emit.
func decodeDeviceList(body []byte) ([]RawRecord, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []RawRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("invalid device list: %w", err)
		}
		if records == nil {
			records = []RawRecord{}
		}
		return records, nil
	}

	var envelope sourceEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("invalid device list: %w", err)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("invalid device list: body is neither an array nor a data envelope")
	}
	return envelope.Data, nil
}
