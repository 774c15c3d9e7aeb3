package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"marketcrown/backend-go/internal/metrics"
)

const maxUpstreamBody = 4 << 20

// getUpstream performs one GET against a vendor API. Non-2xx answers come back
// as *UpstreamError; there is no retry.
func getUpstream(ctx context.Context, hc *http.Client, source, url string, header http.Header) ([]byte, error) {
	start := time.Now()
	b, err := doGet(ctx, hc, source, url, header)
	metrics.RecordUpstreamCall(source, err == nil, time.Since(start))
	return b, err
}

func doGet(ctx context.Context, hc *http.Client, source, url string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	res, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", source, err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(io.LimitReader(res.Body, maxUpstreamBody))
	if err != nil {
		return nil, fmt.Errorf("%s read body: %w", source, err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		snippet := body
		if len(snippet) > 256 {
			snippet = snippet[:256]
		}
		return nil, &UpstreamError{Source: source, Status: res.StatusCode, Body: string(snippet)}
	}
	return body, nil
}

func logFailure(log logrus.FieldLogger, source, symbol string, err error) {
	entry := log.WithFields(logrus.Fields{"source": source}).WithError(err)
	if symbol != "" {
		entry = entry.WithField("symbol", symbol)
	}
	var ue *UpstreamError
	if errors.As(err, &ue) {
		entry = entry.WithField("status", ue.Status)
	}
	entry.Warn("upstream fetch failed")
}
