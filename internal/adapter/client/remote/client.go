// Package remote looks up products, orders and order details in the sibling
// services over HTTP. Every lookup is guarded by a resilience.Caller.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gad/ecommerce-msvc/internal/adapter/config"
	"github.com/gad/ecommerce-msvc/internal/adapter/dto"
	"github.com/gad/ecommerce-msvc/internal/core/domain"
	"go.uber.org/zap"
)

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func newHTTPClient(conf *config.Remote, log *zap.Logger) *httpClient {
	base := strings.TrimRight(conf.HostString, "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}
	return &httpClient{
		baseURL: base,
		client:  &http.Client{Timeout: conf.Timeout},
		logger:  log,
	}
}

// get fetches path+id and decodes the data field of the response envelope.
// A 404 or an envelope without data is reported as *domain.RemoteNotFoundError.
func get[T any](ctx context.Context, c *httpClient, resource, path, id string) (*T, error) {
	requestStr := c.baseURL + path + id
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error on %s : %w", requestStr, err)
	}

	c.logger.Debug("Fire remote request",
		zap.String("resource", resource), zap.String("id", id))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &domain.RemoteNotFoundError{Resource: resource, ID: id}
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("unexpected status for request",
			zap.String("resource", resource), zap.String("id", id), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	var result dto.Envelope[T]
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}
	if result.Data == nil {
		return nil, &domain.RemoteNotFoundError{Resource: resource, ID: id}
	}

	return result.Data, nil
}
