package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bannerstore/internal/config"
	"bannerstore/internal/domain/catalog"
	"bannerstore/pkg/logger"
)

// Client reads the products table through the hosted backend's REST
// interface, one page at a time.
type Client struct {
	httpClient *http.Client
	cfg        config.CatalogConfig
	logger     logger.Logger
}

func NewClient(cfg config.CatalogConfig, log logger.Logger) *Client {
	return &Client{
		cfg:    cfg,
		logger: log,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
		},
	}
}

// FetchProducts pages through /products ordered by id until a short page
// comes back.
func (c *Client) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	if c.cfg.BackendURL == "" || c.cfg.APIKey == "" {
		return nil, fmt.Errorf("catalog backend url or api key is empty")
	}

	pageSize := c.cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	sleep := time.Duration(c.cfg.SleepMS) * time.Millisecond
	if sleep < 0 {
		sleep = 0
	}

	base, err := url.Parse(c.cfg.BackendURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog backend url: %w", err)
	}

	all := make([]catalog.Product, 0)
	for offset := 0; ; offset += pageSize {
		page, err := c.fetchPage(ctx, base, pageSize, offset)
		if err != nil {
			return all, err
		}
		all = append(all, page...)
		c.logger.Debug("fetched catalog page",
			logger.Int("offset", offset),
			logger.Int("count", len(page)),
		)

		if len(page) < pageSize {
			return all, nil
		}

		select {
		case <-ctx.Done():
			return all, ctx.Err()
		case <-time.After(sleep):
		}
	}
}

func (c *Client) fetchPage(ctx context.Context, base *url.URL, limit, offset int) ([]catalog.Product, error) {
	u := *base
	u.Path = base.Path + "/products"

	q := u.Query()
	q.Set("select", "*")
	q.Set("order", "id.asc")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.cfg.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call catalog backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog backend status %d", resp.StatusCode)
	}

	var rows []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	// rows without is_active are live, same as in catalog files
	page := make([]catalog.Product, 0, len(rows))
	for i, row := range rows {
		p := catalog.Product{Active: true}
		if err := json.Unmarshal(row, &p); err != nil {
			return nil, fmt.Errorf("decode product at offset %d: %w", offset+i, err)
		}
		page = append(page, p)
	}
	return page, nil
}
