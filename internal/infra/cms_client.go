package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"honesttour/pkg/utils"
)

// CMSClient wraps the headless CMS REST API with bearer auth, a fixed
// timeout and request/response logging. Every call is a single attempt;
// callers decide what to substitute on failure.
type CMSClient struct {
	HTTP    *http.Client
	BaseURL string
	Token   string
}

func NewCMSClient(cfg Config) *CMSClient {
	return &CMSClient{
		HTTP:    &http.Client{Timeout: cfg.CMSTimeout},
		BaseURL: strings.TrimRight(cfg.CMSBaseURL, "/"),
		Token:   cfg.CMSToken,
	}
}

func (c *CMSClient) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *CMSClient) Post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *CMSClient) Put(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *CMSClient) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *CMSClient) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	if c.BaseURL == "" {
		return utils.ErrCMSUnavailable
	}

	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cms marshal body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("cms build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	log.Printf("CMS request: %s %s", method, path)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Printf("CMS request error: %s %s: %v", method, path, err)
		return fmt.Errorf("%w: %v", utils.ErrCMSUnavailable, err)
	}
	defer resp.Body.Close()

	log.Printf("CMS response: %d %s", resp.StatusCode, path)

	if resp.StatusCode == http.StatusNotFound {
		return utils.ErrCMSRecordNotFound
	}
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%w: status %s", utils.ErrCMSUnavailable, resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cms decode: %w", err)
	}
	return nil
}
