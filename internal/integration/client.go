package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/go-sod/sax/internal/httputil"
	"github.com/go-sod/sax/internal/report/model"
)

type prefixRoundTripper struct {
	addr string
	rt   http.RoundTripper
}

func (p *prefixRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	u := r.URL
	if u.Scheme == "" {
		u.Scheme = "http"
	}
	if u.Host == "" {
		u.Host = p.addr
	}

	return p.rt.RoundTrip(r)
}

// NewClient returns a client for the server listening on addr.
func NewClient(addr string, cfg httputil.HTTPClientConfig) (*Client, error) {
	c, err := httputil.NewClientFromConfig(cfg, false)
	if err != nil {
		return nil, err
	}
	c.Transport = &prefixRoundTripper{addr: addr, rt: c.Transport}
	return &Client{client: c}, nil
}

type Client struct {
	client *http.Client
}

func (c *Client) SAX(ctx context.Context, r SAXRequest) (*SAXResponse, error) {
	var resp SAXResponse
	if err := c.post(ctx, "/sax", r, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) HotSAX(ctx context.Context, r HotSAXRequest) (*HotSAXResponse, error) {
	var resp HotSAXResponse
	if err := c.post(ctx, "/hotsax", r, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) VSM(ctx context.Context, r VSMRequest) (*VSMResponse, error) {
	var resp VSMResponse
	if err := c.post(ctx, "/vsm", r, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Report(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "/reports/"+id.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create new request: %w", err)
	}
	var report model.Report
	if err := c.do(req, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return fmt.Errorf("create new request: %w", err)
	}
	return c.do(req, nil)
}

func (c *Client) post(ctx context.Context, path string, body, dst interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("unable marshal %s request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, dst)
}

func (c *Client) do(req *http.Request, dst interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("error with sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode, Body: string(bytes.TrimSpace(body))}
	}
	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("unable decode %s response: %w", req.URL.Path, err)
	}
	return nil
}
