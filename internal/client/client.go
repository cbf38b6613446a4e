package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Client is the gateway to the Krearsip backend REST API. Every call gets a
// bounded deadline; a request that never resolves cannot hold a busy marker
// forever.
type Client struct {
	logs    *zap.SugaredLogger
	http    *http.Client
	baseURL string
	timeout time.Duration
}

func New(logger *zap.SugaredLogger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		logs:    logger,
		http:    &http.Client{},
		baseURL: baseURL,
		timeout: timeout,
	}
}

// APIError is a non-2xx backend response, carrying the status code so
// callers can branch on cause.
type APIError struct {
	Status int
	Path   string
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d on %s: %s", e.Status, e.Path, e.Detail)
}

type errorBody struct {
	Detail  json.RawMessage `json:"detail,omitempty"`
	Message string          `json:"message,omitempty"`
}

func (c *Client) Nonce(ctx context.Context, alamatWallet string) (string, error) {
	var resp NonceResponse
	err := c.post(ctx, "/auth/nonce", Session{}, NonceRequest{AlamatWallet: alamatWallet}, &resp, true)
	if err != nil {
		return "", err
	}

	return resp.Nonce, nil
}

func (c *Client) VerifySiwe(ctx context.Context, message, signature string) (AuthResponse, error) {
	var resp AuthResponse
	err := c.post(ctx, "/auth/siwe", Session{}, SiweAuthRequest{Message: message, Signature: signature}, &resp, true)
	if err != nil {
		return AuthResponse{}, err
	}

	return resp, nil
}

func (c *Client) Me(ctx context.Context, s Session) (Profile, error) {
	var resp Profile
	err := c.get(ctx, "/auth/me", s, &resp, true)
	if err != nil {
		return Profile{}, err
	}

	return resp, nil
}

func (c *Client) PublicWorks(ctx context.Context, query string) (WorkList, error) {
	path := "/public/works"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}

	var resp WorkList
	err := c.get(ctx, path, Session{}, &resp, true)
	if err != nil {
		return WorkList{}, err
	}

	return resp, nil
}

func (c *Client) PublicWorkDetail(ctx context.Context, id string) (PublicWorkDetail, error) {
	var resp PublicWorkDetail
	err := c.get(ctx, "/public/works/"+url.PathEscape(id), Session{}, &resp, true)
	if err != nil {
		return PublicWorkDetail{}, err
	}

	return resp, nil
}

func (c *Client) MyWorks(ctx context.Context, s Session) (WorkList, error) {
	var resp WorkList
	err := c.get(ctx, "/works", s, &resp, true)
	if err != nil {
		return WorkList{}, err
	}

	return resp, nil
}

func (c *Client) CreateWork(ctx context.Context, s Session, req CreateWorkRequest) (Work, error) {
	if err := req.Validate(); err != nil {
		return Work{}, fmt.Errorf("validate work submission: %w", err)
	}

	var resp Work
	err := c.post(ctx, "/works", s, req, &resp, true)
	if err != nil {
		return Work{}, err
	}

	return resp, nil
}

func (c *Client) AdminWorks(ctx context.Context, s Session, params ListParams) (AdminWorksList, error) {
	values := url.Values{}
	if params.Status != "" {
		values.Set("status", params.Status)
	}
	if params.Queue != "" {
		values.Set("queue", params.Queue)
	}
	if params.Search != "" {
		values.Set("search", params.Search)
	}
	if params.Limit > 0 {
		values.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		values.Set("offset", strconv.Itoa(params.Offset))
	}

	path := "/admin/works"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp AdminWorksList
	err := c.get(ctx, path, s, &resp, true)
	if err != nil {
		return AdminWorksList{}, err
	}

	return resp, nil
}

func (c *Client) Approve(ctx context.Context, s Session, id string) (AdminWorkItem, error) {
	return c.adminAction(ctx, s, id, "approve", struct{}{})
}

func (c *Client) Reject(ctx context.Context, s Session, id, reason string) (AdminWorkItem, error) {
	return c.adminAction(ctx, s, id, "reject", RejectRequest{Reason: reason})
}

func (c *Client) DeployWork(ctx context.Context, s Session, id string) (AdminWorkItem, error) {
	return c.adminAction(ctx, s, id, "deploy", struct{}{})
}

func (c *Client) Verify(ctx context.Context, s Session, id string) (AdminWorkItem, error) {
	return c.adminAction(ctx, s, id, "verify", struct{}{})
}

func (c *Client) SyncTx(ctx context.Context, s Session, txHash string) (SyncResult, error) {
	var resp SyncResult
	// action responses carry extra columns, decode leniently
	err := c.post(ctx, "/admin/sync-tx/"+url.PathEscape(txHash), s, struct{}{}, &resp, false)
	if err != nil {
		return SyncResult{}, err
	}

	return resp, nil
}

func (c *Client) adminAction(ctx context.Context, s Session, id, action string, body any) (AdminWorkItem, error) {
	var resp AdminWorkItem
	path := "/admin/works/" + url.PathEscape(id) + "/" + action
	err := c.post(ctx, path, s, body, &resp, false)
	if err != nil {
		return AdminWorkItem{}, err
	}

	return resp, nil
}

func (c *Client) get(ctx context.Context, path string, s Session, out any, strict bool) error {
	return c.do(ctx, http.MethodGet, path, s, nil, out, strict)
}

func (c *Client) post(ctx context.Context, path string, s Session, body any, out any, strict bool) error {
	return c.do(ctx, http.MethodPost, path, s, body, out, strict)
}

func (c *Client) do(ctx context.Context, method, path string, s Session, body, out any, strict bool) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if s.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			Status: resp.StatusCode,
			Path:   path,
			Detail: errorDetail(resp),
		}
		c.logs.Errorw("backend request failed",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"detail", apiErr.Detail)
		return apiErr
	}

	if out == nil {
		return nil
	}

	if err := decodeResponse(resp.Body, out, strict); err != nil {
		return fmt.Errorf("decode response of %s %s: %w", method, path, err)
	}

	return nil
}

// decodeResponse parses a JSON response. Strict decoding rejects unknown
// fields for endpoints whose documented shape is exhaustive; action
// responses are decoded leniently.
func decodeResponse(r io.Reader, out any, strict bool) error {
	decoder := json.NewDecoder(r)
	if strict {
		decoder.DisallowUnknownFields()
	}

	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}

func errorDetail(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(raw) == 0 {
		return resp.Status
	}

	var parsed errorBody
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return string(raw)
	}

	if parsed.Message != "" {
		return parsed.Message
	}

	if len(parsed.Detail) > 0 {
		var detailStr string
		if err := json.Unmarshal(parsed.Detail, &detailStr); err == nil {
			return detailStr
		}
		return string(parsed.Detail)
	}

	return string(raw)
}
