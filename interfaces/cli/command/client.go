package command

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"seo-backoffice/domain/dto"
	"seo-backoffice/interfaces/api/middleware"
)

// Client talks to the back-office HTTP API.
type Client struct {
	baseURL string
	session string
	http    *http.Client
}

func NewClient(server, session string) *Client {
	baseURL := server
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	// deadline มาจาก ctx ของแต่ละคำสั่ง import ยาวได้โดยไม่ถูกตัด
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		session: session,
		http:    &http.Client{},
	}
}

// APIError is the error envelope returned by the server.
type APIError struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
}

func (c *Client) Login(ctx context.Context, pseudo, password string) (*dto.LoginResponse, error) {
	body, err := json.Marshal(dto.LoginRequest{Pseudo: pseudo, Password: password})
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/v1/admin/auth", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, parseError(resp)
	}

	var out dto.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return &out, nil
}

func (c *Client) Tables(ctx context.Context) ([]dto.TableInfo, error) {
	var out []dto.TableInfo
	if err := c.call(ctx, http.MethodGet, "/api/v1/seo/tables", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Template(ctx context.Context, table string) (*dto.TemplateResponse, error) {
	var out dto.TemplateResponse
	if err := c.call(ctx, http.MethodGet, "/api/v1/seo/"+url.PathEscape(table)+"/template", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Import(ctx context.Context, table string, payload []byte) (*dto.ImportResult, error) {
	var out dto.ImportResult
	if err := c.call(ctx, http.MethodPost, "/api/v1/seo/"+url.PathEscape(table)+"/import", bytes.NewReader(payload), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Snapshot(ctx context.Context) (*dto.SnapshotResult, error) {
	var out dto.SnapshotResult
	if err := c.call(ctx, http.MethodPost, "/api/v1/seo/snapshots", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Export returns the raw export file and the filename the server suggests.
func (c *Client) Export(ctx context.Context, table string) (*dto.ExportFile, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/v1/seo/"+url.PathEscape(table)+"/export", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, parseError(resp)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}

	filename := table + ".json"
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		filename = params["filename"]
	}
	return &dto.ExportFile{Filename: filename, Content: content}, nil
}

func (c *Client) call(ctx context.Context, method, path string, body io.Reader, target any) error {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseError(resp)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	if target == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, target); err != nil {
		return fmt.Errorf("parse response data: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != "" {
		req.Header.Set(middleware.AdminSessionHeader, c.session)
	}
	req.Header.Set("User-Agent", "seoctl/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

func parseError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error != nil {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
	}
	return apiErr
}
