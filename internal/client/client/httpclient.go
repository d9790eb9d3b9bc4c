package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/wordsearch/internal/common"
	"github.com/gorilla/websocket"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type HTTPClient struct {
	baseURL     *url.URL
	http        *http.Client
	dialer      *websocket.Dialer
	conn        *grpc.ClientConn
	health      healthpb.HealthClient
	accessToken string
}

func NewWordsearchClient(baseURL, healthAddr string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q: scheme must be http or https", baseURL)
	}

	conn, err := grpc.NewClient(healthAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}

	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		dialer:  &websocket.Dialer{HandshakeTimeout: timeout},
		conn:    conn,
		health:  healthpb.NewHealthClient(conn),
	}, nil
}

func (c *HTTPClient) Close() error {
	return c.conn.Close()
}

// Ping asks the health service whether the server is SERVING.
func (c *HTTPClient) Ping(ctx context.Context) error {
	resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("%w: status %s", ErrUnavailable, resp.GetStatus())
	}
	return nil
}

type credentials struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type answerRequest struct {
	Category string `json:"category"`
	Answer   string `json:"answer"`
}

type answerResponse struct {
	Status  string `json:"status"`
	Message bool   `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (c *HTTPClient) Register(ctx context.Context, userID string, password []byte) error {
	err := c.do(ctx, http.MethodPost, "/signup", credentials{UserID: userID, Password: string(password)}, nil)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest {
		return ErrAlreadyExists
	}
	return err
}

// Login keeps the issued access token for later calls.
func (c *HTTPClient) Login(ctx context.Context, userID string, password []byte) error {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", credentials{UserID: userID, Password: string(password)}, &resp); err != nil {
		return err
	}
	if !strings.EqualFold(resp.TokenType, common.TokenType) || resp.AccessToken == "" {
		return fmt.Errorf("unexpected token type %q", resp.TokenType)
	}
	c.accessToken = resp.AccessToken
	return nil
}

func (c *HTTPClient) Logout() {
	c.accessToken = ""
}

func (c *HTTPClient) CheckAnswer(ctx context.Context, category, answer string) (bool, error) {
	if c.accessToken == "" {
		return false, ErrNotLoggedIn
	}
	var resp answerResponse
	if err := c.do(ctx, http.MethodPost, "/checkCorrectAnswer", answerRequest{Category: category, Answer: answer}, &resp); err != nil {
		return false, err
	}
	return resp.Message, nil
}

func (c *HTTPClient) Users(ctx context.Context) (map[string]string, error) {
	users := map[string]string{}
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+c.accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapStatus(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func mapStatus(resp *http.Response) error {
	var e errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&e)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if e.Detail != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, e.Detail)
		}
		return ErrUnauthorized
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	default:
		return &APIError{Status: resp.StatusCode, Detail: e.Detail}
	}
}
