// Package api is the HTTP client for the AgentHub JSON API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/agenthub-cli/internal/domain"
	"github.com/bnema/agenthub-cli/internal/ports"
	"github.com/google/uuid"
)

const (
	DefaultBaseURL        = "http://localhost:5000/api"
	DefaultRequestTimeout = 30 * time.Second

	maxResponseBytes = 1 << 20
	requestIDHeader  = "X-Request-ID"
)

// Client implements ports.AuthClient. It reads the bearer credential at call
// time and never stores tokens itself.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Credentials    ports.CredentialReader
	UserAgent      string
	Logger         *slog.Logger
}

var _ ports.AuthClient = Client{}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type agentRequest struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Company      string `json:"company,omitempty"`
	Agent        string `json:"agent"`
	Requirements string `json:"requirements"`
}

type authResponse struct {
	Message     string   `json:"message"`
	User        wireUser `json:"user"`
	AccessToken string   `json:"access_token"`
}

type profileResponse struct {
	User wireUser `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type agentRequestResponse struct {
	Message   string     `json:"message"`
	RequestID flexibleID `json:"request_id"`
}

type errorResponse struct {
	Error any `json:"error"`
}

func (c Client) Login(ctx context.Context, credentials domain.Credentials) (domain.AuthResult, error) {
	var resp authResponse
	body := loginRequest{Email: credentials.Email, Password: credentials.Password}
	if err := c.do(ctx, http.MethodPost, "/login", body, &resp); err != nil {
		return domain.AuthResult{}, err
	}

	return resp.result()
}

// Signup forwards the payload as is; the server owns validation.
func (c Client) Signup(ctx context.Context, payload domain.SignupPayload) (domain.AuthResult, error) {
	var resp authResponse
	body := signupRequest{Email: payload.Email, Password: payload.Password, Username: payload.Username}
	if err := c.do(ctx, http.MethodPost, "/signup", body, &resp); err != nil {
		return domain.AuthResult{}, err
	}

	return resp.result()
}

func (c Client) Profile(ctx context.Context) (domain.User, error) {
	var resp profileResponse
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &resp); err != nil {
		return domain.User{}, err
	}

	return resp.User.domain(), nil
}

func (c Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) (string, error) {
	var resp messageResponse
	body := changePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword}
	if err := c.do(ctx, http.MethodPut, "/change-password", body, &resp); err != nil {
		return "", err
	}

	return resp.Message, nil
}

func (c Client) Logout(ctx context.Context) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/logout", nil, &resp); err != nil {
		return "", err
	}

	return resp.Message, nil
}

func (c Client) RequestAgent(ctx context.Context, request domain.AgentRequest) (domain.AgentRequestReceipt, error) {
	var resp agentRequestResponse
	body := agentRequest{
		FullName:     request.FullName,
		Email:        request.Email,
		Company:      request.Company,
		Agent:        request.Agent,
		Requirements: request.Requirements,
	}
	if err := c.do(ctx, http.MethodPost, "/agent-request", body, &resp); err != nil {
		return domain.AgentRequestReceipt{}, err
	}

	return domain.AgentRequestReceipt{Message: resp.Message, RequestID: string(resp.RequestID)}, nil
}

func (r authResponse) result() (domain.AuthResult, error) {
	if r.AccessToken == "" {
		return domain.AuthResult{}, &domain.AuthError{
			Message: domain.MessageGenericError,
			Err:     errors.New("auth response missing access token"),
		}
	}

	return domain.AuthResult{Message: r.Message, User: r.User.domain(), Token: r.AccessToken}, nil
}

// do sends one JSON request and decodes the JSON answer into out. Every
// failure comes back as *domain.AuthError.
func (c Client) do(ctx context.Context, method string, path string, body any, out any) error {
	endpoint, err := BuildURL(c.BaseURL, path)
	if err != nil {
		return &domain.AuthError{Message: domain.MessageNetworkError, Err: err}
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &domain.AuthError{Message: domain.MessageNetworkError, Err: fmt.Errorf("encode request body: %w", err)}
		}
		payload = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, payload)
	if err != nil {
		return &domain.AuthError{Message: domain.MessageNetworkError, Err: fmt.Errorf("create request: %w", err)}
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if c.Credentials != nil {
		if token, ok := c.Credentials.Credential(); ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	logger := c.logger().With("method", method, "path", path, "request_id", requestID)
	started := time.Now()

	resp, err := c.httpClient().Do(req)
	if err != nil {
		logger.Debug("api request failed", "error", err, "duration", time.Since(started))
		return &domain.AuthError{Message: domain.MessageNetworkError, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	logger.Debug("api request completed", "status", resp.StatusCode, "duration", time.Since(started))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &domain.AuthError{Message: domain.MessageNetworkError, Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.AuthError{Message: domain.MessageNetworkError, Err: fmt.Errorf("decode response body: %w", err)}
	}

	return nil
}

func decodeError(statusCode int, raw []byte) error {
	var payload errorResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return &domain.AuthError{
			Message: domain.MessageNetworkError,
			Err:     fmt.Errorf("decode error response (status %d): %w", statusCode, err),
		}
	}

	message, _ := payload.Error.(string)
	if strings.TrimSpace(message) == "" {
		message = domain.MessageGenericError
	}

	return &domain.AuthError{Message: message, Err: fmt.Errorf("status %d", statusCode)}
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

// BuildURL appends path to baseURL verbatim, so a base of
// "http://host/api" and "/login" gives "http://host/api/login".
func BuildURL(baseURL string, path string) (string, error) {
	if err := ValidateBaseURL(baseURL); err != nil {
		return "", err
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	return strings.TrimRight(baseURL, "/") + path, nil
}

func ValidateBaseURL(baseURL string) error {
	if baseURL == "" {
		return errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return errors.New("api base url host is required")
	}

	return nil
}
