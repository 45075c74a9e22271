// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-tax-keeper/internal/config"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/internal/utils"
	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	retryWaitTime    = 200 * time.Millisecond
	retryMaxWaitTime = 2 * time.Second
)

// envelope mirrors models.Response with a typed payload.
type envelope[T any] struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    T                 `json:"data"`
	Details map[string]string `json:"details"`
}

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] for the server at cfg.HTTPAddress.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	if cfg.RetryCount > 0 {
		client.
			SetRetryCount(cfg.RetryCount).
			SetRetryWaitTime(retryWaitTime).
			SetRetryMaxWaitTime(retryMaxWaitTime).
			AddRetryCondition(isRetryableConflict)
	}

	return &httpServerAdapter{client: client, logger: logger}, nil
}

// isRetryableConflict matches the 409 answers the server marks with
// Retry-After. Other conflicts, such as duplicates, are final.
func isRetryableConflict(resp *resty.Response, err error) bool {
	return err == nil && resp != nil &&
		resp.StatusCode() == http.StatusConflict &&
		resp.Header().Get("Retry-After") != ""
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.LoginResponse, error) {
	login, err := send[models.LoginResponse](h.client.R().SetContext(ctx).SetBody(req), http.MethodPost, "/api/users/register")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("register: %w", err)
	}

	h.SetToken(login.Token)
	return login, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	login, err := send[models.LoginResponse](h.client.R().SetContext(ctx).SetBody(req), http.MethodPost, "/api/users/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login: %w", err)
	}

	h.SetToken(login.Token)
	return login, nil
}

func (h *httpServerAdapter) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return send[models.User](h.authedRequest(ctx), http.MethodGet, "/api/users/profile/"+id(userID))
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error) {
	return send[models.User](h.authedRequest(ctx).SetBody(req), http.MethodPut, "/api/users/profile/"+id(userID))
}

func (h *httpServerAdapter) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	_, err := send[json.RawMessage](h.authedRequest(ctx).SetBody(req), http.MethodPost, "/api/users/change-password/"+id(userID))
	return err
}

func (h *httpServerAdapter) ListTaxpayers(ctx context.Context) ([]models.User, error) {
	return send[[]models.User](h.authedRequest(ctx), http.MethodGet, "/api/users/taxpayers")
}

func (h *httpServerAdapter) PreviewTax(ctx context.Context, req models.TaxPreviewRequest) (models.TaxComputation, error) {
	return send[models.TaxComputation](h.client.R().SetContext(ctx).SetBody(req), http.MethodPost, "/api/tax-profiles/calculate")
}

func (h *httpServerAdapter) CreateTaxProfile(ctx context.Context, req models.CreateTaxProfileRequest) (models.TaxProfile, error) {
	return send[models.TaxProfile](h.authedRequest(ctx).SetBody(req), http.MethodPost, "/api/tax-profiles/")
}

func (h *httpServerAdapter) GetTaxProfile(ctx context.Context, profileID int64) (models.TaxProfile, error) {
	return send[models.TaxProfile](h.authedRequest(ctx), http.MethodGet, "/api/tax-profiles/"+id(profileID))
}

func (h *httpServerAdapter) ListTaxProfiles(ctx context.Context, userID int64) ([]models.TaxProfile, error) {
	return send[[]models.TaxProfile](h.authedRequest(ctx), http.MethodGet, "/api/tax-profiles/user/"+id(userID))
}

func (h *httpServerAdapter) CurrentTaxProfile(ctx context.Context, userID int64, fiscalYear string) (models.TaxProfile, error) {
	req := h.authedRequest(ctx)
	if fiscalYear != "" {
		req.SetQueryParam("fiscal_year", fiscalYear)
	}
	return send[models.TaxProfile](req, http.MethodGet, "/api/tax-profiles/user/"+id(userID)+"/current")
}

func (h *httpServerAdapter) ApplyPayment(ctx context.Context, req models.PaymentRequest) (models.PaymentResult, error) {
	return send[models.PaymentResult](h.authedRequest(ctx).SetBody(req), http.MethodPost, "/api/payments/")
}

func (h *httpServerAdapter) GetPayment(ctx context.Context, paymentID int64) (models.Payment, error) {
	return send[models.Payment](h.authedRequest(ctx), http.MethodGet, "/api/payments/"+id(paymentID))
}

func (h *httpServerAdapter) ListPayments(ctx context.Context, userID int64) ([]models.Payment, error) {
	return send[[]models.Payment](h.authedRequest(ctx), http.MethodGet, "/api/payments/user/"+id(userID))
}

func (h *httpServerAdapter) ListTaxProfilePayments(ctx context.Context, profileID int64) ([]models.Payment, error) {
	return send[[]models.Payment](h.authedRequest(ctx), http.MethodGet, "/api/payments/tax-profile/"+id(profileID))
}

func (h *httpServerAdapter) PaymentSummary(ctx context.Context, userID int64) (models.PaymentSummary, error) {
	return send[models.PaymentSummary](h.authedRequest(ctx), http.MethodGet, "/api/payments/user/"+id(userID)+"/summary")
}

// Version reads the plain-text version endpoint.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).SetHeader("Accept", "text/plain").Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// send executes req and decodes the data of the response envelope.
func send[T any](req *resty.Request, method, path string) (T, error) {
	var zero T

	resp, err := req.Execute(method, path)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return zero, err
	}

	var env envelope[T]
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return env.Data, nil
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}
