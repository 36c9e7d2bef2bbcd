package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/clinical-records/internal/config"
	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/internal/utils"
	"github.com/MKhiriev/clinical-records/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu     sync.RWMutex
	tokens models.TokenPair

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// The address may omit the scheme, "http://" is assumed then.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("api call")
		return nil
	})

	return &httpServerAdapter{client: client, logger: logger}, nil
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

func (h *httpServerAdapter) SetTokens(tokens models.TokenPair) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.tokens.AccessToken = strings.TrimSpace(tokens.AccessToken)
	if tokens.RefreshToken != "" {
		h.tokens.RefreshToken = strings.TrimSpace(tokens.RefreshToken)
	}
}

func (h *httpServerAdapter) Tokens() models.TokenPair {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tokens
}

func (h *httpServerAdapter) Register(ctx context.Context, registration models.DoctorRegistration) (models.Doctor, error) {
	return send[models.Doctor](h.client.R().SetContext(ctx).SetBody(registration), http.MethodPost, "/register")
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error) {
	tokens, err := send[models.TokenPair](h.client.R().SetContext(ctx).SetBody(credentials), http.MethodPost, "/login")
	if err != nil {
		return models.TokenPair{}, err
	}

	h.SetTokens(tokens)
	return tokens, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	if _, err := send[json.RawMessage](h.authedRequest(ctx), http.MethodPost, "/logout"); err != nil {
		return err
	}

	h.mu.Lock()
	h.tokens = models.TokenPair{}
	h.mu.Unlock()
	return nil
}

func (h *httpServerAdapter) Refresh(ctx context.Context) (models.TokenPair, error) {
	refreshToken := h.Tokens().RefreshToken
	if refreshToken == "" {
		return models.TokenPair{}, ErrNoRefreshToken
	}

	req := h.client.R().SetContext(ctx).SetAuthToken(refreshToken)
	tokens, err := send[models.TokenPair](req, http.MethodPost, "/refresh")
	if err != nil {
		return models.TokenPair{}, err
	}

	h.SetTokens(tokens)
	return h.Tokens(), nil
}

func (h *httpServerAdapter) GetDoctor(ctx context.Context, id int64) (models.Doctor, error) {
	return send[models.Doctor](h.itemRequest(ctx, id), http.MethodGet, "/doctors/{id}")
}

func (h *httpServerAdapter) UpdateDoctor(ctx context.Context, id int64, update models.DoctorUpdate) (models.Doctor, error) {
	return send[models.Doctor](h.itemRequest(ctx, id).SetBody(update), http.MethodPut, "/doctors/{id}")
}

func (h *httpServerAdapter) DeleteDoctor(ctx context.Context, id int64) error {
	_, err := send[json.RawMessage](h.itemRequest(ctx, id), http.MethodDelete, "/doctors/{id}")
	return err
}

func (h *httpServerAdapter) CreatePatient(ctx context.Context, input models.PatientInput) (models.Patient, error) {
	return send[models.Patient](h.authedRequest(ctx).SetBody(input), http.MethodPost, "/pacients")
}

func (h *httpServerAdapter) GetPatient(ctx context.Context, id int64) (models.Patient, error) {
	return send[models.Patient](h.itemRequest(ctx, id), http.MethodGet, "/pacients/{id}")
}

func (h *httpServerAdapter) UpdatePatient(ctx context.Context, id int64, update models.PatientUpdate) (models.Patient, error) {
	return send[models.Patient](h.itemRequest(ctx, id).SetBody(update), http.MethodPut, "/pacients/{id}")
}

func (h *httpServerAdapter) DeletePatient(ctx context.Context, id int64) error {
	_, err := send[json.RawMessage](h.itemRequest(ctx, id), http.MethodDelete, "/pacients/{id}")
	return err
}

func (h *httpServerAdapter) CreateClinicalStory(ctx context.Context, input models.ClinicalStoryInput) (models.ClinicalStory, error) {
	return send[models.ClinicalStory](h.authedRequest(ctx).SetBody(input), http.MethodPost, "/clinical_stories")
}

func (h *httpServerAdapter) GetClinicalStory(ctx context.Context, id int64) (models.ClinicalStory, error) {
	return send[models.ClinicalStory](h.itemRequest(ctx, id), http.MethodGet, "/clinical_stories/{id}")
}

func (h *httpServerAdapter) UpdateClinicalStory(ctx context.Context, id int64, update models.ClinicalStoryUpdate) (models.ClinicalStory, error) {
	return send[models.ClinicalStory](h.itemRequest(ctx, id).SetBody(update), http.MethodPut, "/clinical_stories/{id}")
}

func (h *httpServerAdapter) DeleteClinicalStory(ctx context.Context, id int64) error {
	_, err := send[json.RawMessage](h.itemRequest(ctx, id), http.MethodDelete, "/clinical_stories/{id}")
	return err
}

func (h *httpServerAdapter) CreateAllergy(ctx context.Context, input models.AllergyInput) (models.Allergy, error) {
	return send[models.Allergy](h.authedRequest(ctx).SetBody(input), http.MethodPost, "/allergies")
}

func (h *httpServerAdapter) GetAllergy(ctx context.Context, id int64) (models.Allergy, error) {
	return send[models.Allergy](h.itemRequest(ctx, id), http.MethodGet, "/allergies/{id}")
}

func (h *httpServerAdapter) DeleteAllergy(ctx context.Context, id int64) error {
	_, err := send[json.RawMessage](h.itemRequest(ctx, id), http.MethodDelete, "/allergies/{id}")
	return err
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).SetHeader("Accept", "text/plain").Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Tokens().AccessToken; token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpServerAdapter) itemRequest(ctx context.Context, id int64) *resty.Request {
	return h.authedRequest(ctx).SetPathParam("id", strconv.FormatInt(id, 10))
}

// envelope is the JSON body of every successful response.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// send executes req and decodes the "data" field of the answer.
func send[T any](req *resty.Request, method, path string) (T, error) {
	var result envelope[T]

	resp, err := req.Execute(method, path)
	if err != nil {
		return result.Data, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result.Data, err
	}

	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return result.Data, fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	return result.Data, nil
}
