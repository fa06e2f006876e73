package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gorilla/websocket"

	"github.com/MKhiriev/keeper-reveal/internal/config"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/utils"
	"github.com/MKhiriev/keeper-reveal/models"
)

const wsCloseTimeout = time.Second

type httpServerAdapter struct {
	client *utils.HTTPClient
	dialer *websocket.Dialer
	wsURL  string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST and websocket implementation of
// [ServerAdapter]. It normalises cfg.HTTPAddress, which may omit the scheme,
// and derives the websocket address from it.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg config.Adapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	wsURL, err := websocketURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		dialer: &websocket.Dialer{HandshakeTimeout: cfg.RequestTimeout},
		wsURL:  wsURL,
		logger: log.WithComponent("adapter"),
	}, nil
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

func websocketURL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws"

	return u.String(), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Version implements [ServerAdapter]. GET /api/version answers in plain text.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// Board implements [ServerAdapter] with GET /api/board.
func (h *httpServerAdapter) Board(ctx context.Context) (models.Board, error) {
	var board models.Board

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&board).
		Get("/api/board")
	if err != nil {
		return models.Board{}, fmt.Errorf("board request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Board{}, err
	}

	return board, nil
}

// StartCountdown implements [ServerAdapter] with POST /api/countdown/start.
func (h *httpServerAdapter) StartCountdown(ctx context.Context) (models.OutcomeResponse, error) {
	var outcome models.OutcomeResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&outcome).
		Post("/api/countdown/start")
	if err != nil {
		return models.OutcomeResponse{}, fmt.Errorf("start countdown request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.OutcomeResponse{}, err
	}

	return outcome, nil
}

// Submit implements [ServerAdapter] with POST /api/submissions.
func (h *httpServerAdapter) Submit(ctx context.Context, req models.SubmitRequest) (models.Submission, error) {
	var sub models.Submission

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&sub).
		Post("/api/submissions")
	if err != nil {
		return models.Submission{}, fmt.Errorf("submit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Submission{}, err
	}

	return sub, nil
}

// Reveal implements [ServerAdapter] with POST /api/submissions/{team}/reveal.
func (h *httpServerAdapter) Reveal(ctx context.Context, team, password string) (models.Submission, error) {
	var sub models.Submission

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("team", team).
		SetBody(models.RevealRequest{Password: password}).
		SetResult(&sub).
		Post("/api/submissions/{team}/reveal")
	if err != nil {
		return models.Submission{}, fmt.Errorf("reveal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Submission{}, err
	}

	return sub, nil
}

// Login implements [ServerAdapter]. The token is read from the response body
// and, failing that, from the Authorization header.
func (h *httpServerAdapter) Login(ctx context.Context, password string) (models.TokenResponse, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Password: password}).
		SetResult(&token).
		Post("/api/commissioner/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	if token.Token == "" {
		token.Token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.TokenResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
	}

	h.SetToken(token.Token)
	h.logger.Info().Time("expires_at", token.ExpiresAt).Msg("commissioner logged in")

	return token, nil
}

// ForceReveal implements [ServerAdapter] with
// POST /api/commissioner/force-reveal.
func (h *httpServerAdapter) ForceReveal(ctx context.Context) (models.OutcomeResponse, error) {
	req, err := h.commissionerRequest(ctx)
	if err != nil {
		return models.OutcomeResponse{}, err
	}

	var outcome models.OutcomeResponse
	resp, err := req.SetResult(&outcome).Post("/api/commissioner/force-reveal")
	if err != nil {
		return models.OutcomeResponse{}, fmt.Errorf("force reveal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.OutcomeResponse{}, err
	}

	return outcome, nil
}

// RevealAll implements [ServerAdapter] with POST /api/commissioner/reveal-all.
// The server answers 207 Multi-Status when some teams failed.
func (h *httpServerAdapter) RevealAll(ctx context.Context) (models.RevealReport, error) {
	req, err := h.commissionerRequest(ctx)
	if err != nil {
		return models.RevealReport{}, err
	}

	var report models.RevealReport
	resp, err := req.SetResult(&report).Post("/api/commissioner/reveal-all")
	if err != nil {
		return models.RevealReport{}, fmt.Errorf("reveal all request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RevealReport{}, err
	}

	if report.HasFailures() {
		return report, fmt.Errorf("%w: %d of %d", ErrPartialReveal,
			len(report.Failures), len(report.Failures)+len(report.Revealed))
	}

	return report, nil
}

func (h *httpServerAdapter) commissionerRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

// Watch implements [ServerAdapter] over the /ws websocket. It returns nil
// when ctx is cancelled or the server closes the connection normally.
func (h *httpServerAdapter) Watch(ctx context.Context, fn func(models.Push)) error {
	conn, resp, err := h.dialer.DialContext(ctx, h.wsURL, nil)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("watch dial: http %d: %w", resp.StatusCode, err)
		}
		return fmt.Errorf("watch dial: %w", err)
	}
	defer conn.Close()

	h.logger.Info().Str("url", h.wsURL).Msg("watching server pushes")

	stop := context.AfterFunc(ctx, func() {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(wsCloseTimeout))
		conn.Close()
	})
	defer stop()

	for {
		var push models.Push
		if err = conn.ReadJSON(&push); err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("watch read: %w", err)
		}

		fn(push)
	}
}
