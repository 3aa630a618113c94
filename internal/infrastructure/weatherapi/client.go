package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskdeck/backend/domain"
)

// Config holds the third-party weather endpoint settings.
type Config struct {
	BaseURL string
	APIKey  string
	Units   string
	Timeout time.Duration
}

// Client performs current-conditions lookups against an
// OpenWeatherMap-compatible endpoint.
type Client struct {
	cfg    Config
	http   *fasthttp.Client
	logger *zap.Logger
}

// New builds a weather client. An empty API key leaves the client in degraded
// mode: Configured reports false and callers skip the lookup entirely.
func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openweathermap.org/data/2.5/weather"
	}
	if cfg.Units == "" {
		cfg.Units = "metric"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg:    cfg,
		http:   &fasthttp.Client{Name: "taskdeck-weather"},
		logger: logger,
	}
}

// Configured reports whether an access credential is available.
func (c *Client) Configured() bool {
	return c != nil && c.cfg.APIKey != ""
}

type currentResponse struct {
	Weather []struct {
		Main string `json:"main"`
		Icon string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// Current fetches the current conditions for city.
func (c *Client) Current(ctx context.Context, city string) (*domain.WeatherSnapshot, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("weather api key not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fmt.Sprintf("%s?q=%s&units=%s&appid=%s",
		c.cfg.BaseURL,
		url.QueryEscape(city),
		url.QueryEscape(c.cfg.Units),
		url.QueryEscape(c.cfg.APIKey),
	))
	req.Header.SetMethod(fasthttp.MethodGet)

	timeout := c.cfg.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		return nil, err
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("weather lookup returned status %d", resp.StatusCode())
	}

	var payload currentResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, err
	}
	if len(payload.Weather) == 0 {
		return nil, fmt.Errorf("weather lookup returned no conditions")
	}

	c.logger.Debug("weather lookup succeeded",
		zap.String("city", city),
		zap.String("conditions", payload.Weather[0].Main))

	return &domain.WeatherSnapshot{
		Main:  payload.Weather[0].Main,
		Icon:  payload.Weather[0].Icon,
		TempC: payload.Main.Temp,
	}, nil
}
