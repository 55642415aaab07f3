package fixer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"max.ks1230/customs-bot/internal/logger"
)

const (
	baseParam      = "base"
	relativesParam = "symbols"
	apiKeyHeader   = "apikey"

	requestTimeout = 10 * time.Second
	maxRetryTime   = time.Minute
)

type config interface {
	ApiKey() string
	LatestRatesUrl() string
	RequestInterval() time.Duration
}

type Client struct {
	apiKey     string
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
	retry      func() backoff.BackOff
}

type ratesResponse struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	Success   bool               `json:"success"`
	Timestamp int64              `json:"timestamp"`
	Error     *struct {
		Code int    `json:"code"`
		Info string `json:"info"`
	} `json:"error,omitempty"`
}

type Option func(*Client)

// WithRetryPolicy replaces the default exponential backoff.
func WithRetryPolicy(policy func() backoff.BackOff) Option {
	return func(c *Client) {
		c.retry = policy
	}
}

func New(cfg config, opts ...Option) *Client {
	c := &Client{
		apiKey:     cfg.ApiKey(),
		url:        cfg.LatestRatesUrl(),
		httpClient: &http.Client{Timeout: requestTimeout},
		limiter:    rate.NewLimiter(rate.Every(cfg.RequestInterval()), 1),
		retry: func() backoff.BackOff {
			policy := backoff.NewExponentialBackOff()
			policy.MaxElapsedTime = maxRetryTime
			return policy
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetRates returns how many units of every relative currency one unit of base buys.
func (c *Client) GetRates(ctx context.Context, base string, relatives []string) (map[string]float64, error) {
	var rates map[string]float64

	err := backoff.RetryNotify(
		func() error {
			var err error
			rates, err = c.fetch(ctx, base, relatives)
			return err
		},
		backoff.WithContext(c.retry(), ctx),
		func(err error, next time.Duration) {
			logger.Warn("fixer request failed, retrying", zap.Error(err), zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "get rates")
	}
	return rates, nil
}

func (c *Client) fetch(ctx context.Context, base string, relatives []string) (map[string]float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, backoff.Permanent(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, backoff.Permanent(errors.Wrap(err, "create request"))
	}

	req.Header.Set(apiKeyHeader, c.apiKey)
	q := req.URL.Query()
	q.Add(baseParam, base)
	q.Add(relativesParam, strings.Join(relatives, ","))
	req.URL.RawQuery = q.Encode()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusInternalServerError || res.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("unexpected status: %d", res.StatusCode)
	}
	if res.StatusCode != http.StatusOK {
		return nil, backoff.Permanent(fmt.Errorf("unexpected status: %d", res.StatusCode))
	}

	rates := ratesResponse{}
	if err = json.NewDecoder(res.Body).Decode(&rates); err != nil {
		return nil, backoff.Permanent(errors.Wrap(err, "unmarshalling response"))
	}
	logger.Debug("new response from fixer", zap.String("base", rates.Base), zap.Int64("timestamp", rates.Timestamp))

	if !rates.Success {
		if rates.Error != nil {
			return nil, backoff.Permanent(fmt.Errorf("error from fixer: %d %s", rates.Error.Code, rates.Error.Info))
		}
		return nil, backoff.Permanent(errors.New("error from fixer (success = false)"))
	}

	return rates.Rates, nil
}
