package rates

import (
	"context"
	"fmt"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/customs-bot/internal/entity/currency"
	"max.ks1230/customs-bot/internal/logger"
)

// factorPrecision is the number of decimal places kept after inverting a quote.
const factorPrecision = 8

type ratesUpdater interface {
	UpdateExchangeRates(rates map[string]decimal.Decimal)
}

type ratesProvider interface {
	GetRates(ctx context.Context, base string, relatives []string) (map[string]float64, error)
}

type config interface {
	BaseCurrency() string
	PullingDelay() time.Duration
}

type Puller struct {
	updater      ratesUpdater
	provider     ratesProvider
	baseCurrency string
	pullingDelay time.Duration
}

func NewPuller(updater ratesUpdater, provider ratesProvider, config config) (*Puller, error) {
	if config.BaseCurrency() != currency.Base {
		return nil, fmt.Errorf("unsupported base currency %s, only %s is supported", config.BaseCurrency(), currency.Base)
	}
	if config.PullingDelay() <= 0 {
		return nil, errors.New("pulling delay must be positive")
	}
	return &Puller{
		updater:      updater,
		provider:     provider,
		baseCurrency: config.BaseCurrency(),
		pullingDelay: config.PullingDelay(),
	}, nil
}

func (p *Puller) Pull(ctx context.Context) {
	ticker := time.NewTicker(p.pullingDelay)
	defer ticker.Stop()
	firstTick := make(chan struct{}, 1)
	firstTick <- struct{}{}

	logger.Info("Start pulling rates")
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop pulling rates")
			return
		// fake first tick to pull rates immediately
		case <-firstTick:
			p.pullLogged(ctx)
		case <-ticker.C:
			p.pullLogged(ctx)
		}
	}
}

func (p *Puller) pullLogged(ctx context.Context) {
	if err := p.PullOnce(ctx); err != nil {
		logger.Error("cannot pull rates", zap.Error(err))
	}
}

// PullOnce fetches fresh quotes and applies them in a single update. On failure
// the previous rates stay in place.
func (p *Puller) PullOnce(ctx context.Context) error {
	logger.Info("Pulling current rates...")

	span, ctx := opentracing.StartSpanFromContext(ctx, "pullRates")
	defer span.Finish()

	quotes, err := p.provider.GetRates(ctx, p.baseCurrency, currency.Currencies)
	if err != nil {
		ext.Error.Set(span, true)
		observePull(false)
		return errors.Wrap(err, "pull rates")
	}

	factors := toFactors(quotes)
	if len(factors) == 0 {
		ext.Error.Set(span, true)
		observePull(false)
		return errors.New("provider returned no usable rates")
	}
	p.updater.UpdateExchangeRates(factors)
	observePull(true)

	logger.Info("Successfully pulled current rates", zap.Int("count", len(factors)))
	return nil
}

// toFactors turns "units of currency per one base unit" quotes into
// "base units per one unit of currency" factors.
func toFactors(quotes map[string]float64) map[string]decimal.Decimal {
	one := decimal.NewFromInt(1)
	factors := make(map[string]decimal.Decimal, len(quotes))
	for name, quote := range quotes {
		if !currency.IsSupported(name) {
			continue
		}
		if quote <= 0 {
			logger.Warn("skip non-positive quote", zap.String("rate", name), zap.Float64("quote", quote))
			continue
		}
		factors[name] = one.DivRound(decimal.NewFromFloat(quote), factorPrecision)
	}
	return factors
}
