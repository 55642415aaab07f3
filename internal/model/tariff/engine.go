package tariff

import (
	"context"
	"fmt"
	"time"

	"github.com/jinzhu/now"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/customs-bot/internal/entity/currency"
	"max.ks1230/customs-bot/internal/logger"
)

var (
	invoiceDutyShare = decimal.RequireFromString("0.48")
	cm3PerLiter      = decimal.NewFromInt(1000)
)

const (
	invoiceLabel         = "48% of invoice"
	invoiceOverFiveLabel = "48% of invoice (over 5 years)"
)

type Option func(*Engine)

// WithClock overrides the source of "today".
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

func WithDutyTable(t VolumeRateTable) Option {
	return func(e *Engine) {
		e.duty = t
	}
}

func WithRecyclingTable(t RecyclingTable) Option {
	return func(e *Engine) {
		e.recycling = t
	}
}

// Engine computes customs duty and recycling fee. It keeps no state besides
// the rate table and is safe for concurrent use.
type Engine struct {
	rates     *RateTable
	duty      VolumeRateTable
	recycling RecyclingTable
	clock     func() time.Time
}

func NewEngine(rates *RateTable, opts ...Option) *Engine {
	e := &Engine{
		rates:     rates,
		duty:      DefaultDutyTable(),
		recycling: DefaultRecyclingTable(),
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// UpdateExchangeRates merges rates into the live table.
func (e *Engine) UpdateExchangeRates(rates map[string]decimal.Decimal) {
	e.rates.Update(rates)
}

func (e *Engine) Rates() Rates {
	return e.rates.Snapshot()
}

func (e *Engine) today() time.Time {
	return now.With(e.clock()).BeginningOfDay()
}

// CheckManufactureDate parses raw and checks it against today's date.
func (e *Engine) CheckManufactureDate(raw string) (Age, error) {
	today := e.today()
	mfg, err := ParseManufactureDate(raw, today.Location())
	if err != nil {
		return Age{}, err
	}
	if err = validateManufactureDate(mfg, today); err != nil {
		return Age{}, err
	}
	return DeriveAge(mfg, today), nil
}

func (e *Engine) Calculate(ctx context.Context, in Input) (Result, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "calculateTariff")
	defer span.Finish()

	if err := in.validate(); err != nil {
		ext.Error.Set(span, true)
		return Result{}, errors.Wrap(err, "calculate")
	}
	age, err := e.CheckManufactureDate(in.ManufactureDate)
	if err != nil {
		ext.Error.Set(span, true)
		return Result{}, errors.Wrap(err, "calculate")
	}

	rates := e.rates.Snapshot()
	volume := decimal.NewFromFloat(in.EngineVolume)

	priceRUB := rates.ConvertToRUB(in.PurchasePrice, in.Currency)
	duty, rule, label := e.dutyForAge(age.Years, volume, priceRUB, rates)
	fee := e.recyclingFee(volume, in.Horsepower, age.Years)

	roundedDuty := duty.RoundBank(0).IntPart()
	res := Result{
		Input:        in,
		Age:          age,
		PriceRUB:     priceRUB,
		CustomsDuty:  roundedDuty,
		RecyclingFee: fee,
		Total:        roundedDuty + fee,
		DutyRule:     rule,
		DutyLabel:    label,
	}

	span.SetTag("rule", string(rule))
	calculationsTotal.WithLabelValues(string(rule)).Inc()
	logger.Debug("tariff calculated",
		zap.String("rule", string(rule)),
		zap.Int("ageYears", age.Years),
		zap.Int64("duty", res.CustomsDuty),
		zap.Int64("recyclingFee", res.RecyclingFee),
	)
	return res, nil
}

func (e *Engine) dutyForAge(years int, liters, priceRUB decimal.Decimal, rates Rates) (decimal.Decimal, Rule, string) {
	switch {
	case years < 1:
		return priceRUB.Mul(invoiceDutyShare), RuleInvoiceUnderOne, invoiceLabel
	case years <= 3:
		return priceRUB.Mul(invoiceDutyShare), RuleInvoiceOneToThree, invoiceLabel
	case years <= 5:
		cm3 := liters.Mul(cm3PerLiter)
		bracket := e.duty.Lookup(cm3)
		eur := cm3.Mul(bracket.EURPerCm3)
		label := fmt.Sprintf("%s EUR per cm³ (3-5 years)", bracket.EURPerCm3.String())
		return rates.ConvertToRUB(eur, currency.EUR), RuleVolumeThreeToFive, label
	default:
		return priceRUB.Mul(invoiceDutyShare), RuleInvoiceOverFive, invoiceOverFiveLabel
	}
}

func (e *Engine) recyclingFee(liters decimal.Decimal, hp int, years int) int64 {
	discount := e.recycling.Discount
	if liters.LessThanOrEqual(discount.MaxLiters) && hp <= discount.MaxHP {
		if years < 3 {
			return discount.UnderThree
		}
		if years <= 5 {
			return discount.UpToFiveYears
		}
	}

	band, ok := e.recycling.band(liters)
	if !ok {
		recyclingDefaultsTotal.Inc()
		logger.Warn("no recycling band for engine volume, using default fee",
			zap.String("liters", liters.String()), zap.Int("hp", hp))
		return e.recycling.Default.ForAge(years)
	}
	return band.Lookup(hp).Fees.ForAge(years)
}
