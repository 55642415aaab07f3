package tariff

import (
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/customs-bot/internal/logger"
)

// Rates is an immutable view of the exchange rates: currency code -> RUB per unit.
type Rates map[string]decimal.Decimal

// Factor returns the RUB conversion factor for code. Unknown codes are treated as
// already being RUB.
func (r Rates) Factor(code string) decimal.Decimal {
	f, ok := r[code]
	if !ok {
		return decimal.NewFromInt(1)
	}
	return f
}

func (r Rates) ConvertToRUB(amount decimal.Decimal, code string) decimal.Decimal {
	return amount.Mul(r.Factor(code))
}

// RateTable holds the live exchange rates. Updates publish a fresh map, so a
// Snapshot never observes a half-applied update.
type RateTable struct {
	mu    sync.RWMutex
	rates Rates
}

func NewRateTable(initial map[string]decimal.Decimal) *RateTable {
	t := &RateTable{rates: Rates{}}
	t.Update(initial)
	return t
}

// NewRateTableFromFloats is a convenience for rates coming from config files.
func NewRateTableFromFloats(initial map[string]float64) *RateTable {
	converted := make(map[string]decimal.Decimal, len(initial))
	for code, v := range initial {
		converted[code] = decimal.NewFromFloat(v)
	}
	return NewRateTable(converted)
}

// Snapshot returns the current rates. The returned map must not be modified.
func (t *RateTable) Snapshot() Rates {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rates
}

// Update merges rates into the table. Non-positive factors are skipped.
func (t *RateTable) Update(rates map[string]decimal.Decimal) {
	if len(rates) == 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	next := make(Rates, len(t.rates)+len(rates))
	for code, v := range t.rates {
		next[code] = v
	}
	for code, v := range rates {
		if !v.IsPositive() {
			logger.Warn("skip non-positive rate", zap.String("currency", code), zap.String("rate", v.String()))
			continue
		}
		next[code] = v
	}
	t.rates = next
}
