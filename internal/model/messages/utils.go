package messages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"max.ks1230/customs-bot/internal/entity/currency"
	"max.ks1230/customs-bot/internal/model/tariff"
)

const separator = "────────────────────────────"

// parseCommand returns the slash command without its arguments, or the whole
// text for menu buttons.
func parseCommand(text string) string {
	if strings.HasPrefix(text, "/") {
		return strings.Fields(text)[0]
	}
	return text
}

func normalizeNumber(text string) string {
	text = strings.ReplaceAll(text, " ", "")
	return strings.ReplaceAll(text, ",", ".")
}

var printer = message.NewPrinter(language.English)

func formatRUB(amount int64) string {
	return printer.Sprintf("%d %s", amount, currency.RUB)
}

// formatPrice prints a positive amount with grouped thousands and two decimals.
func formatPrice(amount decimal.Decimal) string {
	cents := amount.Round(2)
	_, frac, _ := strings.Cut(cents.StringFixed(2), ".")
	return printer.Sprintf("%d.%s", cents.Truncate(0).IntPart(), frac)
}

func formatResult(res tariff.Result) string {
	lines := []string{
		"Customs calculation:",
		separator,
		fmt.Sprintf("Purchase price: %s %s", formatPrice(res.Input.PurchasePrice), res.Input.Currency),
		fmt.Sprintf("Vehicle age: %d years %d months", res.Age.Years, res.Age.Months),
		fmt.Sprintf("Engine volume: %s L", strconv.FormatFloat(res.Input.EngineVolume, 'f', -1, 64)),
		fmt.Sprintf("Horsepower: %d HP", res.Input.Horsepower),
		fmt.Sprintf("Importer: %s", res.Input.ImporterType),
		separator,
		fmt.Sprintf("Customs duty (%s): %s", res.DutyLabel, formatRUB(res.CustomsDuty)),
		fmt.Sprintf("Recycling fee: %s", formatRUB(res.RecyclingFee)),
		separator,
		fmt.Sprintf("TOTAL: %s", formatRUB(res.Total)),
		separator,
	}
	return strings.Join(lines, "\n")
}

func formatRates(rates tariff.Rates) string {
	lines := []string{"Current exchange rates:"}
	for _, code := range currency.Currencies {
		rate, ok := rates[code]
		if !ok {
			lines = append(lines, fmt.Sprintf("%s: not set, treated as 1 %s", code, currency.RUB))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s %s", code, rate.StringFixed(4), currency.RUB))
	}
	return strings.Join(lines, "\n")
}
