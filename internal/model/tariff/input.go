package tariff

import (
	"math"

	"github.com/shopspring/decimal"
	"max.ks1230/customs-bot/internal/model/customerr"
)

type ImporterType string

const (
	Individual  ImporterType = "individual"
	LegalEntity ImporterType = "legal entity"
)

const (
	maxEngineVolumeLiters = 10
	maxHorsepower         = 2000
)

// Input is a single calculation request. ImporterType is echoed in the result
// and does not change any amount.
type Input struct {
	PurchasePrice   decimal.Decimal
	Currency        string
	ManufactureDate string
	EngineVolume    float64
	Horsepower      int
	ImporterType    ImporterType
}

// Rule identifies which duty formula was applied.
type Rule string

const (
	RuleInvoiceUnderOne   Rule = "invoice_under_1y"
	RuleInvoiceOneToThree Rule = "invoice_1_3y"
	RuleVolumeThreeToFive Rule = "volume_3_5y"
	RuleInvoiceOverFive   Rule = "invoice_over_5y"
)

// Result is the cost breakdown in RUB.
type Result struct {
	Input        Input
	Age          Age
	PriceRUB     decimal.Decimal
	CustomsDuty  int64
	RecyclingFee int64
	Total        int64
	DutyRule     Rule
	DutyLabel    string
}

func ValidatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return &customerr.ValidationError{Field: "purchase price", Reason: "must be positive"}
	}
	return nil
}

func ValidateEngineVolume(liters float64) error {
	if math.IsNaN(liters) || liters <= 0 || liters > maxEngineVolumeLiters {
		return &customerr.ValidationError{Field: "engine volume", Reason: "must be in (0, 10] liters"}
	}
	return nil
}

func ValidateHorsepower(hp int) error {
	if hp <= 0 || hp > maxHorsepower {
		return &customerr.ValidationError{Field: "horsepower", Reason: "must be in (0, 2000]"}
	}
	return nil
}

func (in Input) validate() error {
	if err := ValidatePrice(in.PurchasePrice); err != nil {
		return err
	}
	if err := ValidateEngineVolume(in.EngineVolume); err != nil {
		return err
	}
	return ValidateHorsepower(in.Horsepower)
}
