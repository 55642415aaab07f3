package tariff

import (
	"strings"
	"time"

	"max.ks1230/customs-bot/internal/model/customerr"
)

const (
	isoDateLayout = "2006-01-02"
	ruDateLayout  = "02.01.2006"

	maxAgeYears    = 50
	monthsPerYear  = 12
	manufactureFld = "manufacture date"
)

var dateLayouts = []string{isoDateLayout, ruDateLayout}

// Age of a vehicle. Only Years takes part in tariff selection.
type Age struct {
	Years  int
	Months int
}

// ParseManufactureDate accepts YYYY-MM-DD or DD.MM.YYYY.
func ParseManufactureDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &customerr.ParseError{Value: raw}
}

// DeriveAge counts whole months between mfg and today. A month is complete once
// today's day of month reaches the manufacture day.
func DeriveAge(mfg, today time.Time) Age {
	months := (today.Year()-mfg.Year())*monthsPerYear + int(today.Month()) - int(mfg.Month())
	if today.Day() < mfg.Day() {
		months--
	}
	return Age{
		Years:  months / monthsPerYear,
		Months: months % monthsPerYear,
	}
}

func validateManufactureDate(mfg, today time.Time) error {
	if mfg.After(today) {
		return &customerr.ValidationError{Field: manufactureFld, Reason: "date is in the future"}
	}
	if mfg.Before(today.AddDate(-maxAgeYears, 0, 0)) {
		return &customerr.ValidationError{Field: manufactureFld, Reason: "date is more than 50 years ago"}
	}
	return nil
}
