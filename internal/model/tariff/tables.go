package tariff

import "github.com/shopspring/decimal"

// Rates below are illustrative and do not follow any legal act.

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultDutyTable is the per-cm³ duty for vehicles aged over 3 and up to 5 years.
func DefaultDutyTable() VolumeRateTable {
	return VolumeRateTable{
		{MinCm3: dec("0"), MaxCm3: dec("1000"), EURPerCm3: dec("1.5")},
		{MinCm3: dec("1000"), MaxCm3: dec("1500"), EURPerCm3: dec("1.7")},
		{MinCm3: dec("1500"), MaxCm3: dec("1800"), EURPerCm3: dec("2.5")},
		{MinCm3: dec("1800"), MaxCm3: dec("2300"), EURPerCm3: dec("2.7")},
		{MinCm3: dec("2300"), MaxCm3: dec("3000"), EURPerCm3: dec("3.0")},
		{MinCm3: dec("3000"), MaxCm3: dec("10000"), EURPerCm3: dec("3.6")},
	}
}

// DefaultRecyclingTable is the recycling fee schedule for passenger cars.
func DefaultRecyclingTable() RecyclingTable {
	return RecyclingTable{
		Discount: DiscountRule{
			MaxLiters:     dec("3.0"),
			MaxHP:         160,
			UnderThree:    3400,
			UpToFiveYears: 5200,
		},
		Bands: []RecyclingBand{
			{
				MinLiters: dec("1.0"),
				MaxLiters: dec("2.0"),
				Ranges: []HorsepowerRange{
					{MinHP: 0, MaxHP: 160, Fees: FeePair{3400, 5200}},
					{MinHP: 160, MaxHP: 190, Fees: FeePair{750000, 1244000}},
					{MinHP: 190, MaxHP: 220, Fees: FeePair{794000, 1292000}},
					{MinHP: 220, MaxHP: 250, Fees: FeePair{842000, 1346000}},
					{MinHP: 250, MaxHP: 2001, Fees: FeePair{1047000, 1496000}},
				},
			},
			{
				MinLiters: dec("2.0"),
				MaxLiters: dec("3.0"),
				Ranges: []HorsepowerRange{
					{MinHP: 0, MaxHP: 160, Fees: FeePair{3400, 5200}},
					{MinHP: 160, MaxHP: 190, Fees: FeePair{1494000, 2153000}},
					{MinHP: 190, MaxHP: 220, Fees: FeePair{1700000, 2224000}},
					{MinHP: 220, MaxHP: 250, Fees: FeePair{1816000, 2370000}},
					{MinHP: 250, MaxHP: 280, Fees: FeePair{2153000, 2586000}},
					{MinHP: 280, MaxHP: 310, Fees: FeePair{2369000, 2787000}},
					{MinHP: 310, MaxHP: 340, Fees: FeePair{2586000, 3020000}},
				},
			},
		},
		Default: FeePair{20000, 30000},
	}
}
