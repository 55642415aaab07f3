package tariff

import (
	"sort"

	"github.com/shopspring/decimal"
)

// VolumeBracket maps engine displacement in (MinCm3, MaxCm3] to a duty rate.
// The lower bound is exclusive and the upper bound inclusive.
type VolumeBracket struct {
	MinCm3    decimal.Decimal
	MaxCm3    decimal.Decimal
	EURPerCm3 decimal.Decimal
}

func (b VolumeBracket) contains(cm3 decimal.Decimal) bool {
	return cm3.GreaterThan(b.MinCm3) && cm3.LessThanOrEqual(b.MaxCm3)
}

// VolumeRateTable is a set of non-overlapping volume brackets.
type VolumeRateTable []VolumeBracket

// Lookup returns the bracket containing cm3, or the bracket with the largest
// upper bound when cm3 is outside every bracket.
func (t VolumeRateTable) Lookup(cm3 decimal.Decimal) VolumeBracket {
	for _, b := range t {
		if b.contains(cm3) {
			return b
		}
	}
	return t.highest()
}

func (t VolumeRateTable) highest() VolumeBracket {
	var res VolumeBracket
	for i, b := range t {
		if i == 0 || b.MaxCm3.GreaterThan(res.MaxCm3) {
			res = b
		}
	}
	return res
}

// FeePair holds the recycling fee for vehicles up to three years old and older.
type FeePair struct {
	UpToThreeYears int64
	OverThreeYears int64
}

func (p FeePair) ForAge(years int) int64 {
	if years <= 3 {
		return p.UpToThreeYears
	}
	return p.OverThreeYears
}

// HorsepowerRange covers horsepower in [MinHP, MaxHP). The lower bound is
// inclusive and the upper bound exclusive.
type HorsepowerRange struct {
	MinHP int
	MaxHP int
	Fees  FeePair
}

func (r HorsepowerRange) contains(hp int) bool {
	return r.MinHP <= hp && hp < r.MaxHP
}

// RecyclingBand groups horsepower ranges for engines in (MinLiters, MaxLiters].
type RecyclingBand struct {
	MinLiters decimal.Decimal
	MaxLiters decimal.Decimal
	Ranges    []HorsepowerRange
}

func (b RecyclingBand) contains(liters decimal.Decimal) bool {
	return liters.GreaterThan(b.MinLiters) && liters.LessThanOrEqual(b.MaxLiters)
}

// Lookup scans ranges by ascending lower bound and returns the first one holding
// hp. When none does, the range with the highest lower bound is returned.
func (b RecyclingBand) Lookup(hp int) HorsepowerRange {
	ranges := make([]HorsepowerRange, len(b.Ranges))
	copy(ranges, b.Ranges)
	sort.SliceStable(ranges, func(i, j int) bool {
		return ranges[i].MinHP < ranges[j].MinHP
	})

	for _, r := range ranges {
		if r.contains(hp) {
			return r
		}
	}
	if len(ranges) == 0 {
		return HorsepowerRange{}
	}
	return ranges[len(ranges)-1]
}

// DiscountRule is the flat recycling fee for low powered vehicles.
type DiscountRule struct {
	MaxLiters     decimal.Decimal
	MaxHP         int
	UnderThree    int64
	UpToFiveYears int64
}

// RecyclingTable is the full recycling fee schedule.
type RecyclingTable struct {
	Discount DiscountRule
	Bands    []RecyclingBand
	// Default applies to volumes no band covers.
	Default FeePair
}

func (t RecyclingTable) band(liters decimal.Decimal) (RecyclingBand, bool) {
	for _, b := range t.Bands {
		if b.contains(liters) {
			return b, true
		}
	}
	return RecyclingBand{}, false
}
