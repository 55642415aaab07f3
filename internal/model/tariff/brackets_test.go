package tariff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_VolumeRateTable_BoundsAreLowerExclusiveUpperInclusive(t *testing.T) {
	table := DefaultDutyTable()

	assert.Equal(t, "1.5", table.Lookup(dec("1000")).EURPerCm3.String())
	assert.Equal(t, "1.7", table.Lookup(dec("1000.5")).EURPerCm3.String())
	assert.Equal(t, "2.5", table.Lookup(dec("1800")).EURPerCm3.String())
	assert.Equal(t, "2.7", table.Lookup(dec("1801")).EURPerCm3.String())
	assert.Equal(t, "3.6", table.Lookup(dec("25000")).EURPerCm3.String())
}

func Test_VolumeRateTable_EmptyTable(t *testing.T) {
	assert.True(t, VolumeRateTable{}.Lookup(dec("1500")).EURPerCm3.IsZero())
}

func Test_RecyclingBand_LookupScansByLowerBound(t *testing.T) {
	band := RecyclingBand{
		MinLiters: dec("1"),
		MaxLiters: dec("2"),
		Ranges: []HorsepowerRange{
			{MinHP: 200, MaxHP: 300, Fees: FeePair{3, 30}},
			{MinHP: 100, MaxHP: 200, Fees: FeePair{2, 20}},
			{MinHP: 0, MaxHP: 100, Fees: FeePair{1, 10}},
		},
	}

	assert.Equal(t, 0, band.Lookup(99).MinHP)
	assert.Equal(t, 100, band.Lookup(100).MinHP)
	assert.Equal(t, 200, band.Lookup(200).MinHP)
	assert.Equal(t, 200, band.Lookup(300).MinHP)
	assert.Equal(t, 200, band.Lookup(999).MinHP)
}

func Test_RecyclingBand_ContainsIsLowerExclusive(t *testing.T) {
	band := RecyclingBand{MinLiters: dec("1.0"), MaxLiters: dec("2.0")}

	assert.False(t, band.contains(dec("1.0")))
	assert.True(t, band.contains(dec("1.01")))
	assert.True(t, band.contains(dec("2.0")))
	assert.False(t, band.contains(dec("2.01")))
}

func Test_FeePair_ForAge(t *testing.T) {
	p := FeePair{UpToThreeYears: 10, OverThreeYears: 20}

	assert.Equal(t, int64(10), p.ForAge(0))
	assert.Equal(t, int64(10), p.ForAge(3))
	assert.Equal(t, int64(20), p.ForAge(4))
}
