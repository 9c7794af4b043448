package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount_Valid(t *testing.T) {
	for text, want := range map[string]string{
		"100":    "100",
		"100.00": "100",
		"0.01":   "0.01",
		"12.5":   "12.5",
		"10.000": "10",
	} {
		amount, err := ParseAmount(text)
		require.NoError(t, err, text)
		assert.True(t, amount.Equal(decimal.RequireFromString(want)), text)
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, text := range []string{"", "0", "0.00", "-5", "10.001", "10.00123123", "abc", "1e2"} {
		_, err := ParseAmount(text)
		assert.ErrorIs(t, err, ErrInvalidAmount, text)
	}
}

func TestParseRate_RoundsToTwoPlaces(t *testing.T) {
	rate, err := ParseRate("10.00123123")
	require.NoError(t, err)
	assert.Equal(t, "10.00", rate.StringFixed(2))

	rate, err = ParseRate("2.125")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("2.13")), "half away from zero")
}

func TestParseRate_Bounds(t *testing.T) {
	for _, text := range []string{"0", "0.00", "-1", "100", "100.00", "150", "", "x"} {
		_, err := ParseRate(text)
		assert.ErrorIs(t, err, ErrInvalidRate, text)
	}

	for _, text := range []string{"0.01", "99.99", "1.95", "0.005", "99.994"} {
		_, err := ParseRate(text)
		assert.NoError(t, err, text)
	}
}

func TestParseRate_RoundedValueMustStayInRange(t *testing.T) {
	for _, text := range []string{"0.001", "0.004", "99.995", "99.999"} {
		_, err := ParseRate(text)
		assert.ErrorIs(t, err, ErrInvalidRate, text)
	}

	rate, err := ParseRate("0.005")
	require.NoError(t, err)
	assert.Equal(t, "0.01", rate.StringFixed(2))

	rate, err = ParseRate("99.994")
	require.NoError(t, err)
	assert.Equal(t, "99.99", rate.StringFixed(2))
}
