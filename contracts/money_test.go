package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "12.50", MoneyFromUnits(12, 50).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "0.00", Money(0).String())
	assert.Equal(t, "-3.07", Money(-307).String())
	assert.Equal(t, "1999.99", Money(199999).String())
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in   string
		want Money
	}{
		{"12.50", 1250},
		{"12.5", 1250},
		{"12", 1200},
		{"0.05", 5},
		{".99", 99},
		{"-3.07", -307},
		{" 10.00 ", 1000},
		{"7.999", 799},
	}
	for _, tt := range tests {
		got, err := ParseMoney(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseMoneyRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "abc", "12,50", "1.2.3"} {
		_, err := ParseMoney(in)
		assert.Error(t, err, in)
	}
}

func TestMoneyTextRoundTrip(t *testing.T) {
	var m Money
	require.NoError(t, m.UnmarshalText([]byte("45.90")))
	assert.Equal(t, Money(4590), m)

	out, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "45.90", string(out))
}

func TestMoneyMul(t *testing.T) {
	assert.Equal(t, Money(3750), MoneyFromUnits(12, 50).Mul(3))
}
