package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyINRFromString(t *testing.T) {
	m, err := NewMoneyINRFromString("1062.00")
	require.NoError(t, err)
	assert.Equal(t, "1062.00", m.StringFixed(2))
	assert.Equal(t, INR, m.Currency())

	_, err = NewMoneyINRFromString("not-a-number")
	assert.Error(t, err)
}

func TestMoney_Arithmetic(t *testing.T) {
	a, err := NewMoneyINRFromString("900.00")
	require.NoError(t, err)
	b, err := NewMoneyINRFromString("162.00")
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "1062.00", sum.StringFixed(2))

	diff, err := sum.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.Equals(a))
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	inr, err := NewMoney(decimal.NewFromInt(100), INR)
	require.NoError(t, err)
	usd, err := NewMoney(decimal.NewFromInt(100), USD)
	require.NoError(t, err)

	_, err = inr.Add(usd)
	assert.Error(t, err)
}

func TestMoney_RoundHalfUp(t *testing.T) {
	m, err := NewMoneyINRFromString("233.345")
	require.NoError(t, err)
	assert.Equal(t, "233.35", m.Round(2).StringFixed(2))

	m, err = NewMoneyINRFromString("36.7524")
	require.NoError(t, err)
	assert.Equal(t, "36.75", m.Round(2).StringFixed(2))
}

func TestMoney_Comparisons(t *testing.T) {
	small, err := NewMoneyINRFromString("10.00")
	require.NoError(t, err)
	large, err := NewMoneyINRFromString("20.00")
	require.NoError(t, err)

	lt, err := small.LessThan(large)
	require.NoError(t, err)
	assert.True(t, lt)

	gt, err := large.GreaterThan(small)
	require.NoError(t, err)
	assert.True(t, gt)

	assert.True(t, ZeroINR().IsZero())
}
