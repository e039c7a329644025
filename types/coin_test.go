package types

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoin(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantDenom  string
		wantAmount string
		wantErr    bool
	}{
		{"simple", "1000uatom", "uatom", "1000", false},
		{"single unit", "1foo", "foo", "1", false},
		{"ibc denom", "5000ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2", "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2", "5000", false},
		{"256-bit amount", "115792089237316195423570985008687907853269984665640564039457584007913129639935stake", "stake", "115792089237316195423570985008687907853269984665640564039457584007913129639935", false},
		{"no denom", "1000", "", "", true},
		{"no amount", "uatom", "", "", true},
		{"empty", "", "", "", true},
		{"denom first", "uatom1000", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCoin(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrParseCoin)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDenom, c.Denom)
			assert.Equal(t, tt.wantAmount, c.Amount.String())
		})
	}
}

func TestCoinPredicates(t *testing.T) {
	assert.True(t, NewCoin("uatom", 1).IsValid())
	assert.True(t, NewCoin("uatom", 0).IsValid())
	assert.False(t, NewCoin("", 1).IsValid())
	assert.False(t, NewCoinFromInt("uatom", math.NewInt(-1)).IsValid())
	assert.False(t, Coin{Denom: "uatom"}.IsValid(), "nil amount")

	assert.True(t, NewCoin("uatom", 0).IsZero())
	assert.True(t, Coin{}.IsZero())
	assert.False(t, NewCoin("uatom", 1).IsZero())

	assert.True(t, NewCoin("uatom", 1).IsPositive())
	assert.False(t, NewCoin("uatom", 0).IsPositive())
	assert.False(t, Coin{Denom: "uatom"}.IsPositive())
}

func TestCoinEqualAndString(t *testing.T) {
	a := NewCoin("uatom", 100)
	b := NewCoin("uatom", 100)
	c := NewCoin("uosmo", 100)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Coin{Denom: "uatom"}))
	assert.True(t, Coin{Denom: "x"}.Equal(Coin{Denom: "x"}), "two nil amounts")
	assert.Equal(t, "100uatom", a.String())
}

func TestCoin_WireRoundTrip(t *testing.T) {
	c := NewCoin("uatom", 12345)
	w := c.ToWire()
	assert.Equal(t, "uatom", w.Denom)
	assert.Equal(t, "12345", w.Amount)

	back, err := CoinFromWire(w)
	require.NoError(t, err)
	assert.True(t, c.Equal(back))

	w.Amount = "not a number"
	_, err = CoinFromWire(w)
	assert.ErrorIs(t, err, ErrParseCoin)
}

func TestCoins(t *testing.T) {
	t.Run("valid sorted unique", func(t *testing.T) {
		coins := NewCoins(NewCoin("uatom", 1), NewCoin("uosmo", 2))
		assert.True(t, coins.IsValid())
	})

	t.Run("unsorted is invalid", func(t *testing.T) {
		coins := NewCoins(NewCoin("uosmo", 2), NewCoin("uatom", 1))
		assert.False(t, coins.IsValid())
		assert.True(t, coins.Sort().IsValid())
	})

	t.Run("duplicate denom is invalid", func(t *testing.T) {
		coins := NewCoins(NewCoin("uatom", 1), NewCoin("uatom", 2))
		assert.False(t, coins.IsValid())
	})

	t.Run("amount of", func(t *testing.T) {
		coins := NewCoins(NewCoin("uatom", 7))
		assert.Equal(t, math.NewInt(7), coins.AmountOf("uatom"))
		assert.Equal(t, math.ZeroInt(), coins.AmountOf("uosmo"))
	})

	t.Run("zero", func(t *testing.T) {
		assert.True(t, Coins{}.IsZero())
		assert.True(t, NewCoins(NewCoin("uatom", 0)).IsZero())
		assert.False(t, NewCoins(NewCoin("uatom", 1)).IsZero())
	})

	t.Run("string", func(t *testing.T) {
		coins := NewCoins(NewCoin("uatom", 1), NewCoin("uosmo", 2))
		assert.Equal(t, "1uatom,2uosmo", coins.String())
		assert.Equal(t, "", Coins{}.String())
	})

	t.Run("wire round trip", func(t *testing.T) {
		coins := NewCoins(NewCoin("uatom", 1), NewCoin("uosmo", 2))
		back, err := CoinsFromWire(coins.ToWire())
		require.NoError(t, err)
		require.Len(t, back, 2)
		assert.True(t, coins[0].Equal(back[0]))
		assert.True(t, coins[1].Equal(back[1]))
	})
}
