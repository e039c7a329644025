package types

import (
	"fmt"
	"sort"
	"strings"

	"cosmossdk.io/math"

	"github.com/blockberries/bramble/wire"
)

// Coin represents a single token with denomination and amount. Amounts
// are 256-bit integers, matching what chains accept on the wire.
type Coin struct {
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

// NewCoin creates a new coin from an int64 amount.
func NewCoin(denom string, amount int64) Coin {
	return Coin{Denom: denom, Amount: math.NewInt(amount)}
}

// NewCoinFromInt creates a new coin from a math.Int amount.
func NewCoinFromInt(denom string, amount math.Int) Coin {
	return Coin{Denom: denom, Amount: amount}
}

// ParseCoin parses a coin string of the form <amount><denom>, splitting
// at the first character that is not part of the decimal amount.
func ParseCoin(s string) (Coin, error) {
	split := len(s)
	for i, r := range s {
		if r < '0' || r > '9' {
			split = i
			break
		}
	}
	if split == 0 || split == len(s) {
		return Coin{}, fmt.Errorf("%w: %q", ErrParseCoin, s)
	}

	amount, ok := math.NewIntFromString(s[:split])
	if !ok {
		return Coin{}, fmt.Errorf("%w: bad amount in %q", ErrParseCoin, s)
	}
	return Coin{Denom: s[split:], Amount: amount}, nil
}

// IsValid checks if the coin has a denom and a non-negative amount.
func (c Coin) IsValid() bool {
	return c.Denom != "" && len(c.Denom) <= 64 && !c.Amount.IsNil() && !c.Amount.IsNegative()
}

// IsZero returns true if the coin amount is zero.
func (c Coin) IsZero() bool {
	return c.Amount.IsNil() || c.Amount.IsZero()
}

// IsPositive returns true if the coin amount is positive.
func (c Coin) IsPositive() bool {
	return !c.Amount.IsNil() && c.Amount.IsPositive()
}

// Equal reports whether two coins have the same denom and amount.
func (c Coin) Equal(other Coin) bool {
	if c.Denom != other.Denom {
		return false
	}
	if c.Amount.IsNil() || other.Amount.IsNil() {
		return c.Amount.IsNil() == other.Amount.IsNil()
	}
	return c.Amount.Equal(other.Amount)
}

// String returns a string representation of the coin.
func (c Coin) String() string {
	return fmt.Sprintf("%s%s", c.Amount, c.Denom)
}

// ToWire converts the coin to its protobuf form.
func (c Coin) ToWire() wire.Coin {
	return wire.Coin{Denom: c.Denom, Amount: c.Amount.String()}
}

// CoinFromWire converts a protobuf coin back to a Coin.
func CoinFromWire(w wire.Coin) (Coin, error) {
	amount, ok := math.NewIntFromString(w.Amount)
	if !ok {
		return Coin{}, fmt.Errorf("%w: bad amount %q", ErrParseCoin, w.Amount)
	}
	return Coin{Denom: w.Denom, Amount: amount}, nil
}

// Coins represents a collection of coins.
type Coins []Coin

// NewCoins creates a new Coins collection from a list of coins.
func NewCoins(coins ...Coin) Coins {
	return Coins(coins)
}

// IsValid checks if all coins are valid with unique, sorted denoms.
func (coins Coins) IsValid() bool {
	var prevDenom string
	for i, coin := range coins {
		if !coin.IsValid() {
			return false
		}
		if i > 0 && strings.Compare(coin.Denom, prevDenom) <= 0 {
			return false
		}
		prevDenom = coin.Denom
	}
	return true
}

// IsZero returns true if there are no coins or all amounts are zero.
func (coins Coins) IsZero() bool {
	for _, coin := range coins {
		if !coin.IsZero() {
			return false
		}
	}
	return true
}

// AmountOf returns the amount of a specific denomination.
func (coins Coins) AmountOf(denom string) math.Int {
	for _, coin := range coins {
		if coin.Denom == denom {
			return coin.Amount
		}
	}
	return math.ZeroInt()
}

// Sort returns a copy sorted by denomination.
func (coins Coins) Sort() Coins {
	sorted := make(Coins, len(coins))
	copy(sorted, coins)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.Compare(sorted[i].Denom, sorted[j].Denom) < 0
	})
	return sorted
}

// String returns a comma-joined representation of the coins.
func (coins Coins) String() string {
	if len(coins) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, coin := range coins {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(coin.String())
	}
	return sb.String()
}

// ToWire converts the collection to its protobuf form.
func (coins Coins) ToWire() []wire.Coin {
	out := make([]wire.Coin, len(coins))
	for i, c := range coins {
		out[i] = c.ToWire()
	}
	return out
}

// CoinsFromWire converts protobuf coins back to a Coins collection.
func CoinsFromWire(ws []wire.Coin) (Coins, error) {
	out := make(Coins, len(ws))
	for i, w := range ws {
		c, err := CoinFromWire(w)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
