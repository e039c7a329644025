package types

import (
	"github.com/blockberries/bramble/address"
	"github.com/blockberries/bramble/wire"
)

// Fee is the fee and gas limit carried in a transaction's AuthInfo.
// A nil Payer and empty Granter leave the corresponding wire fields
// unset, which is how the chain expects an absent value.
type Fee struct {
	Amount   Coins
	GasLimit uint64
	Payer    *address.Address
	Granter  string
}

// NewFee creates a fee with the given amount and gas limit.
func NewFee(amount Coins, gasLimit uint64) Fee {
	return Fee{Amount: amount, GasLimit: gasLimit}
}

// ToWire converts the fee to its protobuf form.
func (f Fee) ToWire() wire.Fee {
	w := wire.Fee{
		Amount:   f.Amount.ToWire(),
		GasLimit: f.GasLimit,
		Granter:  f.Granter,
	}
	if f.Payer != nil {
		w.Payer = f.Payer.String()
	}
	return w
}

// Tip is the optional tip carried in a transaction's AuthInfo.
type Tip struct {
	Amount Coins
	Tipper string
}

// ToWire converts the tip to its protobuf form.
func (t Tip) ToWire() wire.Tip {
	return wire.Tip{Amount: t.Amount.ToWire(), Tipper: t.Tipper}
}

// MessageArgs carries everything besides the messages themselves needed
// to assemble and sign a transaction.
type MessageArgs struct {
	Sequence      uint64
	AccountNumber uint64
	ChainID       string
	Fee           Fee
	Tip           *Tip
	TimeoutHeight uint64
}
