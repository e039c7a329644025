// Package types holds the chain-facing value types of the SDK: coins,
// fees, and the typed messages that go into a transaction body.
package types

import (
	"fmt"
	"time"

	"github.com/blockberries/bramble/address"
	"github.com/blockberries/bramble/wire"
)

// Type URLs of the messages and keys the SDK produces.
const (
	MsgSendTypeURL                        = "/cosmos.bank.v1beta1.MsgSend"
	MsgDelegateTypeURL                    = "/cosmos.staking.v1beta1.MsgDelegate"
	MsgBeginRedelegateTypeURL             = "/cosmos.staking.v1beta1.MsgBeginRedelegate"
	MsgUndelegateTypeURL                  = "/cosmos.staking.v1beta1.MsgUndelegate"
	MsgVoteTypeURL                        = "/cosmos.gov.v1beta1.MsgVote"
	MsgVoteV1TypeURL                      = "/cosmos.gov.v1.MsgVote"
	MsgSubmitProposalTypeURL              = "/cosmos.gov.v1beta1.MsgSubmitProposal"
	MsgFundCommunityPoolTypeURL           = "/cosmos.distribution.v1beta1.MsgFundCommunityPool"
	MsgWithdrawDelegatorRewardTypeURL     = "/cosmos.distribution.v1beta1.MsgWithdrawDelegatorReward"
	MsgWithdrawValidatorCommissionTypeURL = "/cosmos.distribution.v1beta1.MsgWithdrawValidatorCommission"
	MsgVerifyInvariantTypeURL             = "/cosmos.crisis.v1beta1.MsgVerifyInvariant"
	MsgTransferTypeURL                    = "/ibc.applications.transfer.v1.MsgTransfer"

	Secp256k1PubKeyTypeURL    = "/cosmos.crypto.secp256k1.PubKey"
	EthSecp256k1PubKeyTypeURL = "/ethermint.crypto.v1.ethsecp256k1.PubKey"
)

// VoteOption is a governance vote choice.
type VoteOption int32

const (
	VoteOptionUnspecified VoteOption = 0
	VoteOptionYes         VoteOption = 1
	VoteOptionAbstain     VoteOption = 2
	VoteOptionNo          VoteOption = 3
	VoteOptionNoWithVeto  VoteOption = 4
)

// Msg is a transaction message: a type URL plus its encoded payload,
// ready to be packed into the Any slots of a TxBody.
type Msg struct {
	TypeURL string
	Value   []byte
}

// NewMsg encodes a wire message under the given type URL.
func NewMsg(typeURL string, m wire.Message) (Msg, error) {
	value, err := m.Marshal()
	if err != nil {
		return Msg{}, fmt.Errorf("%w: %s: %v", ErrInvalidMessage, typeURL, err)
	}
	return Msg{TypeURL: typeURL, Value: value}, nil
}

// ToAny converts the message to its protobuf Any form.
func (m Msg) ToAny() wire.Any {
	return wire.Any{TypeURL: m.TypeURL, Value: m.Value}
}

// MsgsToAny converts a message slice to Any form for a TxBody.
func MsgsToAny(msgs []Msg) []wire.Any {
	out := make([]wire.Any, len(msgs))
	for i, m := range msgs {
		out[i] = m.ToAny()
	}
	return out
}

// NewMsgSend builds a bank send message.
func NewMsgSend(from, to address.Address, amount Coins) (Msg, error) {
	return NewMsg(MsgSendTypeURL, &wire.MsgSend{
		FromAddress: from.String(),
		ToAddress:   to.String(),
		Amount:      amount.ToWire(),
	})
}

// NewMsgDelegate builds a staking delegate message. The validator
// address carries its own operator prefix, so it is taken as a string.
func NewMsgDelegate(delegator address.Address, validator string, amount Coin) (Msg, error) {
	c := amount.ToWire()
	return NewMsg(MsgDelegateTypeURL, &wire.MsgDelegate{
		DelegatorAddress: delegator.String(),
		ValidatorAddress: validator,
		Amount:           &c,
	})
}

// NewMsgBeginRedelegate builds a staking redelegate message.
func NewMsgBeginRedelegate(delegator address.Address, validatorSrc, validatorDst string, amount Coin) (Msg, error) {
	c := amount.ToWire()
	return NewMsg(MsgBeginRedelegateTypeURL, &wire.MsgBeginRedelegate{
		DelegatorAddress:    delegator.String(),
		ValidatorSrcAddress: validatorSrc,
		ValidatorDstAddress: validatorDst,
		Amount:              &c,
	})
}

// NewMsgUndelegate builds a staking undelegate message.
func NewMsgUndelegate(delegator address.Address, validator string, amount Coin) (Msg, error) {
	c := amount.ToWire()
	return NewMsg(MsgUndelegateTypeURL, &wire.MsgUndelegate{
		DelegatorAddress: delegator.String(),
		ValidatorAddress: validator,
		Amount:           &c,
	})
}

// NewMsgVote builds a governance vote message.
func NewMsgVote(voter address.Address, proposalID uint64, option VoteOption) (Msg, error) {
	return NewMsg(MsgVoteTypeURL, &wire.MsgVote{
		ProposalID: proposalID,
		Voter:      voter.String(),
		Option:     int32(option),
	})
}

// NewMsgVoteV1 builds a gov v1 vote message. The v1 form shares its
// first three fields with v1beta1, so the same wire layout applies.
func NewMsgVoteV1(voter address.Address, proposalID uint64, option VoteOption) (Msg, error) {
	return NewMsg(MsgVoteV1TypeURL, &wire.MsgVote{
		ProposalID: proposalID,
		Voter:      voter.String(),
		Option:     int32(option),
	})
}

// NewMsgSubmitProposal builds a governance proposal submission wrapping
// an already-encoded proposal content message.
func NewMsgSubmitProposal(proposer address.Address, content Msg, deposit Coins) (Msg, error) {
	any := content.ToAny()
	return NewMsg(MsgSubmitProposalTypeURL, &wire.MsgSubmitProposal{
		Content:        &any,
		InitialDeposit: deposit.ToWire(),
		Proposer:       proposer.String(),
	})
}

// NewMsgFundCommunityPool builds a community pool deposit message.
func NewMsgFundCommunityPool(depositor address.Address, amount Coins) (Msg, error) {
	return NewMsg(MsgFundCommunityPoolTypeURL, &wire.MsgFundCommunityPool{
		Amount:    amount.ToWire(),
		Depositor: depositor.String(),
	})
}

// NewMsgWithdrawDelegatorReward builds a reward withdrawal message.
func NewMsgWithdrawDelegatorReward(delegator address.Address, validator string) (Msg, error) {
	return NewMsg(MsgWithdrawDelegatorRewardTypeURL, &wire.MsgWithdrawDelegatorReward{
		DelegatorAddress: delegator.String(),
		ValidatorAddress: validator,
	})
}

// NewMsgWithdrawValidatorCommission builds a commission withdrawal
// message.
func NewMsgWithdrawValidatorCommission(validator string) (Msg, error) {
	return NewMsg(MsgWithdrawValidatorCommissionTypeURL, &wire.MsgWithdrawValidatorCommission{
		ValidatorAddress: validator,
	})
}

// NewMsgVerifyInvariant builds a crisis invariant check message.
func NewMsgVerifyInvariant(sender address.Address, module, route string) (Msg, error) {
	return NewMsg(MsgVerifyInvariantTypeURL, &wire.MsgVerifyInvariant{
		Sender:              sender.String(),
		InvariantModuleName: module,
		InvariantRoute:      route,
	})
}

// NewMsgTransfer builds an IBC token transfer. The timeout is a wall
// clock duration from now, converted to a Unix-nanosecond timestamp for
// the counterparty chain.
func NewMsgTransfer(sender address.Address, receiver, sourcePort, sourceChannel string, token Coin, timeout time.Duration) (Msg, error) {
	if timeout <= 0 {
		return Msg{}, fmt.Errorf("%w: %s", ErrBadTimeout, timeout)
	}
	now := time.Now()
	if now.UnixNano() < 0 {
		return Msg{}, ErrSystemClock
	}

	c := token.ToWire()
	return NewMsg(MsgTransferTypeURL, &wire.MsgTransfer{
		SourcePort:       sourcePort,
		SourceChannel:    sourceChannel,
		Token:            &c,
		Sender:           sender.String(),
		Receiver:         receiver,
		TimeoutTimestamp: uint64(now.Add(timeout).UnixNano()),
	})
}
