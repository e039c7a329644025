package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Message payloads of the helper surface. Only the encode direction is
// exercised in practice; Unmarshal is provided for symmetry and for
// inspecting transactions fetched from the chain.

// MsgSend mirrors cosmos.bank.v1beta1.MsgSend.
type MsgSend struct {
	FromAddress string
	ToAddress   string
	Amount      []Coin
}

func (m *MsgSend) Marshal() ([]byte, error) {
	var b []byte
	var err error
	b = appendString(b, 1, m.FromAddress)
	b = appendString(b, 2, m.ToAddress)
	for i := range m.Amount {
		if b, err = appendMessage(b, 3, &m.Amount[i]); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *MsgSend) Unmarshal(data []byte) error {
	*m = MsgSend{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			s, n, err := consumeString(payload)
			m.FromAddress = s
			return n, err
		case 2:
			s, n, err := consumeString(payload)
			m.ToAddress = s
			return n, err
		case 3:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var c Coin
			if err := c.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Amount = append(m.Amount, c)
			return n, nil
		}
		return -1, nil
	})
}

// MsgDelegate mirrors cosmos.staking.v1beta1.MsgDelegate.
type MsgDelegate struct {
	DelegatorAddress string
	ValidatorAddress string
	Amount           *Coin
}

func (m *MsgDelegate) Marshal() ([]byte, error) {
	var b []byte
	var err error
	b = appendString(b, 1, m.DelegatorAddress)
	b = appendString(b, 2, m.ValidatorAddress)
	if m.Amount != nil {
		if b, err = appendMessage(b, 3, m.Amount); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *MsgDelegate) Unmarshal(data []byte) error {
	*m = MsgDelegate{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			s, n, err := consumeString(payload)
			m.DelegatorAddress = s
			return n, err
		case 2:
			s, n, err := consumeString(payload)
			m.ValidatorAddress = s
			return n, err
		case 3:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var c Coin
			if err := c.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Amount = &c
			return n, nil
		}
		return -1, nil
	})
}

// MsgBeginRedelegate mirrors cosmos.staking.v1beta1.MsgBeginRedelegate.
type MsgBeginRedelegate struct {
	DelegatorAddress    string
	ValidatorSrcAddress string
	ValidatorDstAddress string
	Amount              *Coin
}

func (m *MsgBeginRedelegate) Marshal() ([]byte, error) {
	var b []byte
	var err error
	b = appendString(b, 1, m.DelegatorAddress)
	b = appendString(b, 2, m.ValidatorSrcAddress)
	b = appendString(b, 3, m.ValidatorDstAddress)
	if m.Amount != nil {
		if b, err = appendMessage(b, 4, m.Amount); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *MsgBeginRedelegate) Unmarshal(data []byte) error {
	*m = MsgBeginRedelegate{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			s, n, err := consumeString(payload)
			m.DelegatorAddress = s
			return n, err
		case 2:
			s, n, err := consumeString(payload)
			m.ValidatorSrcAddress = s
			return n, err
		case 3:
			s, n, err := consumeString(payload)
			m.ValidatorDstAddress = s
			return n, err
		case 4:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var c Coin
			if err := c.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Amount = &c
			return n, nil
		}
		return -1, nil
	})
}

// MsgUndelegate mirrors cosmos.staking.v1beta1.MsgUndelegate.
type MsgUndelegate struct {
	DelegatorAddress string
	ValidatorAddress string
	Amount           *Coin
}

func (m *MsgUndelegate) Marshal() ([]byte, error) {
	var b []byte
	var err error
	b = appendString(b, 1, m.DelegatorAddress)
	b = appendString(b, 2, m.ValidatorAddress)
	if m.Amount != nil {
		if b, err = appendMessage(b, 3, m.Amount); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *MsgUndelegate) Unmarshal(data []byte) error {
	var d MsgDelegate
	if err := d.Unmarshal(data); err != nil {
		return err
	}
	*m = MsgUndelegate(d)
	return nil
}

// MsgVote mirrors cosmos.gov.v1beta1.MsgVote and, with Metadata set,
// cosmos.gov.v1.MsgVote.
type MsgVote struct {
	ProposalID uint64
	Voter      string
	Option     int32
	Metadata   string
}

func (m *MsgVote) Marshal() ([]byte, error) {
	var b []byte
	b = appendUvarint(b, 1, m.ProposalID)
	b = appendString(b, 2, m.Voter)
	b = appendUvarint(b, 3, uint64(m.Option))
	b = appendString(b, 4, m.Metadata)
	return b, nil
}

func (m *MsgVote) Unmarshal(data []byte) error {
	*m = MsgVote{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint(payload)
			m.ProposalID = v
			return n, err
		case 2:
			s, n, err := consumeString(payload)
			m.Voter = s
			return n, err
		case 3:
			v, n, err := consumeVarint(payload)
			m.Option = int32(v)
			return n, err
		case 4:
			s, n, err := consumeString(payload)
			m.Metadata = s
			return n, err
		}
		return -1, nil
	})
}

// MsgSubmitProposal mirrors cosmos.gov.v1beta1.MsgSubmitProposal.
type MsgSubmitProposal struct {
	Content        *Any
	InitialDeposit []Coin
	Proposer       string
}

func (m *MsgSubmitProposal) Marshal() ([]byte, error) {
	var b []byte
	var err error
	if m.Content != nil {
		if b, err = appendMessage(b, 1, m.Content); err != nil {
			return nil, err
		}
	}
	for i := range m.InitialDeposit {
		if b, err = appendMessage(b, 2, &m.InitialDeposit[i]); err != nil {
			return nil, err
		}
	}
	b = appendString(b, 3, m.Proposer)
	return b, nil
}

func (m *MsgSubmitProposal) Unmarshal(data []byte) error {
	*m = MsgSubmitProposal{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var a Any
			if err := a.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Content = &a
			return n, nil
		case 2:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var c Coin
			if err := c.Unmarshal(v); err != nil {
				return 0, err
			}
			m.InitialDeposit = append(m.InitialDeposit, c)
			return n, nil
		case 3:
			s, n, err := consumeString(payload)
			m.Proposer = s
			return n, err
		}
		return -1, nil
	})
}

// MsgFundCommunityPool mirrors
// cosmos.distribution.v1beta1.MsgFundCommunityPool.
type MsgFundCommunityPool struct {
	Amount    []Coin
	Depositor string
}

func (m *MsgFundCommunityPool) Marshal() ([]byte, error) {
	var b []byte
	var err error
	for i := range m.Amount {
		if b, err = appendMessage(b, 1, &m.Amount[i]); err != nil {
			return nil, err
		}
	}
	b = appendString(b, 2, m.Depositor)
	return b, nil
}

func (m *MsgFundCommunityPool) Unmarshal(data []byte) error {
	*m = MsgFundCommunityPool{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var c Coin
			if err := c.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Amount = append(m.Amount, c)
			return n, nil
		case 2:
			s, n, err := consumeString(payload)
			m.Depositor = s
			return n, err
		}
		return -1, nil
	})
}

// MsgWithdrawDelegatorReward mirrors
// cosmos.distribution.v1beta1.MsgWithdrawDelegatorReward.
type MsgWithdrawDelegatorReward struct {
	DelegatorAddress string
	ValidatorAddress string
}

func (m *MsgWithdrawDelegatorReward) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.DelegatorAddress)
	b = appendString(b, 2, m.ValidatorAddress)
	return b, nil
}

func (m *MsgWithdrawDelegatorReward) Unmarshal(data []byte) error {
	*m = MsgWithdrawDelegatorReward{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			s, n, err := consumeString(payload)
			m.DelegatorAddress = s
			return n, err
		case 2:
			s, n, err := consumeString(payload)
			m.ValidatorAddress = s
			return n, err
		}
		return -1, nil
	})
}

// MsgWithdrawValidatorCommission mirrors
// cosmos.distribution.v1beta1.MsgWithdrawValidatorCommission.
type MsgWithdrawValidatorCommission struct {
	ValidatorAddress string
}

func (m *MsgWithdrawValidatorCommission) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.ValidatorAddress)
	return b, nil
}

func (m *MsgWithdrawValidatorCommission) Unmarshal(data []byte) error {
	*m = MsgWithdrawValidatorCommission{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 1 {
			s, n, err := consumeString(payload)
			m.ValidatorAddress = s
			return n, err
		}
		return -1, nil
	})
}

// MsgVerifyInvariant mirrors cosmos.crisis.v1beta1.MsgVerifyInvariant.
type MsgVerifyInvariant struct {
	Sender              string
	InvariantModuleName string
	InvariantRoute      string
}

func (m *MsgVerifyInvariant) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.Sender)
	b = appendString(b, 2, m.InvariantModuleName)
	b = appendString(b, 3, m.InvariantRoute)
	return b, nil
}

func (m *MsgVerifyInvariant) Unmarshal(data []byte) error {
	*m = MsgVerifyInvariant{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			s, n, err := consumeString(payload)
			m.Sender = s
			return n, err
		case 2:
			s, n, err := consumeString(payload)
			m.InvariantModuleName = s
			return n, err
		case 3:
			s, n, err := consumeString(payload)
			m.InvariantRoute = s
			return n, err
		}
		return -1, nil
	})
}

// Height mirrors ibc.core.client.v1.Height.
type Height struct {
	RevisionNumber uint64
	RevisionHeight uint64
}

func (m *Height) Marshal() ([]byte, error) {
	var b []byte
	b = appendUvarint(b, 1, m.RevisionNumber)
	b = appendUvarint(b, 2, m.RevisionHeight)
	return b, nil
}

func (m *Height) Unmarshal(data []byte) error {
	*m = Height{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint(payload)
			m.RevisionNumber = v
			return n, err
		case 2:
			v, n, err := consumeVarint(payload)
			m.RevisionHeight = v
			return n, err
		}
		return -1, nil
	})
}

// MsgTransfer mirrors ibc.applications.transfer.v1.MsgTransfer.
type MsgTransfer struct {
	SourcePort       string
	SourceChannel    string
	Token            *Coin
	Sender           string
	Receiver         string
	TimeoutHeight    *Height
	TimeoutTimestamp uint64
	Memo             string
}

func (m *MsgTransfer) Marshal() ([]byte, error) {
	var b []byte
	var err error
	b = appendString(b, 1, m.SourcePort)
	b = appendString(b, 2, m.SourceChannel)
	if m.Token != nil {
		if b, err = appendMessage(b, 3, m.Token); err != nil {
			return nil, err
		}
	}
	b = appendString(b, 4, m.Sender)
	b = appendString(b, 5, m.Receiver)
	if m.TimeoutHeight != nil {
		if b, err = appendMessage(b, 6, m.TimeoutHeight); err != nil {
			return nil, err
		}
	}
	b = appendUvarint(b, 7, m.TimeoutTimestamp)
	b = appendString(b, 8, m.Memo)
	return b, nil
}

func (m *MsgTransfer) Unmarshal(data []byte) error {
	*m = MsgTransfer{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			s, n, err := consumeString(payload)
			m.SourcePort = s
			return n, err
		case 2:
			s, n, err := consumeString(payload)
			m.SourceChannel = s
			return n, err
		case 3:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var c Coin
			if err := c.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Token = &c
			return n, nil
		case 4:
			s, n, err := consumeString(payload)
			m.Sender = s
			return n, err
		case 5:
			s, n, err := consumeString(payload)
			m.Receiver = s
			return n, err
		case 6:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var h Height
			if err := h.Unmarshal(v); err != nil {
				return 0, err
			}
			m.TimeoutHeight = &h
			return n, nil
		case 7:
			v, n, err := consumeVarint(payload)
			m.TimeoutTimestamp = v
			return n, err
		case 8:
			s, n, err := consumeString(payload)
			m.Memo = s
			return n, err
		}
		return -1, nil
	})
}
