package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// SignModeDirect is the canonical proto-serialisation sign mode.
const SignModeDirect = 1

// BroadcastMode mirrors cosmos.tx.v1beta1.BroadcastMode.
type BroadcastMode int32

const (
	BroadcastModeUnspecified BroadcastMode = 0
	BroadcastModeBlock       BroadcastMode = 1
	BroadcastModeSync        BroadcastMode = 2
	BroadcastModeAsync       BroadcastMode = 3
)

// Any carries a registered type URL and the encoded message bytes,
// mirroring google.protobuf.Any.
type Any struct {
	TypeURL string
	Value   []byte
}

func (m *Any) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.TypeURL)
	b = appendBytes(b, 2, m.Value)
	return b, nil
}

func (m *Any) Unmarshal(data []byte) error {
	*m = Any{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			s, n, err := consumeString(payload)
			m.TypeURL = s
			return n, err
		case 2:
			v, n, err := consumeBytes(payload)
			m.Value = append([]byte(nil), v...)
			return n, err
		}
		return -1, nil
	})
}

// Coin mirrors cosmos.base.v1beta1.Coin; the amount travels as a
// decimal string.
type Coin struct {
	Denom  string
	Amount string
}

func (m *Coin) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.Denom)
	b = appendString(b, 2, m.Amount)
	return b, nil
}

func (m *Coin) Unmarshal(data []byte) error {
	*m = Coin{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			s, n, err := consumeString(payload)
			m.Denom = s
			return n, err
		case 2:
			s, n, err := consumeString(payload)
			m.Amount = s
			return n, err
		}
		return -1, nil
	})
}

// Fee mirrors cosmos.tx.v1beta1.Fee.
type Fee struct {
	Amount   []Coin
	GasLimit uint64
	Payer    string
	Granter  string
}

func (m *Fee) Marshal() ([]byte, error) {
	var b []byte
	var err error
	for i := range m.Amount {
		if b, err = appendMessage(b, 1, &m.Amount[i]); err != nil {
			return nil, err
		}
	}
	b = appendUvarint(b, 2, m.GasLimit)
	b = appendString(b, 3, m.Payer)
	b = appendString(b, 4, m.Granter)
	return b, nil
}

func (m *Fee) Unmarshal(data []byte) error {
	*m = Fee{}
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
			v, n, err := consumeVarint(payload)
			m.GasLimit = v
			return n, err
		case 3:
			s, n, err := consumeString(payload)
			m.Payer = s
			return n, err
		case 4:
			s, n, err := consumeString(payload)
			m.Granter = s
			return n, err
		}
		return -1, nil
	})
}

// Tip mirrors cosmos.tx.v1beta1.Tip.
type Tip struct {
	Amount []Coin
	Tipper string
}

func (m *Tip) Marshal() ([]byte, error) {
	var b []byte
	var err error
	for i := range m.Amount {
		if b, err = appendMessage(b, 1, &m.Amount[i]); err != nil {
			return nil, err
		}
	}
	b = appendString(b, 2, m.Tipper)
	return b, nil
}

func (m *Tip) Unmarshal(data []byte) error {
	*m = Tip{}
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
			m.Tipper = s
			return n, err
		}
		return -1, nil
	})
}

// TxBody mirrors cosmos.tx.v1beta1.TxBody. Extension options are not
// produced by this SDK and round-trip as raw Any values.
type TxBody struct {
	Messages      []Any
	Memo          string
	TimeoutHeight uint64
}

func (m *TxBody) Marshal() ([]byte, error) {
	var b []byte
	var err error
	for i := range m.Messages {
		if b, err = appendMessage(b, 1, &m.Messages[i]); err != nil {
			return nil, err
		}
	}
	b = appendString(b, 2, m.Memo)
	b = appendUvarint(b, 3, m.TimeoutHeight)
	return b, nil
}

func (m *TxBody) Unmarshal(data []byte) error {
	*m = TxBody{}
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
			m.Messages = append(m.Messages, a)
			return n, nil
		case 2:
			s, n, err := consumeString(payload)
			m.Memo = s
			return n, err
		case 3:
			v, n, err := consumeVarint(payload)
			m.TimeoutHeight = v
			return n, err
		}
		return -1, nil
	})
}

// ModeInfoSingle mirrors cosmos.tx.v1beta1.ModeInfo.Single.
type ModeInfoSingle struct {
	Mode int32
}

func (m *ModeInfoSingle) Marshal() ([]byte, error) {
	var b []byte
	b = appendUvarint(b, 1, uint64(m.Mode))
	return b, nil
}

func (m *ModeInfoSingle) Unmarshal(data []byte) error {
	*m = ModeInfoSingle{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 1 {
			v, n, err := consumeVarint(payload)
			m.Mode = int32(v)
			return n, err
		}
		return -1, nil
	})
}

// ModeInfo mirrors cosmos.tx.v1beta1.ModeInfo with only the single
// signer arm; multisig mode info is out of scope.
type ModeInfo struct {
	Single *ModeInfoSingle
}

func (m *ModeInfo) Marshal() ([]byte, error) {
	var b []byte
	var err error
	if m.Single != nil {
		if b, err = appendMessage(b, 1, m.Single); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ModeInfo) Unmarshal(data []byte) error {
	*m = ModeInfo{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 1 {
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var s ModeInfoSingle
			if err := s.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Single = &s
			return n, nil
		}
		return -1, nil
	})
}

// SignerInfo mirrors cosmos.tx.v1beta1.SignerInfo.
type SignerInfo struct {
	PublicKey *Any
	ModeInfo  *ModeInfo
	Sequence  uint64
}

func (m *SignerInfo) Marshal() ([]byte, error) {
	var b []byte
	var err error
	if m.PublicKey != nil {
		if b, err = appendMessage(b, 1, m.PublicKey); err != nil {
			return nil, err
		}
	}
	if m.ModeInfo != nil {
		if b, err = appendMessage(b, 2, m.ModeInfo); err != nil {
			return nil, err
		}
	}
	b = appendUvarint(b, 3, m.Sequence)
	return b, nil
}

func (m *SignerInfo) Unmarshal(data []byte) error {
	*m = SignerInfo{}
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
			m.PublicKey = &a
			return n, nil
		case 2:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var mi ModeInfo
			if err := mi.Unmarshal(v); err != nil {
				return 0, err
			}
			m.ModeInfo = &mi
			return n, nil
		case 3:
			v, n, err := consumeVarint(payload)
			m.Sequence = v
			return n, err
		}
		return -1, nil
	})
}

// AuthInfo mirrors cosmos.tx.v1beta1.AuthInfo.
type AuthInfo struct {
	SignerInfos []SignerInfo
	Fee         *Fee
	Tip         *Tip
}

func (m *AuthInfo) Marshal() ([]byte, error) {
	var b []byte
	var err error
	for i := range m.SignerInfos {
		if b, err = appendMessage(b, 1, &m.SignerInfos[i]); err != nil {
			return nil, err
		}
	}
	if m.Fee != nil {
		if b, err = appendMessage(b, 2, m.Fee); err != nil {
			return nil, err
		}
	}
	if m.Tip != nil {
		if b, err = appendMessage(b, 3, m.Tip); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *AuthInfo) Unmarshal(data []byte) error {
	*m = AuthInfo{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var si SignerInfo
			if err := si.Unmarshal(v); err != nil {
				return 0, err
			}
			m.SignerInfos = append(m.SignerInfos, si)
			return n, nil
		case 2:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var f Fee
			if err := f.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Fee = &f
			return n, nil
		case 3:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var t Tip
			if err := t.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Tip = &t
			return n, nil
		}
		return -1, nil
	})
}

// SignDoc mirrors cosmos.tx.v1beta1.SignDoc, the structure whose bytes
// are hashed and signed under SIGN_MODE_DIRECT.
type SignDoc struct {
	BodyBytes     []byte
	AuthInfoBytes []byte
	ChainID       string
	AccountNumber uint64
}

func (m *SignDoc) Marshal() ([]byte, error) {
	var b []byte
	b = appendBytes(b, 1, m.BodyBytes)
	b = appendBytes(b, 2, m.AuthInfoBytes)
	b = appendString(b, 3, m.ChainID)
	b = appendUvarint(b, 4, m.AccountNumber)
	return b, nil
}

func (m *SignDoc) Unmarshal(data []byte) error {
	*m = SignDoc{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeBytes(payload)
			m.BodyBytes = append([]byte(nil), v...)
			return n, err
		case 2:
			v, n, err := consumeBytes(payload)
			m.AuthInfoBytes = append([]byte(nil), v...)
			return n, err
		case 3:
			s, n, err := consumeString(payload)
			m.ChainID = s
			return n, err
		case 4:
			v, n, err := consumeVarint(payload)
			m.AccountNumber = v
			return n, err
		}
		return -1, nil
	})
}

// TxRaw mirrors cosmos.tx.v1beta1.TxRaw, the final submission form.
type TxRaw struct {
	BodyBytes     []byte
	AuthInfoBytes []byte
	Signatures    [][]byte
}

func (m *TxRaw) Marshal() ([]byte, error) {
	var b []byte
	b = appendBytes(b, 1, m.BodyBytes)
	b = appendBytes(b, 2, m.AuthInfoBytes)
	for _, sig := range m.Signatures {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, sig)
	}
	return b, nil
}

func (m *TxRaw) Unmarshal(data []byte) error {
	*m = TxRaw{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeBytes(payload)
			m.BodyBytes = append([]byte(nil), v...)
			return n, err
		case 2:
			v, n, err := consumeBytes(payload)
			m.AuthInfoBytes = append([]byte(nil), v...)
			return n, err
		case 3:
			v, n, err := consumeBytes(payload)
			m.Signatures = append(m.Signatures, append([]byte(nil), v...))
			return n, err
		}
		return -1, nil
	})
}

// PubKey mirrors both cosmos.crypto.secp256k1.PubKey and
// ethermint.crypto.v1.ethsecp256k1.PubKey: a single bytes field holding
// the 33-byte compressed point.
type PubKey struct {
	Key []byte
}

func (m *PubKey) Marshal() ([]byte, error) {
	var b []byte
	b = appendBytes(b, 1, m.Key)
	return b, nil
}

func (m *PubKey) Unmarshal(data []byte) error {
	*m = PubKey{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 1 {
			v, n, err := consumeBytes(payload)
			m.Key = append([]byte(nil), v...)
			return n, err
		}
		return -1, nil
	})
}
