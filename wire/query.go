package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Account type URLs returned by the auth query inside an Any. Decoding
// is limited to this closed set.
const (
	BaseAccountTypeURL              = "/cosmos.auth.v1beta1.BaseAccount"
	ModuleAccountTypeURL            = "/cosmos.auth.v1beta1.ModuleAccount"
	ContinuousVestingAccountTypeURL = "/cosmos.vesting.v1beta1.ContinuousVestingAccount"
	DelayedVestingAccountTypeURL    = "/cosmos.vesting.v1beta1.DelayedVestingAccount"
	PeriodicVestingAccountTypeURL   = "/cosmos.vesting.v1beta1.PeriodicVestingAccount"
	PermanentLockedAccountTypeURL   = "/cosmos.vesting.v1beta1.PermanentLockedAccount"
)

// GetSyncingRequest mirrors cosmos.base.tendermint.v1beta1.GetSyncingRequest.
type GetSyncingRequest struct{}

func (m *GetSyncingRequest) Marshal() ([]byte, error) { return nil, nil }
func (m *GetSyncingRequest) Unmarshal([]byte) error   { return nil }

// GetSyncingResponse mirrors cosmos.base.tendermint.v1beta1.GetSyncingResponse.
type GetSyncingResponse struct {
	Syncing bool
}

func (m *GetSyncingResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendBool(b, 1, m.Syncing)
	return b, nil
}

func (m *GetSyncingResponse) Unmarshal(data []byte) error {
	*m = GetSyncingResponse{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 1 {
			v, n, err := consumeVarint(payload)
			m.Syncing = v != 0
			return n, err
		}
		return -1, nil
	})
}

// Header is the subset of tendermint.types.Header the SDK reads.
type Header struct {
	ChainID string
	Height  int64
}

func (m *Header) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 2, m.ChainID)
	b = appendUvarint(b, 3, uint64(m.Height))
	return b, nil
}

func (m *Header) Unmarshal(data []byte) error {
	*m = Header{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 2:
			s, n, err := consumeString(payload)
			m.ChainID = s
			return n, err
		case 3:
			v, n, err := consumeVarint(payload)
			m.Height = int64(v)
			return n, err
		}
		return -1, nil
	})
}

// Commit is the subset of tendermint.types.Commit the SDK reads.
type Commit struct {
	Height int64
}

func (m *Commit) Marshal() ([]byte, error) {
	var b []byte
	b = appendUvarint(b, 1, uint64(m.Height))
	return b, nil
}

func (m *Commit) Unmarshal(data []byte) error {
	*m = Commit{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 1 {
			v, n, err := consumeVarint(payload)
			m.Height = int64(v)
			return n, err
		}
		return -1, nil
	})
}

// Block is the subset of tendermint.types.Block the SDK reads: the
// header and the last commit.
type Block struct {
	Header     *Header
	LastCommit *Commit
}

func (m *Block) Marshal() ([]byte, error) {
	var b []byte
	var err error
	if m.Header != nil {
		if b, err = appendMessage(b, 1, m.Header); err != nil {
			return nil, err
		}
	}
	if m.LastCommit != nil {
		if b, err = appendMessage(b, 4, m.LastCommit); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *Block) Unmarshal(data []byte) error {
	*m = Block{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var h Header
			if err := h.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Header = &h
			return n, nil
		case 4:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var c Commit
			if err := c.Unmarshal(v); err != nil {
				return 0, err
			}
			m.LastCommit = &c
			return n, nil
		}
		return -1, nil
	})
}

// GetLatestBlockRequest mirrors
// cosmos.base.tendermint.v1beta1.GetLatestBlockRequest.
type GetLatestBlockRequest struct{}

func (m *GetLatestBlockRequest) Marshal() ([]byte, error) { return nil, nil }
func (m *GetLatestBlockRequest) Unmarshal([]byte) error   { return nil }

// GetLatestBlockResponse mirrors
// cosmos.base.tendermint.v1beta1.GetLatestBlockResponse.
type GetLatestBlockResponse struct {
	Block *Block
}

func (m *GetLatestBlockResponse) Marshal() ([]byte, error) {
	var b []byte
	var err error
	if m.Block != nil {
		if b, err = appendMessage(b, 2, m.Block); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *GetLatestBlockResponse) Unmarshal(data []byte) error {
	*m = GetLatestBlockResponse{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 2 {
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var blk Block
			if err := blk.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Block = &blk
			return n, nil
		}
		return -1, nil
	})
}

// GetBlockByHeightRequest mirrors
// cosmos.base.tendermint.v1beta1.GetBlockByHeightRequest.
type GetBlockByHeightRequest struct {
	Height int64
}

func (m *GetBlockByHeightRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendUvarint(b, 1, uint64(m.Height))
	return b, nil
}

func (m *GetBlockByHeightRequest) Unmarshal(data []byte) error {
	*m = GetBlockByHeightRequest{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 1 {
			v, n, err := consumeVarint(payload)
			m.Height = int64(v)
			return n, err
		}
		return -1, nil
	})
}

// GetBlockByHeightResponse mirrors
// cosmos.base.tendermint.v1beta1.GetBlockByHeightResponse.
type GetBlockByHeightResponse struct {
	Block *Block
}

func (m *GetBlockByHeightResponse) Marshal() ([]byte, error) {
	r := GetLatestBlockResponse{Block: m.Block}
	return r.Marshal()
}

func (m *GetBlockByHeightResponse) Unmarshal(data []byte) error {
	var r GetLatestBlockResponse
	if err := r.Unmarshal(data); err != nil {
		return err
	}
	m.Block = r.Block
	return nil
}

// QueryAccountRequest mirrors cosmos.auth.v1beta1.QueryAccountRequest.
type QueryAccountRequest struct {
	Address string
}

func (m *QueryAccountRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.Address)
	return b, nil
}

func (m *QueryAccountRequest) Unmarshal(data []byte) error {
	*m = QueryAccountRequest{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 1 {
			s, n, err := consumeString(payload)
			m.Address = s
			return n, err
		}
		return -1, nil
	})
}

// QueryAccountResponse mirrors cosmos.auth.v1beta1.QueryAccountResponse.
type QueryAccountResponse struct {
	Account *Any
}

func (m *QueryAccountResponse) Marshal() ([]byte, error) {
	var b []byte
	var err error
	if m.Account != nil {
		if b, err = appendMessage(b, 1, m.Account); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *QueryAccountResponse) Unmarshal(data []byte) error {
	*m = QueryAccountResponse{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 1 {
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var a Any
			if err := a.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Account = &a
			return n, nil
		}
		return -1, nil
	})
}

// BaseAccount mirrors cosmos.auth.v1beta1.BaseAccount.
type BaseAccount struct {
	Address       string
	PubKey        *Any
	AccountNumber uint64
	Sequence      uint64
}

func (m *BaseAccount) Marshal() ([]byte, error) {
	var b []byte
	var err error
	b = appendString(b, 1, m.Address)
	if m.PubKey != nil {
		if b, err = appendMessage(b, 2, m.PubKey); err != nil {
			return nil, err
		}
	}
	b = appendUvarint(b, 3, m.AccountNumber)
	b = appendUvarint(b, 4, m.Sequence)
	return b, nil
}

func (m *BaseAccount) Unmarshal(data []byte) error {
	*m = BaseAccount{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			s, n, err := consumeString(payload)
			m.Address = s
			return n, err
		case 2:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var a Any
			if err := a.Unmarshal(v); err != nil {
				return 0, err
			}
			m.PubKey = &a
			return n, nil
		case 3:
			v, n, err := consumeVarint(payload)
			m.AccountNumber = v
			return n, err
		case 4:
			v, n, err := consumeVarint(payload)
			m.Sequence = v
			return n, err
		}
		return -1, nil
	})
}

// BaseVestingAccount mirrors the shared prefix of all vesting account
// types; only the embedded base account is read.
type BaseVestingAccount struct {
	BaseAccount *BaseAccount
}

func (m *BaseVestingAccount) Marshal() ([]byte, error) {
	var b []byte
	var err error
	if m.BaseAccount != nil {
		if b, err = appendMessage(b, 1, m.BaseAccount); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *BaseVestingAccount) Unmarshal(data []byte) error {
	*m = BaseVestingAccount{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 1 {
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var ba BaseAccount
			if err := ba.Unmarshal(v); err != nil {
				return 0, err
			}
			m.BaseAccount = &ba
			return n, nil
		}
		return -1, nil
	})
}

// VestingAccount covers ContinuousVestingAccount, DelayedVestingAccount,
// PeriodicVestingAccount and PermanentLockedAccount, all of which embed
// a BaseVestingAccount at field 1.
type VestingAccount struct {
	BaseVestingAccount *BaseVestingAccount
}

func (m *VestingAccount) Marshal() ([]byte, error) {
	var b []byte
	var err error
	if m.BaseVestingAccount != nil {
		if b, err = appendMessage(b, 1, m.BaseVestingAccount); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *VestingAccount) Unmarshal(data []byte) error {
	*m = VestingAccount{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 1 {
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var bva BaseVestingAccount
			if err := bva.Unmarshal(v); err != nil {
				return 0, err
			}
			m.BaseVestingAccount = &bva
			return n, nil
		}
		return -1, nil
	})
}

// ModuleAccount mirrors cosmos.auth.v1beta1.ModuleAccount.
type ModuleAccount struct {
	BaseAccount *BaseAccount
	Name        string
	Permissions []string
}

func (m *ModuleAccount) Marshal() ([]byte, error) {
	var b []byte
	var err error
	if m.BaseAccount != nil {
		if b, err = appendMessage(b, 1, m.BaseAccount); err != nil {
			return nil, err
		}
	}
	b = appendString(b, 2, m.Name)
	for _, p := range m.Permissions {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendString(b, p)
	}
	return b, nil
}

func (m *ModuleAccount) Unmarshal(data []byte) error {
	*m = ModuleAccount{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var ba BaseAccount
			if err := ba.Unmarshal(v); err != nil {
				return 0, err
			}
			m.BaseAccount = &ba
			return n, nil
		case 2:
			s, n, err := consumeString(payload)
			m.Name = s
			return n, err
		case 3:
			s, n, err := consumeString(payload)
			m.Permissions = append(m.Permissions, s)
			return n, err
		}
		return -1, nil
	})
}

// EventAttribute mirrors tendermint.abci.EventAttribute.
type EventAttribute struct {
	Key   string
	Value string
	Index bool
}

func (m *EventAttribute) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.Key)
	b = appendString(b, 2, m.Value)
	b = appendBool(b, 3, m.Index)
	return b, nil
}

func (m *EventAttribute) Unmarshal(data []byte) error {
	*m = EventAttribute{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			s, n, err := consumeString(payload)
			m.Key = s
			return n, err
		case 2:
			s, n, err := consumeString(payload)
			m.Value = s
			return n, err
		case 3:
			v, n, err := consumeVarint(payload)
			m.Index = v != 0
			return n, err
		}
		return -1, nil
	})
}

// Event mirrors tendermint.abci.Event.
type Event struct {
	Type       string
	Attributes []EventAttribute
}

func (m *Event) Marshal() ([]byte, error) {
	var b []byte
	var err error
	b = appendString(b, 1, m.Type)
	for i := range m.Attributes {
		if b, err = appendMessage(b, 2, &m.Attributes[i]); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *Event) Unmarshal(data []byte) error {
	*m = Event{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			s, n, err := consumeString(payload)
			m.Type = s
			return n, err
		case 2:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var a EventAttribute
			if err := a.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Attributes = append(m.Attributes, a)
			return n, nil
		}
		return -1, nil
	})
}

// TxResponse is the subset of cosmos.base.abci.v1beta1.TxResponse the
// SDK reads; structured logs are skipped in favor of the raw log.
type TxResponse struct {
	Height    int64
	TxHash    string
	Codespace string
	Code      uint32
	Data      string
	RawLog    string
	Info      string
	GasWanted int64
	GasUsed   int64
	Timestamp string
	Events    []Event
}

func (m *TxResponse) Marshal() ([]byte, error) {
	var b []byte
	var err error
	b = appendUvarint(b, 1, uint64(m.Height))
	b = appendString(b, 2, m.TxHash)
	b = appendString(b, 3, m.Codespace)
	b = appendUvarint(b, 4, uint64(m.Code))
	b = appendString(b, 5, m.Data)
	b = appendString(b, 6, m.RawLog)
	b = appendString(b, 8, m.Info)
	b = appendUvarint(b, 9, uint64(m.GasWanted))
	b = appendUvarint(b, 10, uint64(m.GasUsed))
	b = appendString(b, 12, m.Timestamp)
	for i := range m.Events {
		if b, err = appendMessage(b, 13, &m.Events[i]); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *TxResponse) Unmarshal(data []byte) error {
	*m = TxResponse{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint(payload)
			m.Height = int64(v)
			return n, err
		case 2:
			s, n, err := consumeString(payload)
			m.TxHash = s
			return n, err
		case 3:
			s, n, err := consumeString(payload)
			m.Codespace = s
			return n, err
		case 4:
			v, n, err := consumeVarint(payload)
			m.Code = uint32(v)
			return n, err
		case 5:
			s, n, err := consumeString(payload)
			m.Data = s
			return n, err
		case 6:
			s, n, err := consumeString(payload)
			m.RawLog = s
			return n, err
		case 8:
			s, n, err := consumeString(payload)
			m.Info = s
			return n, err
		case 9:
			v, n, err := consumeVarint(payload)
			m.GasWanted = int64(v)
			return n, err
		case 10:
			v, n, err := consumeVarint(payload)
			m.GasUsed = int64(v)
			return n, err
		case 12:
			s, n, err := consumeString(payload)
			m.Timestamp = s
			return n, err
		case 13:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var e Event
			if err := e.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Events = append(m.Events, e)
			return n, nil
		}
		return -1, nil
	})
}

// BroadcastTxRequest mirrors cosmos.tx.v1beta1.BroadcastTxRequest.
type BroadcastTxRequest struct {
	TxBytes []byte
	Mode    BroadcastMode
}

func (m *BroadcastTxRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendBytes(b, 1, m.TxBytes)
	b = appendUvarint(b, 2, uint64(m.Mode))
	return b, nil
}

func (m *BroadcastTxRequest) Unmarshal(data []byte) error {
	*m = BroadcastTxRequest{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeBytes(payload)
			m.TxBytes = append([]byte(nil), v...)
			return n, err
		case 2:
			v, n, err := consumeVarint(payload)
			m.Mode = BroadcastMode(v)
			return n, err
		}
		return -1, nil
	})
}

// BroadcastTxResponse mirrors cosmos.tx.v1beta1.BroadcastTxResponse.
type BroadcastTxResponse struct {
	TxResponse *TxResponse
}

func (m *BroadcastTxResponse) Marshal() ([]byte, error) {
	var b []byte
	var err error
	if m.TxResponse != nil {
		if b, err = appendMessage(b, 1, m.TxResponse); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *BroadcastTxResponse) Unmarshal(data []byte) error {
	*m = BroadcastTxResponse{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 1 {
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var tr TxResponse
			if err := tr.Unmarshal(v); err != nil {
				return 0, err
			}
			m.TxResponse = &tr
			return n, nil
		}
		return -1, nil
	})
}

// GetTxRequest mirrors cosmos.tx.v1beta1.GetTxRequest.
type GetTxRequest struct {
	Hash string
}

func (m *GetTxRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.Hash)
	return b, nil
}

func (m *GetTxRequest) Unmarshal(data []byte) error {
	*m = GetTxRequest{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 1 {
			s, n, err := consumeString(payload)
			m.Hash = s
			return n, err
		}
		return -1, nil
	})
}

// GetTxResponse mirrors cosmos.tx.v1beta1.GetTxResponse; the decoded tx
// itself is not needed, only the response metadata.
type GetTxResponse struct {
	TxResponse *TxResponse
}

func (m *GetTxResponse) Marshal() ([]byte, error) {
	var b []byte
	var err error
	if m.TxResponse != nil {
		if b, err = appendMessage(b, 2, m.TxResponse); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *GetTxResponse) Unmarshal(data []byte) error {
	*m = GetTxResponse{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 2 {
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var tr TxResponse
			if err := tr.Unmarshal(v); err != nil {
				return 0, err
			}
			m.TxResponse = &tr
			return n, nil
		}
		return -1, nil
	})
}

// GasInfo mirrors cosmos.base.abci.v1beta1.GasInfo.
type GasInfo struct {
	GasWanted uint64
	GasUsed   uint64
}

func (m *GasInfo) Marshal() ([]byte, error) {
	var b []byte
	b = appendUvarint(b, 1, m.GasWanted)
	b = appendUvarint(b, 2, m.GasUsed)
	return b, nil
}

func (m *GasInfo) Unmarshal(data []byte) error {
	*m = GasInfo{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint(payload)
			m.GasWanted = v
			return n, err
		case 2:
			v, n, err := consumeVarint(payload)
			m.GasUsed = v
			return n, err
		}
		return -1, nil
	})
}

// SimResult mirrors cosmos.base.abci.v1beta1.Result.
type SimResult struct {
	Data   []byte
	Log    string
	Events []Event
}

func (m *SimResult) Marshal() ([]byte, error) {
	var b []byte
	var err error
	b = appendBytes(b, 1, m.Data)
	b = appendString(b, 2, m.Log)
	for i := range m.Events {
		if b, err = appendMessage(b, 3, &m.Events[i]); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *SimResult) Unmarshal(data []byte) error {
	*m = SimResult{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeBytes(payload)
			m.Data = append([]byte(nil), v...)
			return n, err
		case 2:
			s, n, err := consumeString(payload)
			m.Log = s
			return n, err
		case 3:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var e Event
			if err := e.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Events = append(m.Events, e)
			return n, nil
		}
		return -1, nil
	})
}

// SimulateRequest mirrors cosmos.tx.v1beta1.SimulateRequest; the
// deprecated embedded tx field is never set.
type SimulateRequest struct {
	TxBytes []byte
}

func (m *SimulateRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendBytes(b, 2, m.TxBytes)
	return b, nil
}

func (m *SimulateRequest) Unmarshal(data []byte) error {
	*m = SimulateRequest{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 2 {
			v, n, err := consumeBytes(payload)
			m.TxBytes = append([]byte(nil), v...)
			return n, err
		}
		return -1, nil
	})
}

// SimulateResponse mirrors cosmos.tx.v1beta1.SimulateResponse.
type SimulateResponse struct {
	GasInfo *GasInfo
	Result  *SimResult
}

func (m *SimulateResponse) Marshal() ([]byte, error) {
	var b []byte
	var err error
	if m.GasInfo != nil {
		if b, err = appendMessage(b, 1, m.GasInfo); err != nil {
			return nil, err
		}
	}
	if m.Result != nil {
		if b, err = appendMessage(b, 2, m.Result); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *SimulateResponse) Unmarshal(data []byte) error {
	*m = SimulateResponse{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var gi GasInfo
			if err := gi.Unmarshal(v); err != nil {
				return 0, err
			}
			m.GasInfo = &gi
			return n, nil
		case 2:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var r SimResult
			if err := r.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Result = &r
			return n, nil
		}
		return -1, nil
	})
}

// BlockParams mirrors tendermint.types.BlockParams.
type BlockParams struct {
	MaxBytes int64
	MaxGas   int64
}

func (m *BlockParams) Marshal() ([]byte, error) {
	var b []byte
	b = appendUvarint(b, 1, uint64(m.MaxBytes))
	b = appendUvarint(b, 2, uint64(m.MaxGas))
	return b, nil
}

func (m *BlockParams) Unmarshal(data []byte) error {
	*m = BlockParams{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint(payload)
			m.MaxBytes = int64(v)
			return n, err
		case 2:
			v, n, err := consumeVarint(payload)
			m.MaxGas = int64(v)
			return n, err
		}
		return -1, nil
	})
}

// ConsensusParams is the subset of tendermint.types.ConsensusParams the
// SDK reads.
type ConsensusParams struct {
	Block *BlockParams
}

func (m *ConsensusParams) Marshal() ([]byte, error) {
	var b []byte
	var err error
	if m.Block != nil {
		if b, err = appendMessage(b, 1, m.Block); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ConsensusParams) Unmarshal(data []byte) error {
	*m = ConsensusParams{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 1 {
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var bp BlockParams
			if err := bp.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Block = &bp
			return n, nil
		}
		return -1, nil
	})
}

// ConsensusParamsRequest mirrors cosmos.consensus.v1.QueryParamsRequest.
type ConsensusParamsRequest struct{}

func (m *ConsensusParamsRequest) Marshal() ([]byte, error) { return nil, nil }
func (m *ConsensusParamsRequest) Unmarshal([]byte) error   { return nil }

// ConsensusParamsResponse mirrors cosmos.consensus.v1.QueryParamsResponse.
type ConsensusParamsResponse struct {
	Params *ConsensusParams
}

func (m *ConsensusParamsResponse) Marshal() ([]byte, error) {
	var b []byte
	var err error
	if m.Params != nil {
		if b, err = appendMessage(b, 1, m.Params); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ConsensusParamsResponse) Unmarshal(data []byte) error {
	*m = ConsensusParamsResponse{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 1 {
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var cp ConsensusParams
			if err := cp.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Params = &cp
			return n, nil
		}
		return -1, nil
	})
}

// LegacyParamsRequest mirrors cosmos.params.v1beta1.QueryParamsRequest,
// the fallback for nodes predating the consensus query service.
type LegacyParamsRequest struct {
	Subspace string
	Key      string
}

func (m *LegacyParamsRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.Subspace)
	b = appendString(b, 2, m.Key)
	return b, nil
}

func (m *LegacyParamsRequest) Unmarshal(data []byte) error {
	*m = LegacyParamsRequest{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			s, n, err := consumeString(payload)
			m.Subspace = s
			return n, err
		case 2:
			s, n, err := consumeString(payload)
			m.Key = s
			return n, err
		}
		return -1, nil
	})
}

// ParamChange mirrors cosmos.params.v1beta1.ParamChange.
type ParamChange struct {
	Subspace string
	Key      string
	Value    string
}

func (m *ParamChange) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.Subspace)
	b = appendString(b, 2, m.Key)
	b = appendString(b, 3, m.Value)
	return b, nil
}

func (m *ParamChange) Unmarshal(data []byte) error {
	*m = ParamChange{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			s, n, err := consumeString(payload)
			m.Subspace = s
			return n, err
		case 2:
			s, n, err := consumeString(payload)
			m.Key = s
			return n, err
		case 3:
			s, n, err := consumeString(payload)
			m.Value = s
			return n, err
		}
		return -1, nil
	})
}

// LegacyParamsResponse mirrors cosmos.params.v1beta1.QueryParamsResponse.
type LegacyParamsResponse struct {
	Param *ParamChange
}

func (m *LegacyParamsResponse) Marshal() ([]byte, error) {
	var b []byte
	var err error
	if m.Param != nil {
		if b, err = appendMessage(b, 1, m.Param); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *LegacyParamsResponse) Unmarshal(data []byte) error {
	*m = LegacyParamsResponse{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 1 {
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var pc ParamChange
			if err := pc.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Param = &pc
			return n, nil
		}
		return -1, nil
	})
}

// PageRequest mirrors cosmos.base.query.v1beta1.PageRequest.
type PageRequest struct {
	Key        []byte
	Offset     uint64
	Limit      uint64
	CountTotal bool
	Reverse    bool
}

func (m *PageRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendBytes(b, 1, m.Key)
	b = appendUvarint(b, 2, m.Offset)
	b = appendUvarint(b, 3, m.Limit)
	b = appendBool(b, 4, m.CountTotal)
	b = appendBool(b, 5, m.Reverse)
	return b, nil
}

func (m *PageRequest) Unmarshal(data []byte) error {
	*m = PageRequest{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeBytes(payload)
			m.Key = append([]byte(nil), v...)
			return n, err
		case 2:
			v, n, err := consumeVarint(payload)
			m.Offset = v
			return n, err
		case 3:
			v, n, err := consumeVarint(payload)
			m.Limit = v
			return n, err
		case 4:
			v, n, err := consumeVarint(payload)
			m.CountTotal = v != 0
			return n, err
		case 5:
			v, n, err := consumeVarint(payload)
			m.Reverse = v != 0
			return n, err
		}
		return -1, nil
	})
}

// QueryAllBalancesRequest mirrors cosmos.bank.v1beta1.QueryAllBalancesRequest.
type QueryAllBalancesRequest struct {
	Address    string
	Pagination *PageRequest
}

func (m *QueryAllBalancesRequest) Marshal() ([]byte, error) {
	var b []byte
	var err error
	b = appendString(b, 1, m.Address)
	if m.Pagination != nil {
		if b, err = appendMessage(b, 2, m.Pagination); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *QueryAllBalancesRequest) Unmarshal(data []byte) error {
	*m = QueryAllBalancesRequest{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		switch num {
		case 1:
			s, n, err := consumeString(payload)
			m.Address = s
			return n, err
		case 2:
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var pr PageRequest
			if err := pr.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Pagination = &pr
			return n, nil
		}
		return -1, nil
	})
}

// QueryAllBalancesResponse mirrors cosmos.bank.v1beta1.QueryAllBalancesResponse.
type QueryAllBalancesResponse struct {
	Balances []Coin
}

func (m *QueryAllBalancesResponse) Marshal() ([]byte, error) {
	var b []byte
	var err error
	for i := range m.Balances {
		if b, err = appendMessage(b, 1, &m.Balances[i]); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *QueryAllBalancesResponse) Unmarshal(data []byte) error {
	*m = QueryAllBalancesResponse{}
	return fieldIter(data, func(num protowire.Number, typ protowire.Type, payload []byte) (int, error) {
		if num == 1 {
			v, n, err := consumeBytes(payload)
			if err != nil {
				return 0, err
			}
			var c Coin
			if err := c.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Balances = append(m.Balances, c)
			return n, nil
		}
		return -1, nil
	})
}
