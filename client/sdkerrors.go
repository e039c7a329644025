package client

import (
	"fmt"
	"strings"

	"github.com/blockberries/bramble/types"
	"github.com/blockberries/bramble/wire"
)

// SdkErrorCode is a registered error code of the Cosmos SDK "sdk"
// codespace. The set is closed; codes outside it are reported verbatim
// through TransactionFailedError without classification.
type SdkErrorCode uint32

const (
	SdkErrInternal                SdkErrorCode = 1
	SdkErrTxDecode                SdkErrorCode = 2
	SdkErrInvalidSequence         SdkErrorCode = 3
	SdkErrUnauthorized            SdkErrorCode = 4
	SdkErrInsufficientFunds       SdkErrorCode = 5
	SdkErrUnknownRequest          SdkErrorCode = 6
	SdkErrInvalidAddress          SdkErrorCode = 7
	SdkErrInvalidPubKey           SdkErrorCode = 8
	SdkErrUnknownAddress          SdkErrorCode = 9
	SdkErrInvalidCoins            SdkErrorCode = 10
	SdkErrOutOfGas                SdkErrorCode = 11
	SdkErrMemoTooLarge            SdkErrorCode = 12
	SdkErrInsufficientFee         SdkErrorCode = 13
	SdkErrTooManySignatures       SdkErrorCode = 14
	SdkErrNoSignatures            SdkErrorCode = 15
	SdkErrJSONMarshal             SdkErrorCode = 16
	SdkErrJSONUnmarshal           SdkErrorCode = 17
	SdkErrInvalidRequest          SdkErrorCode = 18
	SdkErrTxInMempoolCache        SdkErrorCode = 19
	SdkErrMempoolIsFull           SdkErrorCode = 20
	SdkErrTxTooLarge              SdkErrorCode = 21
	SdkErrKeyNotFound             SdkErrorCode = 22
	SdkErrWrongPassword           SdkErrorCode = 23
	SdkErrInvalidSigner           SdkErrorCode = 24
	SdkErrInvalidGasAdjustment    SdkErrorCode = 25
	SdkErrInvalidHeight           SdkErrorCode = 26
	SdkErrInvalidVersion          SdkErrorCode = 27
	SdkErrInvalidChainID          SdkErrorCode = 28
	SdkErrInvalidType             SdkErrorCode = 29
	SdkErrTxTimeoutHeight         SdkErrorCode = 30
	SdkErrUnknownExtensionOptions SdkErrorCode = 31
	SdkErrWrongSequence           SdkErrorCode = 32
	SdkErrPackAny                 SdkErrorCode = 33
	SdkErrUnpackAny               SdkErrorCode = 34
	SdkErrLogic                   SdkErrorCode = 35
	SdkErrConflict                SdkErrorCode = 36
	SdkErrNotSupported            SdkErrorCode = 37
	SdkErrNotFound                SdkErrorCode = 38
	SdkErrIO                      SdkErrorCode = 39
	SdkErrAppConfig               SdkErrorCode = 40
	SdkErrPanic                   SdkErrorCode = 111222
)

var sdkErrorNames = map[SdkErrorCode]string{
	SdkErrInternal:                "internal",
	SdkErrTxDecode:                "tx parse error",
	SdkErrInvalidSequence:         "invalid sequence",
	SdkErrUnauthorized:            "unauthorized",
	SdkErrInsufficientFunds:       "insufficient funds",
	SdkErrUnknownRequest:          "unknown request",
	SdkErrInvalidAddress:          "invalid address",
	SdkErrInvalidPubKey:           "invalid pubkey",
	SdkErrUnknownAddress:          "unknown address",
	SdkErrInvalidCoins:            "invalid coins",
	SdkErrOutOfGas:                "out of gas",
	SdkErrMemoTooLarge:            "memo too large",
	SdkErrInsufficientFee:         "insufficient fee",
	SdkErrTooManySignatures:       "maximum number of signatures exceeded",
	SdkErrNoSignatures:            "no signatures supplied",
	SdkErrJSONMarshal:             "failed to marshal JSON bytes",
	SdkErrJSONUnmarshal:           "failed to unmarshal JSON bytes",
	SdkErrInvalidRequest:          "invalid request",
	SdkErrTxInMempoolCache:        "tx already in mempool",
	SdkErrMempoolIsFull:           "mempool is full",
	SdkErrTxTooLarge:              "tx too large",
	SdkErrKeyNotFound:             "key not found",
	SdkErrWrongPassword:           "invalid account password",
	SdkErrInvalidSigner:           "tx intended signer does not match the given signer",
	SdkErrInvalidGasAdjustment:    "invalid gas adjustment",
	SdkErrInvalidHeight:           "invalid height",
	SdkErrInvalidVersion:          "invalid version",
	SdkErrInvalidChainID:          "invalid chain-id",
	SdkErrInvalidType:             "invalid type",
	SdkErrTxTimeoutHeight:         "tx timeout height",
	SdkErrUnknownExtensionOptions: "unknown extension options",
	SdkErrWrongSequence:           "incorrect account sequence",
	SdkErrPackAny:                 "failed packing protobuf message to Any",
	SdkErrUnpackAny:               "failed unpacking protobuf message from Any",
	SdkErrLogic:                   "internal logic error",
	SdkErrConflict:                "conflict",
	SdkErrNotSupported:            "feature not supported",
	SdkErrNotFound:                "not found",
	SdkErrIO:                      "Internal IO error",
	SdkErrAppConfig:               "error in app.toml",
	SdkErrPanic:                   "panic",
}

func (c SdkErrorCode) String() string {
	if name, ok := sdkErrorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("unregistered sdk error %d", uint32(c))
}

// SdkError is a classified failure from the "sdk" codespace.
type SdkError struct {
	Code   SdkErrorCode
	RawLog string
}

func (e *SdkError) Error() string {
	return fmt.Sprintf("sdk error %d (%s): %s", uint32(e.Code), e.Code, e.RawLog)
}

const insufficientFeesSuffix = ": insufficient fee"

// classifyResponse inspects a non-zero tx response. Insufficient-fee
// rejections yield an InsufficientFeesError carrying the minimum fee
// parsed out of the raw log; other registered "sdk" codes yield an
// SdkError; everything else yields nil, leaving the caller to wrap the
// response as-is.
func classifyResponse(resp *wire.TxResponse) error {
	if resp == nil || resp.Code == 0 || resp.Codespace != "sdk" {
		return nil
	}
	code := SdkErrorCode(resp.Code)
	if _, ok := sdkErrorNames[code]; !ok {
		return nil
	}
	if code == SdkErrInsufficientFee {
		if fees, ok := parseMinFees(resp.RawLog); ok {
			return &InsufficientFeesError{MinFees: fees}
		}
	}
	return &SdkError{Code: code, RawLog: resp.RawLog}
}

// parseMinFees extracts the required fee list from a raw log of the
// form "insufficient fees; got: X required: Y: insufficient fee".
func parseMinFees(rawLog string) (types.Coins, bool) {
	if !strings.HasSuffix(rawLog, insufficientFeesSuffix) {
		return nil, false
	}
	trimmed := strings.TrimSuffix(rawLog, insufficientFeesSuffix)
	idx := strings.LastIndex(trimmed, "required: ")
	if idx < 0 {
		return nil, false
	}

	var fees types.Coins
	for _, part := range strings.Split(trimmed[idx+len("required: "):], ",") {
		coin, err := types.ParseCoin(strings.TrimSpace(part))
		if err != nil {
			return nil, false
		}
		fees = append(fees, coin)
	}
	return fees, len(fees) > 0
}
