package crypto

import (
	"github.com/blockberries/bramble/types"
	"github.com/blockberries/bramble/wire"
)

// BuildSignDoc assembles the canonical SIGN_MODE_DIRECT SignDoc for a
// set of messages under the given signing arguments and public key.
// The returned body and auth info bytes are reused verbatim in the
// final TxRaw so the broadcast bytes match what was signed.
func BuildSignDoc(pub PublicKey, msgs []types.Msg, args types.MessageArgs, memo string) (signDoc, bodyBytes, authInfoBytes []byte, err error) {
	body := wire.TxBody{
		Messages:      types.MsgsToAny(msgs),
		Memo:          memo,
		TimeoutHeight: args.TimeoutHeight,
	}
	bodyBytes, err = body.Marshal()
	if err != nil {
		return nil, nil, nil, err
	}

	pkAny, err := pub.ToAny()
	if err != nil {
		return nil, nil, nil, err
	}
	fee := args.Fee.ToWire()
	authInfo := wire.AuthInfo{
		SignerInfos: []wire.SignerInfo{{
			PublicKey: &pkAny,
			ModeInfo:  &wire.ModeInfo{Single: &wire.ModeInfoSingle{Mode: wire.SignModeDirect}},
			Sequence:  args.Sequence,
		}},
		Fee: &fee,
	}
	if args.Tip != nil {
		tip := args.Tip.ToWire()
		authInfo.Tip = &tip
	}
	authInfoBytes, err = authInfo.Marshal()
	if err != nil {
		return nil, nil, nil, err
	}

	doc := wire.SignDoc{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		ChainID:       args.ChainID,
		AccountNumber: args.AccountNumber,
	}
	signDoc, err = doc.Marshal()
	if err != nil {
		return nil, nil, nil, err
	}
	return signDoc, bodyBytes, authInfoBytes, nil
}

// signTx signs the SignDoc bytes with the key and wraps everything into
// broadcast-ready TxRaw bytes.
func signTx(k PrivateKey, msgs []types.Msg, args types.MessageArgs, memo string) ([]byte, error) {
	signDoc, bodyBytes, authInfoBytes, err := BuildSignDoc(k.PublicKey(), msgs, args, memo)
	if err != nil {
		return nil, err
	}

	signature, err := k.Sign(signDoc)
	if err != nil {
		return nil, err
	}

	raw := wire.TxRaw{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		Signatures:    [][]byte{signature},
	}
	return raw.Marshal()
}
