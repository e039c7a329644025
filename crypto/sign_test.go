package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/bramble/address"
	"github.com/blockberries/bramble/testing/vectors"
	"github.com/blockberries/bramble/types"
	"github.com/blockberries/bramble/wire"
)

func testMsgAndArgs(t *testing.T, key PrivateKey) ([]types.Msg, types.MessageArgs) {
	t.Helper()

	from, err := key.PublicKey().Address("cosmos")
	require.NoError(t, err)
	to, err := address.FromBech32(vectors.ZeroAddressBech32)
	require.NoError(t, err)

	msg, err := types.NewMsgSend(from, to, types.NewCoins(types.NewCoin("uatom", 100)))
	require.NoError(t, err)

	args := types.MessageArgs{
		Sequence:      3,
		AccountNumber: 17,
		ChainID:       "bramble-1",
		Fee:           types.NewFee(types.NewCoins(types.NewCoin("uatom", 500)), 200000),
		TimeoutHeight: 1000,
	}
	return []types.Msg{msg}, args
}

func TestBuildSignDoc(t *testing.T) {
	key, err := PrivateKeyFromSecret(FamilyCosmos, []byte(vectors.SecretKey.Secret))
	require.NoError(t, err)
	msgs, args := testMsgAndArgs(t, key)

	signDoc, bodyBytes, authInfoBytes, err := BuildSignDoc(key.PublicKey(), msgs, args, "a memo")
	require.NoError(t, err)

	var doc wire.SignDoc
	require.NoError(t, doc.Unmarshal(signDoc))
	assert.Equal(t, bodyBytes, doc.BodyBytes, "sign doc must embed the body bytes verbatim")
	assert.Equal(t, authInfoBytes, doc.AuthInfoBytes, "sign doc must embed the auth info bytes verbatim")
	assert.Equal(t, "bramble-1", doc.ChainID)
	assert.Equal(t, uint64(17), doc.AccountNumber)

	var body wire.TxBody
	require.NoError(t, body.Unmarshal(bodyBytes))
	require.Len(t, body.Messages, 1)
	assert.Equal(t, types.MsgSendTypeURL, body.Messages[0].TypeURL)
	assert.Equal(t, "a memo", body.Memo)
	assert.Equal(t, uint64(1000), body.TimeoutHeight)

	var authInfo wire.AuthInfo
	require.NoError(t, authInfo.Unmarshal(authInfoBytes))
	require.Len(t, authInfo.SignerInfos, 1)
	si := authInfo.SignerInfos[0]
	assert.Equal(t, uint64(3), si.Sequence)
	require.NotNil(t, si.ModeInfo)
	require.NotNil(t, si.ModeInfo.Single)
	assert.Equal(t, int32(wire.SignModeDirect), si.ModeInfo.Single.Mode)
	require.NotNil(t, si.PublicKey)
	assert.Equal(t, types.Secp256k1PubKeyTypeURL, si.PublicKey.TypeURL)
	require.NotNil(t, authInfo.Fee)
	assert.Equal(t, uint64(200000), authInfo.Fee.GasLimit)
	assert.Nil(t, authInfo.Tip)
}

func TestBuildSignDoc_WithTip(t *testing.T) {
	key, err := PrivateKeyFromSecret(FamilyCosmos, []byte(vectors.SecretKey.Secret))
	require.NoError(t, err)
	msgs, args := testMsgAndArgs(t, key)
	args.Tip = &types.Tip{
		Amount: types.NewCoins(types.NewCoin("uatom", 9)),
		Tipper: vectors.SecretKey.Address,
	}

	_, _, authInfoBytes, err := BuildSignDoc(key.PublicKey(), msgs, args, "")
	require.NoError(t, err)

	var authInfo wire.AuthInfo
	require.NoError(t, authInfo.Unmarshal(authInfoBytes))
	require.NotNil(t, authInfo.Tip)
	assert.Equal(t, vectors.SecretKey.Address, authInfo.Tip.Tipper)
}

func TestSignStdMsg(t *testing.T) {
	for _, family := range []KeyFamily{FamilyCosmos, FamilyEthermint} {
		t.Run(family.String(), func(t *testing.T) {
			key, err := PrivateKeyFromSecret(family, []byte(vectors.SecretKey.Secret))
			require.NoError(t, err)
			msgs, args := testMsgAndArgs(t, key)

			txBytes, err := key.SignStdMsg(msgs, args, "memo")
			require.NoError(t, err)

			var raw wire.TxRaw
			require.NoError(t, raw.Unmarshal(txBytes))
			require.Len(t, raw.Signatures, 1)

			// The broadcast bytes and the signed bytes must agree: a
			// SignDoc reassembled from the TxRaw fields verifies under
			// the signer's public key.
			doc := wire.SignDoc{
				BodyBytes:     raw.BodyBytes,
				AuthInfoBytes: raw.AuthInfoBytes,
				ChainID:       args.ChainID,
				AccountNumber: args.AccountNumber,
			}
			docBytes, err := doc.Marshal()
			require.NoError(t, err)
			assert.True(t, key.PublicKey().Verify(docBytes, raw.Signatures[0]))

			// A different chain id must not verify.
			doc.ChainID = "other-1"
			otherBytes, err := doc.Marshal()
			require.NoError(t, err)
			assert.False(t, key.PublicKey().Verify(otherBytes, raw.Signatures[0]))
		})
	}
}
