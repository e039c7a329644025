package client

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/blockberries/bramble/address"
	"github.com/blockberries/bramble/crypto"
	"github.com/blockberries/bramble/testing/vectors"
	"github.com/blockberries/bramble/types"
	"github.com/blockberries/bramble/wire"
)

func typesFee(t *testing.T, amount int64, gasLimit uint64) types.Fee {
	t.Helper()
	return types.NewFee(types.NewCoins(types.NewCoin("uatom", amount)), gasLimit)
}

func TestBroadcastTx(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodBroadcastTx, &wire.BroadcastTxResponse{
			TxResponse: &wire.TxResponse{TxHash: "ABCD", Code: 0},
		})

		resp, err := node.contact(t).BroadcastTx(ctx, []byte{1, 2, 3}, wire.BroadcastModeSync)
		require.NoError(t, err)
		assert.Equal(t, "ABCD", resp.TxHash)
	})

	t.Run("sdk rejection is classified", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodBroadcastTx, &wire.BroadcastTxResponse{
			TxResponse: &wire.TxResponse{TxHash: "ABCD", Code: 5, Codespace: "sdk", RawLog: "balance too low"},
		})

		resp, err := node.contact(t).BroadcastTx(ctx, []byte{1}, wire.BroadcastModeSync)
		require.NotNil(t, resp, "the response travels alongside the error")
		var sdkErr *SdkError
		require.ErrorAs(t, err, &sdkErr)
		assert.Equal(t, SdkErrInsufficientFunds, sdkErr.Code)
	})

	t.Run("insufficient fees carry the minimum", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodBroadcastTx, &wire.BroadcastTxResponse{
			TxResponse: &wire.TxResponse{
				TxHash:    "ABCD",
				Code:      uint32(SdkErrInsufficientFee),
				Codespace: "sdk",
				RawLog:    vectors.InsufficientFeesRawLog,
			},
		})

		_, err := node.contact(t).BroadcastTx(ctx, []byte{1}, wire.BroadcastModeSync)
		var feeErr *InsufficientFeesError
		require.ErrorAs(t, err, &feeErr)
		assert.Equal(t, "50000ualtg,250000ufootoken", feeErr.MinFees.String())
	})

	t.Run("unclassified rejection", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodBroadcastTx, &wire.BroadcastTxResponse{
			TxResponse: &wire.TxResponse{TxHash: "ABCD", Code: 2, Codespace: "staking", RawLog: "nope"},
		})

		_, err := node.contact(t).BroadcastTx(ctx, []byte{1}, wire.BroadcastModeSync)
		var failed *TransactionFailedError
		require.ErrorAs(t, err, &failed)
		assert.Equal(t, uint32(2), failed.Response.Code)
	})

	t.Run("empty response", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodBroadcastTx, &wire.BroadcastTxResponse{})

		_, err := node.contact(t).BroadcastTx(ctx, []byte{1}, wire.BroadcastModeSync)
		assert.ErrorIs(t, err, ErrParse)
	})
}

func TestSimulate(t *testing.T) {
	node := newTestNode(t)
	node.respond(methodSimulate, &wire.SimulateResponse{
		GasInfo: &wire.GasInfo{GasWanted: 1, GasUsed: 68000},
	})

	gasInfo, err := node.contact(t).Simulate(context.Background(), []byte{1})
	require.NoError(t, err)
	assert.Equal(t, uint64(68000), gasInfo.GasUsed)
}

func TestGetFeeInfo(t *testing.T) {
	ctx := context.Background()
	key, err := crypto.GeneratePrivateKey(crypto.FamilyCosmos)
	require.NoError(t, err)

	msgs, args := testSendMsg(t, key)

	respondParams := func(node *testNode, maxGas int64) {
		node.respond(methodConsensusParams, &wire.ConsensusParamsResponse{
			Params: &wire.ConsensusParams{Block: &wire.BlockParams{MaxBytes: 1024, MaxGas: maxGas}},
		})
	}

	t.Run("gas limit scales simulated use", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodSimulate, &wire.SimulateResponse{
			GasInfo: &wire.GasInfo{GasUsed: 100_000},
		})
		respondParams(node, -1)

		fee, err := node.contact(t).GetFeeInfo(ctx, key, msgs, args, "memo")
		require.NoError(t, err)
		assert.Equal(t, uint64(200_000), fee.GasLimit, "default multiplier is 2")
		assert.Equal(t, args.Fee.Amount, fee.Amount)
	})

	t.Run("custom multiplier", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodSimulate, &wire.SimulateResponse{
			GasInfo: &wire.GasInfo{GasUsed: 100_000},
		})
		respondParams(node, -1)

		fee, err := node.contact(t, WithGasMultiplier(1.2)).GetFeeInfo(ctx, key, msgs, args, "memo")
		require.NoError(t, err)
		assert.Equal(t, uint64(120_000), fee.GasLimit)
	})

	t.Run("simulated use above block maximum", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodSimulate, &wire.SimulateResponse{
			GasInfo: &wire.GasInfo{GasUsed: 200_000},
		})
		respondParams(node, 150_000)

		_, err := node.contact(t).GetFeeInfo(ctx, key, msgs, args, "memo")
		var gasErr *GasExceedsBlockMaximumError
		require.ErrorAs(t, err, &gasErr)
		assert.Equal(t, int64(150_000), gasErr.Maximum)
		assert.Equal(t, uint64(200_000), gasErr.Required, "the raw simulated use, not the scaled limit")
	})

	t.Run("only the scaled limit exceeds the maximum", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodSimulate, &wire.SimulateResponse{
			GasInfo: &wire.GasInfo{GasUsed: 100_000},
		})
		respondParams(node, 150_000)

		fee, err := node.contact(t).GetFeeInfo(ctx, key, msgs, args, "memo")
		require.NoError(t, err, "the block cap applies to simulated use, not the padded limit")
		assert.Equal(t, uint64(200_000), fee.GasLimit)
	})

	t.Run("block params failure propagates", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodSimulate, &wire.SimulateResponse{
			GasInfo: &wire.GasInfo{GasUsed: 100_000},
		})
		// Neither the consensus service nor the legacy subspace answers.

		_, err := node.contact(t).GetFeeInfo(ctx, key, msgs, args, "memo")
		var reqErr *RequestError
		assert.ErrorAs(t, err, &reqErr)
	})
}

func testSendMsg(t *testing.T, key crypto.PrivateKey) ([]types.Msg, types.MessageArgs) {
	t.Helper()

	from, err := key.PublicKey().Address("cosmos")
	require.NoError(t, err)
	to, err := address.FromBech32(vectors.ZeroAddressBech32)
	require.NoError(t, err)
	msg, err := types.NewMsgSend(from, to, types.NewCoins(types.NewCoin("uatom", 10)))
	require.NoError(t, err)

	return []types.Msg{msg}, types.MessageArgs{
		Sequence:      4,
		AccountNumber: 11,
		ChainID:       "bramble-1",
		Fee:           typesFee(t, 250, 0),
	}
}

func TestWaitForTx(t *testing.T) {
	ctx := context.Background()

	t.Run("pending then included", func(t *testing.T) {
		node := newTestNode(t)
		var polls atomic.Int32
		node.handle(methodGetTx, func(dec func(any) error) (any, error) {
			if polls.Add(1) == 1 {
				return nil, status.Error(codes.NotFound, "tx not found")
			}
			return &wire.GetTxResponse{
				TxResponse: &wire.TxResponse{TxHash: "ABCD", Height: 10},
			}, nil
		})

		resp, err := node.contact(t).WaitForTx(ctx, "ABCD", 10*time.Second)
		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.Height)
		assert.GreaterOrEqual(t, polls.Load(), int32(2))
	})

	t.Run("executed with failure code", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodGetTx, &wire.GetTxResponse{
			TxResponse: &wire.TxResponse{TxHash: "ABCD", Code: 11, Codespace: "sdk", RawLog: "out of gas"},
		})

		resp, err := node.contact(t).WaitForTx(ctx, "ABCD", 10*time.Second)
		require.NotNil(t, resp)
		var failed *TransactionFailedError
		require.ErrorAs(t, err, &failed)
		require.NotNil(t, failed.SdkError)
		assert.Equal(t, SdkErrOutOfGas, failed.SdkError.Code)
	})

	t.Run("timeout", func(t *testing.T) {
		node := newTestNode(t)
		node.fail(methodGetTx, codes.NotFound, "tx not found")

		_, err := node.contact(t).WaitForTx(ctx, "ABCD", 50*time.Millisecond)
		assert.ErrorIs(t, err, ErrTxTimedOut)
	})

	t.Run("hard failure is not retried", func(t *testing.T) {
		node := newTestNode(t)
		node.fail(methodGetTx, codes.PermissionDenied, "blocked")

		_, err := node.contact(t).WaitForTx(ctx, "ABCD", 10*time.Second)
		var reqErr *RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, codes.PermissionDenied, reqErr.Status.Code())
	})
}

// TestSendCoins drives the whole pipeline against the stub node: account
// lookup, simulation, fee derivation, signing and broadcast. The
// broadcast handler verifies the signature over the submitted bytes.
func TestSendCoins(t *testing.T) {
	key, err := crypto.GeneratePrivateKey(crypto.FamilyCosmos)
	require.NoError(t, err)
	to, err := address.FromBech32(vectors.ZeroAddressBech32)
	require.NoError(t, err)

	node := newTestNode(t)

	account := wire.BaseAccount{AccountNumber: 11, Sequence: 4}
	accountBytes, err := account.Marshal()
	require.NoError(t, err)
	node.respond(methodQueryAccount, &wire.QueryAccountResponse{
		Account: &wire.Any{TypeURL: wire.BaseAccountTypeURL, Value: accountBytes},
	})
	node.respond(methodGetSyncing, &wire.GetSyncingResponse{})
	node.respondBlock(5000, "bramble-1")
	node.respond(methodSimulate, &wire.SimulateResponse{
		GasInfo: &wire.GasInfo{GasUsed: 80_000},
	})
	node.respond(methodConsensusParams, &wire.ConsensusParamsResponse{
		Params: &wire.ConsensusParams{Block: &wire.BlockParams{MaxBytes: 1024, MaxGas: -1}},
	})

	node.handle(methodBroadcastTx, func(dec func(any) error) (any, error) {
		var req wire.BroadcastTxRequest
		if err := dec(&req); err != nil {
			return nil, err
		}
		if req.Mode != wire.BroadcastModeSync {
			return nil, status.Errorf(codes.InvalidArgument, "unexpected mode %d", req.Mode)
		}

		var raw wire.TxRaw
		if err := raw.Unmarshal(req.TxBytes); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "undecodable tx: %v", err)
		}
		doc := wire.SignDoc{
			BodyBytes:     raw.BodyBytes,
			AuthInfoBytes: raw.AuthInfoBytes,
			ChainID:       "bramble-1",
			AccountNumber: 11,
		}
		docBytes, err := doc.Marshal()
		if err != nil {
			return nil, err
		}
		if len(raw.Signatures) != 1 || !key.PublicKey().Verify(docBytes, raw.Signatures[0]) {
			return nil, status.Error(codes.Unauthenticated, "signature verification failed")
		}

		var authInfo wire.AuthInfo
		if err := authInfo.Unmarshal(raw.AuthInfoBytes); err != nil {
			return nil, err
		}
		if authInfo.Fee == nil || authInfo.Fee.GasLimit != 160_000 {
			return nil, status.Error(codes.InvalidArgument, "unexpected gas limit")
		}

		return &wire.BroadcastTxResponse{
			TxResponse: &wire.TxResponse{TxHash: "CAFE", Code: 0},
		}, nil
	})

	resp, err := node.contact(t).SendCoins(
		context.Background(),
		key,
		to,
		types.NewCoins(types.NewCoin("uatom", 100)),
		types.NewCoin("uatom", 250),
		nil,
	)
	require.NoError(t, err)
	assert.Equal(t, "CAFE", resp.TxHash)
}
