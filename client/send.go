package client

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"google.golang.org/grpc/codes"

	"github.com/blockberries/bramble/address"
	"github.com/blockberries/bramble/crypto"
	"github.com/blockberries/bramble/types"
	"github.com/blockberries/bramble/wire"
)

// DefaultMemo marks transactions assembled by the send helpers.
const DefaultMemo = "Sent with Bramble"

// maxSimulationGas is the gas limit used when signing a transaction
// purely to simulate it; the node ignores it beyond bounds checking.
const maxSimulationGas = uint64(math.MaxInt64)

// txPollInterval is how often WaitForTx re-queries a pending hash.
const txPollInterval = time.Second

// BroadcastTx submits signed TxRaw bytes. A response carrying a
// non-zero code is returned together with a classifying error.
func (c *Contact) BroadcastTx(ctx context.Context, txBytes []byte, mode wire.BroadcastMode) (*wire.TxResponse, error) {
	req := wire.BroadcastTxRequest{TxBytes: txBytes, Mode: mode}
	var resp wire.BroadcastTxResponse
	if err := c.invoke(ctx, methodBroadcastTx, &req, &resp); err != nil {
		return nil, err
	}
	if resp.TxResponse == nil {
		return nil, fmt.Errorf("%w: broadcast without tx response", ErrParse)
	}
	if resp.TxResponse.Code != 0 {
		if err := classifyResponse(resp.TxResponse); err != nil {
			return resp.TxResponse, err
		}
		return resp.TxResponse, &TransactionFailedError{Response: resp.TxResponse}
	}
	c.logger.Debug("broadcast accepted", "hash", resp.TxResponse.TxHash)
	return resp.TxResponse, nil
}

// Simulate runs signed TxRaw bytes through the node's simulator and
// returns its gas accounting.
func (c *Contact) Simulate(ctx context.Context, txBytes []byte) (*wire.GasInfo, error) {
	var resp wire.SimulateResponse
	if err := c.invoke(ctx, methodSimulate, &wire.SimulateRequest{TxBytes: txBytes}, &resp); err != nil {
		return nil, err
	}
	if resp.GasInfo == nil {
		return nil, fmt.Errorf("%w: simulation without gas info", ErrParse)
	}
	return resp.GasInfo, nil
}

// GetFeeInfo simulates the messages under the given arguments and
// returns a fee whose gas limit is the simulated usage scaled by the
// contact's gas multiplier. Fails when the simulated usage alone
// exceeds the chain's per-block gas maximum; the scaled limit may.
func (c *Contact) GetFeeInfo(ctx context.Context, key crypto.PrivateKey, msgs []types.Msg, args types.MessageArgs, memo string) (types.Fee, error) {
	simArgs := args
	simArgs.Fee = types.Fee{Amount: args.Fee.Amount, GasLimit: maxSimulationGas}
	txBytes, err := key.SignStdMsg(msgs, simArgs, memo)
	if err != nil {
		return types.Fee{}, err
	}
	gasInfo, err := c.Simulate(ctx, txBytes)
	if err != nil {
		return types.Fee{}, err
	}
	gasUsed := gasInfo.GasUsed

	params, err := c.GetBlockParams(ctx)
	if err != nil {
		return types.Fee{}, err
	}
	if params.MaxGas != nil {
		maxGas := *params.MaxGas
		if gasUsed > uint64(maxGas) {
			return types.Fee{}, &GasExceedsBlockMaximumError{Maximum: maxGas, Required: gasUsed}
		}
		if gasUsed > 0 && uint64(maxGas)/gasUsed == 1 {
			c.logger.Warn("transaction gas use is close to the block maximum", "gas_used", gasUsed, "max_gas", maxGas)
		}
	}

	if c.gasMultiplier <= 1 {
		c.logger.Warn("gas multiplier leaves no headroom over simulated gas", "multiplier", c.gasMultiplier)
	}
	fee := args.Fee
	fee.GasLimit = uint64(float64(gasUsed) * c.gasMultiplier)
	return fee, nil
}

// SendMessages signs and broadcasts messages, deriving the gas limit
// from simulation. The feeCoin is the flat fee attached. With a
// non-nil wait the call blocks until the transaction lands in a block
// or the wait elapses.
func (c *Contact) SendMessages(ctx context.Context, key crypto.PrivateKey, msgs []types.Msg, memo string, feeCoin types.Coin, wait *time.Duration) (*wire.TxResponse, error) {
	from, err := key.PublicKey().Address(c.prefix.String())
	if err != nil {
		return nil, err
	}
	args, err := c.GetMessageArgs(ctx, from, types.NewFee(types.NewCoins(feeCoin), 0))
	if err != nil {
		return nil, err
	}
	fee, err := c.GetFeeInfo(ctx, key, msgs, args, memo)
	if err != nil {
		return nil, err
	}
	args.Fee = fee

	txBytes, err := key.SignStdMsg(msgs, args, memo)
	if err != nil {
		return nil, err
	}
	resp, err := c.BroadcastTx(ctx, txBytes, wire.BroadcastModeSync)
	if err != nil {
		return resp, err
	}
	c.logger.Info("transaction broadcast", "hash", resp.TxHash, "gas_limit", fee.GasLimit)

	if wait == nil {
		return resp, nil
	}
	return c.WaitForTx(ctx, resp.TxHash, *wait)
}

// SendCoins sends an amount from the key's account to a recipient with
// the default memo.
func (c *Contact) SendCoins(ctx context.Context, key crypto.PrivateKey, to address.Address, amount types.Coins, feeCoin types.Coin, wait *time.Duration) (*wire.TxResponse, error) {
	from, err := key.PublicKey().Address(c.prefix.String())
	if err != nil {
		return nil, err
	}
	msg, err := types.NewMsgSend(from, to, amount)
	if err != nil {
		return nil, err
	}
	return c.SendMessages(ctx, key, []types.Msg{msg}, DefaultMemo, feeCoin, wait)
}

// WaitForTx polls for a transaction hash until it lands in a block or
// the timeout elapses. The gateway answers with NotFound (and on some
// versions Unknown or InvalidArgument) while the transaction is still
// pending, so those are retried.
func (c *Contact) WaitForTx(ctx context.Context, hash string, timeout time.Duration) (*wire.TxResponse, error) {
	start := time.Now()

	ticker := time.NewTicker(txPollInterval)
	defer ticker.Stop()
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		resp, err := c.GetTxByHash(ctx, hash)
		switch {
		case err == nil:
			if resp.Code != 0 {
				failed := &TransactionFailedError{Response: resp, Elapsed: time.Since(start)}
				if classified := classifyResponse(resp); classified != nil {
					var sdkErr *SdkError
					if errors.As(classified, &sdkErr) {
						failed.SdkError = sdkErr
						return resp, failed
					}
					return resp, classified
				}
				return resp, failed
			}
			return resp, nil
		case !isPendingTxErr(err):
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			return nil, fmt.Errorf("%w: %s after %s", ErrTxTimedOut, hash, timeout)
		case <-ticker.C:
		}
	}
}

func isPendingTxErr(err error) bool {
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		return false
	}
	switch reqErr.Status.Code() {
	case codes.NotFound, codes.Unknown, codes.InvalidArgument:
		return true
	default:
		return false
	}
}
