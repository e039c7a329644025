package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"google.golang.org/grpc/codes"

	"github.com/blockberries/bramble/address"
	"github.com/blockberries/bramble/types"
	"github.com/blockberries/bramble/wire"
)

// ChainStatus summarizes whether a node is usable for transactions.
type ChainStatus int

const (
	// ChainStatusMoving means the chain is producing blocks.
	ChainStatusMoving ChainStatus = iota

	// ChainStatusSyncing means the node is still catching up.
	ChainStatusSyncing

	// ChainStatusWaitingToStart means the chain has not produced its
	// first block yet.
	ChainStatusWaitingToStart
)

func (s ChainStatus) String() string {
	switch s {
	case ChainStatusMoving:
		return "moving"
	case ChainStatusSyncing:
		return "syncing"
	case ChainStatusWaitingToStart:
		return "waiting to start"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// BlockConsensusParams is the block-level consensus limit set. A nil
// MaxGas means the chain does not cap gas per block.
type BlockConsensusParams struct {
	MaxBytes int64
	MaxGas   *int64
}

// GetChainStatus reports whether the node is syncing, waiting for the
// chain to start, or producing blocks.
func (c *Contact) GetChainStatus(ctx context.Context) (ChainStatus, error) {
	var syncing wire.GetSyncingResponse
	if err := c.invoke(ctx, methodGetSyncing, &wire.GetSyncingRequest{}, &syncing); err != nil {
		return 0, err
	}
	if syncing.Syncing {
		return ChainStatusSyncing, nil
	}

	var latest wire.GetLatestBlockResponse
	if err := c.invoke(ctx, methodGetLatestBlock, &wire.GetLatestBlockRequest{}, &latest); err != nil {
		// A node with no blocks yet answers this query with an internal
		// error complaining about a nil block.
		var reqErr *RequestError
		if errors.As(err, &reqErr) && reqErr.Status.Code() == codes.Internal {
			return ChainStatusWaitingToStart, nil
		}
		return 0, err
	}
	if latest.Block == nil {
		return ChainStatusWaitingToStart, nil
	}
	return ChainStatusMoving, nil
}

// GetLatestBlock fetches the newest block the node has.
func (c *Contact) GetLatestBlock(ctx context.Context) (*wire.Block, error) {
	var resp wire.GetLatestBlockResponse
	if err := c.invoke(ctx, methodGetLatestBlock, &wire.GetLatestBlockRequest{}, &resp); err != nil {
		return nil, err
	}
	if resp.Block == nil || resp.Block.Header == nil {
		return nil, fmt.Errorf("%w: block response without header", ErrParse)
	}
	return resp.Block, nil
}

// GetBlock fetches the block at the given height.
func (c *Contact) GetBlock(ctx context.Context, height int64) (*wire.Block, error) {
	var resp wire.GetBlockByHeightResponse
	if err := c.invoke(ctx, methodGetBlockByHeight, &wire.GetBlockByHeightRequest{Height: height}, &resp); err != nil {
		return nil, err
	}
	if resp.Block == nil {
		return nil, fmt.Errorf("%w: no block at height %d", ErrParse, height)
	}
	return resp.Block, nil
}

// GetChainID reads the chain id from the latest block header.
func (c *Contact) GetChainID(ctx context.Context) (string, error) {
	block, err := c.GetLatestBlock(ctx)
	if err != nil {
		return "", err
	}
	return block.Header.ChainID, nil
}

// GetBlockParams fetches the chain's block-level consensus limits. The
// modern consensus query service is tried first; nodes predating it are
// served from the legacy params subspace.
func (c *Contact) GetBlockParams(ctx context.Context) (*BlockConsensusParams, error) {
	var resp wire.ConsensusParamsResponse
	err := c.invoke(ctx, methodConsensusParams, &wire.ConsensusParamsRequest{}, &resp)
	if err == nil {
		if resp.Params == nil || resp.Params.Block == nil {
			return nil, fmt.Errorf("%w: consensus params without block section", ErrParse)
		}
		return blockParamsFromWire(resp.Params.Block), nil
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) || reqErr.Status.Code() != codes.Unimplemented {
		return nil, err
	}
	c.logger.Debug("consensus params query unimplemented, falling back to legacy params", "url", c.url)
	return c.getLegacyBlockParams(ctx)
}

func (c *Contact) getLegacyBlockParams(ctx context.Context) (*BlockConsensusParams, error) {
	req := wire.LegacyParamsRequest{Subspace: "baseapp", Key: "BlockParams"}
	var resp wire.LegacyParamsResponse
	if err := c.invoke(ctx, methodLegacyParams, &req, &resp); err != nil {
		return nil, err
	}
	if resp.Param == nil {
		return nil, fmt.Errorf("%w: empty legacy block params", ErrParse)
	}

	// The legacy subspace stores the value as JSON with stringified
	// numbers.
	var decoded struct {
		MaxBytes string `json:"max_bytes"`
		MaxGas   string `json:"max_gas"`
	}
	if err := json.Unmarshal([]byte(resp.Param.Value), &decoded); err != nil {
		return nil, fmt.Errorf("%w: legacy block params: %v", ErrParse, err)
	}
	maxBytes, err := strconv.ParseInt(decoded.MaxBytes, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: legacy max_bytes %q", ErrParse, decoded.MaxBytes)
	}
	maxGas, err := strconv.ParseInt(decoded.MaxGas, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: legacy max_gas %q", ErrParse, decoded.MaxGas)
	}
	return blockParamsFromWire(&wire.BlockParams{MaxBytes: maxBytes, MaxGas: maxGas}), nil
}

func blockParamsFromWire(bp *wire.BlockParams) *BlockConsensusParams {
	out := &BlockConsensusParams{MaxBytes: bp.MaxBytes}
	if bp.MaxGas >= 0 {
		gas := bp.MaxGas
		out.MaxGas = &gas
	}
	return out
}

// GetAccountInfo fetches the base account behind an address, unwrapping
// module and vesting account envelopes. Accounts unknown to the chain
// yield ErrNoToken, since on most chains an account only exists once it
// has held tokens.
func (c *Contact) GetAccountInfo(ctx context.Context, addr address.Address) (*wire.BaseAccount, error) {
	req := wire.QueryAccountRequest{Address: addr.String()}
	var resp wire.QueryAccountResponse
	if err := c.invoke(ctx, methodQueryAccount, &req, &resp); err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) && reqErr.Status.Code() == codes.NotFound {
			return nil, ErrNoToken
		}
		return nil, err
	}
	if resp.Account == nil {
		return nil, ErrNoToken
	}
	return decodeAccount(resp.Account)
}

func decodeAccount(any *wire.Any) (*wire.BaseAccount, error) {
	switch any.TypeURL {
	case wire.BaseAccountTypeURL:
		var acc wire.BaseAccount
		if err := acc.Unmarshal(any.Value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return &acc, nil

	case wire.ModuleAccountTypeURL:
		var acc wire.ModuleAccount
		if err := acc.Unmarshal(any.Value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		if acc.BaseAccount == nil {
			return nil, fmt.Errorf("%w: module account without base account", ErrParse)
		}
		return acc.BaseAccount, nil

	case wire.ContinuousVestingAccountTypeURL,
		wire.DelayedVestingAccountTypeURL,
		wire.PeriodicVestingAccountTypeURL,
		wire.PermanentLockedAccountTypeURL:
		var acc wire.VestingAccount
		if err := acc.Unmarshal(any.Value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		if acc.BaseVestingAccount == nil || acc.BaseVestingAccount.BaseAccount == nil {
			return nil, fmt.Errorf("%w: vesting account without base account", ErrParse)
		}
		return acc.BaseVestingAccount.BaseAccount, nil

	default:
		return nil, fmt.Errorf("%w: unsupported account type %s", ErrParse, any.TypeURL)
	}
}

// GetBalances fetches every balance the address holds.
func (c *Contact) GetBalances(ctx context.Context, addr address.Address) (types.Coins, error) {
	req := wire.QueryAllBalancesRequest{
		Address:    addr.String(),
		Pagination: &wire.PageRequest{Limit: pageLimit},
	}
	var resp wire.QueryAllBalancesResponse
	if err := c.invoke(ctx, methodAllBalances, &req, &resp); err != nil {
		return nil, err
	}
	coins, err := types.CoinsFromWire(resp.Balances)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return coins, nil
}

// GetTxByHash fetches a transaction and its execution result by hash.
func (c *Contact) GetTxByHash(ctx context.Context, hash string) (*wire.TxResponse, error) {
	var resp wire.GetTxResponse
	if err := c.invoke(ctx, methodGetTx, &wire.GetTxRequest{Hash: hash}, &resp); err != nil {
		return nil, err
	}
	if resp.TxResponse == nil {
		return nil, fmt.Errorf("%w: tx %s without response", ErrParse, hash)
	}
	return resp.TxResponse, nil
}

// chainStatusError maps a non-moving chain status to its sentinel.
func chainStatusError(status ChainStatus) error {
	switch status {
	case ChainStatusSyncing:
		return ErrNodeNotSynced
	case ChainStatusWaitingToStart:
		return ErrChainNotRunning
	default:
		return nil
	}
}

// GetMessageArgs assembles the signing arguments for an account: its
// number and sequence, the chain id, and a timeout height a fixed
// number of blocks past the current one. A node that is syncing or
// waiting for the chain's first block cannot provide usable arguments.
func (c *Contact) GetMessageArgs(ctx context.Context, from address.Address, fee types.Fee) (types.MessageArgs, error) {
	status, err := c.GetChainStatus(ctx)
	if err != nil {
		return types.MessageArgs{}, err
	}
	if err := chainStatusError(status); err != nil {
		return types.MessageArgs{}, err
	}
	account, err := c.GetAccountInfo(ctx, from)
	if err != nil {
		return types.MessageArgs{}, err
	}
	block, err := c.GetLatestBlock(ctx)
	if err != nil {
		return types.MessageArgs{}, err
	}
	return types.MessageArgs{
		Sequence:      account.Sequence,
		AccountNumber: account.AccountNumber,
		ChainID:       block.Header.ChainID,
		Fee:           fee,
		TimeoutHeight: uint64(block.Header.Height) + c.blockTimeout,
	}, nil
}

// WaitForNextBlock blocks until the chain height advances, polling once
// per second up to the given timeout. A syncing node or a chain that
// has not produced its first block fails immediately; transient query
// failures are tolerated between polls.
func (c *Contact) WaitForNextBlock(ctx context.Context, timeout time.Duration) error {
	start := time.Now()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	var startHeight int64
	for {
		status, err := c.GetChainStatus(ctx)
		switch {
		case err != nil:
			c.logger.Debug("status poll failed", "err", err)
		case status != ChainStatusMoving:
			return chainStatusError(status)
		default:
			if block, err := c.GetLatestBlock(ctx); err != nil {
				c.logger.Debug("height poll failed", "err", err)
			} else if startHeight == 0 {
				startHeight = block.Header.Height
			} else if block.Header.Height > startHeight {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return &NoBlockProducedError{Elapsed: time.Since(start)}
		case <-ticker.C:
		}
	}
}
