package client

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/blockberries/bramble/address"
	"github.com/blockberries/bramble/testing/vectors"
	"github.com/blockberries/bramble/wire"
)

// testNode is an in-process gRPC server speaking this package's raw
// codec, with per-method handlers installed by each test.
type testNode struct {
	addr     string
	handlers map[string]func(dec func(any) error) (any, error)
}

var testNodeServices = map[string][]string{
	"cosmos.base.tendermint.v1beta1.Service": {"GetSyncing", "GetLatestBlock", "GetBlockByHeight"},
	"cosmos.auth.v1beta1.Query":              {"Account"},
	"cosmos.bank.v1beta1.Query":              {"AllBalances"},
	"cosmos.tx.v1beta1.Service":              {"BroadcastTx", "GetTx", "Simulate"},
	"cosmos.consensus.v1.Query":              {"Params"},
	"cosmos.params.v1beta1.Query":            {"Params"},
}

func newTestNode(t *testing.T) *testNode {
	t.Helper()

	n := &testNode{handlers: make(map[string]func(dec func(any) error) (any, error))}
	server := grpc.NewServer(grpc.ForceServerCodec(rawCodec{}))
	for name, methods := range testNodeServices {
		desc := grpc.ServiceDesc{ServiceName: name, HandlerType: (*any)(nil)}
		for _, method := range methods {
			full := "/" + name + "/" + method
			desc.Methods = append(desc.Methods, grpc.MethodDesc{
				MethodName: method,
				Handler: func(_ any, _ context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
					h, ok := n.handlers[full]
					if !ok {
						return nil, status.Errorf(codes.Unimplemented, "no handler for %s", full)
					}
					return h(dec)
				},
			})
		}
		server.RegisterService(&desc, n)
	}

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	n.addr = lis.Addr().String()
	return n
}

func (n *testNode) handle(method string, h func(dec func(any) error) (any, error)) {
	n.handlers[method] = h
}

// respond installs a fixed response for a method.
func (n *testNode) respond(method string, resp wire.Message) {
	n.handle(method, func(func(any) error) (any, error) { return resp, nil })
}

// fail installs a gRPC status failure for a method.
func (n *testNode) fail(method string, code codes.Code, msg string) {
	n.handle(method, func(func(any) error) (any, error) { return nil, status.Error(code, msg) })
}

func (n *testNode) contact(t *testing.T, opts ...Option) *Contact {
	t.Helper()
	c, err := NewContact("http://"+n.addr, 5*time.Second, "cosmos", opts...)
	require.NoError(t, err)
	return c
}

func (n *testNode) respondBlock(height int64, chainID string) {
	n.respond(methodGetLatestBlock, &wire.GetLatestBlockResponse{
		Block: &wire.Block{Header: &wire.Header{ChainID: chainID, Height: height}},
	})
}

func TestNewContact(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
		wantTLS bool
	}{
		{"http", "http://localhost:9090", false, false},
		{"https", "https://grpc.example.com:443", false, true},
		{"grpc scheme", "grpc://localhost:9090", false, false},
		{"bare host port", "localhost:9090", false, false},
		{"unsupported scheme", "ftp://localhost:9090", true, false},
		{"empty", "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContact(tt.url, time.Second, "cosmos")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTLS, c.useTLS)
			assert.Equal(t, "cosmos", c.Prefix())
			assert.Equal(t, time.Second, c.Timeout())
		})
	}

	t.Run("invalid prefix", func(t *testing.T) {
		_, err := NewContact("http://localhost:9090", time.Second, "COSMOS")
		assert.Error(t, err)
	})

	t.Run("options", func(t *testing.T) {
		c, err := NewContact("http://localhost:9090", time.Second, "cosmos",
			WithGasMultiplier(1.5), WithBlockTimeout(30), WithGzip())
		require.NoError(t, err)
		assert.Equal(t, 1.5, c.gasMultiplier)
		assert.Equal(t, uint64(30), c.blockTimeout)
		assert.True(t, c.useGzip)
	})

	t.Run("defaults", func(t *testing.T) {
		c, err := NewContact("http://localhost:9090", time.Second, "cosmos")
		require.NoError(t, err)
		assert.Equal(t, 2.0, c.gasMultiplier)
		assert.Equal(t, uint64(100), c.blockTimeout)
		assert.False(t, c.useGzip)
	})
}

func TestGetChainStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("syncing", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodGetSyncing, &wire.GetSyncingResponse{Syncing: true})

		got, err := node.contact(t).GetChainStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, ChainStatusSyncing, got)
	})

	t.Run("moving", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodGetSyncing, &wire.GetSyncingResponse{})
		node.respondBlock(100, "bramble-1")

		got, err := node.contact(t).GetChainStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, ChainStatusMoving, got)
	})

	t.Run("waiting to start on internal error", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodGetSyncing, &wire.GetSyncingResponse{})
		node.fail(methodGetLatestBlock, codes.Internal, "could not get latest block: nil block")

		got, err := node.contact(t).GetChainStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, ChainStatusWaitingToStart, got)
	})

	t.Run("waiting to start on empty response", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodGetSyncing, &wire.GetSyncingResponse{})
		node.respond(methodGetLatestBlock, &wire.GetLatestBlockResponse{})

		got, err := node.contact(t).GetChainStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, ChainStatusWaitingToStart, got)
	})
}

func TestChainStatusString(t *testing.T) {
	assert.Equal(t, "moving", ChainStatusMoving.String())
	assert.Equal(t, "syncing", ChainStatusSyncing.String())
	assert.Equal(t, "waiting to start", ChainStatusWaitingToStart.String())
}

func TestGetLatestBlockAndChainID(t *testing.T) {
	node := newTestNode(t)
	node.respondBlock(7777, "bramble-1")
	c := node.contact(t)
	ctx := context.Background()

	block, err := c.GetLatestBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7777), block.Header.Height)

	chainID, err := c.GetChainID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bramble-1", chainID)
}

func TestGetBlock(t *testing.T) {
	node := newTestNode(t)
	node.handle(methodGetBlockByHeight, func(dec func(any) error) (any, error) {
		var req wire.GetBlockByHeightRequest
		if err := dec(&req); err != nil {
			return nil, err
		}
		return &wire.GetBlockByHeightResponse{
			Block: &wire.Block{Header: &wire.Header{ChainID: "bramble-1", Height: req.Height}},
		}, nil
	})

	block, err := node.contact(t).GetBlock(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), block.Header.Height)
}

func TestGetBlockParams(t *testing.T) {
	ctx := context.Background()

	t.Run("consensus service", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodConsensusParams, &wire.ConsensusParamsResponse{
			Params: &wire.ConsensusParams{Block: &wire.BlockParams{MaxBytes: 22020096, MaxGas: 30_000_000}},
		})

		params, err := node.contact(t).GetBlockParams(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(22020096), params.MaxBytes)
		require.NotNil(t, params.MaxGas)
		assert.Equal(t, int64(30_000_000), *params.MaxGas)
	})

	t.Run("uncapped gas", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodConsensusParams, &wire.ConsensusParamsResponse{
			Params: &wire.ConsensusParams{Block: &wire.BlockParams{MaxBytes: 1024, MaxGas: -1}},
		})

		params, err := node.contact(t).GetBlockParams(ctx)
		require.NoError(t, err)
		assert.Nil(t, params.MaxGas, "max gas -1 means no block gas cap")
	})

	t.Run("legacy fallback", func(t *testing.T) {
		node := newTestNode(t)
		// No consensus service handler: the node answers Unimplemented
		// and the client retries through the legacy params subspace.
		node.handle(methodLegacyParams, func(dec func(any) error) (any, error) {
			var req wire.LegacyParamsRequest
			if err := dec(&req); err != nil {
				return nil, err
			}
			if req.Subspace != "baseapp" || req.Key != "BlockParams" {
				return nil, status.Errorf(codes.InvalidArgument, "unexpected subspace %s key %s", req.Subspace, req.Key)
			}
			return &wire.LegacyParamsResponse{
				Param: &wire.ParamChange{
					Subspace: req.Subspace,
					Key:      req.Key,
					Value:    `{"max_bytes":"22020096","max_gas":"20000000"}`,
				},
			}, nil
		})

		params, err := node.contact(t).GetBlockParams(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(22020096), params.MaxBytes)
		require.NotNil(t, params.MaxGas)
		assert.Equal(t, int64(20000000), *params.MaxGas)
	})

	t.Run("legacy garbage json", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodLegacyParams, &wire.LegacyParamsResponse{
			Param: &wire.ParamChange{Value: "not json"},
		})

		_, err := node.contact(t).GetBlockParams(ctx)
		assert.ErrorIs(t, err, ErrParse)
	})
}

func TestGetAccountInfo(t *testing.T) {
	ctx := context.Background()
	addr, err := address.FromBech32(vectors.SecretKey.Address)
	require.NoError(t, err)

	base := wire.BaseAccount{Address: vectors.SecretKey.Address, AccountNumber: 11, Sequence: 4}
	baseBytes, err := base.Marshal()
	require.NoError(t, err)

	respondAccount := func(node *testNode, typeURL string, value []byte) {
		node.respond(methodQueryAccount, &wire.QueryAccountResponse{
			Account: &wire.Any{TypeURL: typeURL, Value: value},
		})
	}

	t.Run("base account", func(t *testing.T) {
		node := newTestNode(t)
		respondAccount(node, wire.BaseAccountTypeURL, baseBytes)

		acc, err := node.contact(t).GetAccountInfo(ctx, addr)
		require.NoError(t, err)
		assert.Equal(t, uint64(11), acc.AccountNumber)
		assert.Equal(t, uint64(4), acc.Sequence)
	})

	t.Run("module account envelope", func(t *testing.T) {
		node := newTestNode(t)
		mod := wire.ModuleAccount{BaseAccount: &base, Name: "transfer", Permissions: []string{"minter"}}
		modBytes, err := mod.Marshal()
		require.NoError(t, err)
		respondAccount(node, wire.ModuleAccountTypeURL, modBytes)

		acc, err := node.contact(t).GetAccountInfo(ctx, addr)
		require.NoError(t, err)
		assert.Equal(t, uint64(11), acc.AccountNumber)
	})

	t.Run("vesting account envelope", func(t *testing.T) {
		vest := wire.VestingAccount{BaseVestingAccount: &wire.BaseVestingAccount{BaseAccount: &base}}
		vestBytes, err := vest.Marshal()
		require.NoError(t, err)

		for _, typeURL := range []string{
			wire.ContinuousVestingAccountTypeURL,
			wire.DelayedVestingAccountTypeURL,
			wire.PeriodicVestingAccountTypeURL,
			wire.PermanentLockedAccountTypeURL,
		} {
			node := newTestNode(t)
			respondAccount(node, typeURL, vestBytes)

			acc, err := node.contact(t).GetAccountInfo(ctx, addr)
			require.NoError(t, err, typeURL)
			assert.Equal(t, uint64(11), acc.AccountNumber, typeURL)
		}
	})

	t.Run("unknown account type", func(t *testing.T) {
		node := newTestNode(t)
		respondAccount(node, "/custom.auth.Account", baseBytes)

		_, err := node.contact(t).GetAccountInfo(ctx, addr)
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("not found", func(t *testing.T) {
		node := newTestNode(t)
		node.fail(methodQueryAccount, codes.NotFound, "account does not exist")

		_, err := node.contact(t).GetAccountInfo(ctx, addr)
		assert.ErrorIs(t, err, ErrNoToken)
	})
}

func TestGetBalances(t *testing.T) {
	node := newTestNode(t)
	addr, err := address.FromBech32(vectors.SecretKey.Address)
	require.NoError(t, err)

	node.handle(methodAllBalances, func(dec func(any) error) (any, error) {
		var req wire.QueryAllBalancesRequest
		if err := dec(&req); err != nil {
			return nil, err
		}
		if req.Pagination == nil || req.Pagination.Limit != pageLimit {
			return nil, status.Error(codes.InvalidArgument, "missing pagination")
		}
		return &wire.QueryAllBalancesResponse{
			Balances: []wire.Coin{{Denom: "uatom", Amount: "1000"}, {Denom: "uosmo", Amount: "5"}},
		}, nil
	})

	coins, err := node.contact(t).GetBalances(context.Background(), addr)
	require.NoError(t, err)
	assert.Equal(t, "1000uatom,5uosmo", coins.String())
}

func TestGetMessageArgs(t *testing.T) {
	node := newTestNode(t)
	addr, err := address.FromBech32(vectors.SecretKey.Address)
	require.NoError(t, err)

	base := wire.BaseAccount{Address: vectors.SecretKey.Address, AccountNumber: 11, Sequence: 4}
	baseBytes, err := base.Marshal()
	require.NoError(t, err)
	node.respond(methodQueryAccount, &wire.QueryAccountResponse{
		Account: &wire.Any{TypeURL: wire.BaseAccountTypeURL, Value: baseBytes},
	})
	node.respond(methodGetSyncing, &wire.GetSyncingResponse{})
	node.respondBlock(5000, "bramble-1")

	fee := typesFee(t, 250, 0)
	args, err := node.contact(t, WithBlockTimeout(50)).GetMessageArgs(context.Background(), addr, fee)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), args.Sequence)
	assert.Equal(t, uint64(11), args.AccountNumber)
	assert.Equal(t, "bramble-1", args.ChainID)
	assert.Equal(t, uint64(5050), args.TimeoutHeight)
}

func TestGetMessageArgs_NodeNotUsable(t *testing.T) {
	addr, err := address.FromBech32(vectors.SecretKey.Address)
	require.NoError(t, err)
	fee := typesFee(t, 250, 0)

	t.Run("syncing", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodGetSyncing, &wire.GetSyncingResponse{Syncing: true})

		_, err := node.contact(t).GetMessageArgs(context.Background(), addr, fee)
		assert.ErrorIs(t, err, ErrNodeNotSynced)
	})

	t.Run("waiting to start", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodGetSyncing, &wire.GetSyncingResponse{})
		node.respond(methodGetLatestBlock, &wire.GetLatestBlockResponse{})

		_, err := node.contact(t).GetMessageArgs(context.Background(), addr, fee)
		assert.ErrorIs(t, err, ErrChainNotRunning)
	})
}

func TestWaitForNextBlock(t *testing.T) {
	ctx := context.Background()

	t.Run("height advances", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodGetSyncing, &wire.GetSyncingResponse{})
		var height atomic.Int64
		height.Store(100)
		node.handle(methodGetLatestBlock, func(func(any) error) (any, error) {
			return &wire.GetLatestBlockResponse{
				Block: &wire.Block{Header: &wire.Header{ChainID: "bramble-1", Height: height.Add(1)}},
			}, nil
		})

		require.NoError(t, node.contact(t).WaitForNextBlock(ctx, 10*time.Second))
	})

	t.Run("stalled chain", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodGetSyncing, &wire.GetSyncingResponse{})
		node.respondBlock(100, "bramble-1")

		err := node.contact(t).WaitForNextBlock(ctx, 50*time.Millisecond)
		var noBlock *NoBlockProducedError
		assert.ErrorAs(t, err, &noBlock)
	})

	t.Run("syncing node fails immediately", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodGetSyncing, &wire.GetSyncingResponse{Syncing: true})

		start := time.Now()
		err := node.contact(t).WaitForNextBlock(ctx, 10*time.Second)
		assert.ErrorIs(t, err, ErrNodeNotSynced)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("chain not started fails immediately", func(t *testing.T) {
		node := newTestNode(t)
		node.respond(methodGetSyncing, &wire.GetSyncingResponse{})
		node.respond(methodGetLatestBlock, &wire.GetLatestBlockResponse{})

		start := time.Now()
		err := node.contact(t).WaitForNextBlock(ctx, 10*time.Second)
		assert.ErrorIs(t, err, ErrChainNotRunning)
		assert.Less(t, time.Since(start), time.Second)
	})
}
