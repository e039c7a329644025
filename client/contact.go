// Package client implements the node gateway: a thin gRPC surface over
// a Cosmos-SDK node for queries, broadcasts and the send helpers built
// on top of them.
package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"cosmossdk.io/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding/gzip"
	"google.golang.org/grpc/status"

	"github.com/blockberries/bramble/utils"
	"github.com/blockberries/bramble/wire"
)

// Full method names of the gateway's query and tx services.
const (
	methodGetSyncing       = "/cosmos.base.tendermint.v1beta1.Service/GetSyncing"
	methodGetLatestBlock   = "/cosmos.base.tendermint.v1beta1.Service/GetLatestBlock"
	methodGetBlockByHeight = "/cosmos.base.tendermint.v1beta1.Service/GetBlockByHeight"
	methodQueryAccount     = "/cosmos.auth.v1beta1.Query/Account"
	methodAllBalances      = "/cosmos.bank.v1beta1.Query/AllBalances"
	methodBroadcastTx      = "/cosmos.tx.v1beta1.Service/BroadcastTx"
	methodGetTx            = "/cosmos.tx.v1beta1.Service/GetTx"
	methodSimulate         = "/cosmos.tx.v1beta1.Service/Simulate"
	methodConsensusParams  = "/cosmos.consensus.v1.Query/Params"
	methodLegacyParams     = "/cosmos.params.v1beta1.Query/Params"
)

const (
	// defaultGasMultiplier scales simulated gas use into the gas limit,
	// leaving headroom for estimation drift between simulation and
	// execution.
	defaultGasMultiplier = 2.0

	// defaultBlockTimeout is how many blocks past the current height a
	// transaction stays valid.
	defaultBlockTimeout = 100

	// pageLimit is the page size for paginated queries; effectively "all
	// of it" for any realistic account.
	pageLimit = 500_000
)

// Contact is a handle to one node. It carries no open connection; each
// call dials, invokes and closes. Contacts are immutable after
// construction and safe for concurrent use.
type Contact struct {
	url           string
	target        string
	useTLS        bool
	timeout       time.Duration
	prefix        utils.PrefixString
	logger        log.Logger
	gasMultiplier float64
	blockTimeout  uint64
	useGzip       bool
}

// Option configures a Contact.
type Option func(*Contact)

// WithLogger sets the structured logger; the default discards output.
func WithLogger(logger log.Logger) Option {
	return func(c *Contact) { c.logger = logger }
}

// WithGasMultiplier overrides the factor applied to simulated gas use
// when deriving a gas limit. Values below 1 risk out-of-gas failures.
func WithGasMultiplier(m float64) Option {
	return func(c *Contact) { c.gasMultiplier = m }
}

// WithBlockTimeout overrides how many blocks a transaction stays valid
// past the height at which it was assembled.
func WithBlockTimeout(blocks uint64) Option {
	return func(c *Contact) { c.blockTimeout = blocks }
}

// WithGzip enables gzip compression on calls.
func WithGzip() Option {
	return func(c *Contact) { c.useGzip = true }
}

// NewContact builds a handle to the node at rawURL. The scheme decides
// transport security: https dials with TLS, http (or grpc) dials
// plaintext. The prefix is the chain's bech32 account prefix and the
// timeout bounds every individual call.
func NewContact(rawURL string, timeout time.Duration, prefix string, opts ...Option) (*Contact, error) {
	p, err := utils.NewPrefixString(prefix)
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid node url %q: %w", rawURL, err)
	}
	var useTLS bool
	switch u.Scheme {
	case "https":
		useTLS = true
	case "http", "grpc", "":
	default:
		return nil, fmt.Errorf("invalid node url %q: unsupported scheme %q", rawURL, u.Scheme)
	}
	target := u.Host
	if target == "" {
		target = u.Path
	}
	if target == "" {
		return nil, fmt.Errorf("invalid node url %q: no host", rawURL)
	}

	c := &Contact{
		url:           rawURL,
		target:        target,
		useTLS:        useTLS,
		timeout:       timeout,
		prefix:        p,
		logger:        log.NewNopLogger(),
		gasMultiplier: defaultGasMultiplier,
		blockTimeout:  defaultBlockTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Prefix returns the chain's bech32 account prefix.
func (c *Contact) Prefix() string {
	return c.prefix.String()
}

// Timeout returns the per-call timeout.
func (c *Contact) Timeout() time.Duration {
	return c.timeout
}

func (c *Contact) dial() (*grpc.ClientConn, error) {
	creds := insecure.NewCredentials()
	if c.useTLS {
		creds = credentials.NewTLS(&tls.Config{})
	}
	return grpc.NewClient(c.target, grpc.WithTransportCredentials(creds))
}

// invoke performs one unary call with a fresh connection and the
// per-call timeout applied.
func (c *Contact) invoke(ctx context.Context, method string, req, resp wire.Message) error {
	conn, err := c.dial()
	if err != nil {
		return &ConnectionError{URL: c.url, Err: err}
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	opts := []grpc.CallOption{grpc.ForceCodec(rawCodec{})}
	if c.useGzip {
		opts = append(opts, grpc.UseCompressor(gzip.Name))
	}
	if err := conn.Invoke(ctx, method, req, resp, opts...); err != nil {
		if st, ok := status.FromError(err); ok {
			return &RequestError{Method: method, Status: st}
		}
		return &ConnectionError{URL: c.url, Err: err}
	}
	return nil
}

// rawCodec moves this package's hand-encoded messages through grpc
// without a generated protobuf layer.
type rawCodec struct{}

func (rawCodec) Marshal(v any) ([]byte, error) {
	m, ok := v.(wire.Message)
	if !ok {
		return nil, fmt.Errorf("rawCodec: cannot marshal %T", v)
	}
	return m.Marshal()
}

func (rawCodec) Unmarshal(data []byte, v any) error {
	m, ok := v.(wire.Message)
	if !ok {
		return fmt.Errorf("rawCodec: cannot unmarshal into %T", v)
	}
	return m.Unmarshal(data)
}

func (rawCodec) Name() string { return "bramble-raw" }
