package client

import (
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/status"

	"github.com/blockberries/bramble/types"
	"github.com/blockberries/bramble/wire"
)

var (
	// ErrChainNotRunning indicates the node reported a state other than
	// producing blocks when an operation needed a live chain.
	ErrChainNotRunning = errors.New("chain is not producing blocks")

	// ErrNodeNotSynced indicates the node is still catching up.
	ErrNodeNotSynced = errors.New("node is syncing")

	// ErrNoToken indicates the account does not exist on chain, which on
	// most chains means it has never held tokens.
	ErrNoToken = errors.New("account not found; it may hold no tokens")

	// ErrParse indicates a malformed response payload.
	ErrParse = errors.New("failed to parse chain response")

	// ErrTxTimedOut indicates a broadcast transaction was not observed in
	// a block before the wait deadline.
	ErrTxTimedOut = errors.New("transaction was not included in a block before timeout")
)

// ConnectionError wraps a transport-level failure reaching the node.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to contact node at %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// RequestError wraps a gRPC status returned by the node.
type RequestError struct {
	Method string
	Status *status.Status
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request %s failed: %s: %s", e.Method, e.Status.Code(), e.Status.Message())
}

// InsufficientFeesError reports the minimum fee the node demanded,
// parsed out of the raw log of a rejected transaction.
type InsufficientFeesError struct {
	MinFees types.Coins
}

func (e *InsufficientFeesError) Error() string {
	return fmt.Sprintf("insufficient fees: node requires at least %s", e.MinFees)
}

// GasExceedsBlockMaximumError reports a simulated gas requirement above
// what a single block can hold.
type GasExceedsBlockMaximumError struct {
	Maximum  int64
	Required uint64
}

func (e *GasExceedsBlockMaximumError) Error() string {
	return fmt.Sprintf("transaction requires %d gas but blocks allow at most %d", e.Required, e.Maximum)
}

// NoBlockProducedError indicates no new block appeared within the wait
// window.
type NoBlockProducedError struct {
	Elapsed time.Duration
}

func (e *NoBlockProducedError) Error() string {
	return fmt.Sprintf("no block produced in %s", e.Elapsed)
}

// TransactionFailedError reports a transaction the chain executed (or
// rejected) with a non-zero code.
type TransactionFailedError struct {
	Response *wire.TxResponse
	Elapsed  time.Duration
	SdkError *SdkError
}

func (e *TransactionFailedError) Error() string {
	if e.SdkError != nil {
		return fmt.Sprintf("transaction %s failed: %s", e.Response.TxHash, e.SdkError)
	}
	return fmt.Sprintf("transaction %s failed with code %d: %s", e.Response.TxHash, e.Response.Code, e.Response.RawLog)
}
