package types

import "errors"

var (
	// ErrParseCoin indicates a coin string that is not <amount><denom>.
	ErrParseCoin = errors.New("invalid coin string")

	// ErrInvalidCoin indicates an invalid coin (negative amount, empty denom).
	ErrInvalidCoin = errors.New("invalid coin")

	// ErrInvalidMessage indicates a message that cannot be assembled.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrBadTimeout indicates a zero or negative transfer timeout.
	ErrBadTimeout = errors.New("invalid timeout duration")

	// ErrSystemClock indicates the system clock reads before the Unix
	// epoch, so a timeout timestamp cannot be computed.
	ErrSystemClock = errors.New("system clock is before the unix epoch")
)
