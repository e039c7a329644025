// Package wire implements the protobuf wire forms the SDK exchanges
// with a Cosmos-SDK node: the tx signing structures (TxBody, AuthInfo,
// SignDoc, TxRaw), the message payloads of the helper surface, and the
// query request/response pairs of the gateway.
//
// Encoding is built directly on protowire with fields emitted in
// ascending field-number order and proto3 zero values omitted, which
// yields the canonical bytes the chain signs and verifies. Decoding
// skips unknown fields so newer node versions remain readable.
package wire

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by every wire structure in this package.
type Message interface {
	Marshal() ([]byte, error)
	Unmarshal(data []byte) error
}

// ErrDecode indicates malformed or truncated wire bytes.
var ErrDecode = errors.New("proto decode error")

func decodeErr(what string) error {
	return fmt.Errorf("%w: %s", ErrDecode, what)
}

// appendString emits a string field, omitting proto3 zero values.
func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// appendBytes emits a bytes field, omitting proto3 zero values.
func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// appendUvarint emits a varint field, omitting proto3 zero values.
func appendUvarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// appendBool emits a bool field, omitting false.
func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

// appendMessage emits an embedded message field. Presence is decided by
// the caller; a non-nil message is always emitted, even when empty.
func appendMessage(b []byte, num protowire.Number, m Message) ([]byte, error) {
	sub, err := m.Marshal()
	if err != nil {
		return nil, err
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, sub), nil
}

// fieldIter walks the fields of a wire-encoded message, dispatching
// each to fn and skipping fields fn does not consume.
func fieldIter(data []byte, fn func(num protowire.Number, typ protowire.Type, payload []byte) (int, error)) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return decodeErr("bad tag")
		}
		data = data[n:]

		used, err := fn(num, typ, data)
		if err != nil {
			return err
		}
		if used < 0 {
			used = protowire.ConsumeFieldValue(num, typ, data)
			if used < 0 {
				return decodeErr("bad field value")
			}
		}
		data = data[used:]
	}
	return nil
}

// consumeVarint reads a varint field payload.
func consumeVarint(payload []byte) (uint64, int, error) {
	v, n := protowire.ConsumeVarint(payload)
	if n < 0 {
		return 0, 0, decodeErr("bad varint")
	}
	return v, n, nil
}

// consumeBytes reads a length-delimited field payload. The returned
// slice aliases the input.
func consumeBytes(payload []byte) ([]byte, int, error) {
	v, n := protowire.ConsumeBytes(payload)
	if n < 0 {
		return nil, 0, decodeErr("bad length-delimited field")
	}
	return v, n, nil
}

// consumeString reads a string field payload.
func consumeString(payload []byte) (string, int, error) {
	v, n, err := consumeBytes(payload)
	if err != nil {
		return "", 0, err
	}
	return string(v), n, nil
}
