package arrTree

import (
	"errors"
	"fmt"

	"github.com/golang/snappy"
	"github.com/vmihailenco/msgpack/v5"
)

// EncodeMsgpack implements msgpack.CustomEncoder. The arena is written as an
// array of its four slices: keys, values, left, right.
func (u *ArenaTree[K, V]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(4); err != nil {
		return err
	}
	for _, s := range [4]any{u.keys, u.values, u.left, u.right} {
		if err := enc.Encode(s); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack implements msgpack.CustomDecoder. The decoded arena replaces
// u only if it passes Check; otherwise u is left untouched.
func (u *ArenaTree[K, V]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 4 {
		return fmt.Errorf("%w: arena has %d fields, want 4", ErrCorrupt, n)
	}
	var t ArenaTree[K, V]
	for _, p := range [4]any{&t.keys, &t.values, &t.left, &t.right} {
		if err := dec.Decode(p); err != nil {
			return err
		}
	}
	if err := t.Check(); err != nil {
		return err
	}
	u.base = t.base
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler: the msgpack form of
// the arena, snappy compressed. The layout of the arena is kept exactly,
// so indices stay valid across a round trip.
func (u *ArenaTree[K, V]) MarshalBinary() ([]byte, error) {
	b, err := msgpack.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("arrTree: encode arena: %w", err)
	}
	return snappy.Encode(nil, b), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler for the output of
// MarshalBinary. Every failure wraps ErrCorrupt and leaves u unchanged.
func (u *ArenaTree[K, V]) UnmarshalBinary(data []byte) error {
	b, err := snappy.Decode(nil, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if err = msgpack.Unmarshal(b, u); err != nil {
		if errors.Is(err, ErrCorrupt) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	tracer().Debugf("arrTree: restored arena of %d entries", u.Len())
	return nil
}
