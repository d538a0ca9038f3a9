package codec

import (
	"encoding"

	"github.com/zeebo/errs"

	"github.com/calebcase/vmint/arith"
	"github.com/calebcase/vmint/integer"
	"github.com/calebcase/vmint/u256"
	"github.com/calebcase/vmint/u384"
)

// Error is the class of codec errors.
var Error = errs.Class("codec")

// Kind is a number type tag. Width is the largest encoding Decode accepts.
type Kind struct {
	Width int
	Abbr  string
}

type kinds []Kind

// Lookup returns the kind with the given abbreviation.
func (ks kinds) Lookup(abbr string) (k Kind, ok bool) {
	for _, k := range ks {
		if k.Abbr == abbr {
			return k, true
		}
	}

	return k, false
}

var (
	Unknown = Kind{}
	Uint    = Kind{32, "uint"}
	U64     = Kind{integer.MaxU64Bytes, "u64"}
	U256    = Kind{32, "u256"}
	U384    = Kind{u384.MaxBytes, "u384"}

	Kinds = kinds{
		Uint,
		U64,
		U256,
		U384,
	}
)

// Value is a number and its kind. Only the field matching Kind is set.
type Value struct {
	Kind Kind

	Uint arith.Uint
	U64  integer.U64
	U256 u256.U256
	U384 u384.U384
}

func (v *Value) binary() (b interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}, err error) {
	switch v.Kind {
	case Uint:
		return &v.Uint, nil
	case U64:
		return &v.U64, nil
	case U256:
		return &v.U256, nil
	case U384:
		return &v.U384, nil
	}

	return nil, Error.New("unknown kind %q", v.Kind.Abbr)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Value) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	b, err := v.binary()
	if err != nil {
		return nil, err
	}

	return b.MarshalBinary()
}

// Decode parses data as a number of kind k.
func Decode(k Kind, data []byte) (v Value, err error) {
	defer Error.WrapP(&err)

	v.Kind = k

	b, err := v.binary()
	if err != nil {
		return Value{}, err
	}

	if len(data) > k.Width {
		return Value{}, arith.ValueError.New("%d bytes exceeds %s width of %d", len(data), k.Abbr, k.Width)
	}

	err = b.UnmarshalBinary(data)
	if err != nil {
		return Value{}, err
	}

	return v, nil
}

// Encode is v.MarshalBinary.
func Encode(v Value) ([]byte, error) {
	return v.MarshalBinary()
}
