package amount

import (
	"encoding/json"
	"math/big"
	"math/bits"

	"github.com/iov-one/keep/errors"
)

//-------------- Amount -----------------------

// New creates an amount from a signed 64 bit value,
// sign extending it into the high limb.
func New(v int64) Amount {
	return Amount{
		Hi: v >> 63,
		Lo: uint64(v),
	}
}

// Newp returns a pointer to a new amount.
func Newp(v int64) *Amount {
	a := New(v)
	return &a
}

// Add combines two amounts. Returns ErrOverflow if the sum
// does not fit in 128 bits.
func (a Amount) Add(o Amount) (Amount, error) {
	lo, carry := bits.Add64(a.Lo, o.Lo, 0)
	res := Amount{
		Hi: a.Hi + o.Hi + int64(carry),
		Lo: lo,
	}
	// Overflow can only happen when both operands share a sign
	// and the result flips it.
	if (a.Hi < 0) == (o.Hi < 0) && (res.Hi < 0) != (a.Hi < 0) {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "adding %s to %s", o, a)
	}
	return res, nil
}

// Subtract returns a minus o. Returns ErrOverflow if the
// difference does not fit in 128 bits.
func (a Amount) Subtract(o Amount) (Amount, error) {
	lo, borrow := bits.Sub64(a.Lo, o.Lo, 0)
	res := Amount{
		Hi: a.Hi - o.Hi - int64(borrow),
		Lo: lo,
	}
	if (a.Hi < 0) != (o.Hi < 0) && (res.Hi < 0) != (a.Hi < 0) {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "subtracting %s from %s", o, a)
	}
	return res, nil
}

// Compare returns 1 if a is larger, -1 if o is larger, 0 if equal.
func (a Amount) Compare(o Amount) int {
	if a.Hi > o.Hi {
		return 1
	}
	if a.Hi < o.Hi {
		return -1
	}
	// same high limb, compare low words unsigned
	if a.Lo > o.Lo {
		return 1
	}
	if a.Lo < o.Lo {
		return -1
	}
	return 0
}

// Equals returns true if both limbs are identical.
func (a Amount) Equals(o Amount) bool {
	return a.Hi == o.Hi && a.Lo == o.Lo
}

// IsZero returns true when the value is 0.
func (a Amount) IsZero() bool {
	return a.Hi == 0 && a.Lo == 0
}

// IsPositive returns true if the value is greater than 0.
func (a Amount) IsPositive() bool {
	return a.Hi > 0 || (a.Hi == 0 && a.Lo > 0)
}

// IsNegative returns true if the value is less than 0.
func (a Amount) IsNegative() bool {
	return a.Hi < 0
}

// IsGTE returns true if a is at least as large as o.
func (a Amount) IsGTE(o Amount) bool {
	return a.Compare(o) >= 0
}

// Clone provides an independent copy of an amount pointer.
func (a *Amount) Clone() *Amount {
	if a == nil {
		return nil
	}
	return &Amount{Hi: a.Hi, Lo: a.Lo}
}

// Validate always passes. Every limb combination is a valid
// 128 bit value. It exists so amounts can be embedded in
// models that validate their fields recursively.
func (a Amount) Validate() error {
	return nil
}

// BigInt returns the value as an arbitrary precision integer.
func (a Amount) BigInt() *big.Int {
	v := new(big.Int).SetInt64(a.Hi)
	v.Lsh(v, 64)
	return v.Add(v, new(big.Int).SetUint64(a.Lo))
}

// String provides a decimal representation of the amount. This
// is meant mostly for logs and debugging.
func (a Amount) String() string {
	return a.BigInt().String()
}

// Parse reads a decimal string into an amount. Anything that
// does not fit in 128 bits is rejected with ErrOverflow.
func Parse(raw string) (Amount, error) {
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return Amount{}, errors.Wrapf(errors.ErrInput, "not a decimal number: %q", raw)
	}
	return fromBig(v)
}

func fromBig(v *big.Int) (Amount, error) {
	if v.BitLen() > 127 {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "%s does not fit in 128 bits", v)
	}
	lo := new(big.Int).And(v, maskLo)
	hi := new(big.Int).Rsh(v, 64)
	return Amount{
		Hi: hi.Int64(),
		Lo: lo.Uint64(),
	}, nil
}

var maskLo = new(big.Int).SetUint64(^uint64(0))

// MarshalJSON renders the amount as a decimal string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Amount) UnmarshalJSON(raw []byte) error {
	var human string
	if err := json.Unmarshal(raw, &human); err == nil {
		val, err := Parse(human)
		if err != nil {
			return err
		}
		*a = val
		return nil
	}

	// Fallback to the limb representation. Because UnmarshalJSON
	// is provided, we can no longer use the Amount type here.
	var limbs struct {
		Hi int64
		Lo uint64
	}
	if err := json.Unmarshal(raw, &limbs); err != nil {
		return err
	}
	a.Hi = limbs.Hi
	a.Lo = limbs.Lo
	return nil
}
