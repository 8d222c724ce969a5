package constvariant

// isNarrowIntegral reports whether k is one of the integral kinds narrower
// than a native int (Bool, Uint8, Int8, Uint16, Int16). C's usual
// arithmetic conversions promote all of these to a plain (32-bit, signed)
// int before any operator is applied; constvariant.cpp inherits that
// promotion for free by evaluating its lambdas on the underlying C++
// types, so the Go port has to apply it explicitly.
func isNarrowIntegral(k Kind) bool {
	switch k {
	case Bool, Uint8, Int8, Uint16, Int16:
		return true
	default:
		return false
	}
}

// promotedResultKind returns the kind an arithmetic or bitwise result lands
// in: Int32 for any narrow operand, otherwise the operand's own kind.
func promotedResultKind(k Kind) Kind {
	if isNarrowIntegral(k) {
		return Int32
	}
	return k
}

// bitWidthMask returns a mask covering the low bits bits of a uint64.
func bitWidthMask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(bits)) - 1
}

// signExtend interprets the low bits bits of x as a signed integer of that
// width and sign-extends it to int64.
func signExtend(x uint64, bits int) int64 {
	if bits >= 64 {
		return int64(x)
	}
	shift := uint(64 - bits)
	return int64(x<<shift) >> shift
}

// Not implements unary `!`: integral or floating, result is Bool
// (spec.md §4.4.5).
func Not(v Variant) (Variant, error) {
	if v.kind.isStringLike() {
		return Variant{}, newErr("cannot apply logical negation to a string")
	}
	return NewBool(v.asFloat() == 0), nil
}

// BitwiseNot implements unary `~`: integral only, Bool rejected. A narrow
// operand (Bool excluded, already rejected) is promoted to Int32 the way a
// real `~` on a uint8_t/int16_t/etc. operand is in C; a wide operand keeps
// its own kind and bit width.
func BitwiseNot(v Variant) (Variant, error) {
	if !v.IsIntegral() || v.kind == Bool {
		return Variant{}, newErr("cannot execute bitwise operations on a boolean")
	}
	if isNarrowIntegral(v.kind) {
		x := int32(v.asSignedInt())
		return Variant{kind: Int32, i: int64(^x)}, nil
	}
	out := v
	bits := bitWidth(v.kind)
	if v.IsUnsigned() {
		out.u = (^v.u) & bitWidthMask(bits)
	} else {
		out.i = ^v.i
	}
	return out, nil
}

// Pos implements unary `+`: pass through, no promotion (no operator is
// actually applied to the operand).
func Pos(v Variant) (Variant, error) {
	if v.kind.isStringLike() {
		return Variant{}, newErr("cannot apply unary plus to a string")
	}
	return v, nil
}

// Neg implements unary `-`. Floating operands negate directly. A narrow
// integral operand (signed or unsigned) promotes to Int32 and negates at
// full precision, matching C's "promote then negate" rule — e.g. negating
// a uint8 holding 65 yields Int32(-65), not an 8-bit wraparound. A wide
// signed operand negates directly; a wide unsigned operand (Uint32/Uint64,
// which do NOT promote) wraps via two's complement within its own bit
// width. Bool is rejected outright.
func Neg(v Variant) (Variant, error) {
	if v.kind.isStringLike() {
		return Variant{}, newErr("cannot apply unary minus to a string")
	}
	if v.kind == Bool {
		return Variant{}, newErr("cannot execute unary arithmetic operations on a boolean")
	}
	switch {
	case v.IsFloatingPoint():
		out := v
		out.f = -v.f
		return out, nil
	case isNarrowIntegral(v.kind):
		return Variant{kind: Int32, i: -v.asSignedInt()}, nil
	case v.IsSigned():
		out := v
		out.i = -v.i
		return out, nil
	default:
		bits := bitWidth(v.kind)
		out := v
		out.u = (^v.u + 1) & bitWidthMask(bits)
		return out, nil
	}
}

func bothIntegral(a, b Variant) bool {
	return a.IsIntegral() && a.kind != Bool && b.IsIntegral() && b.kind != Bool
}

// arith applies a binary arithmetic operator across two already-equalized
// operands of the same kind, applying the narrow-to-Int32 promotion to the
// result the way C's usual arithmetic conversions do.
func arith(a, b Variant, fInt func(x, y int64) int64, fUint func(x, y uint64) uint64, fFloat func(x, y float64) float64) Variant {
	if a.IsFloatingPoint() {
		out := a
		out.f = fFloat(a.f, b.f)
		return out
	}

	target := promotedResultKind(a.kind)
	if target != a.kind {
		return Variant{kind: target, i: int64(int32(fInt(a.asSignedInt(), b.asSignedInt())))}
	}
	out := Variant{kind: target}
	if a.IsSigned() {
		out.i = fInt(a.i, b.i)
	} else {
		out.u = fUint(a.u, b.u)
	}
	return out
}

func equalizePair(a, b Variant) (Variant, Variant, error) {
	if a.kind.isStringLike() || b.kind.isStringLike() {
		return a, b, nil
	}
	ea, eb := a, b
	if err := Equalize(&ea, &eb); err != nil {
		return Variant{}, Variant{}, err
	}
	return ea, eb, nil
}

// Add implements binary `+`.
func Add(a, b Variant) (Variant, error) {
	ea, eb, err := equalizePair(a, b)
	if err != nil {
		return Variant{}, err
	}
	if ea.kind.isStringLike() {
		return concatStrings(ea, eb)
	}
	return arith(ea, eb,
		func(x, y int64) int64 { return x + y },
		func(x, y uint64) uint64 { return x + y },
		func(x, y float64) float64 { return x + y }), nil
}

func concatStrings(a, b Variant) (Variant, error) {
	if a.kind != b.kind {
		return Variant{}, newErr("cannot concatenate strings of different encodings")
	}
	switch a.kind {
	case String:
		return NewString(a.s + b.s), nil
	case U32String:
		return NewU32String(append(append([]rune(nil), a.w...), b.w...)), nil
	case WString:
		return NewWString(append(append([]rune(nil), a.w...), b.w...)), nil
	case U16String:
		return NewU16String(append(append([]uint16(nil), a.w16...), b.w16...)), nil
	default:
		return Variant{}, newErr("unsupported string concatenation")
	}
}

// Sub implements binary `-`.
func Sub(a, b Variant) (Variant, error) {
	ea, eb, err := equalizePair(a, b)
	if err != nil {
		return Variant{}, err
	}
	if ea.kind.isStringLike() {
		return Variant{}, newErr("cannot subtract strings")
	}
	return arith(ea, eb,
		func(x, y int64) int64 { return x - y },
		func(x, y uint64) uint64 { return x - y },
		func(x, y float64) float64 { return x - y }), nil
}

// Mul implements binary `*`.
func Mul(a, b Variant) (Variant, error) {
	ea, eb, err := equalizePair(a, b)
	if err != nil {
		return Variant{}, err
	}
	if ea.kind.isStringLike() {
		return Variant{}, newErr("cannot multiply strings")
	}
	return arith(ea, eb,
		func(x, y int64) int64 { return x * y },
		func(x, y uint64) uint64 { return x * y },
		func(x, y float64) float64 { return x * y }), nil
}

// Div implements binary `/`. Division by zero is a compile error
// regardless of whether the operands are integral or floating
// (spec.md §8 scenario 6).
func Div(a, b Variant) (Variant, error) {
	if a.kind == Bool || b.kind == Bool {
		return Variant{}, newErr("cannot divide a boolean")
	}
	ea, eb, err := equalizePair(a, b)
	if err != nil {
		return Variant{}, err
	}
	if ea.kind.isStringLike() {
		return Variant{}, newErr("cannot divide strings")
	}
	switch {
	case ea.IsFloatingPoint():
		if eb.f == 0 {
			return Variant{}, newErr("division by zero")
		}
	case ea.IsSigned():
		if eb.i == 0 {
			return Variant{}, newErr("division by zero")
		}
	default:
		if eb.u == 0 {
			return Variant{}, newErr("division by zero")
		}
	}
	return arith(ea, eb,
		func(x, y int64) int64 { return x / y },
		func(x, y uint64) uint64 { return x / y },
		func(x, y float64) float64 { return x / y }), nil
}

// Mod implements binary `%`: integral only, Bool rejected, division by
// zero is a compile error.
func Mod(a, b Variant) (Variant, error) {
	if a.kind == Bool || b.kind == Bool {
		return Variant{}, newErr("cannot divide a boolean")
	}
	ea, eb, err := equalizePair(a, b)
	if err != nil {
		return Variant{}, err
	}
	if !bothIntegral(ea, eb) {
		return Variant{}, newErr("modulo requires integral operands")
	}
	if ea.IsSigned() {
		if eb.i == 0 {
			return Variant{}, newErr("division by zero")
		}
	} else {
		if eb.u == 0 {
			return Variant{}, newErr("division by zero")
		}
	}
	return arith(ea, eb,
		func(x, y int64) int64 { return x % y },
		func(x, y uint64) uint64 { return x % y }, nil), nil
}

func requireIntegral(a, b Variant) error {
	if !a.IsIntegral() || !b.IsIntegral() || a.kind == Bool || b.kind == Bool {
		return newErr("bitwise and shift operations require integral operands")
	}
	return nil
}

// Shl implements binary `<<`; both operands must be integral. The result
// takes the promoted kind of the left operand alone — the shift amount's
// own type never affects it, matching C's shift-operator typing rule.
func Shl(a, b Variant) (Variant, error) {
	if err := requireIntegral(a, b); err != nil {
		return Variant{}, err
	}
	shift := uint(b.asUnsignedInt())
	target := promotedResultKind(a.kind)
	out := Variant{kind: target}
	if target != a.kind {
		out.i = int64(int32(a.asSignedInt() << shift))
	} else if a.IsUnsigned() {
		out.u = a.u << shift
	} else {
		out.i = a.i << shift
	}
	return out, nil
}

// Shr implements binary `>>`; both operands must be integral.
func Shr(a, b Variant) (Variant, error) {
	if err := requireIntegral(a, b); err != nil {
		return Variant{}, err
	}
	shift := uint(b.asUnsignedInt())
	target := promotedResultKind(a.kind)
	out := Variant{kind: target}
	if target != a.kind {
		out.i = int64(int32(a.asSignedInt() >> shift))
	} else if a.IsUnsigned() {
		out.u = a.u >> shift
	} else {
		out.i = a.i >> shift
	}
	return out, nil
}

// And implements binary `&`; both operands must be integral (individually).
func And(a, b Variant) (Variant, error) {
	ea, eb, err := equalizePair(a, b)
	if err != nil {
		return Variant{}, err
	}
	if err := requireIntegral(ea, eb); err != nil {
		return Variant{}, err
	}
	return arith(ea, eb,
		func(x, y int64) int64 { return x & y },
		func(x, y uint64) uint64 { return x & y }, nil), nil
}

// Or implements binary `|`.
func Or(a, b Variant) (Variant, error) {
	ea, eb, err := equalizePair(a, b)
	if err != nil {
		return Variant{}, err
	}
	if err := requireIntegral(ea, eb); err != nil {
		return Variant{}, err
	}
	return arith(ea, eb,
		func(x, y int64) int64 { return x | y },
		func(x, y uint64) uint64 { return x | y }, nil), nil
}

// Xor implements binary `^`.
func Xor(a, b Variant) (Variant, error) {
	ea, eb, err := equalizePair(a, b)
	if err != nil {
		return Variant{}, err
	}
	if err := requireIntegral(ea, eb); err != nil {
		return Variant{}, err
	}
	return arith(ea, eb,
		func(x, y int64) int64 { return x ^ y },
		func(x, y uint64) uint64 { return x ^ y }, nil), nil
}

// LogicalAnd implements binary `&&`: both operands integral, result Bool;
// otherwise the result is false (spec.md §4.4.5).
func LogicalAnd(a, b Variant) Variant {
	if !a.IsIntegral() || !b.IsIntegral() {
		return NewBool(false)
	}
	return NewBool(a.asSignedInt() != 0 && b.asSignedInt() != 0)
}

// LogicalOr implements binary `||`.
func LogicalOr(a, b Variant) Variant {
	if !a.IsIntegral() || !b.IsIntegral() {
		return NewBool(false)
	}
	return NewBool(a.asSignedInt() != 0 || b.asSignedInt() != 0)
}

// Compare returns -1, 0 or 1 comparing a to b after equalization; strings
// compare lexicographically after widening to code points (spec.md
// §4.4.5).
func Compare(a, b Variant) (int, error) {
	if a.kind.isStringLike() || b.kind.isStringLike() {
		if !a.kind.isStringLike() || !b.kind.isStringLike() {
			return 0, newErr("cannot compare a string with a non-string")
		}
		ra, rb := toRunes(a), toRunes(b)
		for i := 0; i < len(ra) && i < len(rb); i++ {
			if ra[i] != rb[i] {
				if ra[i] < rb[i] {
					return -1, nil
				}
				return 1, nil
			}
		}
		switch {
		case len(ra) < len(rb):
			return -1, nil
		case len(ra) > len(rb):
			return 1, nil
		default:
			return 0, nil
		}
	}

	ea, eb, err := equalizePair(a, b)
	if err != nil {
		return 0, err
	}
	switch {
	case ea.IsFloatingPoint():
		switch {
		case ea.f < eb.f:
			return -1, nil
		case ea.f > eb.f:
			return 1, nil
		default:
			return 0, nil
		}
	case ea.IsSigned():
		switch {
		case ea.i < eb.i:
			return -1, nil
		case ea.i > eb.i:
			return 1, nil
		default:
			return 0, nil
		}
	default:
		switch {
		case ea.u < eb.u:
			return -1, nil
		case ea.u > eb.u:
			return 1, nil
		default:
			return 0, nil
		}
	}
}

func toRunes(v Variant) []rune {
	switch v.kind {
	case String:
		return []rune(v.s)
	default:
		return v.w
	}
}

func cmp(a, b Variant, ok func(int) bool) (Variant, error) {
	c, err := Compare(a, b)
	if err != nil {
		return Variant{}, err
	}
	return NewBool(ok(c)), nil
}

// Less implements binary `<`.
func Less(a, b Variant) (Variant, error) { return cmp(a, b, func(c int) bool { return c < 0 }) }

// LessEq implements binary `<=`.
func LessEq(a, b Variant) (Variant, error) { return cmp(a, b, func(c int) bool { return c <= 0 }) }

// Greater implements binary `>`.
func Greater(a, b Variant) (Variant, error) { return cmp(a, b, func(c int) bool { return c > 0 }) }

// GreaterEq implements binary `>=`.
func GreaterEq(a, b Variant) (Variant, error) { return cmp(a, b, func(c int) bool { return c >= 0 }) }

// Eq implements binary `==`.
func Eq(a, b Variant) (Variant, error) { return cmp(a, b, func(c int) bool { return c == 0 }) }

// Neq implements binary `!=`.
func Neq(a, b Variant) (Variant, error) { return cmp(a, b, func(c int) bool { return c != 0 }) }
