package constvariant

// Equalize brings two operands to a common rank before a binary operation
// (spec.md §4.4.4): if ranks already match, nothing happens; otherwise both
// must be arithmetic, and the lower-ranked operand is converted up to the
// higher rank.
func Equalize(a, b *Variant) error {
	if a.Ranking() == b.Ranking() {
		return nil
	}
	if !a.IsArithmetic() || !b.IsArithmetic() {
		return newErr("the types of both operands are not compatible")
	}
	if a.Ranking() > b.Ranking() {
		return b.Convert(a.kind)
	}
	return a.Convert(b.kind)
}
