package marshal

// StubID is the pair `{ident, control}` spec.md §3.6 defines: ident is the
// dense, monotonically increasing vector index assigned at registration;
// control is the random correlation word that lets a stale reference to a
// recycled ident be detected after a registry restart. Equality (and map
// use as a key) compares the full pair, matching "comparison uses the full
// pair" in spec.md §3.6 — a StubID carrying the right ident but a stale
// control word is a different identity, not the same stub.
type StubID struct {
	Ident   uint32
	Control uint32
}

// IsZero reports whether id is the zero value, used as the "no stub"
// sentinel a failed RegisterStub call returns.
func (id StubID) IsZero() bool { return id == StubID{} }
