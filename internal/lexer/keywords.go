package lexer

// defaultKeywords is the OMG-IDL reserved word set the lexer recognizes by
// default (spec.md §4.3.2). Ground: original_source's CLexer constructor
// seeds m_vecReservedKeywords from g_vecOmgIdlKeywords; that table itself
// was filtered out of the retrieval pack, so the list below is reconstructed
// from the OMG IDL 4.2 core grammar's reserved-word appendix, which is the
// superset the spec's lexer is built to scan.
var defaultKeywords = []string{
	"abstract", "any", "alias", "attribute", "bitfield", "bitmask", "bitset",
	"boolean", "case", "char", "component", "connector", "const", "consumes",
	"context", "custom", "default", "double", "exception", "emits", "enum",
	"eventtype", "factory", "FALSE", "finder", "fixed", "float", "getraises",
	"home", "import", "in", "inout", "interface", "local", "long", "manages",
	"mirrorport", "module", "multiple", "native", "Object", "octet", "oneway",
	"out", "port", "porttype", "primarykey", "private", "provides", "public",
	"publishes", "raises", "readonly", "setraises", "sequence", "short",
	"string", "struct", "supports", "switch", "TRUE", "truncatable",
	"typedef", "typeid", "typename", "typeprefix", "unsigned", "union",
	"uses", "ValueBase", "valuetype", "void", "wchar", "wstring",
}

// newKeywordSets builds two lookup sets from a keyword slice: exact holds
// every word under its canonical spelling (used to classify an exact-case
// match as a Keyword regardless of the lexer's case-sensitivity setting),
// and lowered holds every word lower-cased (used only to detect a
// case-insensitive near-miss — an identifier that differs from a reserved
// word by case alone).
func newKeywordSets(words []string) (exact, lowered map[string]bool) {
	exact = make(map[string]bool, len(words))
	lowered = make(map[string]bool, len(words))
	for _, w := range words {
		exact[w] = true
		lowered[lower(w)] = true
	}
	return exact, lowered
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
