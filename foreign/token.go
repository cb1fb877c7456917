package foreign

import "strings"

// Ident is an identifier interned into the foreign frontend's token table
type Ident struct {
	Name string

	// Keyword indicates that this spelling lexes as a keyword in the foreign
	// language rather than as a plain identifier
	Keyword bool
}

// Selector is a method-name handle interned into the foreign frontend's
// selector table.  Selectors with the same pieces compare equal.
type Selector struct {
	// Pieces is the colon-joined selector spelling (eg. `setObject:atIndex`)
	Pieces string
}

// keywordPatterns is the set of spellings reserved by the foreign language;
// identifiers interning to one of these can never name a declaration
var keywordPatterns = map[string]struct{}{
	"auto":     {},
	"break":    {},
	"case":     {},
	"char":     {},
	"const":    {},
	"continue": {},
	"default":  {},
	"do":       {},
	"double":   {},
	"else":     {},
	"enum":     {},
	"extern":   {},
	"float":    {},
	"for":      {},
	"goto":     {},
	"if":       {},
	"inline":   {},
	"int":      {},
	"long":     {},
	"register": {},
	"restrict": {},
	"return":   {},
	"short":    {},
	"signed":   {},
	"sizeof":   {},
	"static":   {},
	"struct":   {},
	"switch":   {},
	"typedef":  {},
	"union":    {},
	"unsigned": {},
	"void":     {},
	"volatile": {},
	"while":    {},
}

// TokenTable interns identifiers and selectors on behalf of the foreign
// frontend.  Interning is identity-preserving: the same spelling always
// returns the same *Ident.
type TokenTable struct {
	idents    map[string]*Ident
	selectors map[string]Selector
}

// NewTokenTable creates a new, empty token table
func NewTokenTable() *TokenTable {
	return &TokenTable{
		idents:    make(map[string]*Ident),
		selectors: make(map[string]Selector),
	}
}

// Get interns a spelling and returns its identifier entry
func (tt *TokenTable) Get(name string) *Ident {
	if id, ok := tt.idents[name]; ok {
		return id
	}

	_, keyword := keywordPatterns[name]
	id := &Ident{Name: name, Keyword: keyword}
	tt.idents[name] = id
	return id
}

// Selector interns a selector from its pieces and returns its handle
func (tt *TokenTable) Selector(pieces ...string) Selector {
	joined := strings.Join(pieces, ":")
	if sel, ok := tt.selectors[joined]; ok {
		return sel
	}

	sel := Selector{Pieces: joined}
	tt.selectors[joined] = sel
	return sel
}
