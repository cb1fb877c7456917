package names

import "sable/foreign"

// reservedPatterns is the set of spellings that are keywords in Sable but
// ordinary identifiers in the foreign language.  A foreign declaration with
// one of these spellings can never be reached from Sable source code.
var reservedPatterns = map[string]struct{}{
	"true":  {},
	"false": {},
}

// IsReserved returns whether or not a spelling is reserved for Sable
func IsReserved(name string) bool {
	_, ok := reservedPatterns[name]
	return ok
}

// IsOperator returns whether or not a Sable name denotes an operator rather
// than an ordinary identifier (operator names begin with a symbol character)
func IsOperator(name string) bool {
	if name == "" {
		return false
	}

	c := name[0]
	return c != '_' && !('a' <= c && c <= 'z') && !('A' <= c && c <= 'Z')
}

// IsValidIdentifier returns whether or not a given string would be a valid
// identifier in both naming schemes
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}

// Translator maps Sable identifiers to and from foreign identifiers.  Its
// only side effect is interning spellings into the foreign token table.
type Translator struct {
	foreignIdents *foreign.TokenTable
}

// NewTranslator creates a new translator over the given foreign token table
func NewTranslator(foreignIdents *foreign.TokenTable) *Translator {
	return &Translator{foreignIdents: foreignIdents}
}

// ToForeign translates a Sable name into a foreign spelling.  It fails if the
// name denotes an operator, is reserved for Sable, or lexes as a keyword in
// the foreign language.
func (t *Translator) ToForeign(name string) (string, bool) {
	if IsOperator(name) {
		return "", false
	}

	if IsReserved(name) {
		return "", false
	}

	// intern the spelling; if it is some kind of keyword, it can't be mapped
	id := t.foreignIdents.Get(name)
	if id.Keyword {
		return "", false
	}

	return id.Name, true
}

// ToHost translates a foreign spelling into a Sable name.  A non-empty suffix
// is appended to the spelling before the reserved-word check; this is used to
// synthesize alternate names when the base name collides with something
// already imported.  It fails if the spelling is empty, is not a simple
// identifier, or (after appending the suffix) is reserved for Sable.
func (t *Translator) ToHost(name, suffix string) (string, bool) {
	if !IsValidIdentifier(name) {
		return "", false
	}

	if suffix != "" {
		name += suffix
	}

	if IsReserved(name) {
		return "", false
	}

	return name, true
}
