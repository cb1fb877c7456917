package sem

import "sable/foreign"

// Decl represents a single named declaration in the Sable compiler
type Decl struct {
	// Name is the name of the declaration (as it is referenced in Sable code)
	Name string

	// DefKind is the kind of definition that produced this declaration.  This
	// must be one of the enumerated definition kinds below
	DefKind int

	// SrcModule is the module this declaration is defined in
	SrcModule *Module

	// Foreign is the foreign declaration this declaration was imported from;
	// it is nil for natively defined declarations
	Foreign *foreign.Decl
}

// Enumeration of definition kinds
const (
	DefKindTypeDef   = iota // type, class, and protocol definitions
	DefKindFuncDef          // function definitions
	DefKindValueDef         // variables and other identifiers
	DefKindExtension        // out-of-line extensions of a nominal type
)

// IsType returns whether or not this declaration defines a type
func (d *Decl) IsType() bool {
	return d.DefKind == DefKindTypeDef
}

// IsValue returns whether or not this declaration is value-like: ie. it can
// appear as a name lookup result.  Extensions are not value-like.
func (d *Decl) IsValue() bool {
	return d.DefKind != DefKindExtension
}

// DeclConsumer receives declarations found during visible-declaration
// enumeration
type DeclConsumer func(*Decl)

// Enumeration of host name lookup kinds
const (
	UnqualifiedLookup = iota // lookup from an unqualified name
	QualifiedLookup          // lookup through an explicit module qualifier
)
