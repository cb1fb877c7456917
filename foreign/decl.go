package foreign

// Decl represents a single named declaration produced by the foreign
// frontend's semantic analyzer
type Decl struct {
	// Name is the declaration's spelling in foreign source code.  It may be
	// empty for anonymous declarations (eg. unnamed record tags)
	Name string

	// Kind is the kind of declaration.  This must be one of the enumerated
	// declaration kinds below
	Kind int

	// Owner is the module this declaration belongs to; it may be a submodule
	Owner *Module

	// ModulePrivate indicates that the declaration is not visible outside of
	// its owning module
	ModulePrivate bool

	// Extends references the class declaration a category extends; it is only
	// set for declarations of kind DeclCategory
	Extends *Decl
}

// Enumeration of foreign declaration kinds
const (
	DeclFunction = iota // free function
	DeclVariable        // global variable
	DeclTypedef         // type alias visible to ordinary lookup
	DeclRecord          // record tag (only visible to tag lookup)
	DeclEnum            // enum tag (only visible to tag lookup)
	DeclClass           // class-like declaration
	DeclProtocol        // protocol (only visible to protocol lookup)
	DeclCategory        // out-of-line extension of a class
)

// IsTag returns whether or not this declaration lives in the foreign
// language's tag namespace rather than its ordinary namespace
func (d *Decl) IsTag() bool {
	return d.Kind == DeclRecord || d.Kind == DeclEnum
}

// Macro represents an object-like preprocessor macro definition
type Macro struct {
	Name      string
	Expansion string
}
