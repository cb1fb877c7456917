package foreign

// Enumeration of foreign name lookup kinds
const (
	LookupOrdinary = iota // ordinary identifiers: functions, variables, typedefs, classes
	LookupTag             // record and enum tags
	LookupProtocol        // protocols
	LookupAny             // every namespace; used for bulk enumeration
)

// Session is the long-lived parsing and semantic-analysis session of the
// foreign frontend.  The bridge holds one session for the entire compilation
// and never releases it mid-stream.  All calls are synchronous and must be
// deterministic for a given compilation.
type Session interface {
	// LoadModule asks the frontend to locate and parse the module named by
	// the given path (one element per dotted path segment, already translated
	// into foreign spellings).  It returns nil if the module cannot be found
	// or parsed.
	LoadModule(path []string) *Module

	// LookupName performs semantic name lookup in the frontend's global
	// scope.  `kind` must be one of the enumerated lookup kinds.
	LookupName(name string, kind int) []*Decl

	// MacroFor returns the preprocessor macro definition associated with the
	// given spelling, or nil if there is none
	MacroFor(name string) *Macro

	// EnumerateVisible calls `found` for every declaration visible from the
	// frontend's root scope, in any namespace
	EnumerateVisible(found func(*Decl))

	// ExportedModules returns the modules re-exported by the given module
	ExportedModules(m *Module) []*Module

	// Categories returns the visible categories extending the given class
	// declaration
	Categories(class *Decl) []*Decl

	// Idents returns the session's token table
	Idents() *TokenTable
}
