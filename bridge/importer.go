package bridge

import (
	"sable/foreign"
	"sable/names"
	"sable/sem"
)

// DeclImporter converts one foreign declaration into one Sable declaration.
// It returns nil when the declaration cannot be represented in Sable.
// Importers are expected to memoize so that the same foreign declaration
// always produces the same Sable declaration.
type DeclImporter func(*foreign.Decl) *sem.Decl

// MacroImporter converts a preprocessor macro definition into a Sable
// declaration named `name`, or returns nil when the macro cannot be
// represented (eg. a function-like macro)
type MacroImporter func(name string, macro *foreign.Macro) *sem.Decl

// SelectorTable holds the foreign method-name handles the declaration
// importer needs in order to recognize subscript-shaped foreign methods.  It
// is resolved once at importer construction and immutable afterwards.
type SelectorTable struct {
	IndexedGetter foreign.Selector
	IndexedSetter foreign.Selector
	KeyedGetter   foreign.Selector
	KeyedSetter   foreign.Selector
}

// Importer bridges the foreign frontend's module and declaration graph into
// the Sable compiler's own module and declaration graph.  It is the single
// source of truth for which Sable module wraps which foreign module.
//
// The importer is single-threaded by contract: the Sable name resolver and
// the importer run on one logical thread of control.  Calls may re-enter the
// importer (translating a declaration can trigger loading another foreign
// module), which is why wrapper cache entries are inserted before any eager
// traversal of a module's imports.
type Importer struct {
	// session is the foreign frontend's long-lived parsing session; it is
	// held for the entire compilation
	session foreign.Session

	// translator maps Sable identifiers to and from foreign identifiers
	translator *names.Translator

	// modTable is the host compiler's registry of loaded modules
	modTable *sem.ModuleTable

	// shimModule is the Sable module the declaration importer places
	// builtin-backed declarations in; its declarations must never leak back
	// out through foreign-module lookup
	shimModule *sem.Module

	importDecl  DeclImporter
	importMacro MacroImporter

	// selectors is the fixed selector table handed to the declaration
	// importer
	selectors SelectorTable

	// wrappers maps each foreign module to its unique wrapper entry.  At most
	// one entry is ever created per foreign module for the lifetime of a
	// compilation.
	wrappers map[*foreign.Module]*wrapperEntry

	// firstWrapper is the first wrapper module ever created; it is kept as an
	// anchor for later bootstrapping needs
	firstWrapper *sem.Module

	// generation increases by exactly one each time a new wrapper module is
	// created.  Downstream caches keyed by generation must treat any increase
	// as "more visible declarations may exist."
	generation uint

	// importCount counts module load requests made through this importer
	importCount int
}

// NewImporter creates a new importer over the given foreign session.
// `shimModule` may be nil when the declaration importer produces no
// builtin-backed declarations.  `importDecl` must not be nil.
func NewImporter(session foreign.Session, modTable *sem.ModuleTable, shimModule *sem.Module, importDecl DeclImporter, importMacro MacroImporter) *Importer {
	idents := session.Idents()

	return &Importer{
		session:     session,
		translator:  names.NewTranslator(idents),
		modTable:    modTable,
		shimModule:  shimModule,
		importDecl:  importDecl,
		importMacro: importMacro,
		selectors: SelectorTable{
			IndexedGetter: idents.Selector("objectAtIndexedSubscript"),
			IndexedSetter: idents.Selector("setObject", "atIndexedSubscript"),
			KeyedGetter:   idents.Selector("objectForKeyedSubscript"),
			KeyedSetter:   idents.Selector("setObject", "forKeyedSubscript"),
		},
		wrappers: make(map[*foreign.Module]*wrapperEntry),
	}
}

// Selectors returns the importer's fixed selector table
func (imp *Importer) Selectors() SelectorTable {
	return imp.selectors
}

// Generation returns the current wrapper generation
func (imp *Importer) Generation() uint {
	return imp.generation
}

// FirstWrapper returns the first wrapper module this importer created, or nil
// if no foreign module has been wrapped yet
func (imp *Importer) FirstWrapper() *sem.Module {
	return imp.firstWrapper
}

// ImportCount returns the number of module load requests made through this
// importer
func (imp *Importer) ImportCount() int {
	return imp.importCount
}
