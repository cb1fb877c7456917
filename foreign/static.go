package foreign

// StaticSession is an in-memory Session backed by a fixed description of the
// foreign module graph.  It is used by the bridge inspection tool (fed from a
// module map file) and by tests; a production compiler would substitute a
// session wrapping a real frontend.
type StaticSession struct {
	idents *TokenTable

	// topLevel maps top-level module names to their modules
	topLevel map[string]*Module

	// decls stores every declaration in insertion order for bulk enumeration
	decls []*Decl

	// ordinary, tags, and protocols are the per-namespace lookup tables
	ordinary  map[string][]*Decl
	tags      map[string][]*Decl
	protocols map[string][]*Decl

	macros     map[string]*Macro
	categories map[*Decl][]*Decl
}

// NewStaticSession creates a new, empty static session
func NewStaticSession() *StaticSession {
	return &StaticSession{
		idents:     NewTokenTable(),
		topLevel:   make(map[string]*Module),
		ordinary:   make(map[string][]*Decl),
		tags:       make(map[string][]*Decl),
		protocols:  make(map[string][]*Decl),
		macros:     make(map[string]*Macro),
		categories: make(map[*Decl][]*Decl),
	}
}

// DefineModule creates (or returns) the module at the given dotted path,
// creating any missing enclosing modules along the way
func (ss *StaticSession) DefineModule(path ...string) *Module {
	if len(path) == 0 {
		return nil
	}

	mod, ok := ss.topLevel[path[0]]
	if !ok {
		mod = NewModule(path[0])
		ss.topLevel[path[0]] = mod
	}

	for _, segment := range path[1:] {
		if sub, ok := mod.Submodules[segment]; ok {
			mod = sub
		} else {
			mod = mod.AddSubmodule(segment)
		}
	}

	return mod
}

// AddDecl registers a declaration with the session's lookup tables
func (ss *StaticSession) AddDecl(d *Decl) {
	ss.decls = append(ss.decls, d)

	switch {
	case d.Kind == DeclProtocol:
		ss.protocols[d.Name] = append(ss.protocols[d.Name], d)
	case d.IsTag():
		ss.tags[d.Name] = append(ss.tags[d.Name], d)
	case d.Kind == DeclCategory:
		// categories are only reachable through their extended class
		if d.Extends != nil {
			ss.categories[d.Extends] = append(ss.categories[d.Extends], d)
		}
	default:
		ss.ordinary[d.Name] = append(ss.ordinary[d.Name], d)
	}
}

// AddMacro registers a preprocessor macro definition
func (ss *StaticSession) AddMacro(m *Macro) {
	ss.macros[m.Name] = m
}

// -----------------------------------------------------------------------------
// Session implementation

func (ss *StaticSession) LoadModule(path []string) *Module {
	if len(path) == 0 {
		return nil
	}

	mod, ok := ss.topLevel[path[0]]
	if !ok {
		return nil
	}

	for _, segment := range path[1:] {
		sub, ok := mod.Submodules[segment]
		if !ok {
			return nil
		}

		mod = sub
	}

	return mod
}

func (ss *StaticSession) LookupName(name string, kind int) []*Decl {
	switch kind {
	case LookupOrdinary:
		return ss.ordinary[name]
	case LookupTag:
		return ss.tags[name]
	case LookupProtocol:
		return ss.protocols[name]
	case LookupAny:
		var results []*Decl
		results = append(results, ss.ordinary[name]...)
		results = append(results, ss.tags[name]...)
		results = append(results, ss.protocols[name]...)
		return results
	}

	return nil
}

func (ss *StaticSession) MacroFor(name string) *Macro {
	return ss.macros[name]
}

func (ss *StaticSession) EnumerateVisible(found func(*Decl)) {
	for _, d := range ss.decls {
		// categories are not named entities in any lookup namespace
		if d.Kind == DeclCategory {
			continue
		}

		found(d)
	}
}

func (ss *StaticSession) ExportedModules(m *Module) []*Module {
	return m.Exports
}

func (ss *StaticSession) Categories(class *Decl) []*Decl {
	return ss.categories[class]
}

func (ss *StaticSession) Idents() *TokenTable {
	return ss.idents
}
