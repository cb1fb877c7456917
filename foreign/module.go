package foreign

// Module represents a module in the foreign frontend's module graph.  The
// bridge treats pointers to this type as stable identities: the session must
// return the same *Module for the same module for the lifetime of a
// compilation.
type Module struct {
	// Name is the short name of the module (one path segment)
	Name string

	// Parent is the module enclosing this submodule; it is nil for top-level
	// modules
	Parent *Module

	// Submodules maps submodule names to their modules
	Submodules map[string]*Module

	// Exports is the list of modules this module re-exports to its importers
	Exports []*Module
}

// NewModule creates a new top-level foreign module
func NewModule(name string) *Module {
	return &Module{
		Name:       name,
		Submodules: make(map[string]*Module),
	}
}

// AddSubmodule creates a new submodule of this module and returns it
func (m *Module) AddSubmodule(name string) *Module {
	sub := &Module{
		Name:       name,
		Parent:     m,
		Submodules: make(map[string]*Module),
	}

	m.Submodules[name] = sub
	return sub
}

// IsSub returns whether or not this module is a submodule
func (m *Module) IsSub() bool {
	return m.Parent != nil
}

// TopLevel returns the top-level module enclosing this module (or the module
// itself if it is already top-level)
func (m *Module) TopLevel() *Module {
	top := m
	for top.Parent != nil {
		top = top.Parent
	}

	return top
}

// FullName returns the full dotted name of this module (eg. `Kit.Views`)
func (m *Module) FullName() string {
	if m.Parent == nil {
		return m.Name
	}

	return m.Parent.FullName() + "." + m.Name
}
