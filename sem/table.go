package sem

import "fmt"

// ModuleTable is the host compiler's registry of loaded modules arranged by
// the name under which they are visible to Sable source code.  Invariant: no
// two different modules are ever registered under the same name.
type ModuleTable struct {
	loaded map[string]*Module
}

// NewModuleTable creates a new, empty module table
func NewModuleTable() *ModuleTable {
	return &ModuleTable{loaded: make(map[string]*Module)}
}

// Lookup returns the module registered under the given name if one exists
func (mt *ModuleTable) Lookup(name string) (*Module, bool) {
	m, ok := mt.loaded[name]
	return m, ok
}

// Define registers a natively defined module (eg. a hand-authored adapter)
// under its own name.  It returns an error if a different module is already
// registered under that name.
func (mt *ModuleTable) Define(m *Module) error {
	return mt.RegisterShared(m.Name, m)
}

// RegisterShared records the module that all parts of the compiler should
// share for a given name.  Registering the same module twice is a no-op;
// registering two different modules under one name is an error since it
// indicates a broken module-loader contract.
func (mt *ModuleTable) RegisterShared(name string, m *Module) error {
	if existing, ok := mt.loaded[name]; ok && existing != m {
		return fmt.Errorf("two different modules registered under name `%s`", name)
	}

	mt.loaded[name] = m
	return nil
}
