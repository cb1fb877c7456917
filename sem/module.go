package sem

import (
	"sable/common"
	"sable/foreign"
)

// Component is an opaque ownership grouping handle supplied by the host
// compiler.  The bridge never inspects a component; it only threads one
// through to the modules it creates.
type Component struct {
	id uint
}

// nextComponentID is the id to assign to the next allocated component.  The
// bridge is single-threaded so no synchronization is needed here.
var nextComponentID uint

// NewComponent allocates a fresh component
func NewComponent() *Component {
	nextComponentID++
	return &Component{id: nextComponentID}
}

// Module represents a module in the Sable compiler.  A module either holds
// natively compiled Sable code or wraps one foreign module (in which case
// Foreign is non-nil).
type Module struct {
	// ID is a unique identifier for the module derived from its full name
	ID uint

	// Name is the full name of the module (dotted for submodule wrappers)
	Name string

	// Component is the ownership group this module belongs to
	Component *Component

	// Foreign is the foreign module this module wraps; it is nil for native
	// modules
	Foreign *foreign.Module
}

// NewModule creates a new native Sable module
func NewModule(name string, comp *Component) *Module {
	return &Module{
		ID:        common.GenerateIDFromName(name),
		Name:      name,
		Component: comp,
	}
}

// NewForeignModule creates a new module wrapping the given foreign module
func NewForeignModule(fm *foreign.Module, comp *Component) *Module {
	fullName := fm.FullName()
	return &Module{
		ID:        common.GenerateIDFromName(fullName),
		Name:      fullName,
		Component: comp,
		Foreign:   fm,
	}
}

// IsForeignWrapper returns whether or not this module wraps a foreign module
func (m *Module) IsForeignWrapper() bool {
	return m.Foreign != nil
}

// IsTopLevel returns whether or not this module is a top-level module (native
// modules always are)
func (m *Module) IsTopLevel() bool {
	return m.Foreign == nil || !m.Foreign.IsSub()
}
