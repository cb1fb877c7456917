package bridge

import (
	"sable/foreign"
	"sable/sem"
)

// LoadExtensions imports all of the visible categories extending the foreign
// class behind `nominal`.  Importing a category registers it as an extension
// of the nominal type in the compiler's own data structures, so simply
// running each one through the declaration importer is sufficient.  This is a
// no-op for declarations not backed by a foreign class.
func (imp *Importer) LoadExtensions(nominal *sem.Decl) {
	if nominal == nil || nominal.Foreign == nil || nominal.Foreign.Kind != foreign.DeclClass {
		return
	}

	for _, cat := range imp.session.Categories(nominal.Foreign) {
		imp.importDecl(cat)
	}
}

// Reexports resolves the modules re-exported by the given wrapper module.
// Each re-exported foreign module is wrapped, and the emitted module is its
// adapter when one exists -- unless that adapter is the importing module's
// own top-level adapter, in which case the raw wrapper is emitted instead so
// a module never re-exports itself through its own overlay.
func (imp *Importer) Reexports(m *sem.Module) []*sem.Module {
	if m == nil || !m.IsForeignWrapper() {
		return nil
	}

	topAdapter := imp.Adapter(m)

	var exports []*sem.Module
	for _, export := range imp.session.ExportedModules(m.Foreign) {
		wrapper := imp.GetOrCreateWrapper(export, m.Component)

		// compare adapters by module name: names are the stable identity the
		// module table is keyed by
		actual := imp.Adapter(wrapper)
		if actual == nil || (topAdapter != nil && actual.Name == topAdapter.Name) {
			actual = wrapper
		}

		exports = append(exports, actual)
	}

	return exports
}
