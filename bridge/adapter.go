package bridge

import (
	"sable/logging"
	"sable/sem"
)

// Adapter returns the hand-authored adapter module sharing the given
// wrapper's name, or nil when the wrapper has no adapter.  Resolution runs at
// most once per wrapper; the outcome -- including absence -- is cached for
// the rest of the compilation.  Submodule wrappers never have their own
// adapter: they delegate to the adapter of their top-level wrapper.
func (imp *Importer) Adapter(w *sem.Module) *sem.Module {
	if w == nil || !w.IsForeignWrapper() {
		return nil
	}

	if w.Foreign.IsSub() {
		top := imp.GetOrCreateWrapper(w.Foreign.TopLevel(), w.Component)
		return imp.Adapter(top)
	}

	entry, ok := imp.wrappers[w.Foreign]
	if !ok || entry.wrapper != w {
		logging.LogFatal("adapter requested for a wrapper module not created by the importer")
	}

	if !entry.adapterResolved {
		var adapter *sem.Module
		if registered, ok := imp.modTable.Lookup(w.Name); ok && !registered.IsForeignWrapper() {
			adapter = registered

			// record the adapter as the module everything should share for
			// this name; two different modules claiming one name means the
			// module-loader contract is broken
			if err := imp.modTable.RegisterShared(w.Name, adapter); err != nil {
				logging.LogFatal(err.Error())
			}
		}

		entry.adapter = adapter
		entry.adapterResolved = true
	}

	return entry.adapter
}
