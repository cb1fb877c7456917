package bridge

import (
	"sable/foreign"
	"sable/sem"
)

// Enumeration of adapter forcing states.  The flag is monotonic: it only ever
// moves forward, so forcing runs at most once per wrapper even when the
// traversal re-enters the importer.
const (
	forceNotStarted = iota
	forceInProgress
	forceDone
)

// wrapperEntry is the cache record for one foreign module
type wrapperEntry struct {
	// wrapper is the unique Sable module wrapping the foreign module
	wrapper *sem.Module

	// forceState tracks the one-time eager traversal of the module's
	// re-exported imports
	forceState int

	// adapter and adapterResolved memoize adapter-module resolution; the
	// outcome is cached permanently, including absence
	adapter         *sem.Module
	adapterResolved bool
}

// GetOrCreateWrapper returns the unique wrapper module for the given foreign
// module, creating it if it does not exist yet.  On a cache hit the supplied
// component is ignored: the wrapper keeps the component it was created with.
// On a miss a fresh component is allocated when `comp` is nil.
func (imp *Importer) GetOrCreateWrapper(fm *foreign.Module, comp *sem.Component) *sem.Module {
	if fm == nil {
		return nil
	}

	if entry, ok := imp.wrappers[fm]; ok {
		return entry.wrapper
	}

	if comp == nil {
		comp = sem.NewComponent()
	}

	wrapper := sem.NewForeignModule(fm, comp)

	// the entry must be inserted before anything else runs so that re-entrant
	// lookups for the same module see the in-progress wrapper
	imp.wrappers[fm] = &wrapperEntry{wrapper: wrapper}

	if imp.firstWrapper == nil {
		imp.firstWrapper = wrapper
	}

	imp.generation++

	return wrapper
}

// WrapperForDecl returns the wrapper module for the top-level foreign module
// owning the given declaration.  Submodules do not get their own wrappers
// here: a declaration defined in `Kit.Views` is placed in the wrapper for
// `Kit`.  This is the entry point declaration importers use to determine
// which Sable module an imported declaration belongs to.
func (imp *Importer) WrapperForDecl(d *foreign.Decl) *sem.Module {
	if d == nil || d.Owner == nil {
		return nil
	}

	return imp.GetOrCreateWrapper(d.Owner.TopLevel(), nil)
}

// LoadModule asks the foreign frontend to load the module named by the given
// dotted import path and returns its wrapper.  Each path segment is
// translated from its Sable spelling into its foreign spelling first; a
// segment that cannot be translated cannot name a foreign module.  On
// foreign-load failure it returns nil without touching the wrapper cache, so
// a failed import leaves no residue and is retry-safe.
func (imp *Importer) LoadModule(path []string) *sem.Module {
	foreignPath := make([]string, 0, len(path))
	for _, segment := range path {
		fseg, ok := imp.translator.ToForeign(segment)
		if !ok {
			return nil
		}

		foreignPath = append(foreignPath, fseg)
	}

	imp.importCount++

	fm := imp.session.LoadModule(foreignPath)
	if fm == nil {
		return nil
	}

	wrapper := imp.GetOrCreateWrapper(fm, nil)

	// force adapter resolution for everything this module re-exports so that
	// downstream name resolution sees those modules without further loads
	imp.forceAdapters(imp.wrappers[fm])

	return wrapper
}

// forceAdapters materializes wrappers and adapters for one level of a
// module's re-exported imports.  Deeper levels are left to on-demand lookups.
func (imp *Importer) forceAdapters(entry *wrapperEntry) {
	if entry.forceState != forceNotStarted {
		return
	}

	entry.forceState = forceInProgress
	imp.Reexports(entry.wrapper)
	entry.forceState = forceDone
}
