package bridge

import (
	"sable/foreign"
	"sable/sem"
)

// EnumerateVisible calls `consumer` for every foreign-backed declaration
// visible from the frontend's root scope, optionally restricted to those
// whose Sable module is `filter`.  Each raw foreign declaration is re-derived
// through LookupValue rather than imported directly so that the bulk path and
// the targeted path can never disagree about a name.
func (imp *Importer) EnumerateVisible(filter *sem.Module, consumer sem.DeclConsumer) {
	imp.session.EnumerateVisible(func(fd *foreign.Decl) {
		if fd.Name == "" || fd.ModulePrivate {
			return
		}

		hostName, ok := imp.translator.ToHost(fd.Name, "")
		if !ok {
			return
		}

		for _, d := range imp.LookupValue(nil, nil, hostName, sem.UnqualifiedLookup) {
			if filter == nil || d.SrcModule == filter {
				consumer(d)
			}
		}
	})
}
