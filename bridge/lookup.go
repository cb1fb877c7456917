package bridge

import (
	"sable/foreign"
	"sable/logging"
	"sable/sem"
	"strings"
)

// ProtocolSuffix is the naming-convention marker that switches a lookup from
// the ordinary namespace to the protocol namespace: looking up `WidgetProto`
// searches for a foreign protocol named `Widget`.
const ProtocolSuffix = "Proto"

// LookupValue performs qualified or unqualified name lookup against the
// foreign frontend's global scope and returns the Sable declarations the
// name resolves to.  An empty result is never an error: names that find
// nothing and names that cannot be expressed in the foreign naming scheme
// both simply yield no declarations.
//
// Only top-level lookup semantics are supported: `accessPath` may address at
// most a single path segment, and a mismatched segment yields no results.
// The `mod` and `kind` arguments exist for interface parity with the other
// module loaders of the compiler; foreign lookup is always global.
func (imp *Importer) LookupValue(mod *sem.Module, accessPath []string, name string, kind int) []*sem.Decl {
	if len(accessPath) > 1 {
		logging.LogFatal("foreign lookup can only refer to top-level declarations")
	}

	if len(accessPath) == 1 && accessPath[0] != name {
		return nil
	}

	// recognize the protocol-lookup naming convention
	lookupKind := foreign.LookupOrdinary
	if strings.HasSuffix(name, ProtocolSuffix) && len(name) > len(ProtocolSuffix) {
		name = name[:len(name)-len(ProtocolSuffix)]
		lookupKind = foreign.LookupProtocol
	}

	// map the name; if we can't represent the Sable name in the foreign
	// naming scheme, the name cannot exist on the foreign side
	foreignName, ok := imp.translator.ToForeign(name)
	if !ok {
		return nil
	}

	var results []*sem.Decl

	// see if there's a preprocessor macro we can import by this name
	if macro := imp.session.MacroFor(foreignName); macro != nil && imp.importMacro != nil {
		if d := imp.importMacro(name, macro); d != nil {
			results = append(results, d)
		}
	}

	// perform foreign name lookup in global scope
	foundType := false
	for _, fd := range imp.session.LookupName(foreignName, lookupKind) {
		if d := imp.acceptDecl(fd); d != nil {
			results = append(results, d)
			foundType = foundType || d.IsType()
		}
	}

	// look up a tag name if ordinary lookup did not find a type with this
	// name already -- we don't want to introduce multiple types with the
	// same name
	if lookupKind == foreign.LookupOrdinary && !foundType {
		for _, fd := range imp.session.LookupName(foreignName, foreign.LookupTag) {
			if d := imp.acceptDecl(fd); d != nil {
				results = append(results, d)
			}
		}
	}

	return results
}

// acceptDecl runs one foreign lookup result through the declaration importer
// and applies the bridge's result filters.  It returns nil when the result
// should not appear in lookup output.
func (imp *Importer) acceptDecl(fd *foreign.Decl) *sem.Decl {
	d := imp.importDecl(fd)
	if d == nil || !d.IsValue() {
		return nil
	}

	// if the importer gave us a declaration from the builtin shim module,
	// make sure it does not show up in the lookup results for the imported
	// module
	if imp.shimModule != nil && d.SrcModule == imp.shimModule {
		return nil
	}

	return d
}
