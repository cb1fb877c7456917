package cmd

import (
	"sable/bridge"
	"sable/foreign"
	"sable/sem"
)

// This file contains the inspection tool's declaration importer: a minimal
// translation from foreign declarations to Sable declarations that is
// sufficient for printing what the full compiler would import.  The real
// compiler injects a much richer importer that also translates types and
// members.

// foreignDefKinds maps foreign declaration kinds to Sable definition kinds
var foreignDefKinds = map[int]int{
	foreign.DeclFunction: sem.DefKindFuncDef,
	foreign.DeclVariable: sem.DefKindValueDef,
	foreign.DeclTypedef:  sem.DefKindTypeDef,
	foreign.DeclRecord:   sem.DefKindTypeDef,
	foreign.DeclEnum:     sem.DefKindTypeDef,
	foreign.DeclClass:    sem.DefKindTypeDef,
	foreign.DeclProtocol: sem.DefKindTypeDef,
	foreign.DeclCategory: sem.DefKindExtension,
}

// newInspectionImporter creates an importer over the given session using the
// tool's minimal declaration importer
func newInspectionImporter(session foreign.Session) *bridge.Importer {
	var imp *bridge.Importer

	// memoize so the same foreign declaration always produces the same
	// Sable declaration
	imported := make(map[*foreign.Decl]*sem.Decl)

	importDecl := func(fd *foreign.Decl) *sem.Decl {
		if d, ok := imported[fd]; ok {
			return d
		}

		d := &sem.Decl{
			Name:      fd.Name,
			DefKind:   foreignDefKinds[fd.Kind],
			SrcModule: imp.WrapperForDecl(fd),
			Foreign:   fd,
		}

		imported[fd] = d
		return d
	}

	importMacro := func(name string, macro *foreign.Macro) *sem.Decl {
		// only object-like macros with a non-empty expansion are
		// representable as Sable constants
		if macro.Expansion == "" {
			return nil
		}

		return &sem.Decl{
			Name:    name,
			DefKind: sem.DefKindValueDef,
		}
	}

	imp = bridge.NewImporter(session, sem.NewModuleTable(), nil, importDecl, importMacro)
	return imp
}
