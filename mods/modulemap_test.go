package mods

import (
	"io/ioutil"
	"path/filepath"
	"sable/foreign"
	"testing"
)

// writeModuleMap writes a module map file into a temporary directory and
// returns its path
func writeModuleMap(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "modules.toml")
	if err := ioutil.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write module map: %v", err)
	}

	return path
}

func TestLoadModuleMap(t *testing.T) {
	session, err := LoadModuleMap(writeModuleMap(t, `
[[modules]]
name = "Kit"
exports = ["Base"]

[[modules]]
name = "Kit.Views"

[[modules]]
name = "Base"

[[decls]]
name = "Widget"
kind = "class"
module = "Kit"

[[decls]]
name = "WidgetExtras"
kind = "category"
module = "Kit"
extends = "Widget"

[[decls]]
name = "Point"
kind = "record"
module = "Kit"

[[decls]]
name = "makeWidget"
kind = "function"
module = "Kit.Views"

[[decls]]
name = "hiddenThing"
kind = "variable"
module = "Kit"
private = true

[[macros]]
name = "KIT_VERSION"
expansion = "4"
`))
	if err != nil {
		t.Fatalf("unexpected error loading module map: %v", err)
	}

	kit := session.LoadModule([]string{"Kit"})
	if kit == nil {
		t.Fatal("expected module Kit to exist")
	}

	views := session.LoadModule([]string{"Kit", "Views"})
	if views == nil || views.Parent != kit {
		t.Fatal("expected Kit.Views as a submodule of Kit")
	}

	// exports are resolved even when the exported module is declared later in
	// the file
	if len(kit.Exports) != 1 || kit.Exports[0].Name != "Base" {
		t.Errorf("unexpected exports for Kit: %v", kit.Exports)
	}

	widgets := session.LookupName("Widget", foreign.LookupOrdinary)
	if len(widgets) != 1 || widgets[0].Kind != foreign.DeclClass || widgets[0].Owner != kit {
		t.Fatalf("unexpected lookup results for Widget: %v", widgets)
	}

	// the record lands in the tag namespace
	if points := session.LookupName("Point", foreign.LookupTag); len(points) != 1 {
		t.Errorf("expected Point in the tag namespace, got %v", points)
	}

	if points := session.LookupName("Point", foreign.LookupOrdinary); len(points) != 0 {
		t.Errorf("expected Point absent from the ordinary namespace, got %v", points)
	}

	// the category is reachable through its extended class
	cats := session.Categories(widgets[0])
	if len(cats) != 1 || cats[0].Name != "WidgetExtras" {
		t.Errorf("unexpected categories for Widget: %v", cats)
	}

	fns := session.LookupName("makeWidget", foreign.LookupOrdinary)
	if len(fns) != 1 || fns[0].Owner != views {
		t.Errorf("expected makeWidget owned by Kit.Views, got %v", fns)
	}

	hidden := session.LookupName("hiddenThing", foreign.LookupOrdinary)
	if len(hidden) != 1 || !hidden[0].ModulePrivate {
		t.Errorf("expected hiddenThing to be module private, got %v", hidden)
	}

	macro := session.MacroFor("KIT_VERSION")
	if macro == nil || macro.Expansion != "4" {
		t.Errorf("unexpected macro for KIT_VERSION: %v", macro)
	}
}

func TestLoadModuleMapErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			name: "unnamed module",
			contents: `
[[modules]]
exports = ["Base"]
`,
		},
		{
			name: "unknown export",
			contents: `
[[modules]]
name = "Kit"
exports = ["Nowhere"]
`,
		},
		{
			name: "invalid declaration kind",
			contents: `
[[modules]]
name = "Kit"

[[decls]]
name = "Widget"
kind = "interface"
module = "Kit"
`,
		},
		{
			name: "declaration without module",
			contents: `
[[modules]]
name = "Kit"

[[decls]]
name = "Widget"
kind = "class"
`,
		},
		{
			name: "declaration in unknown module",
			contents: `
[[modules]]
name = "Kit"

[[decls]]
name = "Widget"
kind = "class"
module = "Nowhere"
`,
		},
		{
			name: "category extending unknown class",
			contents: `
[[modules]]
name = "Kit"

[[decls]]
name = "WidgetExtras"
kind = "category"
module = "Kit"
extends = "Widget"
`,
		},
		{
			name: "unnamed macro",
			contents: `
[[macros]]
expansion = "4"
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadModuleMap(writeModuleMap(t, tc.contents)); err == nil {
				t.Error("expected loading to fail")
			}
		})
	}
}
