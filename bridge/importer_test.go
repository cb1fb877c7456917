package bridge

import (
	"sable/foreign"
	"sable/sem"
	"testing"
)

// foreignDefKinds maps foreign declaration kinds to the definition kinds the
// test importer produces
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

// testEnv bundles an importer with a memoizing declaration importer that
// counts how often each foreign declaration is translated
type testEnv struct {
	session *foreign.StaticSession
	table   *sem.ModuleTable
	imp     *Importer

	// importCalls counts declaration importer invocations per foreign decl
	importCalls map[*foreign.Decl]int

	// shim, when non-nil, is the module shim-listed declarations are placed
	// in by the test declaration importer
	shim      *sem.Module
	shimNames map[string]bool
}

func newTestEnv(session *foreign.StaticSession) *testEnv {
	env := &testEnv{
		session:     session,
		table:       sem.NewModuleTable(),
		importCalls: make(map[*foreign.Decl]int),
		shimNames:   make(map[string]bool),
	}

	imported := make(map[*foreign.Decl]*sem.Decl)
	importDecl := func(fd *foreign.Decl) *sem.Decl {
		env.importCalls[fd]++

		if d, ok := imported[fd]; ok {
			return d
		}

		srcMod := env.imp.WrapperForDecl(fd)
		if env.shimNames[fd.Name] {
			srcMod = env.shim
		}

		d := &sem.Decl{
			Name:      fd.Name,
			DefKind:   foreignDefKinds[fd.Kind],
			SrcModule: srcMod,
			Foreign:   fd,
		}

		imported[fd] = d
		return d
	}

	importMacro := func(name string, macro *foreign.Macro) *sem.Decl {
		return &sem.Decl{Name: name, DefKind: sem.DefKindValueDef}
	}

	env.imp = NewImporter(session, env.table, nil, importDecl, importMacro)
	return env
}

// newKitSession builds the session most tests share: a module `Kit` with a
// submodule `Kit.Views`, re-exporting a sibling module `Base`
func newKitSession() *foreign.StaticSession {
	session := foreign.NewStaticSession()

	kit := session.DefineModule("Kit")
	session.DefineModule("Kit", "Views")
	base := session.DefineModule("Base")
	kit.Exports = append(kit.Exports, base)

	session.AddDecl(&foreign.Decl{Name: "Widget", Kind: foreign.DeclClass, Owner: kit})
	session.AddDecl(&foreign.Decl{Name: "Widget", Kind: foreign.DeclProtocol, Owner: kit})
	session.AddDecl(&foreign.Decl{Name: "makeWidget", Kind: foreign.DeclFunction, Owner: kit})
	session.AddDecl(&foreign.Decl{Name: "kitVersion", Kind: foreign.DeclVariable, Owner: kit})

	// Point exists as both an ordinary typedef and a record tag
	session.AddDecl(&foreign.Decl{Name: "Point", Kind: foreign.DeclTypedef, Owner: kit})
	session.AddDecl(&foreign.Decl{Name: "Point", Kind: foreign.DeclRecord, Owner: kit})

	// Rect only exists in the tag namespace
	session.AddDecl(&foreign.Decl{Name: "Rect", Kind: foreign.DeclRecord, Owner: kit})

	session.AddDecl(&foreign.Decl{Name: "baseThing", Kind: foreign.DeclVariable, Owner: base})

	return session
}

// -----------------------------------------------------------------------------
// Wrapper cache

func TestWrapperIdentity(t *testing.T) {
	env := newTestEnv(newKitSession())
	kit := env.session.LoadModule([]string{"Kit"})

	first := env.imp.GetOrCreateWrapper(kit, nil)
	if first == nil || first.Foreign != kit || first.Name != "Kit" {
		t.Fatal("unexpected wrapper for module Kit")
	}

	// a second call returns the identical wrapper regardless of the
	// component supplied
	second := env.imp.GetOrCreateWrapper(kit, sem.NewComponent())
	if second != first {
		t.Error("expected identical wrapper objects across calls")
	}

	if second.Component != first.Component {
		t.Error("expected the wrapper to keep the component it was created with")
	}
}

func TestGenerationMonotonicity(t *testing.T) {
	env := newTestEnv(newKitSession())
	kit := env.session.LoadModule([]string{"Kit"})
	views := env.session.LoadModule([]string{"Kit", "Views"})

	if env.imp.Generation() != 0 {
		t.Fatalf("expected initial generation 0, got %d", env.imp.Generation())
	}

	env.imp.GetOrCreateWrapper(kit, nil)
	if env.imp.Generation() != 1 {
		t.Fatalf("expected generation 1 after first wrapper, got %d", env.imp.Generation())
	}

	// cache hits leave the generation untouched
	env.imp.GetOrCreateWrapper(kit, nil)
	if env.imp.Generation() != 1 {
		t.Fatalf("expected generation 1 after cache hit, got %d", env.imp.Generation())
	}

	env.imp.GetOrCreateWrapper(views, nil)
	if env.imp.Generation() != 2 {
		t.Fatalf("expected generation 2 after second wrapper, got %d", env.imp.Generation())
	}
}

func TestFirstWrapperAnchor(t *testing.T) {
	env := newTestEnv(newKitSession())

	if env.imp.FirstWrapper() != nil {
		t.Fatal("expected no first wrapper before any module is wrapped")
	}

	kit := env.imp.LoadModule([]string{"Kit"})
	env.imp.LoadModule([]string{"Base"})

	if env.imp.FirstWrapper() != kit {
		t.Error("expected the first wrapper anchor to be the Kit wrapper")
	}
}

func TestLoadModuleCaching(t *testing.T) {
	env := newTestEnv(newKitSession())

	first := env.imp.LoadModule([]string{"Kit"})
	if first == nil {
		t.Fatal("expected Kit to load")
	}

	// loading Kit also forced a wrapper for its re-export Base
	genAfterFirst := env.imp.Generation()
	if genAfterFirst != 2 {
		t.Fatalf("expected generation 2 after loading Kit (Kit + Base), got %d", genAfterFirst)
	}

	second := env.imp.LoadModule([]string{"Kit"})
	if second != first {
		t.Error("expected the same wrapper from a repeated load")
	}

	if env.imp.Generation() != genAfterFirst {
		t.Error("expected a repeated load to leave the generation untouched")
	}

	if env.imp.ImportCount() != 2 {
		t.Errorf("expected 2 load requests, got %d", env.imp.ImportCount())
	}
}

func TestLoadModuleSubmodule(t *testing.T) {
	env := newTestEnv(newKitSession())

	views := env.imp.LoadModule([]string{"Kit", "Views"})
	if views == nil {
		t.Fatal("expected Kit.Views to load")
	}

	if views.Name != "Kit.Views" || views.IsTopLevel() {
		t.Error("expected a submodule wrapper named Kit.Views")
	}
}

func TestLoadModuleFailureLeavesNoResidue(t *testing.T) {
	env := newTestEnv(newKitSession())

	if env.imp.LoadModule([]string{"Nowhere"}) != nil {
		t.Fatal("expected loading an unknown module to fail")
	}

	if env.imp.Generation() != 0 {
		t.Error("expected a failed load to leave the generation untouched")
	}

	// an untranslatable path segment cannot name a foreign module
	if env.imp.LoadModule([]string{"true"}) != nil {
		t.Error("expected a reserved path segment to fail")
	}

	// the failed loads must not have poisoned the cache
	if env.imp.LoadModule([]string{"Kit"}) == nil {
		t.Error("expected Kit to load after earlier failures")
	}
}

func TestWrapperForDecl(t *testing.T) {
	env := newTestEnv(newKitSession())
	views := env.session.LoadModule([]string{"Kit", "Views"})
	kit := env.session.LoadModule([]string{"Kit"})

	// declarations in submodules are placed in the top-level wrapper
	d := &foreign.Decl{Name: "viewThing", Kind: foreign.DeclVariable, Owner: views}
	wrapper := env.imp.WrapperForDecl(d)
	if wrapper == nil || wrapper.Foreign != kit {
		t.Error("expected the declaration to be placed in the Kit wrapper")
	}

	if wrapper != env.imp.GetOrCreateWrapper(kit, nil) {
		t.Error("expected the declaration's wrapper to be the cached Kit wrapper")
	}
}

// -----------------------------------------------------------------------------
// Name lookup

func TestLookupReservedName(t *testing.T) {
	session := newKitSession()

	// even a foreign declaration spelled `true` must stay unreachable
	kit := session.LoadModule([]string{"Kit"})
	session.AddDecl(&foreign.Decl{Name: "true", Kind: foreign.DeclVariable, Owner: kit})

	env := newTestEnv(session)
	if results := env.imp.LookupValue(nil, nil, "true", sem.UnqualifiedLookup); len(results) != 0 {
		t.Errorf("expected no results for reserved name, got %d", len(results))
	}
}

func TestLookupOrdinary(t *testing.T) {
	env := newTestEnv(newKitSession())

	results := env.imp.LookupValue(nil, nil, "makeWidget", sem.UnqualifiedLookup)
	if len(results) != 1 || results[0].DefKind != sem.DefKindFuncDef {
		t.Fatalf("expected one function result for makeWidget, got %v", results)
	}

	if results[0].SrcModule == nil || results[0].SrcModule.Name != "Kit" {
		t.Error("expected makeWidget to belong to the Kit wrapper")
	}
}

func TestProtocolSuffix(t *testing.T) {
	env := newTestEnv(newKitSession())

	// the plain name resolves through ordinary lookup to the class
	plain := env.imp.LookupValue(nil, nil, "Widget", sem.UnqualifiedLookup)
	if len(plain) != 1 || plain[0].Foreign.Kind != foreign.DeclClass {
		t.Fatalf("expected the class for Widget, got %v", plain)
	}

	// the suffixed name switches to protocol lookup on the stripped base
	proto := env.imp.LookupValue(nil, nil, "WidgetProto", sem.UnqualifiedLookup)
	if len(proto) != 1 || proto[0].Foreign.Kind != foreign.DeclProtocol {
		t.Fatalf("expected the protocol for WidgetProto, got %v", proto)
	}

	if !proto[0].IsType() {
		t.Error("expected the imported protocol to be type-like")
	}
}

func TestTagFallbackExclusivity(t *testing.T) {
	env := newTestEnv(newKitSession())

	// Point has both an ordinary typedef and a record tag; only the ordinary
	// type may appear
	results := env.imp.LookupValue(nil, nil, "Point", sem.UnqualifiedLookup)
	if len(results) != 1 {
		t.Fatalf("expected exactly one result for Point, got %d", len(results))
	}

	if results[0].Foreign.Kind != foreign.DeclTypedef {
		t.Error("expected the ordinary typedef, not the record tag")
	}

	// the record tag must not even have been offered to the importer
	rect := env.session.LookupName("Point", foreign.LookupTag)[0]
	if env.importCalls[rect] != 0 {
		t.Error("expected tag lookup to be skipped when ordinary lookup found a type")
	}
}

func TestTagFallback(t *testing.T) {
	env := newTestEnv(newKitSession())

	// Rect only exists as a record tag, so the fallback must find it
	results := env.imp.LookupValue(nil, nil, "Rect", sem.UnqualifiedLookup)
	if len(results) != 1 || results[0].Foreign.Kind != foreign.DeclRecord {
		t.Fatalf("expected the record tag for Rect, got %v", results)
	}
}

func TestMacroProbeOrdering(t *testing.T) {
	session := newKitSession()
	kit := session.LoadModule([]string{"Kit"})
	session.AddDecl(&foreign.Decl{Name: "KIT_VERSION", Kind: foreign.DeclVariable, Owner: kit})
	session.AddMacro(&foreign.Macro{Name: "KIT_VERSION", Expansion: "4"})

	env := newTestEnv(session)
	results := env.imp.LookupValue(nil, nil, "KIT_VERSION", sem.UnqualifiedLookup)
	if len(results) != 2 {
		t.Fatalf("expected macro and variable results, got %d", len(results))
	}

	// the macro-backed declaration is included first
	if results[0].Foreign != nil {
		t.Error("expected the macro-backed declaration first")
	}

	if results[1].Foreign == nil || results[1].Foreign.Kind != foreign.DeclVariable {
		t.Error("expected the variable declaration second")
	}
}

func TestLookupAccessPath(t *testing.T) {
	env := newTestEnv(newKitSession())

	// a one-segment access path whose name disagrees yields nothing
	if results := env.imp.LookupValue(nil, []string{"Kit"}, "Widget", sem.QualifiedLookup); len(results) != 0 {
		t.Errorf("expected no results for a mismatched access path, got %d", len(results))
	}

	// an agreeing one-segment path behaves like an unqualified lookup
	if results := env.imp.LookupValue(nil, []string{"Widget"}, "Widget", sem.QualifiedLookup); len(results) != 1 {
		t.Errorf("expected one result for an agreeing access path, got %d", len(results))
	}
}

func TestLookupShimFilter(t *testing.T) {
	session := newKitSession()
	kit := session.LoadModule([]string{"Kit"})
	session.AddDecl(&foreign.Decl{Name: "shimmed", Kind: foreign.DeclVariable, Owner: kit})

	env := newTestEnv(session)

	// route `shimmed` into the builtin shim module and rebuild the importer
	// around it
	env.shim = sem.NewModule("__sable_builtin", sem.NewComponent())
	env.shimNames["shimmed"] = true
	env.imp = NewImporter(session, env.table, env.shim, env.imp.importDecl, env.imp.importMacro)

	if results := env.imp.LookupValue(nil, nil, "shimmed", sem.UnqualifiedLookup); len(results) != 0 {
		t.Error("expected shim-owned declarations to be filtered from lookup results")
	}

	// unrelated names are unaffected
	if results := env.imp.LookupValue(nil, nil, "kitVersion", sem.UnqualifiedLookup); len(results) != 1 {
		t.Error("expected kitVersion to remain visible")
	}
}

// -----------------------------------------------------------------------------
// Visible-declaration enumeration

func TestEnumerateVisible(t *testing.T) {
	session := newKitSession()
	kit := session.LoadModule([]string{"Kit"})
	session.AddDecl(&foreign.Decl{Name: "hiddenThing", Kind: foreign.DeclVariable, Owner: kit, ModulePrivate: true})
	session.AddDecl(&foreign.Decl{Name: "", Kind: foreign.DeclRecord, Owner: kit})

	env := newTestEnv(session)

	found := make(map[string][]*sem.Decl)
	env.imp.EnumerateVisible(nil, func(d *sem.Decl) {
		found[d.Name] = append(found[d.Name], d)
	})

	for _, name := range []string{"Widget", "makeWidget", "kitVersion", "Point", "Rect", "baseThing"} {
		if len(found[name]) == 0 {
			t.Errorf("expected %s in the visible enumeration", name)
		}
	}

	if len(found["hiddenThing"]) != 0 {
		t.Error("expected module-private declarations to be skipped")
	}

	if len(found[""]) != 0 {
		t.Error("expected empty-named declarations to be skipped")
	}

	// the bulk path re-derives through lookup, so Point resolves to the
	// ordinary typedef and never the record tag
	for _, d := range found["Point"] {
		if d.Foreign.Kind != foreign.DeclTypedef {
			t.Error("expected the bulk path to agree with targeted lookup for Point")
		}
	}
}

func TestEnumerateVisibleModuleFilter(t *testing.T) {
	env := newTestEnv(newKitSession())

	base := env.imp.LoadModule([]string{"Base"})
	if base == nil {
		t.Fatal("expected Base to load")
	}

	var found []*sem.Decl
	env.imp.EnumerateVisible(base, func(d *sem.Decl) {
		found = append(found, d)
	})

	if len(found) != 1 || found[0].Name != "baseThing" {
		t.Fatalf("expected only baseThing for the Base filter, got %v", found)
	}
}

// -----------------------------------------------------------------------------
// Extensions, re-exports, and adapters

func TestLoadExtensions(t *testing.T) {
	session := newKitSession()
	widget := session.LookupName("Widget", foreign.LookupOrdinary)[0]
	extras := &foreign.Decl{Name: "WidgetExtras", Kind: foreign.DeclCategory, Owner: widget.Owner, Extends: widget}
	session.AddDecl(extras)

	env := newTestEnv(session)

	nominal := env.imp.LookupValue(nil, nil, "Widget", sem.UnqualifiedLookup)[0]
	env.imp.LoadExtensions(nominal)

	if env.importCalls[extras] != 1 {
		t.Errorf("expected the category to be imported once, got %d", env.importCalls[extras])
	}

	// non-class declarations are a no-op
	fn := env.imp.LookupValue(nil, nil, "makeWidget", sem.UnqualifiedLookup)[0]
	env.imp.LoadExtensions(fn)
}

func TestReexports(t *testing.T) {
	env := newTestEnv(newKitSession())
	kit := env.imp.GetOrCreateWrapper(env.session.LoadModule([]string{"Kit"}), nil)

	// with no adapters anywhere, the raw Base wrapper is emitted
	exports := env.imp.Reexports(kit)
	if len(exports) != 1 || exports[0].Name != "Base" || !exports[0].IsForeignWrapper() {
		t.Fatalf("expected the raw Base wrapper, got %v", exports)
	}
}

func TestReexportsPreferAdapter(t *testing.T) {
	env := newTestEnv(newKitSession())

	// a hand-authored overlay for Base must be emitted in its place
	overlay := sem.NewModule("Base", sem.NewComponent())
	if err := env.table.Define(overlay); err != nil {
		t.Fatal(err)
	}

	kit := env.imp.GetOrCreateWrapper(env.session.LoadModule([]string{"Kit"}), nil)
	exports := env.imp.Reexports(kit)
	if len(exports) != 1 || exports[0] != overlay {
		t.Fatalf("expected the Base overlay, got %v", exports)
	}
}

func TestReexportsCycleGuard(t *testing.T) {
	session := newKitSession()

	// Kit additionally re-exports its own submodule
	kit := session.LoadModule([]string{"Kit"})
	views := session.LoadModule([]string{"Kit", "Views"})
	kit.Exports = append(kit.Exports, views)

	env := newTestEnv(session)

	// Kit has a hand-authored overlay; the submodule's adapter resolves to
	// that same overlay, so the raw submodule wrapper must be emitted to keep
	// Kit from re-exporting itself through its own overlay
	overlay := sem.NewModule("Kit", sem.NewComponent())
	if err := env.table.Define(overlay); err != nil {
		t.Fatal(err)
	}

	wrapper := env.imp.GetOrCreateWrapper(kit, nil)
	exports := env.imp.Reexports(wrapper)
	if len(exports) != 2 {
		t.Fatalf("expected two re-exports, got %d", len(exports))
	}

	var viewsExport *sem.Module
	for _, export := range exports {
		if export.Name == "Kit.Views" {
			viewsExport = export
		}
	}

	if viewsExport == nil || !viewsExport.IsForeignWrapper() {
		t.Error("expected the raw Kit.Views wrapper, not the Kit overlay")
	}
}

func TestAdapterMemoization(t *testing.T) {
	env := newTestEnv(newKitSession())
	kit := env.imp.GetOrCreateWrapper(env.session.LoadModule([]string{"Kit"}), nil)

	// no overlay exists, so the adapter is absent
	if env.imp.Adapter(kit) != nil {
		t.Fatal("expected no adapter for Kit")
	}

	// defining an overlay after the fact must not change the outcome: the
	// resolution is memoized permanently, including absence
	overlay := sem.NewModule("Kit", sem.NewComponent())
	if err := env.table.Define(overlay); err != nil {
		t.Fatal(err)
	}

	if env.imp.Adapter(kit) != nil {
		t.Error("expected the memoized absent adapter")
	}
}

func TestAdapterResolution(t *testing.T) {
	env := newTestEnv(newKitSession())

	overlay := sem.NewModule("Kit", sem.NewComponent())
	if err := env.table.Define(overlay); err != nil {
		t.Fatal(err)
	}

	kit := env.imp.GetOrCreateWrapper(env.session.LoadModule([]string{"Kit"}), nil)
	if env.imp.Adapter(kit) != overlay {
		t.Error("expected the Kit overlay as the adapter")
	}

	// submodule wrappers delegate to their top-level wrapper's adapter
	views := env.imp.GetOrCreateWrapper(env.session.LoadModule([]string{"Kit", "Views"}), nil)
	if env.imp.Adapter(views) != overlay {
		t.Error("expected the submodule to share the top-level adapter")
	}

	// another foreign wrapper registered in the table is never an adapter
	base := env.imp.LoadModule([]string{"Base"})
	if err := env.table.RegisterShared("Base", base); err != nil {
		t.Fatal(err)
	}

	if env.imp.Adapter(base) != nil {
		t.Error("expected no adapter when the table holds a foreign wrapper")
	}
}
