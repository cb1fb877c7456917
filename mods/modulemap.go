package mods

import (
	"fmt"
	"io/ioutil"
	"sable/foreign"
	"strings"

	"github.com/pelletier/go-toml"
)

// This file implements loading of foreign module maps: TOML descriptions of a
// foreign module graph used to populate a static session.  Module maps back
// the bridge inspection tool so lookup and enumeration behavior can be
// exercised without a real foreign frontend.

// tomlModuleMap represents a module map file as it is encoded in TOML
type tomlModuleMap struct {
	Modules []*tomlForeignModule `toml:"modules"`
	Decls   []*tomlForeignDecl   `toml:"decls"`
	Macros  []*tomlForeignMacro  `toml:"macros"`
}

// tomlForeignModule represents a foreign module as it is encoded in TOML
type tomlForeignModule struct {
	// Name is the full dotted name of the module
	Name string `toml:"name"`

	// Exports lists the full dotted names of the modules this module
	// re-exports
	Exports []string `toml:"exports,omitempty"`
}

// tomlForeignDecl represents a foreign declaration as it is encoded in TOML
type tomlForeignDecl struct {
	Name    string `toml:"name"`
	Kind    string `toml:"kind"`
	Module  string `toml:"module"`
	Private bool   `toml:"private"`

	// Extends names the class a category extends; it is only meaningful for
	// declarations of kind `category`
	Extends string `toml:"extends,omitempty"`
}

// tomlForeignMacro represents a preprocessor macro as it is encoded in TOML
type tomlForeignMacro struct {
	Name      string `toml:"name"`
	Expansion string `toml:"expansion"`
}

// declKindNames maps TOML declaration kind strings to enumerated foreign
// declaration kinds
var declKindNames = map[string]int{
	"function": foreign.DeclFunction,
	"variable": foreign.DeclVariable,
	"typedef":  foreign.DeclTypedef,
	"record":   foreign.DeclRecord,
	"enum":     foreign.DeclEnum,
	"class":    foreign.DeclClass,
	"protocol": foreign.DeclProtocol,
	"category": foreign.DeclCategory,
}

// LoadModuleMap loads a foreign module map file and builds a static session
// from its contents
func LoadModuleMap(path string) (*foreign.StaticSession, error) {
	buff, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tmm := &tomlModuleMap{}
	if err := toml.Unmarshal(buff, tmm); err != nil {
		return nil, err
	}

	session := foreign.NewStaticSession()

	// define all modules before resolving export lists so exports can refer
	// to modules declared later in the file
	for _, tfm := range tmm.Modules {
		if tfm.Name == "" {
			return nil, fmt.Errorf("module map %s contains a module with no name", path)
		}

		session.DefineModule(strings.Split(tfm.Name, ".")...)
	}

	for _, tfm := range tmm.Modules {
		mod := session.LoadModule(strings.Split(tfm.Name, "."))
		for _, export := range tfm.Exports {
			exportMod := session.LoadModule(strings.Split(export, "."))
			if exportMod == nil {
				return nil, fmt.Errorf("module `%s` exports unknown module `%s`", tfm.Name, export)
			}

			mod.Exports = append(mod.Exports, exportMod)
		}
	}

	// classes must be registered before the categories that extend them
	classes := make(map[string]*foreign.Decl)
	var categories []*tomlForeignDecl

	for _, tfd := range tmm.Decls {
		kind, ok := declKindNames[tfd.Kind]
		if !ok {
			return nil, fmt.Errorf("`%s` is not a valid declaration kind", tfd.Kind)
		}

		if kind == foreign.DeclCategory {
			categories = append(categories, tfd)
			continue
		}

		decl, err := convertDecl(session, tfd, kind)
		if err != nil {
			return nil, err
		}

		session.AddDecl(decl)

		if kind == foreign.DeclClass {
			classes[decl.Name] = decl
		}
	}

	for _, tfd := range categories {
		class, ok := classes[tfd.Extends]
		if !ok {
			return nil, fmt.Errorf("category `%s` extends unknown class `%s`", tfd.Name, tfd.Extends)
		}

		decl, err := convertDecl(session, tfd, foreign.DeclCategory)
		if err != nil {
			return nil, err
		}

		decl.Extends = class
		session.AddDecl(decl)
	}

	for _, tfm := range tmm.Macros {
		if tfm.Name == "" {
			return nil, fmt.Errorf("module map %s contains a macro with no name", path)
		}

		session.AddMacro(&foreign.Macro{Name: tfm.Name, Expansion: tfm.Expansion})
	}

	return session, nil
}

// convertDecl converts a TOML declaration into a `*foreign.Decl` owned by its
// declared module
func convertDecl(session *foreign.StaticSession, tfd *tomlForeignDecl, kind int) (*foreign.Decl, error) {
	if tfd.Module == "" {
		return nil, fmt.Errorf("declaration `%s` must specify an owning module", tfd.Name)
	}

	owner := session.LoadModule(strings.Split(tfd.Module, "."))
	if owner == nil {
		return nil, fmt.Errorf("declaration `%s` belongs to unknown module `%s`", tfd.Name, tfd.Module)
	}

	return &foreign.Decl{
		Name:          tfd.Name,
		Kind:          kind,
		Owner:         owner,
		ModulePrivate: tfd.Private,
	}, nil
}
