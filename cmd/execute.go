package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sable/bridge"
	"sable/common"
	"sable/logging"
	"sable/mods"
	"sable/sem"
	"strings"

	"github.com/ComedicChimera/olive"
)

// Execute runs the main `sable-bridge` application: a tool for inspecting how
// the Sable compiler would import a foreign module graph
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("sable-bridge", "sable-bridge is a tool for inspecting foreign module imports", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the bridge log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	lookupCmd := cli.AddSubcommand("lookup", "resolve a single name against a module map", true)
	lookupCmd.AddPrimaryArg("module-map", "the path to the foreign module map", true)
	lookupCmd.AddStringArg("name", "n", "the name to look up", true)

	dumpCmd := cli.AddSubcommand("dump", "dump all visible declarations of a module map", true)
	dumpCmd.AddPrimaryArg("module-map", "the path to the foreign module map", true)
	dumpCmd.AddStringArg("module", "m", "restrict output to one foreign module (dotted path)", false)

	argsCmd := cli.AddSubcommand("args", "print the frontend invocation arguments for a project", true)
	argsCmd.AddPrimaryArg("project-path", "the path to the project directory", true)

	initCmd := cli.AddSubcommand("init", "initialize a bridge configuration", true)
	initCmd.AddPrimaryArg("project-path", "the path to the project directory", true)
	initCmd.AddStringArg("triple", "t", "the target triple to analyze for", true)
	initCmd.AddStringArg("sysroot", "s", "the path to the foreign SDK root", true)

	cli.AddSubcommand("version", "print the sable-bridge version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		return
	}

	logging.Initialize(result.Arguments["loglevel"].(string))

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "lookup":
		execLookupCommand(subResult)
	case "dump":
		execDumpCommand(subResult)
	case "args":
		execArgsCommand(subResult)
	case "init":
		execInitCommand(subResult)
	case "version":
		logging.PrintInfoMessage("Sable Bridge Version", common.SableVersion)
	}
}

// execLookupCommand executes the lookup subcommand and handles all errors
func execLookupCommand(result *olive.ArgParseResult) {
	imp, ok := importerFromMap(result)
	if !ok {
		return
	}

	name := result.Arguments["name"].(string)
	decls := imp.LookupValue(nil, nil, name, sem.UnqualifiedLookup)
	if len(decls) == 0 {
		logging.PrintWarningMessage("Lookup", fmt.Sprintf("no declarations found for `%s`", name))
		return
	}

	for _, d := range decls {
		printDecl(d)
	}
}

// execDumpCommand executes the dump subcommand and handles all errors
func execDumpCommand(result *olive.ArgParseResult) {
	imp, ok := importerFromMap(result)
	if !ok {
		return
	}

	// restrict output to one module's wrapper if one was requested
	var filter *sem.Module
	if modArgVal, ok := result.Arguments["module"]; ok {
		modPath := strings.Split(modArgVal.(string), ".")

		logging.LogBeginPhase("Loading")
		filter = imp.LoadModule(modPath)
		logging.LogEndPhase(filter != nil)

		if filter == nil {
			logging.PrintErrorMessage("Module Error", fmt.Errorf("unable to load foreign module `%s`", modArgVal.(string)))
			return
		}
	}

	count := 0
	imp.EnumerateVisible(filter, func(d *sem.Decl) {
		printDecl(d)
		count++
	})

	logging.FlushWarnings()
	logging.PrintInfoMessage("Dump", fmt.Sprintf("%d declarations (generation %d)", count, imp.Generation()))
}

// execArgsCommand prints the foreign frontend invocation assembled from a
// project's bridge configuration
func execArgsCommand(result *olive.ArgParseResult) {
	projectRelPath, _ := result.PrimaryArg()

	projectPath, err := filepath.Abs(projectRelPath)
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return
	}

	config, err := mods.LoadImportConfig(projectPath)
	if err != nil {
		logging.PrintErrorMessage("Config Error", err)
		return
	}

	logging.LogBridgeHeader(config.TargetTriple)
	fmt.Println(strings.Join(config.InvocationArgs(), " "))
}

// execInitCommand executes the init subcommand and handles all errors
func execInitCommand(result *olive.ArgParseResult) {
	projectRelPath, _ := result.PrimaryArg()

	projectPath, err := filepath.Abs(projectRelPath)
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return
	}

	triple := result.Arguments["triple"].(string)
	sysroot := result.Arguments["sysroot"].(string)
	if triple == "" || sysroot == "" {
		logging.PrintErrorMessage("Config Error", errors.New("both a target triple and a sysroot are required"))
		return
	}

	if err := mods.InitImportConfig(projectPath, triple, sysroot); err != nil {
		logging.PrintErrorMessage("Config Error", err)
	}
}

// -----------------------------------------------------------------------------

// importerFromMap builds an importer over the module map named by the
// subcommand's primary argument
func importerFromMap(result *olive.ArgParseResult) (*bridge.Importer, bool) {
	mapRelPath, _ := result.PrimaryArg()

	mapPath, err := filepath.Abs(mapRelPath)
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return nil, false
	}

	session, err := mods.LoadModuleMap(mapPath)
	if err != nil {
		logging.PrintErrorMessage("Module Map Error", err)
		return nil, false
	}

	return newInspectionImporter(session), true
}

// defKindStrings maps definition kinds to display strings
var defKindStrings = map[int]string{
	sem.DefKindTypeDef:   "type",
	sem.DefKindFuncDef:   "func",
	sem.DefKindValueDef:  "value",
	sem.DefKindExtension: "extension",
}

// printDecl prints one imported declaration to the console
func printDecl(d *sem.Decl) {
	logging.InfoColorFG.Print(fmt.Sprintf("%-9s ", defKindStrings[d.DefKind]))
	fmt.Print(d.Name)

	if d.SrcModule != nil {
		fmt.Println(" (" + d.SrcModule.Name + ")")
	} else {
		fmt.Println()
	}
}
