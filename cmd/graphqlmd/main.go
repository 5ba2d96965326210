// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

// graphqlmd generates MDX documentation pages from GraphQL schemas.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/graphqlmd"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/graphqlmd"
	_buildTime string
)

// errSchemaChanged is returned by diff --exit-code when schemas differ.
var errSchemaChanged = errors.New("schemas differ")

// cliOptions describes graphqlmd CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Generate generateCommand `command:"generate" alias:"gen" description:"Generate MDX documentation from GraphQL schema"`
	Diff     diffCommand     `command:"diff" description:"Print structural changes between two schemas"`
	Hash     hashCommand     `command:"hash" description:"Print schema content hash"`
	Template templateCommand `command:"template" description:"Print built-in page template"`
}

// loaderFlags groups schema loading flags.
type loaderFlags struct {
	Loaders []string `long:"loader" description:"Schema loader tried in order (repeatable)" choice:"file" choice:"url"`
}

// outputFlags groups output layout flags.
type outputFlags struct {
	RootPath   string   `short:"r" long:"root" description:"Documentation root directory (default: ./docs)"`
	BaseURL    string   `short:"b" long:"base" description:"Sub-directory and URL segment of generated pages (default: schema)"`
	LinkRoot   string   `short:"l" long:"link" description:"URL prefix of links between pages (default: /)"`
	Homepage   string   `long:"homepage" description:"Homepage template file; the token ##generated-date-time## is replaced"`
	GroupBy    string   `long:"groupByDirective" description:"Group pages by directive argument, @directive(field) or @directive(field|=fallback)"`
	Skip       []string `long:"skip" description:"Category excluded from output (repeatable)"`
	Deprecated string   `long:"deprecated" description:"Deprecated entities handling" choice:"default" choice:"group" choice:"skip"`
	NoIndex    string   `long:"noIndex" description:"Do not add generated-index links to category metadata" optional:"yes" optional-value:"true"`
}

// changeFlags groups change detection flags.
type changeFlags struct {
	DiffMethod string `long:"diff" description:"Schema comparison method (default: DIFF)" choice:"DIFF" choice:"HASH" choice:"FORCE" choice:"NONE"`
	TmpDir     string `long:"tmp" description:"Directory storing schema reference between runs"`
	Force      string `long:"force" description:"Regenerate even when schema has no changes" optional:"yes" optional-value:"true"`
}

// pageFlags groups page body rendering flags.
type pageFlags struct {
	TemplateName  string `short:"t" long:"template" description:"Built-in page template style" choice:"list" choice:"table"`
	TemplatePath  string `short:"f" long:"template-file" description:"Path to custom page template (.gotmpl)"`
	WrapWidth     int    `short:"w" long:"wrap" description:"Wrap width for plain text descriptions (default: 80)"`
	NoCode        string `long:"noCode" description:"Omit SDL code blocks" optional:"yes" optional-value:"true"`
	NoRelated     string `long:"noRelated" description:"Omit related types sections" optional:"yes" optional-value:"true"`
	NoPretty      string `long:"no-pretty" description:"Write page markdown without normalization" optional:"yes" optional-value:"true"`
	Example       string `long:"example" description:"Example variables for operations" choice:"all" choice:"required"`
	ExampleFormat string `long:"example-format" description:"Example variables encoding (default: json)" choice:"json" choice:"yaml"`
}

// generateCommand runs the documentation pipeline.
type generateCommand struct {
	runner *cliRunner

	Schema     string `short:"s" long:"schema" description:"Schema location: file, directory, glob or URL"`
	ConfigPath string `short:"c" long:"config" description:"Configuration file (default: .graphqlmd.yml when present)"`
	Watch      bool   `long:"watch" description:"Regenerate on schema file changes"`
	LogLevel   string `long:"log-level" description:"Log level" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`

	LoaderFlags loaderFlags `group:"Schema Loading"`
	OutputFlags outputFlags `group:"Output Layout"`
	ChangeFlags changeFlags `group:"Change Detection"`
	PageFlags   pageFlags   `group:"Page Render"`
}

// Execute runs generate subcommand.
func (command *generateCommand) Execute(_ []string) error {
	return command.runner.runGenerate(command)
}

// options maps CLI flags onto library options tier.
// Switch flags accept an optional value, so --noCode=false overrides a
// config file noCode: true.
func (command *generateCommand) options() (graphqlmd.Options, error) {
	switches := make(map[string]*bool, 5)
	for name, value := range map[string]string{
		"force":     command.ChangeFlags.Force,
		"noCode":    command.PageFlags.NoCode,
		"noRelated": command.PageFlags.NoRelated,
		"noIndex":   command.OutputFlags.NoIndex,
		"no-pretty": command.PageFlags.NoPretty,
	} {
		parsed, err := parseSwitch(value)
		if err != nil {
			return graphqlmd.Options{}, fmt.Errorf("--%s: %w", name, err)
		}

		switches[name] = parsed
	}

	return graphqlmd.Options{
		Schema:           command.Schema,
		Loaders:          command.LoaderFlags.Loaders,
		RootPath:         command.OutputFlags.RootPath,
		BaseURL:          command.OutputFlags.BaseURL,
		LinkRoot:         command.OutputFlags.LinkRoot,
		Homepage:         command.OutputFlags.Homepage,
		DiffMethod:       command.ChangeFlags.DiffMethod,
		TmpDir:           command.ChangeFlags.TmpDir,
		GroupByDirective: command.OutputFlags.GroupBy,
		Force:            switches["force"],
		Skip:             command.OutputFlags.Skip,
		Deprecated:       command.OutputFlags.Deprecated,
		NoCode:           switches["noCode"],
		NoRelated:        switches["noRelated"],
		NoIndex:          switches["noIndex"],
		Example:          command.PageFlags.Example,
		ExampleFormat:    command.PageFlags.ExampleFormat,
		Template:         command.PageFlags.TemplateName,
		TemplatePath:     command.PageFlags.TemplatePath,
		WrapWidth:        command.PageFlags.WrapWidth,
		NoPretty:         switches["no-pretty"],
	}, nil
}

// parseSwitch converts optional switch flag value; empty means not given.
func parseSwitch(value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, err
	}

	return graphqlmd.Bool(parsed), nil
}

// diffCommand prints structural schema changes.
type diffCommand struct {
	runner *cliRunner
	Args   struct {
		Old string `positional-arg-name:"old" description:"Old schema location" required:"yes"`
		New string `positional-arg-name:"new" description:"New schema location" required:"yes"`
	} `positional-args:"yes"`

	ExitCode    bool        `long:"exit-code" description:"Exit with status 1 when schemas differ"`
	LoaderFlags loaderFlags `group:"Schema Loading"`
}

// Execute runs diff subcommand.
func (command *diffCommand) Execute(_ []string) error {
	return command.runner.runDiff(command.Args.Old, command.Args.New, command.LoaderFlags.Loaders, command.ExitCode)
}

// hashCommand prints schema digest.
type hashCommand struct {
	runner *cliRunner
	Args   struct {
		Schema string `positional-arg-name:"schema" description:"Schema location (optional; stdin when omitted)"`
	} `positional-args:"yes"`

	LoaderFlags loaderFlags `group:"Schema Loading"`
}

// Execute runs hash subcommand.
func (command *hashCommand) Execute(_ []string) error {
	return command.runner.runHash(command.Args.Schema, command.LoaderFlags.Loaders)
}

// templateCommand exports built-in page template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateName string `short:"t" long:"template" description:"Built-in template style" choice:"list" choice:"table" default:"list"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateName, command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo(command.runner.stdout)
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	ctx         context.Context
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "graphqlmd"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := cliRunner{
		ctx:         ctx,
		programName: filepath.Base(programName),
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	if errors.Is(err, errSchemaChanged) {
		return 1
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runGenerate merges configuration tiers and runs generation once or in watch mode.
func (runner *cliRunner) runGenerate(command *generateCommand) error {
	fileOptions, err := loadConfigTier(command.ConfigPath)
	if err != nil {
		return err
	}

	cliOptions, err := command.options()
	if err != nil {
		return err
	}

	opt := graphqlmd.MergeOptions(graphqlmd.DefaultOptions(), fileOptions, cliOptions)
	logger := graphqlmd.NewTextLogger(runner.stderr, command.LogLevel)

	if command.Watch {
		err := graphqlmd.Watch(runner.ctx, opt, graphqlmd.WatchOptions{}, logger)
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}

		return nil
	}

	result, err := graphqlmd.Generate(runner.ctx, opt, logger)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if !result.Changed {
		_, _ = fmt.Fprintln(runner.stdout, "No changes detected in schema.")
		return nil
	}

	_, _ = fmt.Fprintf(runner.stdout, "Documentation successfully generated in %q with %d pages in %s.\n",
		opt.OutputDir(), len(result.Pages), result.Duration.Round(time.Millisecond))
	return nil
}

// loadConfigTier reads explicit config file, or default one when present.
func loadConfigTier(path string) (graphqlmd.Options, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		return graphqlmd.LoadConfigFile(path)
	}

	if _, err := os.Stat(graphqlmd.DefaultConfigFile); err != nil {
		return graphqlmd.Options{}, nil
	}

	return graphqlmd.LoadConfigFile(graphqlmd.DefaultConfigFile)
}

// runDiff prints change records between two schema locations.
func (runner *cliRunner) runDiff(oldLocation, newLocation string, loaderNames []string, exitCode bool) error {
	loaders, err := graphqlmd.LoadersByName(loaderNames)
	if err != nil {
		return err
	}

	oldSchema, err := graphqlmd.LoadSchema(runner.ctx, oldLocation, loaders)
	if err != nil {
		return fmt.Errorf("load old schema: %w", err)
	}

	newSchema, err := graphqlmd.LoadSchema(runner.ctx, newLocation, loaders)
	if err != nil {
		return fmt.Errorf("load new schema: %w", err)
	}

	changes := graphqlmd.DiffSchemas(oldSchema, newSchema)
	if len(changes) == 0 {
		_, _ = fmt.Fprintln(runner.stdout, "No changes.")
		return nil
	}

	for _, change := range changes {
		if _, err := fmt.Fprintln(runner.stdout, change.String()); err != nil {
			return fmt.Errorf("write changes to stdout: %w", err)
		}
	}

	if exitCode {
		return errSchemaChanged
	}

	return nil
}

// runHash prints digest of schema location or stdin SDL.
func (runner *cliRunner) runHash(location string, loaderNames []string) error {
	location = strings.TrimSpace(location)
	if location == "" || location == "-" {
		data, err := io.ReadAll(runner.stdin)
		if err != nil {
			return fmt.Errorf("read schema from stdin: %w", err)
		}

		if len(strings.TrimSpace(string(data))) == 0 {
			return errors.New("read schema from stdin: empty input")
		}

		schema, err := graphqlmd.ParseSchemaString("(stdin)", string(data))
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(runner.stdout, graphqlmd.HashSchema(schema))
		return err
	}

	loaders, err := graphqlmd.LoadersByName(loaderNames)
	if err != nil {
		return err
	}

	schema, err := graphqlmd.LoadSchema(runner.ctx, location, loaders)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(runner.stdout, graphqlmd.HashSchema(schema))
	return err
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := graphqlmd.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, tpl); err != nil {
			return fmt.Errorf("write template to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(tpl), 0o600); err != nil {
		return fmt.Errorf("write template file %q: %w", outputPath, err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Generate.runner = runner
	options.Diff.runner = runner
	options.Hash.runner = runner
	options.Template.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	return err
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"generate": strings.TrimSpace(fmt.Sprintf(`
Generate one MDX page per schema entity under <root>/<base>, plus sidebar-schema.js
and _category_.yml files. Generation is skipped when schema has no changes since
the previous run; use --force to regenerate anyway.
Flags override values of the configuration file.

Examples:
> $ %s generate -s schema.graphql
> $ %s generate -s https://api.example.com/schema.graphql --groupByDirective '@doc(category|=Common)'
> $ %s generate -s ./schema --deprecated group --example required --watch
`, programName, programName, programName)),
		"diff": strings.TrimSpace(fmt.Sprintf(`
Print structural changes between two schema locations, one change per line.

Examples:
> $ %s diff docs/schema.graphql schema.graphql
> $ %s diff --exit-code old.graphql new.graphql
`, programName, programName)),
		"hash": strings.TrimSpace(fmt.Sprintf(`
Print hex SHA-256 digest of canonical schema SDL, as stored by HASH comparison.

Examples:
> $ %s hash schema.graphql
> $ cat schema.graphql | %s hash
`, programName, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in page template text (`+"`list` or `table`"+`).
Use it as a starting point for a custom template file.

Examples:
> $ %s template > list.gotmpl
> $ %s template -t table templates/table.gotmpl
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo(w io.Writer) {
	_, _ = fmt.Fprintf(w, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
