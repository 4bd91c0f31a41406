// Package cmd wires the auditexpr CLI: compiling structured filter state to
// expressions, listing the field catalog, and the interactive editor.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/ledgewood/auditexpr/internal/catalog"
	"github.com/ledgewood/auditexpr/internal/compiler"
	"github.com/ledgewood/auditexpr/internal/completion"
	"github.com/ledgewood/auditexpr/internal/facets"
	"github.com/ledgewood/auditexpr/internal/ui"
	"github.com/ledgewood/auditexpr/pkg/loader"
	"github.com/ledgewood/auditexpr/pkg/logger"
	"github.com/ledgewood/auditexpr/pkg/settings"
)

// defaultFallbackTermWidth is used when terminal size cannot be detected.
const defaultFallbackTermWidth = 120

var (
	rootCtx = context.Background()

	debug   bool
	quiet   bool
	noColor bool

	// compile flags
	statePath    string
	verbValues   []string
	nsValues     []string
	resValues    []string
	userValues   []string
	statusValues []string
	nameTerm     string
	customClause string
	checkExpr    bool

	// fields flags
	fieldsOutput string
	facetsPath   string

	// edit flags
	initialExpr string
	minTrigger  int
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName,
	Short: "Filter-expression tooling for Kubernetes audit dashboards",
	Long: `auditexpr compiles structured audit filters into boolean expressions and
provides a cursor-aware autocomplete engine for free-typed expressions.

The expression language is a small boolean filter grammar: field comparisons
joined by && / ||, with string functions like .contains() and .startsWith().`,
	Example: "\n  auditexpr compile --verb get --verb list --namespace prod\n  auditexpr compile --state filter.yaml\n  auditexpr fields -o json\n  auditexpr edit --expr 'verb == '",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		run := settings.NewCliParams()
		if debug {
			run.MinLogLevel = -1
		}
		run.IsQuiet = quiet
		if quiet && !debug {
			// Errors only.
			run.MinLogLevel = 2
		}
		run.NoColor = noColor
		run.StatePath = statePath
		run.FacetsPath = facetsPath

		lgr := logger.Get(run.MinLogLevel)
		lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())
		rootCtx = settings.IntoContext(logger.WithLogger(context.Background(), lgr), run)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile structured filter state into an expression",
	Long: `Compile builds the filter expression from dimension flags or from a
filter-state document (JSON, YAML, or TOML; use --state - for stdin).
Flag values are combined with values from the document; dimensions compile in
their fixed declaration order regardless of flag order.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		lgr := logger.FromContext(rootCtx)
		run := runParams()

		state := compiler.State{}
		if run.StatePath != "" {
			loaded, err := loader.LoadState(run.StatePath)
			if err != nil {
				return err
			}
			state = loaded
		}
		mergeFlagState(&state)

		comp := compiler.Default()
		expr := comp.Compile(state)
		if checkExpr {
			validator, err := compiler.NewValidator(comp)
			if err != nil {
				return err
			}
			if err := validator.Validate(expr); err != nil {
				return err
			}
		}
		lgr.V(1).Info("compiled filter state", "clauses", len(state.Selections), "expression", expr)
		fmt.Fprintln(os.Stdout, expr)
		return nil
	},
}

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the filterable audit fields",
	RunE: func(_ *cobra.Command, _ []string) error {
		cat, err := loadCatalog(runParams().FacetsPath)
		if err != nil {
			return err
		}

		switch fieldsOutput {
		case "json":
			return printFieldsJSON(cat)
		case "yaml":
			return printFieldsYAML(cat)
		case "table":
			printFieldsTable(cat)
			return nil
		default:
			return fmt.Errorf("invalid --output value %q (expected table, json, or yaml)", fieldsOutput)
		}
	},
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit an expression interactively with autocomplete",
	Long: `Edit opens an interactive prompt with field, operator, value, and function
suggestions. Tab accepts the highlighted suggestion, Ctrl+Space forces the
popup open, Enter submits the expression, Esc leaves without printing.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		run := runParams()
		cat, err := loadCatalog(run.FacetsPath)
		if err != nil {
			return err
		}

		engine := completion.NewEngine(cat)
		ctrl := completion.NewController(engine, completion.WithMinTrigger(minTrigger))
		editor := ui.NewEditor(ctrl, initialExpr)
		editor.SetNoColor(run.NoColor)

		final, err := tea.NewProgram(editor).Run()
		if err != nil {
			return fmt.Errorf("running editor: %w", err)
		}
		ed, ok := final.(*ui.Editor)
		if !ok || !ed.Submitted() {
			return nil
		}
		fmt.Fprintln(os.Stdout, ed.Result())
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print auditexpr version",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Fprintf(os.Stdout, "%s %s (commit %s, built %s)\n",
			settings.CliBinaryName,
			settings.VersionInformation.BuildVersion,
			settings.VersionInformation.Commit,
			settings.VersionInformation.BuildTime,
		)
		return nil
	},
}

// mergeFlagState folds dimension flags into the (possibly file-seeded) state.
// Flag values append after file values so selection order stays predictable.
func mergeFlagState(state *compiler.State) {
	appendSelection := func(id string, values []string) {
		if len(values) == 0 {
			return
		}
		if state.Selections == nil {
			state.Selections = map[string][]string{}
		}
		state.Selections[id] = append(state.Selections[id], values...)
	}
	appendSelection("verb", verbValues)
	appendSelection("namespace", nsValues)
	appendSelection("resource", resValues)
	appendSelection("user", userValues)
	appendSelection("status", statusValues)

	if nameTerm != "" {
		if state.Terms == nil {
			state.Terms = map[string]string{}
		}
		state.Terms["name"] = nameTerm
	}
	if customClause != "" {
		state.Custom = customClause
	}
}

// runParams returns the settings for this execution, falling back to
// defaults when invoked outside a cobra run.
func runParams() *settings.Run {
	if run, ok := settings.FromContext(rootCtx); ok {
		return run
	}
	return settings.NewCliParams()
}

// loadCatalog returns the default catalog, refreshed from a facet payload
// when one is given.
func loadCatalog(facetsFile string) (*catalog.Catalog, error) {
	cat := catalog.Default()
	if facetsFile == "" {
		return cat, nil
	}
	payload, err := facets.LoadFile(facetsFile)
	if err != nil {
		return nil, err
	}
	logger.FromContext(rootCtx).V(1).Info("applied facet payload", "path", facetsFile, "fields", len(payload))
	return facets.Apply(cat, payload), nil
}

type fieldDoc struct {
	Name         string   `json:"name" yaml:"name"`
	Type         string   `json:"type" yaml:"type"`
	Description  string   `json:"description" yaml:"description"`
	Examples     []string `json:"examples,omitempty" yaml:"examples,omitempty"`
	CommonValues []string `json:"commonValues,omitempty" yaml:"commonValues,omitempty"`
}

func fieldDocs(cat *catalog.Catalog) []fieldDoc {
	fields := cat.Fields()
	out := make([]fieldDoc, 0, len(fields))
	for _, f := range fields {
		out = append(out, fieldDoc{
			Name:         f.Name,
			Type:         string(f.Type),
			Description:  f.Description,
			Examples:     f.Examples,
			CommonValues: f.CommonValues,
		})
	}
	return out
}

func printFieldsJSON(cat *catalog.Catalog) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(fieldDocs(cat))
}

func printFieldsYAML(cat *catalog.Catalog) error {
	data, err := yaml.Marshal(fieldDocs(cat))
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func printFieldsTable(cat *catalog.Catalog) {
	width := detectTerminalWidth()

	header := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	if runParams().NoColor {
		header = lipgloss.NewStyle()
		dim = lipgloss.NewStyle()
	}

	nameWidth := 0
	typeWidth := 0
	for _, f := range cat.Fields() {
		if len(f.Name) > nameWidth {
			nameWidth = len(f.Name)
		}
		if len(string(f.Type)) > typeWidth {
			typeWidth = len(string(f.Type))
		}
	}

	fmt.Fprintln(os.Stdout, header.Render(pad("FIELD", nameWidth)+"  "+pad("TYPE", typeWidth)+"  DESCRIPTION"))
	for _, f := range cat.Fields() {
		desc := f.Description
		maxDesc := width - nameWidth - typeWidth - 4
		if maxDesc > 3 && len(desc) > maxDesc {
			desc = desc[:maxDesc-1] + "…"
		}
		fmt.Fprintln(os.Stdout, pad(f.Name, nameWidth)+"  "+dim.Render(pad(string(f.Type), typeWidth))+"  "+desc)
	}
}

func pad(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

// detectTerminalWidth probes stdout, stderr, and stdin, then the COLUMNS
// variable, before falling back to a generous default for CI pipes.
func detectTerminalWidth() int {
	fds := []uintptr{os.Stdout.Fd(), os.Stderr.Fd(), os.Stdin.Fd()}
	for _, fd := range fds {
		if w, _, err := term.GetSize(int(fd)); err == nil && w > 0 {
			return w
		}
	}
	if col := os.Getenv("COLUMNS"); col != "" {
		if w, err := strconv.Atoi(col); err == nil && w > 0 {
			return w
		}
	}
	return defaultFallbackTermWidth
}

func init() {
	// Accept snake_case spellings of flags for parity with the dashboard's
	// query parameters.
	rootCmd.SetGlobalNormalizationFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	compileCmd.Flags().StringVarP(&statePath, "state", "s", "", "filter-state document (JSON/YAML/TOML, - for stdin)")
	compileCmd.Flags().StringSliceVar(&verbValues, "verb", nil, "API verbs to match")
	compileCmd.Flags().StringSliceVar(&nsValues, "namespace", nil, "namespaces to match")
	compileCmd.Flags().StringSliceVar(&resValues, "resource", nil, "resource kinds to match")
	compileCmd.Flags().StringSliceVar(&userValues, "user", nil, "usernames to match")
	compileCmd.Flags().StringSliceVar(&statusValues, "status", nil, "response status codes to match")
	compileCmd.Flags().StringVar(&nameTerm, "name", "", "partial object name to match")
	compileCmd.Flags().StringVar(&customClause, "custom", "", "raw expression clause appended verbatim")
	compileCmd.Flags().BoolVar(&checkExpr, "check", false, "type-check the compiled expression before printing")

	fieldsCmd.Flags().StringVarP(&fieldsOutput, "output", "o", "table", "output format: table|json|yaml")
	fieldsCmd.Flags().StringVar(&facetsPath, "facets", "", "facet payload to derive common values from")

	editCmd.Flags().StringVarP(&initialExpr, "expr", "e", "", "initial expression")
	editCmd.Flags().StringVar(&facetsPath, "facets", "", "facet payload to derive common values from")
	editCmd.Flags().IntVar(&minTrigger, "min-trigger", 0, "minimum text length before suggestions open on their own")

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
