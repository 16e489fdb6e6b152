// Package cli implements the declx command line: it reads one JSON document,
// runs a single collection operation over it and prints the JSON result.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/hasbyte1/go-declarative-utils/arr"
	"github.com/hasbyte1/go-declarative-utils/collections"
)

// Version is reported by `declx --version`.
const Version = "0.3.0"

// Options holds the flags shared by every sub-command.
type Options struct {
	Input     string
	Select    string
	Pretty    bool
	Verbosity int

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    logr.Logger
}

// NewRootCmd builds the declx command tree writing to the given streams.
func NewRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &Options{stdin: stdin, stdout: stdout, stderr: stderr, log: logr.Discard()}

	root := &cobra.Command{
		Use:     "declx",
		Short:   "Run declarative collection operations over JSON documents",
		Version: Version,
		Long: `declx reads a JSON document from a file or stdin, applies one operation and
prints the result as JSON. Object member order is preserved.

Examples:

  echo '[3,1,3,2]' | declx unique
  declx group-by team -i people.json --pretty
  declx sort-by severity --order high,low,medium -i tasks.json
  echo '[{"a":1},{"a":2}]' | declx merge --strategy throw`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.log = newLogger(opts.stderr, opts.Verbosity)
			collections.SetLogger(opts.log)
			collections.Install(collections.WithLogger(opts.log))
			return nil
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&opts.Input, "input", "i", "-", "JSON input file (- for stdin)")
	root.PersistentFlags().StringVarP(&opts.Select, "select", "s", "", "dot path of the sub-document to operate on")
	root.PersistentFlags().BoolVarP(&opts.Pretty, "pretty", "p", false, "indent the JSON output")
	root.PersistentFlags().IntVarP(&opts.Verbosity, "verbose", "v", 0, "log verbosity written to stderr (0-4)")

	root.AddCommand(
		simpleCmd(opts, "unique", "Drop deeply-equal duplicates, keeping first occurrences", "unique"),
		simpleCmd(opts, "present", "Drop null items", "present"),
		simpleCmd(opts, "not-empty", `Drop null, "", [] and {} items`, "notEmpty"),
		simpleCmd(opts, "flat", "Flatten one level of nested arrays", "flat"),
		simpleCmd(opts, "keys", "List the member names of an object", "keys"),
		simpleCmd(opts, "values", "List the member values of an object", "values"),
		simpleCmd(opts, "entries", "List the members of an object as {key, value} pairs", "entries"),
		keyCmd(opts, "unique-by PATH", "Keep the first item for each distinct value at PATH", "uniqueBy"),
		keyCmd(opts, "group-by PATH", "Group items by the string at PATH", "groupBy"),
		toObjectCmd(opts),
		mergeCmd(opts),
		keysCmd(opts, "ascending-by [PATH...]", "Sort ascending by each PATH in turn", "ascendingBy"),
		keysCmd(opts, "descending-by [PATH...]", "Sort descending by each PATH in turn", "descendingBy"),
		orderedByCmd(opts),
		sortByCmd(opts),
		dotCmd(opts),
		undotCmd(opts),
	)
	return root
}

// Execute runs declx against the process streams and returns the exit code.
func Execute() int {
	cmd := NewRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "declx:", err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintln(w, prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: verbosity})
}

// ─────────────────────────────────────────────────────────────────────────────
// Sub-commands
// ─────────────────────────────────────────────────────────────────────────────

func simpleCmd(opts *Options, use, short, op string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return opts.run(op)
		},
	}
}

func keyCmd(opts *Options, use, short, op string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return opts.run(op, args[0])
		},
	}
}

func keysCmd(opts *Options, use, short, op string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(_ *cobra.Command, args []string) error {
			return opts.run(op, stringArgs(args)...)
		},
	}
}

func toObjectCmd(opts *Options) *cobra.Command {
	var value string
	cmd := &cobra.Command{
		Use:   "to-object PATH",
		Short: "Index items by the unique string at PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if value != "" {
				return opts.run("toObject", args[0], value)
			}
			return opts.run("toObject", args[0])
		},
	}
	cmd.Flags().StringVar(&value, "value", "", "store the value at this path instead of the item")
	return cmd
}

func mergeCmd(opts *Options) *cobra.Command {
	var strategy string
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge an array of objects into one object",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := collections.ParseMergeStrategy(strategy)
			if err != nil {
				return err
			}
			return opts.run("merge", st)
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", collections.MergeOverride.String(),
		"collision policy: override, keep-first or throw")
	return cmd
}

func orderedByCmd(opts *Options) *cobra.Command {
	var order string
	cmd := &cobra.Command{
		Use:   "ordered-by",
		Short: "Sort items by their position in --order; others keep their order at the end",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			values, err := parseOrder(order)
			if err != nil {
				return err
			}
			return opts.run("orderedBy", values)
		},
	}
	cmd.Flags().StringVar(&order, "order", "", "comma-separated values or a JSON array")
	_ = cmd.MarkFlagRequired("order")
	return cmd
}

func sortByCmd(opts *Options) *cobra.Command {
	var orders []string
	cmd := &cobra.Command{
		Use:   "sort-by PATH...",
		Short: "Sort by each PATH in turn, ranking values by the matching --order",
		Long: `Sort by each PATH in turn. The n-th --order flag gives the enumeration for
the n-th PATH; paths without one compare naturally in ascending order.

  declx sort-by severity name --order high,low,medium`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(orders) > len(args) {
				return fmt.Errorf("%d --order flags for %d paths", len(orders), len(args))
			}
			var callArgs []any
			for i, path := range args {
				callArgs = append(callArgs, path)
				if i < len(orders) {
					values, err := parseOrder(orders[i])
					if err != nil {
						return err
					}
					callArgs = append(callArgs, values)
				}
			}
			return opts.run("sortBy", callArgs...)
		},
	}
	cmd.Flags().StringArrayVar(&orders, "order", nil, "enumeration for the matching PATH (repeatable)")
	return cmd
}

func dotCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "dot",
		Short: "Flatten a nested object into dot-path keys",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			m, err := opts.readMap()
			if err != nil {
				return err
			}
			return opts.write(collections.FromMap(arr.Dot(m)))
		},
	}
}

func undotCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "undot",
		Short: "Expand dot-path keys into nested objects",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			m, err := opts.readMap()
			if err != nil {
				return err
			}
			return opts.write(arr.Undot(m))
		},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Plumbing
// ─────────────────────────────────────────────────────────────────────────────

func (o *Options) run(op string, args ...any) error {
	doc, size, err := o.read()
	if err != nil {
		return err
	}
	ext, err := collections.Extend(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	out, err := ext.Call(op, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	o.log.V(1).Info("operation finished", "op", op, "input", humanize.Bytes(uint64(size)),
		"items", humanize.Comma(int64(count(out))))
	if l := o.log.V(4); l.Enabled() {
		l.Info("result", "dump", dump(out))
	}
	return o.write(out)
}

// dump renders v with type annotations for trace logging.
func dump(v any) string {
	var b strings.Builder
	switch r := v.(type) {
	case *collections.Sequence[any]:
		r.Dump(&b)
	case *collections.Object[any]:
		r.Dump(&b)
	default:
		spew.Fdump(&b, v)
	}
	return b.String()
}

// read parses the input document, narrowed to --select when given.
func (o *Options) read() (any, int, error) {
	raw, err := o.readRaw()
	if err != nil {
		return nil, 0, err
	}
	doc, err := collections.ParseJSON(raw)
	if err != nil {
		return nil, 0, err
	}
	if o.Select != "" {
		sub, ok := arr.Lookup(doc, o.Select)
		if !ok {
			return nil, 0, fmt.Errorf("path %q not found", o.Select)
		}
		doc = sub
	}
	return doc, len(raw), nil
}

func (o *Options) readRaw() ([]byte, error) {
	var r io.Reader = o.stdin
	if o.Input != "" && o.Input != "-" {
		f, err := os.Open(o.Input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return raw, nil
}

// readMap reads the input as a plain nested map, narrowed to --select the
// same way as every other command.
func (o *Options) readMap() (map[string]any, error) {
	doc, _, err := o.read()
	if err != nil {
		return nil, err
	}
	obj, ok := doc.(*collections.Object[any])
	if !ok {
		return nil, fmt.Errorf("%w: expected object", collections.ErrInvalidJSON)
	}
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", collections.ErrInvalidJSON, err)
	}
	return m, nil
}

func (o *Options) write(v any) error {
	out, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if o.Pretty {
		out = pretty.PrettyOptions(out, &pretty.Options{Width: 80, Indent: "  "})
	} else {
		out = append(out, '\n')
	}
	_, err = o.stdout.Write(out)
	return err
}

func count(v any) int {
	if l, ok := v.(interface{ Len() int }); ok {
		return l.Len()
	}
	return 1
}

// parseOrder accepts a JSON array, so that numbers and booleans can be
// ranked, or a comma-separated list of strings.
func parseOrder(s string) ([]any, error) {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "[") {
		v, err := collections.ParseJSON([]byte(trimmed))
		if err != nil {
			return nil, fmt.Errorf("--order: %w", err)
		}
		list, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("--order: %w: expected array", collections.ErrInvalidJSON)
		}
		return list, nil
	}
	if trimmed == "" {
		return []any{}, nil
	}
	return stringArgs(strings.Split(trimmed, ",")), nil
}

func stringArgs(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
