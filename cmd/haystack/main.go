// Package main contains the cli implementation of the tool. It uses cobra
// package for cli tool implementation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"haystack/internal/core"
	"haystack/internal/csvcodec"
	"haystack/internal/filter"
	"haystack/internal/jsoncodec"
	"haystack/internal/rangeutil"
	"haystack/internal/tz"
	"haystack/internal/zinc"
)

type convertFlags struct {
	from    string
	to      string
	outFile string
}

type filterFlags struct {
	expr string
}

type rangeFlags struct {
	input  string
	tzName string
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "haystack",
		Short: "Haystack data model, codec, and filter tool",
	}

	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(filterCmd())
	rootCmd.AddCommand(rangeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func convertCmd() *cobra.Command {
	flags := &convertFlags{}
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a grid between zinc, json, and csv",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runConvert(args[0], flags)
		},
	}
	cmd.Flags().StringVar(&flags.from, "from", "", "Source format: zinc, json, or csv (default: inferred from extension)")
	cmd.Flags().StringVarP(&flags.to, "to", "t", "zinc", "Target format: zinc, json, or csv")
	cmd.Flags().StringVarP(&flags.outFile, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

func runConvert(path string, flags *convertFlags) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	from := flags.from
	if from == "" {
		from = inferFormat(path)
	}

	g, err := parseGrid(string(content), from)
	if err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}
	printInfo(fmt.Sprintf("parsed %d rows, %d columns as %s", g.NumRows(), g.NumCols(), from))

	out, err := dumpGrid(g, flags.to)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return writeOutput(out, flags.outFile)
}

func filterCmd() *cobra.Command {
	flags := &filterFlags{}
	cmd := &cobra.Command{
		Use:   "filter <file>",
		Short: "Select rows from a zinc grid matching a filter expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runFilter(args[0], flags)
		},
	}
	cmd.Flags().StringVarP(&flags.expr, "expr", "e", "", "Filter expression (required)")
	return cmd
}

func runFilter(path string, flags *filterFlags) error {
	if flags.expr == "" {
		return fmt.Errorf("--expr is required")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	g, err := zinc.ParseGrid(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse grid: %w", err)
	}
	expr, err := filter.Parse(flags.expr)
	if err != nil {
		return fmt.Errorf("failed to parse filter expression: %w", err)
	}

	lookup := gridLookup(g)
	matched := 0
	for _, row := range g.Rows() {
		if filter.Eval(expr, row, lookup) {
			matched++
			fmt.Println(row.String())
		}
	}
	printInfo(fmt.Sprintf("%d of %d rows matched", matched, g.NumRows()))
	return nil
}

// gridLookup resolves a Ref to the row whose "id" tag equals the ref name,
// giving the filter evaluator path traversal across rows of a single grid.
func gridLookup(g *core.Grid) filter.Lookup {
	return func(ref core.Ref) (*core.Dict, bool) {
		for _, row := range g.Rows() {
			id, ok := row.Get("id")
			if !ok {
				continue
			}
			idRef, ok := id.(core.Ref)
			if ok && idRef.Name == ref.Name {
				return row, true
			}
		}
		return nil, false
	}
}

func rangeCmd() *cobra.Command {
	flags := &rangeFlags{}
	cmd := &cobra.Command{
		Use:   "range <input>",
		Short: "Resolve a date-range shortcut (today, yesterday, a date, or a pair) into [start, end)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			flags.input = args[0]
			return runRange(flags)
		},
	}
	cmd.Flags().StringVar(&flags.tzName, "tz", "UTC", "Timezone for relative shortcuts (today, yesterday)")
	return cmd
}

func runRange(flags *rangeFlags) error {
	loc, err := tz.Load(flags.tzName)
	if err != nil {
		return fmt.Errorf("failed to resolve timezone %q: %w", flags.tzName, err)
	}
	r, err := rangeutil.Resolve(flags.input, loc)
	if err != nil {
		return fmt.Errorf("failed to resolve range: %w", err)
	}
	if r.Unbounded {
		fmt.Println("(-inf, +inf)")
		return nil
	}
	fmt.Printf("[%s, %s)\n", r.Start.String(), r.End.String())
	return nil
}

func inferFormat(path string) string {
	switch {
	case hasSuffix(path, ".json"):
		return "json"
	case hasSuffix(path, ".csv"):
		return "csv"
	default:
		return "zinc"
	}
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

func parseGrid(content, format string) (*core.Grid, error) {
	switch format {
	case "json":
		return jsoncodec.ParseGrid([]byte(content))
	case "csv":
		return csvcodec.ParseGrid(content)
	default:
		return zinc.ParseGrid(content)
	}
}

func dumpGrid(g *core.Grid, format string) (string, error) {
	switch format {
	case "json":
		data, err := jsoncodec.DumpGrid(g)
		return string(data), err
	case "csv":
		return csvcodec.DumpGrid(g)
	default:
		return zinc.DumpGrid(g), nil
	}
}

func printInfo(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
}

func writeOutput(content, outFile string) error {
	if outFile == "" {
		fmt.Print(content)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	printInfo(fmt.Sprintf("output saved to %s", outFile))
	return nil
}
