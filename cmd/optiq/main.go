// optiq is the command-line entry point for the rewrite engine,
// grounded on the teacher's cmd/morfx/main.go (pflag-built Config,
// stdin/stdout plumbing, unified-diff output) but restructured around
// spf13/cobra's Command tree the way the teacher's own test suite
// exercises an "mcp" subcommand under a cobra root.
package main

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/oxhq/optiq/internal/astio"
	"github.com/oxhq/optiq/internal/diag"
	"github.com/oxhq/optiq/internal/diagstore"
	"github.com/oxhq/optiq/internal/options"
	"github.com/oxhq/optiq"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "optiq",
		Short: "Pattern-driven AST rewrite optimizer",
	}
	root.AddCommand(newRunCmd(), newBatchCmd())
	return root
}

type sharedFlags struct {
	unsafeMath   bool
	unsafeObject bool
	envPath      string
	diffOutput   bool
	diagstorePath string
}

func addSharedFlags(cmd *cobra.Command, f *sharedFlags) {
	cmd.Flags().BoolVar(&f.unsafeMath, "unsafe-math", false, "Allow rewrites that can change floating-point edge-case behavior.")
	cmd.Flags().BoolVar(&f.unsafeObject, "unsafe-object", false, "Allow rewrites gated as unsafe for non-primitive operands.")
	cmd.Flags().StringVar(&f.envPath, "env", "", "Path to a .env file overriding the unsafe gates.")
	cmd.Flags().BoolVarP(&f.diffOutput, "diff", "D", false, "Print a unified diff of the before/after AST JSON.")
	cmd.Flags().StringVar(&f.diagstorePath, "diagstore", "", "Path to a sqlite database to persist diagnostics into.")
}

func (f *sharedFlags) resolveOptions() options.Options {
	return options.Load(f.envPath, ptrIf(f.unsafeMath), ptrIf(f.unsafeObject))
}

func ptrIf(v bool) *bool {
	if !v {
		return nil
	}
	return &v
}

func newRunCmd() *cobra.Command {
	var f sharedFlags
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Optimize a single AST JSON file (or stdin) and print the result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "<stdin>"
			r := os.Stdin
			if len(args) == 1 {
				source = args[0]
				file, err := os.Open(source)
				if err != nil {
					return fmt.Errorf("opening %s: %w", source, err)
				}
				defer file.Close()
				r = file
			}
			return runOne(cmd, source, r, &f)
		},
	}
	addSharedFlags(cmd, &f)
	return cmd
}

func runOne(cmd *cobra.Command, source string, r *os.File, f *sharedFlags) error {
	before, err := astio.Decode(r)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", source, err)
	}
	beforeJSON, err := astio.Marshal(before)
	if err != nil {
		return fmt.Errorf("re-encoding %s for diffing: %w", source, err)
	}

	opts := f.resolveOptions()
	rec, errCount := optiq.Optimize(before, opts)
	afterJSON, err := astio.Marshal(before)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	printDiagnostics(cmd, source, rec)
	if err := persist(f, source, opts, string(beforeJSON) != string(afterJSON), rec); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to persist diagnostics: %v\n", err)
	}

	if f.diffOutput {
		if err := printUnifiedDiff(cmd, source, beforeJSON, afterJSON); err != nil {
			return err
		}
	} else if err := astio.Encode(cmd.OutOrStdout(), before); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	if errCount > 0 {
		return fmt.Errorf("%s: %d error diagnostic(s)", source, errCount)
	}
	return nil
}

func newBatchCmd() *cobra.Command {
	var f sharedFlags
	cmd := &cobra.Command{
		Use:   "batch [glob]",
		Short: "Optimize every AST JSON fixture matching a doublestar glob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := doublestar.FilepathGlob(args[0])
			if err != nil {
				return fmt.Errorf("expanding glob %q: %w", args[0], err)
			}
			if len(matches) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "no files matched %q\n", args[0])
				return nil
			}

			var failures int
			for _, path := range matches {
				file, err := os.Open(path)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s: %v\n", path, err)
					failures++
					continue
				}
				if err := runOne(cmd, path, file, &f); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s: %v\n", path, err)
					failures++
				} else {
					fmt.Fprintf(cmd.ErrOrStderr(), "✓ %s\n", path)
				}
				file.Close()
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d files had errors", failures, len(matches))
			}
			return nil
		},
	}
	addSharedFlags(cmd, &f)
	return cmd
}

func printDiagnostics(cmd *cobra.Command, source string, rec *diag.Recorder) {
	for _, d := range rec.Entries() {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: [%s] %s: %s (%s:%d:%d)\n",
			source, d.Severity, d.Code, d.Message, d.Position.Filename, d.Position.Line, d.Position.Column)
	}
}

func printUnifiedDiff(cmd *cobra.Command, source string, before, after []byte) error {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: source + " (before)",
		ToFile:   source + " (after)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("building diff: %w", err)
	}
	_, err = cmd.OutOrStdout().Write([]byte(text))
	return err
}

func persist(f *sharedFlags, source string, opts options.Options, changed bool, rec *diag.Recorder) error {
	if f.diagstorePath == "" {
		return nil
	}
	store, err := diagstore.Open(f.diagstorePath, false)
	if err != nil {
		return err
	}
	defer store.Close()
	_, err = store.RecordRun(source, opts.UnsafeMath, opts.UnsafeObject, changed, rec)
	return err
}
