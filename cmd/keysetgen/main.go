// Command keysetgen is the build-script collaborator spec.md §6
// describes: it reads a YAML fixture of key/value literals, runs the
// same analyzer package keyset uses at runtime, and emits a Go source
// file that constructs the resulting Map from a baked-in Plan literal
// and a static entries array — so the program that imports the
// generated file pays the analyzer's cost once, at generation time,
// never at startup.
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "keysetgen",
		Short: "Generate a statically-analyzed keyset.Map from a YAML fixture",
	}
	root.AddCommand(newGenerateCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Analyze a fixture and write the generated Go source",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, in, out)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "path to the YAML fixture (required)")
	cmd.Flags().StringVar(&out, "out", "", "path to write the generated Go source (required)")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")
	return cmd
}

func runGenerate(cmd *cobra.Command, in, out string) error {
	f, err := loadFixture(in)
	if err != nil {
		return err
	}

	result, err := analyzeFixture(f)
	if err != nil {
		return err
	}

	src, err := render(result)
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "keysetgen: %s keys -> %s (table size %s) written to %s\n",
		humanize.Comma(int64(len(f.Entries))), result.plan.Variant, humanize.Comma(int64(result.plan.TableSize)), out)
	return nil
}
