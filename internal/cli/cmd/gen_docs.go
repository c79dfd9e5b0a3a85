package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

type docFormat struct {
	dir string
	gen func(root *cobra.Command, dir string) error
}

var docFormats = map[string]docFormat{
	"man": {dir: "man", gen: func(root *cobra.Command, dir string) error {
		now := time.Now()
		return doc.GenManTree(root, &doc.GenManHeader{
			Title:   "DASHCTL",
			Section: "1",
			Source:  "dashctl",
			Manual:  "dashctl Manual",
			Date:    &now,
		}, dir)
	}},
	"markdown": {dir: "docs", gen: doc.GenMarkdownTree},
	"rest":     {dir: "docs", gen: doc.GenReSTTree},
}

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate reference docs for every command",
	Long: `Write one page per command in the chosen format.

Examples:
  dashctl gen-docs                        # man pages in ./man
  dashctl gen-docs --format markdown      # markdown in ./docs
  dashctl gen-docs -f rest -o /tmp/ref`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory (default depends on format)")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "man, markdown or rest")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	format, ok := docFormats[genDocsFormat]
	if !ok {
		names := make([]string, 0, len(docFormats))
		for name := range docFormats {
			names = append(names, name)
		}
		slices.Sort(names)
		return fmt.Errorf("unsupported format %q (use: %s)", genDocsFormat, strings.Join(names, ", "))
	}

	dir := genDocsOutputDir
	if dir == "" {
		dir = format.dir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	rootCmd.DisableAutoGenTag = true
	if err := format.gen(rootCmd, dir); err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	fmt.Printf("Generated %d %s pages in %s\n", len(entries), genDocsFormat, dir)
	return nil
}
