package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/grafana/grafana-sub060/internal/cli"
)

var (
	validateJobs int
	normalizeOut string
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|dir>...",
	Short: "Check that dashboard documents load",
	Long: `Migrate and build every document given. Directories are expanded to the
*.json files they contain. The command fails when any document is rejected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <file>",
	Short: "Print the current form of a dashboard document",
	Long: `Migrate a document, build it and serialize it back. The output is what
saving the loaded dashboard would store. Use '-' to read standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(normalizeCmd)

	validateCmd.Flags().IntVarP(&validateJobs, "jobs", "j", 0, "documents checked in parallel (default GOMAXPROCS)")
	normalizeCmd.Flags().StringVarP(&normalizeOut, "out", "o", "", "write to file instead of stdout")
}

// expandPaths replaces directories by the JSON documents inside them.
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", arg, err)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

func runValidate(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	paths, err := expandPaths(args)
	if err != nil {
		return err
	}

	results, err := cli.ValidateFiles(a.Ctx(), paths, validateJobs)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}

	if a.JSONOutput() {
		if err := cli.WriteJSON(os.Stdout, results); err != nil {
			return err
		}
	} else {
		rows := make([][]string, 0, len(results))
		for _, r := range results {
			status := a.Theme.SuccessStyle.Render("ok")
			detail := r.Title
			if !r.OK() {
				status = a.Theme.ErrorStyle.Render("invalid")
				if !r.Structural {
					status = a.Theme.ErrorStyle.Render("error")
				}
				detail = r.Error
			}
			rows = append(rows, []string{r.Path, status, strconv.Itoa(r.SchemaVersion), strconv.Itoa(r.Panels), detail})
		}
		fmt.Println(a.Theme.Table([]string{"Path", "Status", "Schema", "Panels", "Detail"}, rows))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(results))
	}
	if !a.JSONOutput() {
		fmt.Println(a.Theme.Success("%d documents valid", len(results)))
	}
	return nil
}

func runNormalize(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	res := cli.ValidateFile(a.Ctx(), args[0])
	if !res.OK() {
		return fmt.Errorf("%s: %s", res.Path, res.Error)
	}
	if err := cli.WriteDocumentFile(os.Stdout, normalizeOut, res.Normalized); err != nil {
		return err
	}
	if normalizeOut != "" && normalizeOut != cli.Stdin {
		fmt.Println(a.Theme.Success("Wrote %s", normalizeOut))
	}
	return nil
}
