package commands

import (
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/jpoet/code/javagen"
	"github.com/teranos/jpoet/errors"
)

// ErrOutOfDate is returned by check when the generated tree differs from a
// fresh generation.
var ErrOutOfDate = errors.New("generated Java is out of date")

func newCheckCmd(g *globals) *cobra.Command {
	f := &genFlags{}
	var showDiff bool
	cmd := &cobra.Command{
		Use:   "check [packages...]",
		Short: "Check that generated Java is up to date",
		Long: `Generate into a temporary directory and compare with the existing tree.

Comment lines carrying source versions or timestamps are ignored. Files
that differ, are missing, or are no longer generated are listed.

Exit codes:
  0 - Generated Java is up to date
  1 - Out of date (or an error occurred)

Examples:
  jpoet check                  # Compare with generate.output_dir
  jpoet check -o src/main/java --diff`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			req, err := f.request(cmd, cfg, args)
			if err != nil {
				return err
			}

			tempDir, err := os.MkdirTemp("", "jpoet-check-*")
			if err != nil {
				return errors.Wrap(err, "failed to create temp directory")
			}
			defer os.RemoveAll(tempDir)

			files, err := javagen.New(req.opts, nil).Generate(cmd.Context(), req.dir, req.patterns...)
			if err != nil {
				return err
			}
			for _, file := range files {
				if _, err := file.WriteToDir(tempDir); err != nil {
					return err
				}
			}

			result, err := javagen.CompareDirectories(tempDir, req.output)
			if err != nil {
				return errors.Wrap(err, "failed to compare directories")
			}
			if result.UpToDate {
				pterm.Success.Printfln("%s is up to date (%d files)", req.output, len(files))
				return nil
			}

			data := pterm.TableData{{"File", "Status"}}
			for _, path := range result.Files() {
				status := "changed"
				if contains(result.Missing, path) {
					status = "missing"
				} else if contains(result.Stale, path) {
					status = "stale"
				}
				data = append(data, []string{path, status})
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
				return errors.Wrap(err, "failed to render table")
			}

			if showDiff {
				for _, path := range result.Files() {
					diff, ok := result.Changed[path]
					if !ok {
						continue
					}
					pterm.DefaultSection.Println(path)
					for _, line := range strings.SplitAfter(diff, "\n") {
						switch {
						case strings.HasPrefix(line, "+"):
							pterm.Print(pterm.FgGreen.Sprint(line))
						case strings.HasPrefix(line, "-"):
							pterm.Print(pterm.FgRed.Sprint(line))
						default:
							pterm.Print(line)
						}
					}
				}
			}

			return errors.WithHint(
				errors.Wrapf(ErrOutOfDate, "%d files differ in %s", len(result.Files()), req.output),
				"run 'jpoet gen' to regenerate")
		},
	}
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Source root to compare with (default: generate.output_dir)")
	cmd.Flags().StringVar(&f.javaPackage, "java-package", "", "Java package of the generated types (default: generate.java_package)")
	cmd.Flags().StringVar(&f.dir, "dir", ".", "Directory package patterns are resolved against")
	cmd.Flags().BoolVarP(&showDiff, "diff", "d", false, "Show a line diff for each changed file")
	return cmd
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
