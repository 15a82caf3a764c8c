package commands

import (
	"encoding/json"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/jpoet/errors"
	"github.com/teranos/jpoet/version"
)

func newVersionCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show jpoet version information",
		Long:  `Display version, build time, commit hash, and platform information for the jpoet binary.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if jsonOutput {
				output, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return errors.Wrap(err, "failed to format version as JSON")
				}
				pterm.Println(string(output))
				return nil
			}
			pterm.Println(info.String())
			pterm.Printfln("Platform: %s", info.Platform)
			pterm.Printfln("Go: %s", info.GoVersion)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output version info as JSON")
	return cmd
}
