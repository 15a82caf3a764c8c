package commands

import (
	"bytes"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/jpoet/emit/decl"
	"github.com/teranos/jpoet/model"
)

func newRenderCmd(g *globals) *cobra.Command {
	var (
		output string
		stdout bool
	)
	cmd := &cobra.Command{
		Use:   "render <model.yaml>...",
		Short: "Render Java files from YAML models",
		Long: `Render the types declared in YAML model files.

A model names one Java package and its top-level types. Types, fields and
methods take modifiers, javadoc and annotations; method bodies are code
templates with named arguments:

  package: com.example
  types:
    - name: Greeter
      modifiers: [public, final]
      methods:
        - name: greet
          modifiers: [public, static]
          params: [{name: who, type: String}]
          types: {out: java.lang.System}
          body:
            - $out:T.out.println("Hello, " + who)

Examples:
  jpoet render api.yaml                 # Write under generate.output_dir
  jpoet render api.yaml -o src/main/java
  jpoet render api.yaml --stdout`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			root := cfg.Generate.OutputDir
			if output != "" {
				root = output
			}

			var files []decl.File
			for _, path := range args {
				doc, err := model.Load(path)
				if err != nil {
					return err
				}
				built, err := model.Build(doc, cfg.Emit)
				if err != nil {
					return err
				}
				files = append(files, built...)
			}

			if stdout {
				for _, file := range files {
					content, err := render(file)
					if err != nil {
						return err
					}
					pterm.Print(content)
				}
				return nil
			}

			paths, err := writeFiles(g, files, root)
			if err != nil {
				return err
			}
			pterm.Success.Printfln("Rendered %d files in %s", len(paths), root)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Source root to write into (default: generate.output_dir)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print the rendered files instead of writing them")
	return cmd
}

// render returns the text of file.
func render(file decl.File) (string, error) {
	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
