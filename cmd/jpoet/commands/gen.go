package commands

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/jpoet/code/javagen"
	"github.com/teranos/jpoet/config"
	"github.com/teranos/jpoet/emit/decl"
	"github.com/teranos/jpoet/errors"
	"github.com/teranos/jpoet/logger"
)

type genFlags struct {
	output      string
	javaPackage string
	getters     bool
	noGetters   bool
	dryRun      bool
	watch       bool
	dir         string
}

func newGenCmd(g *globals) *cobra.Command {
	f := &genFlags{}
	cmd := &cobra.Command{
		Use:   "gen [packages...]",
		Short: "Generate Java classes from Go types",
		Long: `Generate Java source from the exported structs and string enums of Go packages.

Structs become classes, string types with constants become enums with
getValue and fromValue. Field names follow json tags; a java tag
overrides them:

  Name  string ` + "`json:\"name\"`" + `
  Raw   []byte ` + "`java:\"payload,transient\" javatype:\"byte[]\"`" + `
  Count int    ` + "`json:\",omitempty\"`" + `     // boxed: Integer

Packages default to generate.packages from jpoet.toml. After writing,
generate.post_generate runs with the written files as arguments.

Examples:
  jpoet gen ./internal/model/...
  jpoet gen ./api -o src/main/java --java-package com.acme.api
  jpoet gen --dry-run ./api          # Print instead of writing
  jpoet gen --watch                  # Regenerate on every change`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, g, f, args)
		},
	}
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Source root to write into (default: generate.output_dir)")
	cmd.Flags().StringVar(&f.javaPackage, "java-package", "", "Java package of the generated types (default: generate.java_package)")
	cmd.Flags().BoolVar(&f.getters, "getters", false, "Emit private final fields with a constructor and getters")
	cmd.Flags().BoolVar(&f.noGetters, "no-getters", false, "Emit public mutable fields")
	cmd.Flags().BoolVarP(&f.dryRun, "dry-run", "n", false, "Print the generated files instead of writing them")
	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "Regenerate whenever the Go sources or jpoet.toml change")
	cmd.Flags().StringVar(&f.dir, "dir", ".", "Directory package patterns are resolved against")
	cmd.MarkFlagsMutuallyExclusive("getters", "no-getters")
	cmd.MarkFlagsMutuallyExclusive("dry-run", "watch")
	return cmd
}

// genRequest is everything one generation run needs.
type genRequest struct {
	opts         javagen.Options
	dir          string
	patterns     []string
	output       string
	postGenerate string
	stdout       io.Writer
	stderr       io.Writer
}

func (f *genFlags) request(cmd *cobra.Command, cfg *config.Config, args []string) (genRequest, error) {
	req := genRequest{
		opts:         javagen.OptionsFromConfig(cfg),
		dir:          f.dir,
		patterns:     args,
		output:       cfg.Generate.OutputDir,
		postGenerate: cfg.Generate.PostGenerate,
		stdout:       cmd.OutOrStdout(),
		stderr:       cmd.ErrOrStderr(),
	}
	if len(req.patterns) == 0 {
		req.patterns = cfg.Generate.Packages
	}
	if len(req.patterns) == 0 {
		return req, errors.WithHint(
			errors.NewInvalidConfigError("no Go packages to generate from"),
			"pass package patterns, e.g. jpoet gen ./internal/model/..., or set generate.packages")
	}
	if f.output != "" {
		req.output = f.output
	}
	if f.javaPackage != "" {
		req.opts.JavaPackage = f.javaPackage
	}
	if f.getters {
		req.opts.Getters = true
	}
	if f.noGetters {
		req.opts.Getters = false
	}
	return req, nil
}

func runGen(cmd *cobra.Command, g *globals, f *genFlags, args []string) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	req, err := f.request(cmd, cfg, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	if f.dryRun {
		files, err := javagen.New(req.opts, nil).Generate(ctx, req.dir, req.patterns...)
		if err != nil {
			return err
		}
		for _, file := range files {
			var content string
			if content, err = render(file); err != nil {
				return err
			}
			pterm.Println("// " + file.Path())
			pterm.Print(content)
		}
		return nil
	}

	if _, err := generate(ctx, g, req); err != nil {
		return err
	}
	if !f.watch {
		return nil
	}
	return watch(ctx, cmd, g, f, req)
}

// generate writes one generation run and runs the post-generate hook.
func generate(ctx context.Context, g *globals, req genRequest) ([]string, error) {
	start := time.Now()
	files, err := javagen.New(req.opts, nil).Generate(ctx, req.dir, req.patterns...)
	if err != nil {
		return nil, err
	}
	paths, err := writeFiles(g, files, req.output)
	if err != nil {
		return nil, err
	}
	if req.postGenerate != "" {
		if err := javagen.RunHook(ctx, req.postGenerate, paths, req.stdout, req.stderr); err != nil {
			return nil, err
		}
	}
	pterm.Success.Printfln("Generated %d files in %s (%s)", len(paths), req.output,
		time.Since(start).Round(time.Millisecond))
	return paths, nil
}

// writeFiles writes files under root and reports each path.
func writeFiles(g *globals, files []decl.File, root string) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, file := range files {
		path, err := file.WriteToDir(root)
		if err != nil {
			return nil, errors.Wrapf(err, "writing %s", file.Path())
		}
		paths = append(paths, path)
		if logger.ShouldOutput(g.verbosity, logger.OutputProgress) {
			pterm.Info.Printfln("wrote %s", path)
		}
		if logger.ShouldOutput(g.verbosity, logger.OutputSourceDump) {
			if content, err := render(file); err == nil {
				pterm.Print(content)
			}
		}
	}
	return paths, nil
}

// watch regenerates on source or configuration changes until ctx is done.
func watch(ctx context.Context, cmd *cobra.Command, g *globals, f *genFlags, req genRequest) error {
	pkgs, err := javagen.Load(ctx, req.dir, req.patterns...)
	if err != nil {
		return err
	}
	w, err := javagen.NewWatcher(javagen.Dirs(pkgs), javagen.DefaultDebounce, nil)
	if err != nil {
		return err
	}

	var mu sync.Mutex
	if path := g.watchedConfigPath(); path != "" {
		cw, err := config.NewWatcher(path)
		if err != nil {
			return err
		}
		patterns := req.patterns
		cw.OnReload(func(cfg *config.Config) error {
			next, err := f.request(cmd, cfg, patterns)
			if err != nil {
				return err
			}
			mu.Lock()
			req = next
			mu.Unlock()
			pterm.Info.Printfln("Reloaded %s", path)
			return nil
		})
		cw.Start()
		config.SetGlobalWatcher(cw)
		defer func() {
			config.SetGlobalWatcher(nil)
			cw.Stop()
		}()
	}

	pterm.Info.Println("Watching for changes, press Ctrl+C to stop")
	return w.Run(ctx, func(ctx context.Context) error {
		mu.Lock()
		current := req
		mu.Unlock()
		_, err := generate(ctx, g, current)
		if err != nil {
			PrintError(current.stderr, err)
		}
		return err
	})
}
