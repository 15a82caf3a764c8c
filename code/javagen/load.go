package javagen

import (
	"context"
	"strings"
	"time"

	"golang.org/x/tools/go/packages"

	"github.com/teranos/jpoet/emit/decl"
	"github.com/teranos/jpoet/errors"
	"github.com/teranos/jpoet/logger"
)

// Load type-checks the packages matching patterns, resolved relative to dir.
func Load(ctx context.Context, dir string, patterns ...string) ([]Package, error) {
	if len(patterns) == 0 {
		return nil, errors.WithHint(
			errors.NewInvalidConfigError("no Go packages to load"),
			"pass package patterns or set generate.packages in jpoet.toml")
	}
	cfg := &packages.Config{
		Context: ctx,
		Dir:     dir,
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", strings.Join(patterns, " "))
	}
	if len(pkgs) == 0 {
		return nil, errors.NewNotFoundError("no packages found for %s", strings.Join(patterns, " "))
	}

	out := make([]Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			msgs := make([]string, len(pkg.Errors))
			for i, e := range pkg.Errors {
				msgs[i] = e.Error()
			}
			return nil, errors.Newf("package %s has errors: %s", pkg.PkgPath, strings.Join(msgs, "; "))
		}
		out = append(out, Package{Path: pkg.PkgPath, Files: pkg.GoFiles, Types: pkg.Types, Syntax: pkg.Syntax})
	}
	return out, nil
}

// Generate loads the packages matching patterns and converts them.
func (g *Generator) Generate(ctx context.Context, dir string, patterns ...string) ([]decl.File, error) {
	start := time.Now()
	pkgs, err := Load(ctx, dir, patterns...)
	if err != nil {
		return nil, err
	}
	g.logger.Debugw("loaded packages",
		logger.FieldCount, len(pkgs),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return g.Convert(pkgs...)
}
