package config

import (
	"regexp"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/teranos/jpoet/errors"
)

var (
	javaIdentifier  = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	javaPackageName = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Column limit: 0 is invalid (omit for default 100)
	if c.Emit.ColumnLimit <= 0 {
		return errors.NewInvalidConfigError("emit.column_limit must be > 0, got %d", c.Emit.ColumnLimit)
	}

	if strings.Trim(c.Emit.Indent, " \t") != "" {
		return errors.NewInvalidConfigError("emit.indent must contain only spaces and tabs, got %q", c.Emit.Indent)
	}

	for _, name := range c.Emit.AlwaysQualify {
		if !javaIdentifier.MatchString(name) {
			return errors.NewInvalidConfigError("emit.always_qualify entry %q is not a simple name", name)
		}
	}

	// Empty java_package is the default package
	if c.Generate.JavaPackage != "" && !javaPackageName.MatchString(c.Generate.JavaPackage) {
		return errors.NewInvalidConfigError("generate.java_package %q is not a valid package name", c.Generate.JavaPackage)
	}

	if c.Generate.OutputDir == "" {
		return errors.NewInvalidConfigError("generate.output_dir cannot be empty")
	}

	if c.Generate.PostGenerate != "" {
		if _, err := shellquote.Split(c.Generate.PostGenerate); err != nil {
			return errors.NewInvalidConfigError("generate.post_generate %q: %v", c.Generate.PostGenerate, err)
		}
	}

	switch c.Log.Theme {
	case "", "everforest", "gruvbox":
	default:
		return errors.WithHint(
			errors.NewInvalidConfigError("log.theme %q is unknown", c.Log.Theme),
			"use everforest or gruvbox",
		)
	}

	return nil
}
