// Package config loads jpoet.toml through viper.
//
// Sources are merged in precedence order (lowest first): built-in defaults,
// system file, user file, the nearest jpoet.toml found walking up from the
// working directory, JPOET_* environment variables.
package config

import "fmt"

// Config represents the jpoet configuration
type Config struct {
	Emit     EmitConfig     `mapstructure:"emit" toml:"emit"`
	Generate GenerateConfig `mapstructure:"generate" toml:"generate"`
	Log      LogConfig      `mapstructure:"log" toml:"log"`
}

// EmitConfig controls how Java source text is laid out
type EmitConfig struct {
	Indent              string   `mapstructure:"indent" toml:"indent"`                                 // Indent unit (default: two spaces)
	ColumnLimit         int      `mapstructure:"column_limit" toml:"column_limit"`                     // Soft wrap column (default: 100)
	SkipJavaLangImports bool     `mapstructure:"skip_java_lang_imports" toml:"skip_java_lang_imports"` // Omit java.lang imports (default: true)
	AlwaysQualify       []string `mapstructure:"always_qualify" toml:"always_qualify"`                 // Simple names never imported
	FileComment         string   `mapstructure:"file_comment" toml:"file_comment"`                     // Leading comment of every generated file
}

// GenerateConfig controls the Go -> Java generator
type GenerateConfig struct {
	Packages     []string `mapstructure:"packages" toml:"packages"`           // Go package patterns (e.g., ["./internal/model/..."])
	JavaPackage  string   `mapstructure:"java_package" toml:"java_package"`   // Target Java package
	OutputDir    string   `mapstructure:"output_dir" toml:"output_dir"`       // Root of the generated source tree
	Getters      bool     `mapstructure:"getters" toml:"getters"`             // Emit private fields with getters
	PostGenerate string   `mapstructure:"post_generate" toml:"post_generate"` // Shell command run after writing (e.g., "google-java-format --replace")
}

// LogConfig controls log output
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json"`
	Theme string `mapstructure:"theme" toml:"theme"` // Color theme: everforest, gruvbox
}

// File names and permissions
const (
	FileName = "jpoet.toml"

	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// String returns a one-line summary of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Emit: {Indent: %q, ColumnLimit: %d}, Generate: {JavaPackage: %s, OutputDir: %s}}",
		c.Emit.Indent, c.Emit.ColumnLimit, c.Generate.JavaPackage, c.Generate.OutputDir)
}
