package config

import (
	"github.com/spf13/viper"
)

// Default values
const (
	DefaultIndent      = "  "
	DefaultColumnLimit = 100
	DefaultJavaPackage = "com.example.generated"
	DefaultOutputDir   = "build/generated/java"
	DefaultFileComment = "Code generated by jpoet. DO NOT EDIT."
	DefaultTheme       = "everforest"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("emit.indent", DefaultIndent)
	v.SetDefault("emit.column_limit", DefaultColumnLimit)
	v.SetDefault("emit.skip_java_lang_imports", true)
	v.SetDefault("emit.always_qualify", []string{})
	v.SetDefault("emit.file_comment", DefaultFileComment)

	v.SetDefault("generate.packages", []string{})
	v.SetDefault("generate.java_package", DefaultJavaPackage)
	v.SetDefault("generate.output_dir", DefaultOutputDir)
	v.SetDefault("generate.getters", true)
	v.SetDefault("generate.post_generate", "")

	v.SetDefault("log.json", false)
	v.SetDefault("log.theme", DefaultTheme)
}

// BindEnvVars binds short environment variable names that do not follow
// the JPOET_<SECTION>_<KEY> pattern
func BindEnvVars(v *viper.Viper) {
	v.BindEnv("generate.output_dir", "JPOET_OUTPUT_DIR")
	v.BindEnv("generate.java_package", "JPOET_JAVA_PACKAGE")
	v.BindEnv("log.theme", "JPOET_LOG_THEME")
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Emit: EmitConfig{
			Indent:              DefaultIndent,
			ColumnLimit:         DefaultColumnLimit,
			SkipJavaLangImports: true,
			AlwaysQualify:       []string{},
			FileComment:         DefaultFileComment,
		},
		Generate: GenerateConfig{
			Packages:    []string{},
			JavaPackage: DefaultJavaPackage,
			OutputDir:   DefaultOutputDir,
			Getters:     true,
		},
		Log: LogConfig{
			Theme: DefaultTheme,
		},
	}
}

// GetIndent returns the indent unit (default: two spaces)
func (c *Config) GetIndent() string {
	if c.Emit.Indent == "" {
		return DefaultIndent
	}
	return c.Emit.Indent
}

// GetColumnLimit returns the wrap column (default: 100)
func (c *Config) GetColumnLimit() int {
	if c.Emit.ColumnLimit == 0 {
		return DefaultColumnLimit
	}
	return c.Emit.ColumnLimit
}

// GetTheme returns the log theme (default: everforest)
func (c *Config) GetTheme() string {
	if c.Log.Theme == "" {
		return DefaultTheme
	}
	return c.Log.Theme
}
