package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/jpoet/errors"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRoot()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// writeConfig writes a default jpoet.toml into a fresh directory.
func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jpoet.toml")
	_, err := run(t, "config", "init", path)
	require.NoError(t, err)
	return path
}

func TestVersionJSON(t *testing.T) {
	out, err := run(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"commit_hash"`)
	assert.Contains(t, out, `"go_version"`)
}

func TestConfigInitAndValidate(t *testing.T) {
	path := writeConfig(t)
	assert.FileExists(t, path)

	_, err := run(t, "config", "init", path)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig), "second init without --force must fail")

	out, err := run(t, "--config", path, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
}

func TestConfigShowFormats(t *testing.T) {
	path := writeConfig(t)

	out, err := run(t, "--config", path, "config", "show", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "columnlimit: 100")

	_, err = run(t, "--config", path, "config", "show", "--format", "xml")
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
}

const greeterModel = `
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
`

func TestRenderWritesFiles(t *testing.T) {
	cfg := writeConfig(t)
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "greeter.yaml")
	require.NoError(t, os.WriteFile(modelPath, []byte(greeterModel), 0644))
	outDir := filepath.Join(dir, "out")

	out, err := run(t, "--config", cfg, "render", modelPath, "-o", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Rendered 1 files")

	data, err := os.ReadFile(filepath.Join(outDir, "com", "example", "Greeter.java"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "public final class Greeter {\n")
	assert.Contains(t, string(data), "    System.out.println(\"Hello, \" + who);\n")
}

func TestRenderStdout(t *testing.T) {
	cfg := writeConfig(t)
	modelPath := filepath.Join(t.TempDir(), "greeter.yaml")
	require.NoError(t, os.WriteFile(modelPath, []byte(greeterModel), 0644))

	out, err := run(t, "--config", cfg, "render", modelPath, "--stdout")
	require.NoError(t, err)
	assert.Contains(t, out, "package com.example;\n")
	assert.Contains(t, out, "  public static void greet(String who) {\n")
}

func TestGenRequiresPackages(t *testing.T) {
	cfg := writeConfig(t)
	_, err := run(t, "--config", cfg, "gen")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
	assert.Contains(t, errors.FlattenHints(err), "jpoet gen ./internal/model/...")
}

func TestGenThenCheck(t *testing.T) {
	cfg := writeConfig(t)
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "go.mod"), []byte("module example.com/shop\n\ngo 1.21\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "order.go"), []byte(`package shop

// Order is a placed order.
type Order struct {
	ID    string `+"`json:\"id\"`"+`
	Total int64  `+"`json:\"total\"`"+`
}
`), 0644))
	outDir := filepath.Join(t.TempDir(), "java")

	_, err := run(t, "--config", cfg, "gen", "./...", "--dir", src, "-o", outDir, "--java-package", "com.shop")
	require.NoError(t, err)
	orderPath := filepath.Join(outDir, "com", "shop", "Order.java")
	data, err := os.ReadFile(orderPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "public final class Order {\n")
	assert.Contains(t, string(data), "  public long getTotal() {\n")

	out, err := run(t, "--config", cfg, "check", "./...", "--dir", src, "-o", outDir, "--java-package", "com.shop")
	require.NoError(t, err)
	assert.Contains(t, out, "is up to date")

	require.NoError(t, os.WriteFile(orderPath, []byte("class Order {}\n"), 0644))
	out, err = run(t, "--config", cfg, "check", "./...", "--dir", src, "-o", outDir, "--java-package", "com.shop", "--diff")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfDate))
	assert.Contains(t, out, "com/shop/Order.java")
	assert.Contains(t, out, "-class Order {}")
}
