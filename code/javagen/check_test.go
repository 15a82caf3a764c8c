package javagen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestCompareDirectoriesUpToDate(t *testing.T) {
	generated, existing := t.TempDir(), t.TempDir()
	writeFile(t, generated, "com/example/A.java", "// Source version: abc\nclass A {}\n")
	writeFile(t, existing, "com/example/A.java", "// Source version: xyz\nclass A {}\n")
	writeFile(t, existing, "README.md", "not java")

	result, err := CompareDirectories(generated, existing)
	require.NoError(t, err)
	assert.True(t, result.UpToDate)
	assert.Empty(t, result.Files())
}

func TestCompareDirectoriesReportsChanges(t *testing.T) {
	generated, existing := t.TempDir(), t.TempDir()
	writeFile(t, generated, "com/example/A.java", "class A {\n  int x;\n}\n")
	writeFile(t, existing, "com/example/A.java", "class A {\n  long x;\n}\n")
	writeFile(t, generated, "com/example/B.java", "class B {}\n")
	writeFile(t, existing, "com/example/Old.java", "class Old {}\n")

	result, err := CompareDirectories(generated, existing)
	require.NoError(t, err)
	assert.False(t, result.UpToDate)
	assert.Equal(t, []string{"com/example/B.java"}, result.Missing)
	assert.Equal(t, []string{"com/example/Old.java"}, result.Stale)
	assert.Equal(t, " class A {\n-  long x;\n+  int x;\n }\n", result.Changed["com/example/A.java"])
	assert.Equal(t, []string{"com/example/A.java", "com/example/B.java", "com/example/Old.java"}, result.Files())
}

func TestCompareDirectoriesMissingTree(t *testing.T) {
	generated := t.TempDir()
	writeFile(t, generated, "A.java", "class A {}\n")

	result, err := CompareDirectories(generated, filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.False(t, result.UpToDate)
	assert.Equal(t, []string{"A.java"}, result.Missing)
}

func TestDiff(t *testing.T) {
	assert.Empty(t, Diff("a\nb\n", "a\nb\n"))
	assert.Equal(t, " a\n-b\n+c\n", Diff("a\nb\n", "a\nc\n"))
	assert.Equal(t, "-x\n+y\n", Diff("x", "y"))
}
