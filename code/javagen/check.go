package javagen

import (
	"bufio"
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/teranos/jpoet/errors"
)

// CheckResult holds the outcome of comparing a fresh generation with the
// checked-in tree.
type CheckResult struct {
	UpToDate bool
	Changed  map[string]string // relative path -> line diff
	Missing  []string          // generated but not checked in
	Stale    []string          // checked in but no longer generated
}

// Files returns every path that differs, sorted.
func (r *CheckResult) Files() []string {
	out := append([]string(nil), r.Missing...)
	out = append(out, r.Stale...)
	for path := range r.Changed {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

// metadataPrefixes mark lines that change on every run without changing
// the generated types.
var metadataPrefixes = []string{
	"// Source last modified:",
	"// Source version:",
}

// CompareDirectories compares the .java files under generatedDir with those
// under existingDir. An existingDir that does not exist counts every
// generated file as missing.
func CompareDirectories(generatedDir, existingDir string) (*CheckResult, error) {
	generated, err := javaFiles(generatedDir)
	if err != nil {
		return nil, err
	}
	existing, err := javaFiles(existingDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	result := &CheckResult{Changed: make(map[string]string)}
	for rel := range generated {
		if !existing[rel] {
			result.Missing = append(result.Missing, rel)
			continue
		}
		diff, err := diffFiles(filepath.Join(existingDir, rel), filepath.Join(generatedDir, rel))
		if err != nil {
			return nil, err
		}
		if diff != "" {
			result.Changed[rel] = diff
		}
	}
	for rel := range existing {
		if !generated[rel] {
			result.Stale = append(result.Stale, rel)
		}
	}
	sort.Strings(result.Missing)
	sort.Strings(result.Stale)
	result.UpToDate = len(result.Changed) == 0 && len(result.Missing) == 0 && len(result.Stale) == 0
	return result, nil
}

// javaFiles lists the .java files under root by relative path.
func javaFiles(root string) (map[string]bool, error) {
	out := make(map[string]bool)
	if _, err := os.Stat(root); err != nil {
		return out, err
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".java" {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = true
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk %s", root)
	}
	return out, nil
}

// diffFiles returns a line diff from oldPath to newPath, empty when the
// files match once metadata lines are dropped.
func diffFiles(oldPath, newPath string) (string, error) {
	oldContent, err := os.ReadFile(oldPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", oldPath)
	}
	newContent, err := os.ReadFile(newPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", newPath)
	}
	return Diff(filterMetadataLines(oldContent), filterMetadataLines(newContent)), nil
}

// Diff returns the lines removed from a ("-") and added in b ("+"), with
// unchanged lines prefixed by a space. It is empty when a equals b.
func Diff(a, b string) string {
	if a == b {
		return ""
	}
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

// filterMetadataLines drops metadata comment lines from content.
func filterMetadataLines(content []byte) string {
	var result strings.Builder
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()
		if isMetadata(strings.TrimSpace(line)) {
			continue
		}
		result.WriteString(line)
		result.WriteString("\n")
	}
	if scanner.Err() != nil {
		// Unreadable content never compares equal.
		return "\x00" + string(content)
	}
	return result.String()
}

func isMetadata(line string) bool {
	for _, p := range metadataPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
