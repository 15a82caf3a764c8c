package decl

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/jpoet/config"
	"github.com/teranos/jpoet/emit/codeblock"
	"github.com/teranos/jpoet/emit/typename"
	"github.com/teranos/jpoet/emit/writer"
	"github.com/teranos/jpoet/errors"
	"github.com/teranos/jpoet/logger"
)

// File is a Java source file holding one top-level type.
type File struct {
	pkg                 string
	typ                 TypeSpec
	comment             codeblock.Block
	staticImports       []string
	skipJavaLangImports bool
	indent              string
	columnLimit         int
	alwaysQualify       []string
}

// PackageName returns the package of the file.
func (f File) PackageName() string { return f.pkg }

// Type returns the top-level type.
func (f File) Type() TypeSpec { return f.typ }

// Path returns the file's path relative to a source root, e.g.
// com/example/Foo.java.
func (f File) Path() string {
	name := f.typ.name + ".java"
	if f.pkg == "" {
		return name
	}
	return filepath.Join(append(strings.Split(f.pkg, "."), name)...)
}

func (f File) options() writer.Options {
	return writer.Options{
		Indent:        f.indent,
		ColumnLimit:   f.columnLimit,
		StaticImports: f.staticImports,
		AlwaysQualify: f.alwaysQualify,
	}
}

// WriteTo renders the file to out. The first pass writes nowhere and
// collects the imports; the second renders into a buffer that is copied to
// out only when rendering succeeds.
func (f File) WriteTo(out io.Writer) (int64, error) {
	log := logger.ComponentLogger("writer")
	start := time.Now()

	collect := writer.New(io.Discard, f.options())
	if err := f.emit(collect, nil); err != nil {
		return 0, errors.Wrapf(err, "collecting imports for %s", f.Path())
	}
	if err := collect.Close(); err != nil {
		return 0, err
	}
	opts := f.options()
	opts.Imports = collect.SuggestedImports()
	log.Debugw("collected imports",
		logger.FieldFile, f.Path(),
		logger.FieldPass, 1,
		logger.FieldImports, opts.Imports.Len())

	var buf bytes.Buffer
	w := writer.New(&buf, opts)
	if err := f.emit(w, opts.Imports.Imports(f.skipJavaLangImports)); err != nil {
		return 0, errors.Wrapf(err, "rendering %s", f.Path())
	}
	if err := w.Close(); err != nil {
		return 0, err
	}

	n, err := buf.WriteTo(out)
	if err != nil {
		return n, errors.Wrapf(err, "writing %s", f.Path())
	}
	log.Debugw("rendered file",
		logger.FieldFile, f.Path(),
		logger.FieldPass, 2,
		logger.FieldBytes, n,
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return n, nil
}

func (f File) emit(w *writer.Writer, imports []string) error {
	if err := w.PushPackage(f.pkg); err != nil {
		return err
	}
	if !f.comment.IsEmpty() {
		if err := w.EmitComment(f.comment); err != nil {
			return err
		}
	}
	if f.pkg != "" {
		if err := w.Emit("package $L;\n\n", f.pkg); err != nil {
			return err
		}
	}
	if statics := w.StaticImports(); len(statics) > 0 {
		for _, s := range statics {
			if err := w.Emit("import static $L;\n", s); err != nil {
				return err
			}
		}
		if err := w.Emit("\n"); err != nil {
			return err
		}
	}
	if len(imports) > 0 {
		for _, imp := range imports {
			if err := w.Emit("import $L;\n", imp); err != nil {
				return err
			}
		}
		if err := w.Emit("\n"); err != nil {
			return err
		}
	}
	if err := f.typ.emit(w, "", 0); err != nil {
		return err
	}
	return w.PopPackage()
}

// String renders the file, or a "!(error)" marker when rendering fails.
func (f File) String() string {
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return "!(" + err.Error() + ")"
	}
	return buf.String()
}

// WriteToDir writes the file under the source root dir, creating package
// directories as needed, and returns the written path.
func (f File) WriteToDir(dir string) (string, error) {
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return "", err
	}
	path := filepath.Join(dir, f.Path())
	if err := os.MkdirAll(filepath.Dir(path), config.DefaultDirPermissions); err != nil {
		return "", errors.Wrapf(err, "failed to create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, buf.Bytes(), config.DefaultFilePermissions); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	logger.ComponentLogger("writer").Debugw("wrote file", zap.String(logger.FieldFile, path))
	return path, nil
}

// FileBuilder builds a File.
type FileBuilder struct {
	file    File
	comment *codeblock.Builder
	err     error
}

// NewFile starts a file declaring typ in package pkg. The empty package is
// the default package.
func NewFile(pkg string, typ TypeSpec) *FileBuilder {
	b := &FileBuilder{
		file: File{
			pkg: pkg,
			typ: typ,
		},
		comment: codeblock.NewBuilder(),
	}
	if typ.IsAnonymous() || typ.name == "" {
		b.err = errors.NewWriterMisuseError("a file needs a named top-level type")
	}
	if pkg != "" {
		for _, part := range strings.Split(pkg, ".") {
			if err := typename.CheckName("package", part); err != nil {
				b.err = errors.WithHintf(err, "in package %q", pkg)
				break
			}
		}
	}
	return b
}

func (b *FileBuilder) fail(err error) *FileBuilder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// AddFileComment appends to the comment written above the package line.
func (b *FileBuilder) AddFileComment(format string, args ...interface{}) *FileBuilder {
	b.comment.Add(format, args...)
	return b
}

// AddStaticImport imports the named static members of c. "*" imports all of them.
func (b *FileBuilder) AddStaticImport(c typename.ClassName, members ...string) *FileBuilder {
	if len(members) == 0 {
		return b.fail(errors.NewWriterMisuseError("static import of %s names no members", c))
	}
	for _, m := range members {
		if m != "*" && !typename.IsIdentifier(m) {
			return b.fail(errors.NewInvalidNameError("not a valid static member name: %q", m))
		}
		b.file.staticImports = append(b.file.staticImports, c.CanonicalName()+"."+m)
	}
	return b
}

// SkipJavaLangImports omits imports from java.lang. Such classes are still
// referred to by simple name.
func (b *FileBuilder) SkipJavaLangImports(skip bool) *FileBuilder {
	b.file.skipJavaLangImports = skip
	return b
}

// Indent sets the indent unit.
func (b *FileBuilder) Indent(indent string) *FileBuilder {
	if strings.Trim(indent, " \t") != "" {
		return b.fail(errors.NewWriterMisuseError("indent must be spaces or tabs, got %q", indent))
	}
	b.file.indent = indent
	return b
}

// ColumnLimit sets the soft wrap column.
func (b *FileBuilder) ColumnLimit(limit int) *FileBuilder {
	if limit < 0 {
		return b.fail(errors.NewWriterMisuseError("negative column limit %d", limit))
	}
	b.file.columnLimit = limit
	return b
}

// AlwaysQualify lists simple names that are never imported.
func (b *FileBuilder) AlwaysQualify(simpleNames ...string) *FileBuilder {
	b.file.alwaysQualify = append(b.file.alwaysQualify, simpleNames...)
	return b
}

// Configure applies the emit section of a loaded configuration. A
// non-empty file comment is appended to the file comment.
func (b *FileBuilder) Configure(cfg config.EmitConfig) *FileBuilder {
	b.Indent(cfg.Indent).
		ColumnLimit(cfg.ColumnLimit).
		SkipJavaLangImports(cfg.SkipJavaLangImports).
		AlwaysQualify(cfg.AlwaysQualify...)
	if cfg.FileComment != "" {
		b.AddFileComment("$L", cfg.FileComment)
	}
	return b
}

// Build returns the file.
func (b *FileBuilder) Build() (File, error) {
	if b.err != nil {
		return File{}, b.err
	}
	comment, err := b.comment.Build()
	if err != nil {
		return File{}, err
	}
	f := b.file
	f.comment = comment
	f.staticImports = append([]string(nil), f.staticImports...)
	f.alwaysQualify = append([]string(nil), f.alwaysQualify...)
	return f, nil
}
