// Package javagen converts Go types into Java declarations.
//
// # Architecture
//
// The package keeps the two layers the rest of jpoet relies on:
//  1. Loading (load.go) type-checks Go packages with golang.org/x/tools/go/packages
//  2. Conversion (struct.go, enum.go) turns the type-checked declarations into
//     decl.File values, which the emit packages render
//
// # Mapping
//
//   - Exported structs become classes. With getters enabled the fields are
//     private and final, set by an all-arguments constructor and read through
//     getX/isX accessors; otherwise the fields are public.
//   - A named string type with typed constants becomes an enum whose
//     constants carry the Go string values.
//   - Other named basic types (type ID string) are replaced by their
//     underlying type.
//   - Struct tags rename or skip fields; see ParseFieldTag.
//
// Output is deterministic: files are sorted by type name and members follow
// declaration order, so generated trees can be compared with Check.
package javagen

import (
	"go/ast"
	"go/types"
	"sort"

	"github.com/iancoleman/strcase"
	"go.uber.org/zap"

	"github.com/teranos/jpoet/config"
	"github.com/teranos/jpoet/emit/decl"
	"github.com/teranos/jpoet/emit/typename"
	"github.com/teranos/jpoet/errors"
	"github.com/teranos/jpoet/logger"
)

// Options controls conversion.
type Options struct {
	JavaPackage string
	Getters     bool
	Emit        config.EmitConfig
}

// OptionsFromConfig returns the options a loaded configuration describes.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		JavaPackage: cfg.Generate.JavaPackage,
		Getters:     cfg.Generate.Getters,
		Emit:        cfg.Emit,
	}
}

// Package is a type-checked Go package together with its syntax.
type Package struct {
	Path   string
	Files  []string // absolute paths of the Go files
	Types  *types.Package
	Syntax []*ast.File
}

// Generator converts Go packages to Java files.
type Generator struct {
	opts   Options
	logger *zap.SugaredLogger
}

// New returns a Generator. A nil log uses the "javagen" component logger.
func New(opts Options, log *zap.SugaredLogger) *Generator {
	if log == nil {
		log = logger.ComponentLogger("javagen")
	}
	if opts.JavaPackage == "" {
		opts.JavaPackage = config.DefaultJavaPackage
	}
	return &Generator{opts: opts, logger: log}
}

// conversion is the state of one Convert call.
type conversion struct {
	g     *Generator
	conv  *typename.Converter
	docs  map[string]string // "path.Name" or position key -> doc text
	enums map[*types.TypeName][]*types.Const
}

// Convert turns the exported structs and string enums of pkgs into files.
func (g *Generator) Convert(pkgs ...Package) ([]decl.File, error) {
	c := &conversion{
		g:     g,
		docs:  make(map[string]string),
		enums: make(map[*types.TypeName][]*types.Const),
	}

	loaded := make(map[string]bool, len(pkgs))
	for _, pkg := range pkgs {
		loaded[pkg.Path] = true
		collectDocs(pkg, c.docs)
	}
	c.conv = &typename.Converter{
		JavaPackage: func(importPath string) string {
			if loaded[importPath] {
				return g.opts.JavaPackage
			}
			return typename.DefaultJavaPackage(importPath)
		},
		Known: make(map[string]typename.TypeName),
	}

	var decls []*types.TypeName
	for _, pkg := range pkgs {
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			if cnst, ok := scope.Lookup(name).(*types.Const); ok {
				if named, ok := cnst.Type().(*types.Named); ok && named.Obj().Pkg() == pkg.Types {
					c.enums[named.Obj()] = append(c.enums[named.Obj()], cnst)
				}
			}
		}
		for _, name := range scope.Names() {
			obj, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || !obj.Exported() || obj.IsAlias() {
				continue
			}
			decls = append(decls, obj)
		}
	}

	// Named basic types that are not enums collapse to their underlying type.
	for _, obj := range decls {
		if _, isStruct := obj.Type().Underlying().(*types.Struct); isStruct || c.isEnum(obj) {
			continue
		}
		if _, isIface := obj.Type().Underlying().(*types.Interface); isIface {
			c.conv.Known[qualified(obj)] = typename.Object
			continue
		}
		t, err := c.conv.FromGoType(obj.Type().Underlying())
		if err != nil {
			g.logger.Debugw("skipping type without Java equivalent", logger.FieldType, obj.Name(), logger.FieldError, err)
			continue
		}
		c.conv.Known[qualified(obj)] = t
	}

	var files []decl.File
	seen := make(map[string]string)
	for _, obj := range decls {
		var (
			spec decl.TypeSpec
			err  error
		)
		switch {
		case c.isEnum(obj):
			spec, err = c.enumType(obj)
		default:
			st, ok := obj.Type().Underlying().(*types.Struct)
			if !ok {
				continue
			}
			spec, err = c.classType(obj, st)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "converting %s", qualified(obj))
		}

		if prev, dup := seen[spec.Name()]; dup {
			return nil, errors.WithHint(
				errors.NewInvalidNameError("%s and %s both map to %s.%s", prev, qualified(obj), g.opts.JavaPackage, spec.Name()),
				"generate the packages separately or rename one of the types")
		}
		seen[spec.Name()] = qualified(obj)

		f, err := decl.NewFile(g.opts.JavaPackage, spec).Configure(g.opts.Emit).Build()
		if err != nil {
			return nil, err
		}
		files = append(files, f)
		g.logger.Debugw("converted type", logger.FieldType, qualified(obj), logger.FieldFile, f.Path())
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path() < files[j].Path() })
	return files, nil
}

func (c *conversion) isEnum(obj *types.TypeName) bool {
	basic, ok := obj.Type().Underlying().(*types.Basic)
	return ok && basic.Info()&types.IsString != 0 && len(c.enums[obj]) > 0
}

// javaName returns the Java class name of obj.
func (c *conversion) javaName(obj *types.TypeName) typename.ClassName {
	return typename.Class(c.g.opts.JavaPackage, obj.Name())
}

func qualified(obj types.Object) string {
	if obj.Pkg() == nil {
		return obj.Name()
	}
	return obj.Pkg().Path() + "." + obj.Name()
}

// collectDocs records the doc comments of type, field and constant
// declarations, keyed by docKey.
func collectDocs(pkg Package, docs map[string]string) {
	for _, file := range pkg.Syntax {
		ast.Inspect(file, func(n ast.Node) bool {
			switch node := n.(type) {
			case *ast.GenDecl:
				for _, spec := range node.Specs {
					var doc *ast.CommentGroup
					var names []*ast.Ident
					switch s := spec.(type) {
					case *ast.TypeSpec:
						doc, names = s.Doc, []*ast.Ident{s.Name}
					case *ast.ValueSpec:
						doc, names = s.Doc, s.Names
					default:
						continue
					}
					if doc == nil && len(node.Specs) == 1 {
						doc = node.Doc
					}
					for _, name := range names {
						if text := doc.Text(); text != "" {
							docs[docKey(pkg.Path, name.Name)] = text
						}
					}
				}
			case *ast.TypeSpec:
				st, ok := node.Type.(*ast.StructType)
				if !ok {
					return true
				}
				for _, field := range st.Fields.List {
					for _, name := range field.Names {
						if text := field.Doc.Text(); text != "" {
							docs[docKey(pkg.Path, node.Name.Name+"."+name.Name)] = text
						}
					}
				}
			}
			return true
		})
	}
}

func docKey(pkgPath, name string) string {
	return pkgPath + "." + name
}

// doc returns the doc comment stored under name in the package of obj.
func (c *conversion) doc(obj types.Object, name string) string {
	if obj.Pkg() == nil {
		return ""
	}
	return c.docs[docKey(obj.Pkg().Path(), name)]
}

// memberName converts a Go or tag name into a Java member name.
func memberName(name string) string {
	n := strcase.ToLowerCamel(name)
	if typename.IsKeyword(n) {
		n += "_"
	}
	if n != "" && !typename.IsIdentifier(n) {
		n = "_" + n
	}
	return n
}

// constantName converts an enum value into a Java constant name.
func constantName(value string) string {
	n := strcase.ToScreamingSnake(value)
	switch {
	case n == "":
		return "EMPTY"
	case !typename.IsIdentifier(n):
		return "_" + n
	}
	return n
}

// accessor returns the getter name of a field.
func accessor(field string, t typename.TypeName) string {
	prefix := "get"
	if typename.Equal(t, typename.Boolean) {
		prefix = "is"
	}
	return prefix + strcase.ToCamel(field)
}
