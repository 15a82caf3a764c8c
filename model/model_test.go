package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/jpoet/config"
	"github.com/teranos/jpoet/emit/decl"
	"github.com/teranos/jpoet/errors"
	"github.com/teranos/jpoet/version"
)

func emitConfig() config.EmitConfig {
	cfg := config.Default().Emit
	cfg.FileComment = ""
	return cfg
}

func build(t *testing.T, src string) []decl.File {
	t.Helper()
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	files, err := Build(doc, emitConfig())
	require.NoError(t, err)
	return files
}

const shapes = `
package: com.example.shapes
file_comment: Shapes model.
types:
  - kind: interface
    name: Shape
    modifiers: [public]
    methods:
      - name: area
        returns: double
  - name: Circle
    modifiers: [public, final]
    interfaces: [Shape]
    fields:
      - {name: radius, type: double, modifiers: [private, final]}
    methods:
      - constructor: true
        modifiers: [public]
        params: [{name: radius, type: double}]
        body:
          - this.radius = radius
      - name: area
        modifiers: [public]
        returns: double
        annotations: [{type: Override}]
        types: {math: java.lang.Math}
        body:
          - return $math:T.PI * radius * radius
`

func TestBuildShapes(t *testing.T) {
	files := build(t, shapes)
	require.Len(t, files, 2)

	assert.Equal(t, "com/example/shapes/Shape.java", files[0].Path())
	assert.Equal(t,
		"// Shapes model.\n"+
			"package com.example.shapes;\n"+
			"\n"+
			"public interface Shape {\n"+
			"  double area();\n"+
			"}\n",
		files[0].String())

	assert.Equal(t,
		"// Shapes model.\n"+
			"package com.example.shapes;\n"+
			"\n"+
			"public final class Circle implements Shape {\n"+
			"  private final double radius;\n"+
			"\n"+
			"  public Circle(double radius) {\n"+
			"    this.radius = radius;\n"+
			"  }\n"+
			"\n"+
			"  @Override\n"+
			"  public double area() {\n"+
			"    return Math.PI * radius * radius;\n"+
			"  }\n"+
			"}\n",
		files[1].String())
}

func TestBuildEnumWithConstructor(t *testing.T) {
	files := build(t, `
package: com.example
types:
  - kind: enum
    name: Planet
    modifiers: [public]
    constants:
      - {name: MERCURY, args: "3.303e+23"}
      - {name: EARTH, args: "5.976e+24", javadoc: Home.}
    fields:
      - {name: mass, type: double, modifiers: [private, final]}
    methods:
      - constructor: true
        params: [{name: mass, type: double}]
        body: ["this.mass = mass"]
`)
	require.Len(t, files, 1)
	assert.Equal(t,
		"package com.example;\n"+
			"\n"+
			"public enum Planet {\n"+
			"  MERCURY(3.303e+23),\n"+
			"\n"+
			"  /**\n"+
			"   * Home.\n"+
			"   */\n"+
			"  EARTH(5.976e+24);\n"+
			"\n"+
			"  private final double mass;\n"+
			"\n"+
			"  Planet(double mass) {\n"+
			"    this.mass = mass;\n"+
			"  }\n"+
			"}\n",
		files[0].String())
}

func TestBuildControlFlowBody(t *testing.T) {
	files := build(t, `
package: com.example
types:
  - name: Util
    modifiers: [public, final]
    methods:
      - name: first
        modifiers: [public, static]
        type_variables: [T]
        returns: T
        params: [{name: items, type: "java.util.List<T>"}]
        args: {empty: empty list}
        types: {state: IllegalStateException}
        body:
          - comment: Fails on an empty list.
          - begin: if (items.isEmpty())
          - statement: throw new $state:T($empty:S)
          - next: else
          - return items.get(0)
          - end: true
`)
	require.Len(t, files, 1)
	assert.Equal(t,
		"package com.example;\n"+
			"\n"+
			"import java.util.List;\n"+
			"\n"+
			"public final class Util {\n"+
			"  public static <T> T first(List<T> items) {\n"+
			"    // Fails on an empty list.\n"+
			"    if (items.isEmpty()) {\n"+
			"      throw new IllegalStateException(\"empty list\");\n"+
			"    } else {\n"+
			"      return items.get(0);\n"+
			"    }\n"+
			"  }\n"+
			"}\n",
		files[0].String())
}

func TestBuildNestedTypeReference(t *testing.T) {
	files := build(t, `
package: com.example
types:
  - name: Tree
    fields:
      - {name: root, type: Node}
    types:
      - name: Node
        modifiers: [static]
        fields:
          - {name: children, type: "java.util.List<Node>"}
`)
	require.Len(t, files, 1)
	assert.Equal(t,
		"package com.example;\n"+
			"\n"+
			"import java.util.List;\n"+
			"\n"+
			"class Tree {\n"+
			"  Node root;\n"+
			"\n"+
			"  static class Node {\n"+
			"    List<Node> children;\n"+
			"  }\n"+
			"}\n",
		files[0].String())
}

func TestStaticImports(t *testing.T) {
	files := build(t, `
package: com.example
static_imports:
  - {class: java.util.Objects, members: [requireNonNull]}
types:
  - name: Checks
    methods:
      - name: check
        params: [{name: x, type: Object}]
        body: ["requireNonNull(x)"]
`)
	require.Len(t, files, 1)
	assert.Contains(t, files[0].String(), "import static java.util.Objects.requireNonNull;\n")
	assert.Contains(t, files[0].String(), "    requireNonNull(x);\n")
}

func TestDecodeShorthands(t *testing.T) {
	doc, err := Parse([]byte(`
package: com.example
types:
  - name: A
    annotations:
      - type: SuppressWarnings
        members: {value: ['"unchecked"', '"rawtypes"']}
      - type: Deprecated
        members: {since: '"1.2"'}
    methods:
      - name: run
        body:
          - x++
          - {code: "y--;"}
`))
	require.NoError(t, err)
	a := doc.Types[0]
	assert.Equal(t, Values{`"unchecked"`, `"rawtypes"`}, a.Annotations[0].Members["value"])
	assert.Equal(t, Values{`"1.2"`}, a.Annotations[1].Members["since"])
	assert.Equal(t, []Statement{{Statement: "x++"}, {Code: "y--;"}}, a.Methods[0].Body)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("package: com.example\n"))
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	_, err = Parse([]byte("types: [\n"))
	assert.Error(t, err)

	old := version.Version
	version.Version = "0.1.0"
	t.Cleanup(func() { version.Version = old })
	_, err = Parse([]byte("requires: \">= 2.0.0\"\npackage: p\ntypes: [{name: A}]\n"))
	assert.Error(t, err)
	_, err = Parse([]byte("requires: \">= 0.1.0\"\npackage: p\ntypes: [{name: A}]\n"))
	assert.NoError(t, err)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{
			name: "unknown modifier",
			src:  "package: p\ntypes: [{name: A, modifiers: [shiny]}]\n",
			want: errors.ErrInvalidName,
		},
		{
			name: "unknown kind",
			src:  "package: p\ntypes: [{name: A, kind: record}]\n",
			want: errors.ErrInvalidName,
		},
		{
			name: "step with two kinds",
			src:  "package: p\ntypes: [{name: A, methods: [{name: f, body: [{statement: x, comment: y}]}]}]\n",
			want: errors.ErrTemplateSyntax,
		},
		{
			name: "unbound argument",
			src:  "package: p\ntypes: [{name: A, methods: [{name: f, body: [\"$x:L\"]}]}]\n",
			want: errors.ErrTemplateSyntax,
		},
		{
			name: "annotation that is not a class",
			src:  "package: p\ntypes: [{name: A, annotations: [{type: \"java.util.List<String>\"}]}]\n",
			want: errors.ErrArgumentType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.src))
			require.NoError(t, err)
			_, err = Build(doc, emitConfig())
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(shapes), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Source)
	assert.Equal(t, "com.example.shapes", doc.Package)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	doc, err := Parse([]byte(shapes))
	require.NoError(t, err)
	data, err := Marshal(doc)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, doc.Types, again.Types)
}
