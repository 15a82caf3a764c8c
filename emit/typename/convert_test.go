package typename

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/jpoet/errors"
)

type sample struct{}

func TestFromReflect(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"bool", reflect.TypeOf(true), "boolean"},
		{"int32", reflect.TypeOf(int32(0)), "int"},
		{"int", reflect.TypeOf(0), "long"},
		{"uint8", reflect.TypeOf(uint8(0)), "byte"},
		{"float64", reflect.TypeOf(0.0), "double"},
		{"string", reflect.TypeOf(""), "java.lang.String"},
		{"bytes", reflect.TypeOf([]byte{}), "byte[]"},
		{"array", reflect.TypeOf([3]string{}), "java.lang.String[]"},
		{"pointer boxes", reflect.TypeOf(new(int64)), "java.lang.Long"},
		{"map", reflect.TypeOf(map[string]int32{}), "java.util.Map<java.lang.String, java.lang.Integer>"},
		{"any", reflect.TypeOf((*any)(nil)).Elem(), "java.lang.Object"},
		{"error", reflect.TypeOf((*error)(nil)).Elem(), "java.lang.Exception"},
		{"time", reflect.TypeOf(time.Time{}), "java.time.Instant"},
		{"duration", reflect.TypeOf(time.Second), "java.time.Duration"},
		{"named", reflect.TypeOf(sample{}), "typename.Sample"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromReflect(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFromReflectUnsupported(t *testing.T) {
	for _, typ := range []reflect.Type{
		reflect.TypeOf(make(chan int)),
		reflect.TypeOf(func() {}),
		nil,
	} {
		_, err := FromReflect(typ)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrArgumentType))
	}
}

func TestConverterOptions(t *testing.T) {
	c := &Converter{
		JavaPackage: func(string) string { return "com.acme.model" },
		Known:       map[string]TypeName{"time.Time": Long},
	}

	got, err := c.FromReflect(reflect.TypeOf(sample{}))
	require.NoError(t, err)
	assert.Equal(t, "com.acme.model.Sample", got.String())

	got, err = c.FromReflect(reflect.TypeOf(time.Time{}))
	require.NoError(t, err)
	assert.Equal(t, "long", got.String())
}

func TestDefaultJavaPackage(t *testing.T) {
	assert.Equal(t, "model", DefaultJavaPackage("github.com/acme/model"))
	assert.Equal(t, "gotoml", DefaultJavaPackage("github.com/pelletier/go-toml"))
	assert.Equal(t, "v2", DefaultJavaPackage("example.com/x/v2"))
	assert.Equal(t, "pkgint", DefaultJavaPackage("example.com/int"))
	assert.Equal(t, "pkg", DefaultJavaPackage("example.com/123"))
}

const goSource = `package shapes

type Point struct {
	X, Y int32
}

type Box[T any] struct {
	Items []T
}

type Alias = Point

var (
	origin   Point
	boxes    Box[Point]
	counts   map[string]*int
	names    []string
	handler  func()
	alias    Alias
	anything interface{}
	failure  error
)

func Max[T Point](a T) T { return a }
`

func checkSource(t *testing.T) *types.Package {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "shapes.go", goSource, 0)
	require.NoError(t, err)

	pkg, err := (&types.Config{}).Check("example.com/shapes", fset, []*ast.File{file}, nil)
	require.NoError(t, err)
	return pkg
}

func TestFromGoType(t *testing.T) {
	pkg := checkSource(t)

	tests := []struct {
		object string
		want   string
	}{
		{"origin", "shapes.Point"},
		{"boxes", "shapes.Box<shapes.Point>"},
		{"counts", "java.util.Map<java.lang.String, java.lang.Long>"},
		{"names", "java.lang.String[]"},
		{"alias", "shapes.Point"},
		{"anything", "java.lang.Object"},
		{"failure", "java.lang.Exception"},
		{"Point", "shapes.Point"},
	}

	for _, tt := range tests {
		t.Run(tt.object, func(t *testing.T) {
			obj := pkg.Scope().Lookup(tt.object)
			require.NotNil(t, obj)
			got, err := FromObject(obj)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	_, err := FromObject(pkg.Scope().Lookup("handler"))
	assert.True(t, errors.Is(err, errors.ErrArgumentType))

	_, err = FromObject(nil)
	assert.Error(t, err)
	_, err = FromGoType(nil)
	assert.Error(t, err)
}

func TestFromGoTypeParams(t *testing.T) {
	pkg := checkSource(t)

	fn := pkg.Scope().Lookup("Max").Type().(*types.Signature)
	tp := fn.TypeParams().At(0)

	got, err := FromGoType(tp)
	require.NoError(t, err)

	tv, ok := got.(TypeVariableName)
	require.True(t, ok)
	assert.Equal(t, "T", tv.Name())
	assert.Equal(t, "T extends shapes.Point", tv.Declaration(Canonical))

	st := pkg.Scope().Lookup("Point").Type().Underlying().(*types.Struct)
	x, err := FromObject(st.Field(0))
	require.NoError(t, err)
	assert.Equal(t, "int", x.String())
}
