package typename

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/jpoet/errors"
)

// simpleQualifier renders every class by its simple names
type simpleQualifier struct{}

func (simpleQualifier) LookupName(c ClassName) string {
	names := c.SimpleNames()
	out := names[0]
	for _, n := range names[1:] {
		out += "." + n
	}
	return out
}

func TestClassName(t *testing.T) {
	entry := Class("java.util", "Map", "Entry")

	assert.Equal(t, "java.util", entry.PackageName())
	assert.Equal(t, "Entry", entry.SimpleName())
	assert.Equal(t, []string{"Map", "Entry"}, entry.SimpleNames())
	assert.Equal(t, "java.util.Map.Entry", entry.CanonicalName())
	assert.Equal(t, "java.util.Map$Entry", entry.ReflectionName())
	assert.Equal(t, "java.util.Map", entry.TopLevel().CanonicalName())

	enclosing, ok := entry.EnclosingClass()
	require.True(t, ok)
	assert.True(t, enclosing.Equal(Map))

	_, ok = Map.EnclosingClass()
	assert.False(t, ok)

	assert.Equal(t, "java.util.Map.Builder", entry.Peer("Builder").CanonicalName())
	assert.Equal(t, "java.util.Set", Map.Peer("Set").CanonicalName())
	assert.Equal(t, "Foo", Class("", "Foo").CanonicalName())
	assert.True(t, ClassName{}.IsZero())
}

func TestNestedDoesNotAlias(t *testing.T) {
	outer := Class("p", "Outer")
	a := outer.Nested("A")
	b := outer.Nested("B")
	assert.Equal(t, "p.Outer.A", a.CanonicalName())
	assert.Equal(t, "p.Outer.B", b.CanonicalName())

	parent, _ := a.EnclosingClass()
	c := parent.Nested("C")
	assert.Equal(t, "p.Outer.A", a.CanonicalName())
	assert.Equal(t, "p.Outer.C", c.CanonicalName())
}

func TestParseClassName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		pkg     string
		wantErr bool
	}{
		{"java.lang.String", "java.lang.String", "java.lang", false},
		{"java.util.Map.Entry", "java.util.Map.Entry", "java.util", false},
		{"Foo", "Foo", "", false},
		{"com.example.Outer.Inner", "com.example.Outer.Inner", "com.example", false},
		{"java.util", "", "", true},
		{"java.util.map", "", "", true},
		{"", "", "", true},
		{"com.class.Foo", "", "", true},
		{"com.example.Foo.bar", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseClassName(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrInvalidName))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.CanonicalName())
			assert.Equal(t, tt.pkg, c.PackageName())
		})
	}
}

func TestMustParseClassNamePanics(t *testing.T) {
	assert.Panics(t, func() { MustParseClassName("nope") })
	assert.NotPanics(t, func() { MustParseClassName("a.B") })
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Class("com.example", "Foo").Validate())
	assert.Error(t, Class("com.example", "class").Validate())
	assert.Error(t, Class("com.1example", "Foo").Validate())
	assert.Error(t, ClassName{}.Validate())
}

func TestPrimitives(t *testing.T) {
	assert.Equal(t, "int", Int.Render(Canonical))
	assert.True(t, Int.IsPrimitive())
	assert.Equal(t, "java.lang.Integer", Int.Box().CanonicalName())
	assert.Equal(t, "java.lang.Integer", Box(Int).String())
	assert.Equal(t, Void, Box(Void))
	assert.Equal(t, "java.lang.String", Box(String).String())

	assert.Equal(t, "long", Unbox(Class("java.lang", "Long")).String())
	assert.Equal(t, "java.lang.String", Unbox(String).String())

	p, ok := PrimitiveByKeyword("char")
	require.True(t, ok)
	assert.Equal(t, "char", p.Keyword())
	_, ok = PrimitiveByKeyword("Integer")
	assert.False(t, ok)
}

func TestCompositeRendering(t *testing.T) {
	q := simpleQualifier{}
	listOfString := Parameterized(List, String)
	assert.Equal(t, "List<String>", listOfString.Render(q))
	assert.Equal(t, "java.util.List<java.lang.String>", listOfString.String())

	mapType := Parameterized(Map, String, Parameterized(List, SubtypeOf(Class("java.lang", "Number"))))
	assert.Equal(t, "Map<String, List<? extends Number>>", mapType.Render(q))

	assert.Equal(t, "?", SubtypeOf(Object).String())
	assert.Equal(t, "?", Unbounded().String())
	assert.Equal(t, "? super T", SupertypeOf(TypeVariable("T")).String())

	assert.Equal(t, "int[][]", ArrayOf(ArrayOf(Int)).String())
	assert.Equal(t, "java.lang.String[]", ArrayOf(String).String())

	outer := Parameterized(Class("p", "Outer"), TypeVariable("T"))
	inner := outer.NestedClass("Inner", TypeVariable("U"))
	assert.Equal(t, "p.Outer<T>.Inner<U>", inner.String())
	assert.Equal(t, "p.Outer.Inner", inner.Raw().CanonicalName())
	assert.Len(t, inner.Args(), 1)
}

func TestTypeVariable(t *testing.T) {
	plain := TypeVariable("T", Object)
	assert.Empty(t, plain.Bounds())
	assert.Equal(t, "T", plain.Declaration(Canonical))

	bounded := TypeVariable("T", Class("java.lang", "Number"), Parameterized(Class("java.lang", "Comparable"), TypeVariable("T")))
	assert.Equal(t, "T extends Number & Comparable<T>", bounded.Declaration(simpleQualifier{}))
	assert.Equal(t, "T", bounded.Render(simpleQualifier{}))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Class("java.lang", "String"), String))
	assert.True(t, Equal(Parameterized(List, String), Parameterized(List, String)))
	assert.False(t, Equal(Parameterized(List, String), List))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(String, nil))
}

func TestNames(t *testing.T) {
	tests := []struct {
		in         string
		identifier bool
		name       bool
	}{
		{"foo", true, true},
		{"Foo$Bar", true, true},
		{"_x1", true, true},
		{"ünïcode", true, true},
		{"class", true, false},
		{"null", true, false},
		{"_", true, false},
		{"1abc", false, false},
		{"a-b", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.identifier, IsIdentifier(tt.in))
			assert.Equal(t, tt.name, IsName(tt.in))
		})
	}
}

func TestCheckName(t *testing.T) {
	assert.NoError(t, CheckName("field", "count"))

	err := CheckName("parameter", "default")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidName))
	assert.Contains(t, err.Error(), `not a valid parameter name: "default"`)
	assert.NotEmpty(t, errors.GetAllHints(err))
}
