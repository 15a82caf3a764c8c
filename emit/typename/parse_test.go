package typename

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/jpoet/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		expr string
		vars []string
		want string
	}{
		{"int", nil, "int"},
		{"void", nil, "void"},
		{"String", nil, "java.lang.String"},
		{"Integer[]", nil, "java.lang.Integer[]"},
		{"byte[][]", nil, "byte[][]"},
		{"java.util.List<String>", nil, "java.util.List<java.lang.String>"},
		{"java.util.Map<String, java.util.List<Integer>>", nil, "java.util.Map<java.lang.String, java.util.List<java.lang.Integer>>"},
		{"java.util.List<? extends Number>", nil, "java.util.List<? extends java.lang.Number>"},
		{"java.util.List<? super T>", []string{"T"}, "java.util.List<? super T>"},
		{"java.util.List<?>", nil, "java.util.List<?>"},
		{"T", []string{"T"}, "T"},
		{"T[]", []string{"T"}, "T[]"},
		{"com.example.Outer<T>.Inner<String>", []string{"T"}, "com.example.Outer<T>.Inner<java.lang.String>"},
		{"java.util.Map.Entry<K, V>", []string{"K", "V"}, "java.util.Map.Entry<K, V>"},
		{"  java.util.List < String >  ", nil, "java.util.List<java.lang.String>"},
		{"Foo", nil, "Foo"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Parse(tt.expr, tt.vars...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseTypeVariableKind(t *testing.T) {
	got, err := Parse("T", "T")
	require.NoError(t, err)
	_, ok := got.(TypeVariableName)
	assert.True(t, ok)

	// Without declaring T it is a class in the default package
	got, err = Parse("T")
	require.NoError(t, err)
	_, ok = got.(ClassName)
	assert.True(t, ok)
}

func TestParseErrors(t *testing.T) {
	for _, expr := range []string{
		"",
		"?",
		"java.util.List<",
		"java.util.List<int>",
		"java.util.List<String",
		"int[",
		"java.util.List<String>>",
		"foo.bar",
		"a.b.C#",
		"String extends",
	} {
		t.Run(expr, func(t *testing.T) {
			_, err := Parse(expr)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidName), "%v", err)
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.Panics(t, func() { MustParse("List<") })
	assert.Equal(t, "long", MustParse("long").String())
}
