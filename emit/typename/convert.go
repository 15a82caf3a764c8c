package typename

import (
	"go/types"
	"path"
	"reflect"
	"strings"

	"github.com/teranos/jpoet/errors"
)

// Converter maps Go types to Java types.
//
//	bool -> boolean, int32 -> int, int/int64 -> long, string -> String,
//	[]T -> T[], map[K]V -> java.util.Map<K, V>, *T -> boxed T,
//	any -> Object, named types -> classes in JavaPackage(importPath).
type Converter struct {
	// JavaPackage maps a Go import path to the Java package of its named
	// types. Nil uses the last path element.
	JavaPackage func(importPath string) string

	// Known overrides the mapping of named Go types, keyed "importpath.Name".
	Known map[string]TypeName
}

// DefaultConverter is used by FromReflect, FromGoType and FromObject.
var DefaultConverter = &Converter{}

// WellKnown maps standard library types to their Java counterparts.
var WellKnown = map[string]TypeName{
	"time.Time":                Class("java.time", "Instant"),
	"time.Duration":            Class("java.time", "Duration"),
	"math/big.Int":             Class("java.math", "BigInteger"),
	"math/big.Float":           Class("java.math", "BigDecimal"),
	"net/url.URL":              Class("java.net", "URI"),
	"encoding/json.RawMessage": String,
}

// FromReflect converts a reflect.Type with DefaultConverter.
func FromReflect(t reflect.Type) (TypeName, error) { return DefaultConverter.FromReflect(t) }

// FromGoType converts a go/types.Type with DefaultConverter.
func FromGoType(t types.Type) (TypeName, error) { return DefaultConverter.FromGoType(t) }

// FromObject converts the declared type of a go/types.Object with DefaultConverter.
func FromObject(obj types.Object) (TypeName, error) { return DefaultConverter.FromObject(obj) }

// DefaultJavaPackage derives a Java package from the last element of a Go import path.
func DefaultJavaPackage(importPath string) string {
	base := strings.ToLower(path.Base(importPath))
	var sb strings.Builder
	for _, r := range base {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9' && sb.Len() > 0) {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 || IsKeyword(sb.String()) {
		return "pkg" + sb.String()
	}
	return sb.String()
}

func (c *Converter) javaPackage(importPath string) string {
	if c.JavaPackage != nil {
		return c.JavaPackage(importPath)
	}
	return DefaultJavaPackage(importPath)
}

func (c *Converter) known(key string) (TypeName, bool) {
	if t, ok := c.Known[key]; ok {
		return t, true
	}
	t, ok := WellKnown[key]
	return t, ok
}

// FromReflect converts a reflect.Type.
func (c *Converter) FromReflect(t reflect.Type) (TypeName, error) {
	if t == nil {
		return nil, errors.NewArgumentTypeError("nil reflect.Type")
	}

	if t.Name() != "" && t.PkgPath() != "" {
		if known, ok := c.known(t.PkgPath() + "." + t.Name()); ok {
			return known, nil
		}
		return Class(c.javaPackage(t.PkgPath()), exportName(t.Name())), nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		elem, err := c.FromReflect(t.Elem())
		if err != nil {
			return nil, err
		}
		return Box(elem), nil
	case reflect.Slice, reflect.Array:
		elem, err := c.FromReflect(t.Elem())
		if err != nil {
			return nil, err
		}
		return ArrayOf(elem), nil
	case reflect.Map:
		key, err := c.FromReflect(t.Key())
		if err != nil {
			return nil, err
		}
		val, err := c.FromReflect(t.Elem())
		if err != nil {
			return nil, err
		}
		return Parameterized(Map, Box(key), Box(val)), nil
	case reflect.Interface:
		if t.Implements(reflect.TypeOf((*error)(nil)).Elem()) && t.NumMethod() == 1 {
			return Class("java.lang", "Exception"), nil
		}
		return Object, nil
	}

	if prim, ok := basicKind(t.Kind()); ok {
		return prim, nil
	}
	return nil, errors.NewArgumentTypeError("Go type %s has no Java equivalent", t)
}

// FromGoType converts a go/types.Type.
func (c *Converter) FromGoType(t types.Type) (TypeName, error) {
	switch tt := t.(type) {
	case nil:
		return nil, errors.NewArgumentTypeError("nil types.Type")
	case *types.Alias:
		return c.FromGoType(types.Unalias(tt))
	case *types.TypeParam:
		var bounds []TypeName
		if iface, ok := tt.Constraint().Underlying().(*types.Interface); ok {
			for i := 0; i < iface.NumEmbeddeds(); i++ {
				if named, ok := iface.EmbeddedType(i).(*types.Named); ok {
					if b, err := c.FromGoType(named); err == nil {
						bounds = append(bounds, b)
					}
				}
			}
		}
		return TypeVariable(tt.Obj().Name(), bounds...), nil
	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() == nil {
			// Universe scope: error
			if obj.Name() == "error" {
				return Class("java.lang", "Exception"), nil
			}
			return c.FromGoType(tt.Underlying())
		}
		if known, ok := c.known(obj.Pkg().Path() + "." + obj.Name()); ok {
			return known, nil
		}
		raw := Class(c.javaPackage(obj.Pkg().Path()), exportName(obj.Name()))
		targs := tt.TypeArgs()
		if targs == nil || targs.Len() == 0 {
			return raw, nil
		}
		args := make([]TypeName, targs.Len())
		for i := 0; i < targs.Len(); i++ {
			arg, err := c.FromGoType(targs.At(i))
			if err != nil {
				return nil, err
			}
			args[i] = Box(arg)
		}
		return Parameterized(raw, args...), nil
	case *types.Pointer:
		elem, err := c.FromGoType(tt.Elem())
		if err != nil {
			return nil, err
		}
		return Box(elem), nil
	case *types.Slice:
		elem, err := c.FromGoType(tt.Elem())
		if err != nil {
			return nil, err
		}
		return ArrayOf(elem), nil
	case *types.Array:
		elem, err := c.FromGoType(tt.Elem())
		if err != nil {
			return nil, err
		}
		return ArrayOf(elem), nil
	case *types.Map:
		key, err := c.FromGoType(tt.Key())
		if err != nil {
			return nil, err
		}
		val, err := c.FromGoType(tt.Elem())
		if err != nil {
			return nil, err
		}
		return Parameterized(Map, Box(key), Box(val)), nil
	case *types.Interface:
		return Object, nil
	case *types.Basic:
		if tt.Kind() == types.String || tt.Kind() == types.UntypedString {
			return String, nil
		}
		if prim, ok := basicGoKind(tt.Kind()); ok {
			return prim, nil
		}
	}
	return nil, errors.NewArgumentTypeError("Go type %s has no Java equivalent", t)
}

// FromObject converts the declared type of obj. A type name converts to the
// type it declares; a variable, constant or field to its type.
func (c *Converter) FromObject(obj types.Object) (TypeName, error) {
	if obj == nil {
		return nil, errors.NewArgumentTypeError("nil types.Object")
	}
	return c.FromGoType(obj.Type())
}

func basicKind(k reflect.Kind) (TypeName, bool) {
	switch k {
	case reflect.Bool:
		return Boolean, true
	case reflect.Int8, reflect.Uint8:
		return Byte, true
	case reflect.Int16, reflect.Uint16:
		return Short, true
	case reflect.Int32, reflect.Uint32:
		return Int, true
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return Long, true
	case reflect.Float32:
		return Float, true
	case reflect.Float64:
		return Double, true
	case reflect.String:
		return String, true
	}
	return nil, false
}

func basicGoKind(k types.BasicKind) (TypeName, bool) {
	switch k {
	case types.Bool, types.UntypedBool:
		return Boolean, true
	case types.Int8, types.Uint8:
		return Byte, true
	case types.Int16, types.Uint16:
		return Short, true
	case types.Int32, types.Uint32, types.UntypedRune:
		return Int, true
	case types.Int, types.Int64, types.Uint, types.Uint64, types.Uintptr, types.UntypedInt:
		return Long, true
	case types.Float32:
		return Float, true
	case types.Float64, types.UntypedFloat:
		return Double, true
	}
	return nil, false
}

// exportName capitalizes the first letter so unexported Go types still
// produce Java class names.
func exportName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
