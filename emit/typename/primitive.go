package typename

// Primitive is a Java primitive type or void.
type Primitive struct {
	keyword string
	boxed   ClassName
}

var (
	Void    = Primitive{"void", boxedVoid}
	Boolean = Primitive{"boolean", boxedBoolean}
	Byte    = Primitive{"byte", boxedByte}
	Short   = Primitive{"short", boxedShort}
	Int     = Primitive{"int", boxedInt}
	Long    = Primitive{"long", boxedLong}
	Char    = Primitive{"char", boxedChar}
	Float   = Primitive{"float", boxedFloat}
	Double  = Primitive{"double", boxedDouble}
)

var primitives = []Primitive{Void, Boolean, Byte, Short, Int, Long, Char, Float, Double}

// PrimitiveByKeyword returns the primitive spelled keyword.
func PrimitiveByKeyword(keyword string) (Primitive, bool) {
	for _, p := range primitives {
		if p.keyword == keyword {
			return p, true
		}
	}
	return Primitive{}, false
}

// Box returns the wrapper class, e.g. java.lang.Integer for int.
func (p Primitive) Box() ClassName {
	return p.boxed
}

// Keyword returns the Java keyword of the primitive.
func (p Primitive) Keyword() string {
	return p.keyword
}

func (p Primitive) Render(Qualifier) string { return p.keyword }
func (p Primitive) String() string { return p.keyword }
func (p Primitive) IsPrimitive() bool { return true }
func (Primitive) isTypeName() {}
