package codeblock

import (
	"fmt"
	"go/types"
	"reflect"

	"github.com/teranos/jpoet/emit/typename"
	"github.com/teranos/jpoet/errors"
)

// Kind identifies the placeholder an argument was bound to.
type Kind int

const (
	KindName    Kind = iota // $N
	KindLiteral             // $L
	KindString              // $S
	KindType                // $T
)

func (k Kind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindLiteral:
		return "literal"
	case KindString:
		return "string"
	case KindType:
		return "type"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Named is implemented by declarations that can be passed to $N.
type Named interface {
	Name() string
}

// Target is the document writer a Node emits itself through.
type Target interface {
	EmitBlock(b Block) error
}

// Node is a declaration that renders itself when passed to $L, such as an
// anonymous class body or an annotation.
type Node interface {
	EmitNode(t Target) error
}

// Arg is an argument converted for its placeholder when the block was built.
type Arg struct {
	kind Kind
	text string
	null bool
	sub  *Block
	node Node
	typ  typename.TypeName
}

// Kind returns the placeholder kind.
func (a Arg) Kind() Kind { return a.kind }

// Text returns the name for $N, the value for $S, or the formatted value of
// a plain $L argument.
func (a Arg) Text() string { return a.text }

// IsNull reports whether a $S argument was nil.
func (a Arg) IsNull() bool { return a.null }

// Block returns the nested block of a $L argument.
func (a Arg) Block() (Block, bool) {
	if a.sub == nil {
		return Block{}, false
	}
	return *a.sub, true
}

// Node returns the declaration of a $L argument.
func (a Arg) Node() (Node, bool) {
	return a.node, a.node != nil
}

// Type returns the type of a $T argument.
func (a Arg) Type() typename.TypeName { return a.typ }

func newArg(c byte, v interface{}) (Arg, error) {
	switch c {
	case 'N':
		return nameArg(v)
	case 'L':
		return literalArg(v), nil
	case 'S':
		return stringArg(v), nil
	case 'T':
		return typeArg(v)
	}
	return Arg{}, errors.AssertionFailedf("no argument for $%c", c)
}

func nameArg(v interface{}) (Arg, error) {
	switch n := v.(type) {
	case string:
		return Arg{kind: KindName, text: n}, nil
	case Named:
		return Arg{kind: KindName, text: n.Name()}, nil
	}
	return Arg{}, errors.NewArgumentTypeError("expected name but was %T", v)
}

func literalArg(v interface{}) Arg {
	switch l := v.(type) {
	case nil:
		return Arg{kind: KindLiteral, text: "null"}
	case Block:
		return Arg{kind: KindLiteral, sub: &l}
	case Node:
		return Arg{kind: KindLiteral, node: l}
	}
	return Arg{kind: KindLiteral, text: fmt.Sprint(v)}
}

func stringArg(v interface{}) Arg {
	switch s := v.(type) {
	case nil:
		return Arg{kind: KindString, null: true}
	case string:
		return Arg{kind: KindString, text: s}
	}
	return Arg{kind: KindString, text: fmt.Sprint(v)}
}

func typeArg(v interface{}) (Arg, error) {
	var (
		t   typename.TypeName
		err error
	)
	switch o := v.(type) {
	case typename.TypeName:
		t = o
	case reflect.Type:
		t, err = typename.FromReflect(o)
	case types.Object:
		t, err = typename.FromObject(o)
	case types.Type:
		t, err = typename.FromGoType(o)
	default:
		return Arg{}, errors.NewArgumentTypeError("expected type but was %T", v)
	}
	if err != nil {
		return Arg{}, err
	}
	return Arg{kind: KindType, typ: t}, nil
}
