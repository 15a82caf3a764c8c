// Package model reads declarative Java type descriptions from YAML and turns
// them into renderable files.
//
// A model document names one Java package and the top-level types to emit in
// it:
//
//	requires: ">= 0.1.0"
//	package: com.example.shapes
//	types:
//	  - kind: class
//	    name: Circle
//	    modifiers: [public, final]
//	    fields:
//	      - {name: radius, type: double, modifiers: [private, final]}
//
// Method bodies are code templates using named arguments ($name:T) bound from
// the method's args and types maps.
package model

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/teranos/jpoet/errors"
	"github.com/teranos/jpoet/version"
)

// Document is one model file.
type Document struct {
	// Requires is a semver constraint on the jpoet version
	Requires string `yaml:"requires,omitempty"`

	// Package is the Java package of every type in the document
	Package string `yaml:"package"`

	// FileComment replaces the configured file comment when set
	FileComment string `yaml:"file_comment,omitempty"`

	StaticImports []StaticImport `yaml:"static_imports,omitempty"`
	Types         []Type         `yaml:"types"`

	// Source is the file the document was read from, if any
	Source string `yaml:"-"`
}

// StaticImport imports members of a class statically in every file.
type StaticImport struct {
	Class   string   `yaml:"class"`
	Members []string `yaml:"members"`
}

// Type describes a class, interface, enum or annotation type.
type Type struct {
	Kind          string       `yaml:"kind,omitempty"`
	Name          string       `yaml:"name"`
	Modifiers     []string     `yaml:"modifiers,omitempty"`
	Javadoc       string       `yaml:"javadoc,omitempty"`
	TypeVariables []string     `yaml:"type_variables,omitempty"`
	Superclass    string       `yaml:"superclass,omitempty"`
	Interfaces    []string     `yaml:"interfaces,omitempty"`
	Annotations   []Annotation `yaml:"annotations,omitempty"`
	Constants     []Constant   `yaml:"constants,omitempty"`
	Fields        []Field      `yaml:"fields,omitempty"`
	Methods       []Method     `yaml:"methods,omitempty"`
	Types         []Type       `yaml:"types,omitempty"`
}

// Annotation is an annotation use. Member values are Java code.
type Annotation struct {
	Type    string            `yaml:"type"`
	Members map[string]Values `yaml:"members,omitempty"`
}

// Values is one or more code values. A YAML scalar decodes as a single value.
type Values []string

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (v *Values) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*v = Values{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*v = list
		return nil
	}
	return errors.NewArgumentTypeError("line %d: annotation value must be a scalar or a list", node.Line)
}

// Constant is an enum constant. Args is the Java code passed to the enum
// constructor.
type Constant struct {
	Name    string   `yaml:"name"`
	Args    string   `yaml:"args,omitempty"`
	Javadoc string   `yaml:"javadoc,omitempty"`
	Methods []Method `yaml:"methods,omitempty"`
}

// Field is a field declaration. Initializer is Java code.
type Field struct {
	Name        string       `yaml:"name"`
	Type        string       `yaml:"type"`
	Modifiers   []string     `yaml:"modifiers,omitempty"`
	Javadoc     string       `yaml:"javadoc,omitempty"`
	Annotations []Annotation `yaml:"annotations,omitempty"`
	Initializer string       `yaml:"initializer,omitempty"`
}

// Method is a method or, with Constructor set, a constructor.
type Method struct {
	Name          string       `yaml:"name,omitempty"`
	Constructor   bool         `yaml:"constructor,omitempty"`
	Returns       string       `yaml:"returns,omitempty"`
	Modifiers     []string     `yaml:"modifiers,omitempty"`
	Javadoc       string       `yaml:"javadoc,omitempty"`
	Annotations   []Annotation `yaml:"annotations,omitempty"`
	TypeVariables []string     `yaml:"type_variables,omitempty"`
	Params        []Param      `yaml:"params,omitempty"`
	Varargs       bool         `yaml:"varargs,omitempty"`
	Throws        []string     `yaml:"throws,omitempty"`
	Default       string       `yaml:"default,omitempty"`

	// Args and Types bind the named arguments of Body. Types values are
	// Java type expressions.
	Args  map[string]string `yaml:"args,omitempty"`
	Types map[string]string `yaml:"types,omitempty"`
	Body  []Statement       `yaml:"body,omitempty"`
}

// Param is a method parameter.
type Param struct {
	Name        string       `yaml:"name"`
	Type        string       `yaml:"type"`
	Final       bool         `yaml:"final,omitempty"`
	Javadoc     string       `yaml:"javadoc,omitempty"`
	Annotations []Annotation `yaml:"annotations,omitempty"`
}

// Statement is one step of a method body. Exactly one field is set.
type Statement struct {
	Statement string `yaml:"statement,omitempty"`
	Begin     string `yaml:"begin,omitempty"`
	Next      string `yaml:"next,omitempty"`
	End       bool   `yaml:"end,omitempty"`
	Comment   string `yaml:"comment,omitempty"`
	Code      string `yaml:"code,omitempty"`
}

// UnmarshalYAML lets a bare string stand for a plain statement.
func (s *Statement) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*s = Statement{Statement: node.Value}
		return nil
	}
	type plain Statement
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*s = Statement(p)
	return nil
}

func (s Statement) count() int {
	n := 0
	for _, set := range []bool{s.Statement != "", s.Begin != "", s.Next != "", s.End, s.Comment != "", s.Code != ""} {
		if set {
			n++
		}
	}
	return n
}

// Parse decodes a document and checks its version requirement.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WithHint(
			errors.Wrap(err, "failed to parse model YAML"),
			"see jpoet render --help for the model format")
	}
	if err := version.CheckConstraint(version.Version, doc.Requires); err != nil {
		return nil, err
	}
	if len(doc.Types) == 0 {
		return nil, errors.NewNotFoundError("model declares no types")
	}
	return &doc, nil
}

// Load reads and parses the model file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read model %s", path)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "model %s", path)
	}
	doc.Source = path
	return doc, nil
}

// Marshal encodes doc as YAML.
func Marshal(doc *Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal model")
	}
	return data, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
