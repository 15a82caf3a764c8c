package javagen

import (
	"reflect"
	"strings"
)

// FieldTag holds what the struct tags of one field say about its Java form.
//
//	Name string `json:"name,omitempty" java:"displayName,transient" javatype:"java.util.UUID"`
type FieldTag struct {
	Name      string // from java, else json; empty keeps the Go name
	Skip      bool   // java:"-", or json:"-" without a java tag
	Transient bool   // java:",transient"
	Boxed     bool   // java:",boxed" or json omitempty: primitives become their box
	JavaType  string // javatype tag, a Java type expression
}

// ParseFieldTag extracts the Java relevant parts of a raw struct tag.
func ParseFieldTag(raw string) FieldTag {
	st := reflect.StructTag(strings.Trim(raw, "`"))
	var info FieldTag

	if jsonTag, ok := st.Lookup("json"); ok {
		parts := strings.Split(jsonTag, ",")
		if parts[0] == "-" && len(parts) == 1 {
			info.Skip = true
		} else {
			info.Name = parts[0]
		}
		for _, opt := range parts[1:] {
			if opt == "omitempty" {
				info.Boxed = true
			}
		}
	}

	if javaTag, ok := st.Lookup("java"); ok {
		if javaTag == "-" {
			info.Skip = true
			return info
		}
		info.Skip = false
		parts := strings.Split(javaTag, ",")
		if parts[0] != "" {
			info.Name = parts[0]
		}
		for _, opt := range parts[1:] {
			switch strings.TrimSpace(opt) {
			case "transient":
				info.Transient = true
			case "boxed":
				info.Boxed = true
			}
		}
	}

	info.JavaType = strings.TrimSpace(st.Get("javatype"))
	return info
}
