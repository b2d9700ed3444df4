package schemagen

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"
)

// DefinitionOf builds a Definition from a struct value or type using
// reflection. Field names come from `json` tags; fields without omitempty
// are required. An `instruction` tag sets the field's Instruction. Fields of
// untagged embedded structs are promoted into the parent, as encoding/json
// does.
func DefinitionOf(v any) (*Definition, error) {
	if v == nil {
		return nil, misuseError("DefinitionOf(nil)")
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, misuseError(fmt.Sprintf("DefinitionOf: type must be a struct, got %s", t.Kind()))
	}
	return definitionFromStruct(t, nil)
}

var timeType = reflect.TypeOf(time.Time{})

func definitionFromStruct(t reflect.Type, stack []reflect.Type) (*Definition, error) {
	def := &Definition{
		Type:       "object",
		Properties: make(map[string]*Definition),
		Required:   make([]string, 0),
	}
	if err := addStructFields(def, t, stack, make(map[string]bool)); err != nil {
		return nil, err
	}
	return def, nil
}

// addStructFields adds the JSON-visible fields of t to def. promoted tracks
// names that came from embedded structs; a field declared directly on the
// outer struct replaces a promoted one with the same name.
func addStructFields(def *Definition, t reflect.Type, stack []reflect.Type, promoted map[string]bool) error {
	if slices.Contains(stack, t) {
		return misuseError(fmt.Sprintf("DefinitionOf: recursive type %s", t))
	}
	stack = append(stack, t)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		parts := strings.Split(jsonTag, ",")

		if field.Anonymous && parts[0] == "" {
			ft := field.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				inner := &Definition{Properties: make(map[string]*Definition)}
				if err := addStructFields(inner, ft, stack, make(map[string]bool)); err != nil {
					return err
				}
				for _, name := range inner.ProcessingOrder {
					if _, exists := def.Properties[name]; exists {
						continue
					}
					def.Properties[name] = inner.Properties[name]
					def.ProcessingOrder = append(def.ProcessingOrder, name)
					if slices.Contains(inner.Required, name) {
						def.Required = append(def.Required, name)
					}
					promoted[name] = true
				}
				continue
			}
		}
		if !field.IsExported() {
			continue
		}

		fieldName := field.Name
		if parts[0] != "" {
			fieldName = parts[0]
		}

		fd, err := typeToDefinition(field.Type, stack)
		if err != nil {
			return err
		}
		if instr := field.Tag.Get("instruction"); instr != "" {
			fd.Instruction = instr
		}

		if _, exists := def.Properties[fieldName]; exists {
			if !promoted[fieldName] {
				continue
			}
			delete(promoted, fieldName)
			def.ProcessingOrder = slices.DeleteFunc(def.ProcessingOrder, func(s string) bool { return s == fieldName })
			def.Required = slices.DeleteFunc(def.Required, func(s string) bool { return s == fieldName })
		}
		if !slices.Contains(parts[1:], "omitempty") {
			def.Required = append(def.Required, fieldName)
		}
		def.Properties[fieldName] = fd
		def.ProcessingOrder = append(def.ProcessingOrder, fieldName)
	}
	return nil
}

// typeToDefinition maps a Go type to a Definition node.
func typeToDefinition(t reflect.Type, stack []reflect.Type) (*Definition, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == timeType {
		return &Definition{Type: "string"}, nil
	}

	switch t.Kind() {
	case reflect.String:
		return &Definition{Type: "string"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Definition{Type: "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return &Definition{Type: "number"}, nil
	case reflect.Bool:
		return &Definition{Type: "boolean"}, nil
	case reflect.Slice, reflect.Array:
		items, err := typeToDefinition(t.Elem(), stack)
		if err != nil {
			return nil, err
		}
		return &Definition{Type: "array", Items: items}, nil
	case reflect.Struct:
		return definitionFromStruct(t, stack)
	case reflect.Map:
		return &Definition{Type: "object"}, nil
	default:
		return &Definition{Type: "string"}, nil
	}
}
