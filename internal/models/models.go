// Package models provides models of the Go types that back record types.
package models

import (
	"reflect"
	"strings"

	. "github.com/dball/characteristic/internal/types"
)

// Writer sets the named field of a record value. The target must be
// addressable for struct-backed records.
type Writer func(target reflect.Value, name string, value any) error

// Model models a struct or string-keyed map type whose fields are bound to
// attributes.
type Model struct {
	// Type is the backing type, whose kind is struct or map.
	Type reflect.Type
	// Name is the record type name used in representations and errors.
	Name string
	// AttrFields are the fields bound to attributes, in attribute order.
	AttrFields []AttrFieldModel
}

// AttrFieldModel models a field bound to an attribute.
type AttrFieldModel struct {
	// Name is the attribute name.
	Name string
	// Index is the position of the field in the struct, or -1 for map entries.
	Index int
	// FieldType is the field's go type.
	FieldType reflect.Type
}

// IsMap indicates that the record is backed by a map.
func (model Model) IsMap() bool {
	return model.Type.Kind() == reflect.Map
}

// Attr returns the attribute field model with the given name, if any.
func (model Model) Attr(name string) (attr AttrFieldModel, ok bool) {
	for _, a := range model.AttrFields {
		if a.Name == name {
			attr = a
			ok = true
			break
		}
	}
	return
}

// Bound returns the attribute bound to the field the name resolves to, if
// any. Struct fields resolve by attribute name, tag, field name or
// case-insensitive field name, so several names may reach one attribute.
func (model Model) Bound(name string) (attr string, ok bool) {
	if _, ok = model.Attr(name); ok {
		attr = name
		return
	}
	if model.IsMap() {
		return
	}
	field, found := lookupField(model.Type, name)
	if !found || len(field.Index) != 1 {
		return
	}
	for _, a := range model.AttrFields {
		if a.Index == field.Index[0] {
			return a.Name, true
		}
	}
	return
}

// Analyze builds a model of the given type binding the named attributes. An
// empty name falls back to the type's own name.
func Analyze(typ reflect.Type, name string, attrNames []string) (model Model, err error) {
	if name == "" {
		name = typ.Name()
	}
	if name == "" {
		err = NewError("models.unnamedType", "type", typ)
		return
	}
	model.Type = typ
	model.Name = name
	attrFields := make([]AttrFieldModel, 0, len(attrNames))
	switch typ.Kind() {
	case reflect.Struct:
		for _, attrName := range attrNames {
			field, ok := lookupField(typ, attrName)
			if !ok {
				err = NewError("models.unknownField", "type", name, "attr", attrName)
				return
			}
			if !field.IsExported() {
				err = NewError("models.unexportedField", "type", name, "attr", attrName, "field", field.Name)
				return
			}
			attrFields = append(attrFields, AttrFieldModel{Name: attrName, Index: field.Index[0], FieldType: field.Type})
		}
	case reflect.Map:
		if typ.Key().Kind() != reflect.String {
			err = NewError("models.invalidMapKey", "type", name, "key", typ.Key())
			return
		}
		for _, attrName := range attrNames {
			attrFields = append(attrFields, AttrFieldModel{Name: attrName, Index: -1, FieldType: typ.Elem()})
		}
	default:
		err = NewError("models.invalidType", "type", name, "kind", typ.Kind())
		return
	}
	model.AttrFields = attrFields
	return
}

// TaggedNames returns the attribute names of the attr-tagged fields of the
// struct type, in field order.
func TaggedNames(typ reflect.Type) (names []string) {
	if typ.Kind() != reflect.Struct {
		return
	}
	n := typ.NumField()
	for i := 0; i < n; i++ {
		name, ok := tagName(typ.Field(i))
		if ok {
			names = append(names, name)
		}
	}
	return
}

func tagName(field reflect.StructField) (name string, ok bool) {
	tag, ok := field.Tag.Lookup("attr")
	if !ok {
		return
	}
	name, _, _ = strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	ok = name != "-"
	return
}

// lookupField finds the struct field for a name: an attr tag wins, then an
// exact field name, then a case-insensitive one.
func lookupField(typ reflect.Type, name string) (field reflect.StructField, ok bool) {
	n := typ.NumField()
	for i := 0; i < n; i++ {
		f := typ.Field(i)
		tag, tagged := tagName(f)
		if tagged && tag == name {
			return f, true
		}
	}
	field, ok = typ.FieldByName(name)
	if ok && len(field.Index) == 1 {
		return
	}
	for i := 0; i < n; i++ {
		f := typ.Field(i)
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	ok = false
	return
}

// Alloc returns a new addressable zero value of the record type. Maps are
// made, not nil.
func (model Model) Alloc() (value reflect.Value) {
	value = reflect.New(model.Type).Elem()
	if model.IsMap() {
		value.Set(reflect.MakeMapWithSize(model.Type, len(model.AttrFields)))
	}
	return
}

// Copy returns an addressable copy of the value. Map-backed values are cloned
// so the copy shares no entries with the original.
func (model Model) Copy(value reflect.Value) (clone reflect.Value) {
	clone = reflect.New(model.Type).Elem()
	if !model.IsMap() {
		clone.Set(value)
		return
	}
	m := reflect.MakeMapWithSize(model.Type, value.Len())
	iter := value.MapRange()
	for iter.Next() {
		m.SetMapIndex(iter.Key(), iter.Value())
	}
	clone.Set(m)
	return
}

// Tuple returns the attribute values of the value, in attribute order.
func (model Model) Tuple(value reflect.Value) (tuple []any) {
	tuple = make([]any, len(model.AttrFields))
	for i, attr := range model.AttrFields {
		var field reflect.Value
		if attr.Index < 0 {
			field = value.MapIndex(reflect.ValueOf(attr.Name).Convert(model.Type.Key()))
		} else {
			field = value.Field(attr.Index)
		}
		if field.IsValid() {
			tuple[i] = field.Interface()
		}
	}
	return
}

// Get returns the named field of the value, whether or not it is bound to an
// attribute.
func (model Model) Get(value reflect.Value, name string) (v any, err error) {
	field, err := model.field(value, name)
	if err != nil {
		return
	}
	if model.IsMap() {
		field = value.MapIndex(reflect.ValueOf(name).Convert(model.Type.Key()))
		if !field.IsValid() {
			err = NewError("models.unknownField", "type", model.Name, "attr", name)
			return
		}
	}
	v = field.Interface()
	return
}

// Write is the unguarded write primitive of the record type.
func (model Model) Write(target reflect.Value, name string, value any) (err error) {
	field, err := model.field(target, name)
	if err != nil {
		return
	}
	var fieldType reflect.Type
	if model.IsMap() {
		fieldType = model.Type.Elem()
	} else {
		if !field.CanSet() {
			err = NewError("models.unsettableField", "type", model.Name, "attr", name)
			return
		}
		fieldType = field.Type()
	}
	v, reason := coerce(value, fieldType)
	if reason != "" {
		err = NewError("models.invalidValue", "type", model.Name, "attr", name, "reason", reason, "fieldType", fieldType, "value", value)
		return
	}
	if model.IsMap() {
		target.SetMapIndex(reflect.ValueOf(name).Convert(model.Type.Key()), v)
	} else {
		field.Set(v)
	}
	return
}

// field resolves the struct field for the name. For maps, which have no
// fixed fields, it returns the zero value.
func (model Model) field(value reflect.Value, name string) (field reflect.Value, err error) {
	if model.IsMap() {
		return
	}
	if attr, ok := model.Attr(name); ok {
		field = value.Field(attr.Index)
		return
	}
	f, ok := lookupField(model.Type, name)
	if !ok {
		err = NewError("models.unknownField", "type", model.Name, "attr", name)
		return
	}
	if !f.IsExported() {
		err = NewError("models.unexportedField", "type", model.Name, "attr", name, "field", f.Name)
		return
	}
	field = value.FieldByIndex(f.Index)
	return
}
