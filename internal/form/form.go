// Package form holds the shape entry form: a type selector, the x/y
// position fields and one attribute row per shape type.
package form

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"shape-canvas/internal/shape"
)

// Field is one text input. Name uses the "Type[attr]" convention for
// attribute fields.
type Field struct {
	Name  string
	Label string
	Value string
}

// Attr returns the record field name: the part inside the brackets, or the
// whole name when there are none.
func (f *Field) Attr() string {
	return AttrName(f.Name)
}

var bracketName = regexp.MustCompile(`^(.*\[(.*)\])$`)

// AttrName maps "Circle[r]" to "r".
func AttrName(name string) string {
	return bracketName.ReplaceAllString(name, "$2")
}

func attrs(kind shape.Kind, names ...string) []*Field {
	fields := make([]*Field, len(names))
	for i, n := range names {
		fields[i] = &Field{Name: fmt.Sprintf("%s[%s]", kind, n), Label: n}
	}
	return fields
}

// Form is the entry form state. The zero value is not usable; call New.
type Form struct {
	selected shape.Kind
	x, y     *Field
	rows     map[shape.Kind][]*Field
	errors   []string
}

func New() *Form {
	return &Form{
		x: &Field{Name: "x", Label: "x"},
		y: &Field{Name: "y", Label: "y"},
		rows: map[shape.Kind][]*Field{
			shape.KindCircle:    attrs(shape.KindCircle, "r"),
			shape.KindRectangle: attrs(shape.KindRectangle, "width", "height"),
			shape.KindSquare:    attrs(shape.KindSquare, "size"),
			shape.KindLine:      attrs(shape.KindLine, "x2", "y2", "stroke"),
			shape.KindArc:       attrs(shape.KindArc, "angleStart", "angleEnd", "radius"),
			shape.KindText:      attrs(shape.KindText, "text"),
		},
	}
}

// Select switches the shape type. Previous error messages are removed,
// every attribute row is hidden and the row of kind, if any, is shown.
func (f *Form) Select(kind shape.Kind) {
	f.errors = nil
	f.selected = kind
}

// Selected returns the current shape type.
func (f *Form) Selected() shape.Kind {
	return f.selected
}

// Next selects the type after the current one, wrapping around.
func (f *Form) Next(step int) {
	n := len(shape.Kinds)
	i := -1
	for j, k := range shape.Kinds {
		if k == f.selected {
			i = j
		}
	}
	if i < 0 {
		i = 0
		if step < 0 {
			i = n - 1
		}
		f.Select(shape.Kinds[i])
		return
	}
	f.Select(shape.Kinds[((i+step)%n+n)%n])
}

// RowVisible reports whether the attribute row of kind is shown.
func (f *Form) RowVisible(kind shape.Kind) bool {
	_, ok := f.rows[kind]
	return ok && kind == f.selected
}

// AddVisible reports whether the add button is shown: only when the
// selected type has an attribute row.
func (f *Form) AddVisible() bool {
	return f.RowVisible(f.selected)
}

// Fields returns the inputs currently shown: x, y and the selected row.
func (f *Form) Fields() []*Field {
	fields := []*Field{f.x, f.y}
	if f.RowVisible(f.selected) {
		fields = append(fields, f.rows[f.selected]...)
	}
	return fields
}

// Field returns the input with the given name.
func (f *Form) Field(name string) (*Field, bool) {
	switch name {
	case f.x.Name:
		return f.x, true
	case f.y.Name:
		return f.y, true
	}
	for _, row := range f.rows {
		for _, fd := range row {
			if fd.Name == name {
				return fd, true
			}
		}
	}
	return nil, false
}

// SetValue fills the input with the given name.
func (f *Form) SetValue(name, value string) error {
	fd, ok := f.Field(name)
	if !ok {
		return fmt.Errorf("%w: no form field %q", shape.ErrBadField, name)
	}
	fd.Value = value
	return nil
}

// Record builds {type, x, y, attrs...} from the visible inputs.
func (f *Form) Record() (shape.Record, error) {
	rec := shape.Record{Type: f.selected}
	for _, fd := range f.Fields() {
		if err := rec.Set(fd.Attr(), fd.Value); err != nil {
			return shape.Record{}, err
		}
	}
	return rec, nil
}

// AddError appends an error message to show under the form.
func (f *Form) AddError(msg string) {
	f.errors = append(f.errors, msg)
}

// Errors returns the messages added since the last Select.
func (f *Form) Errors() []string {
	return f.errors
}

// ParseValues builds a record from a form post using the same field names
// as the form: "type", "x", "y" and "Type[attr]". Plain attribute names and
// "fill" are accepted too; other plain names, such as a submit button, are
// ignored. A "Type[attr]" value wins over the plain name.
func ParseValues(values url.Values) (shape.Record, error) {
	rec := shape.Record{Type: shape.Kind(values.Get("type"))}
	prefix := string(rec.Type) + "["

	var plain, bracketed []string
	for name, vs := range values {
		switch {
		case name == "type" || len(vs) == 0:
		case strings.HasPrefix(name, prefix):
			bracketed = append(bracketed, name)
		case !strings.Contains(name, "[") && shape.HasField(name):
			plain = append(plain, name)
		}
	}
	sort.Strings(plain)
	sort.Strings(bracketed)

	for _, name := range append(plain, bracketed...) {
		if err := rec.Set(AttrName(name), values[name][0]); err != nil {
			return shape.Record{}, err
		}
	}
	return rec, nil
}
