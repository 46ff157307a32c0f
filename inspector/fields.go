package inspector

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/pthm-cable/roids/geom"
)

// Widget selects how a field is drawn.
type Widget int

const (
	WidgetAuto Widget = iota
	WidgetLabel
	WidgetBar
	WidgetAngle
	WidgetBool
	WidgetSkip
)

var widgetNames = map[string]Widget{
	"label": WidgetLabel,
	"bar":   WidgetBar,
	"angle": WidgetAngle,
	"bool":  WidgetBool,
	"skip":  WidgetSkip,
}

// Field is one inspectable value with its drawing hints.
type Field struct {
	Name   string
	Value  any
	Widget Widget
	Format string  // fmt verb for labels; empty uses FormatValue defaults
	Max    float64 // Full scale of a bar
}

// ParseTag reads an inspect struct tag of the form
// `inspect:"widget[,fmt:<verb>][,max:<n>]"`, e.g. `inspect:"bar,max:100"`.
// Bars without a max are scaled to 1.
func ParseTag(tag string) Field {
	f := Field{Max: 1}
	if tag == "" {
		return f
	}
	widget, opts, _ := strings.Cut(tag, ",")
	f.Widget = widgetNames[strings.TrimSpace(widget)]

	for _, opt := range strings.Split(opts, ",") {
		key, val, ok := strings.Cut(strings.TrimSpace(opt), ":")
		if !ok {
			continue
		}
		switch key {
		case "fmt":
			f.Format = val
		case "max":
			if m, err := strconv.ParseFloat(val, 64); err == nil && m > 0 {
				f.Max = m
			}
		}
	}
	return f
}

// ExtractFields lists the exported fields of a struct or struct pointer in
// declaration order. Anything else, including a nil pointer, yields nil.
func ExtractFields(v any) []Field {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	var fields []Field
	for _, sf := range reflect.VisibleFields(rv.Type()) {
		if !sf.IsExported() || len(sf.Index) > 1 {
			continue
		}
		f := ParseTag(sf.Tag.Get("inspect"))
		if f.Widget == WidgetSkip {
			continue
		}
		f.Name = sf.Name
		f.Value = rv.FieldByIndex(sf.Index).Interface()
		if f.Widget == WidgetAuto {
			f.Widget = WidgetLabel
			if sf.Type.Kind() == reflect.Bool {
				f.Widget = WidgetBool
			}
		}
		fields = append(fields, f)
	}
	return fields
}

// FormatValue renders a value for a label. Vectors print as (x, y) and
// floats with two decimals unless format says otherwise.
func FormatValue(value any, format string) string {
	if v, ok := value.(geom.Vec); ok {
		return fmt.Sprintf("(%.1f, %.1f)", v.X, v.Y)
	}
	if format != "" {
		return fmt.Sprintf(format, value)
	}
	if _, ok := value.(float64); ok {
		return fmt.Sprintf("%.2f", value)
	}
	return fmt.Sprint(value)
}

// Number converts any integer or float value to float64.
func Number(value any) (float64, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	}
	return 0, false
}

// Heading returns a value as degrees counter-clockwise from +X. Vectors
// give their direction; numbers are taken as degrees already.
func Heading(value any) (float64, bool) {
	if v, ok := value.(geom.Vec); ok {
		return geom.AngleDeg(v), true
	}
	return Number(value)
}
