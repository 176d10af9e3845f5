package pocketbase

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Filter is a record store filter expression. It can only be built from the
// constructors below, which quote every value, so user input never reaches the
// expression unescaped.
type Filter struct {
	expr string
}

// Eq matches records whose field equals value.
func Eq(field string, value any) Filter {
	return compare(field, "=", value)
}

// Like matches records whose field contains value. Backslashes in value are
// dropped, so a search for `a\b` matches "ab".
func Like(field, value string) Filter {
	return compare(field, "~", value)
}

// And requires every non-empty filter to match.
func And(filters ...Filter) Filter {
	return join(" && ", filters)
}

// Or requires at least one non-empty filter to match.
func Or(filters ...Filter) Filter {
	return join(" || ", filters)
}

// Search matches term against any of fields. An empty term yields an empty filter.
// Backslashes in term are dropped, as in Like.
func Search(term string, fields ...string) Filter {
	term = strings.TrimSpace(term)
	if term == "" {
		return Filter{}
	}

	likes := make([]Filter, 0, len(fields))
	for _, field := range fields {
		likes = append(likes, Like(field, term))
	}

	return Or(likes...)
}

// IsEmpty reports whether the filter matches everything.
func (f Filter) IsEmpty() bool {
	return f.expr == ""
}

func (f Filter) String() string {
	return f.expr
}

func compare(field, op string, value any) Filter {
	mustBeField(field)

	return Filter{expr: field + " " + op + " " + literal(value)}
}

func join(sep string, filters []Filter) Filter {
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		if !f.IsEmpty() {
			parts = append(parts, f.expr)
		}
	}

	switch len(parts) {
	case 0:
		return Filter{}
	case 1:
		return Filter{expr: parts[0]}
	}

	for i, p := range parts {
		parts[i] = "(" + p + ")"
	}

	return Filter{expr: strings.Join(parts, sep)}
}

// literal renders value in the filter grammar.
func literal(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return quote(v.UTC().Format(timeLayout))
	case string:
		return quote(v)
	default:
		return quote(fmt.Sprint(v))
	}
}

// quote wraps s in single quotes. The grammar treats any quote preceded by a
// backslash as escaped and has no escape for the backslash itself, so
// backslashes are dropped before quotes are escaped.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, "")
	s = strings.ReplaceAll(s, `'`, `\'`)

	return "'" + s + "'"
}

// mustBeField panics on field names that are not plain identifiers.
// Field names are always compile-time constants.
func mustBeField(field string) {
	if field == "" {
		panic("pocketbase: empty filter field")
	}
	for _, r := range field {
		if r != '_' && r != '.' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			panic("pocketbase: invalid filter field " + strconv.Quote(field))
		}
	}
}
