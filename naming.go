package paginate

import (
	"reflect"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// EntityName carries the display name of the collection's items in
// singular and plural form, e.g. {"book", "books"}.
type EntityName struct {
	Singular string
	Plural   string
}

// Title returns the plural form in title case, suitable for page
// headings.
func (n EntityName) Title() string {
	return titleCaser.String(n.Plural)
}

// NameOf derives a display name from v's dynamic type: pointers,
// slices and arrays are unwrapped, the type name is split on camel-case
// boundaries and lowercased, and the plural is formed with basic
// English rules. Unnamed types and nil fall back to "entry"/"entries".
//
//	NameOf(Book{})            -> {"book", "books"}
//	NameOf([]LineItem{})      -> {"line item", "line items"}
func NameOf(v interface{}) EntityName {
	t := reflect.TypeOf(v)
	for t != nil && (t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice || t.Kind() == reflect.Array) {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return EntityName{Singular: "entry", Plural: "entries"}
	}

	singular := strings.ToLower(strings.Join(splitCamel(t.Name()), " "))
	return EntityName{Singular: singular, Plural: Pluralize(singular)}
}

// Pluralize forms the plural of an English noun with the usual
// suffix rules: y -> ies after a consonant, es after sibilants, s
// otherwise. Irregular nouns are the caller's problem; supply an
// explicit EntityName for those.
func Pluralize(singular string) string {
	if singular == "" {
		return ""
	}

	lower := strings.ToLower(singular)
	switch {
	case strings.HasSuffix(lower, "y") && len(lower) > 1 && !isVowel(rune(lower[len(lower)-2])):
		return singular[:len(singular)-1] + "ies"
	case strings.HasSuffix(lower, "s"),
		strings.HasSuffix(lower, "x"),
		strings.HasSuffix(lower, "z"),
		strings.HasSuffix(lower, "ch"),
		strings.HasSuffix(lower, "sh"):
		return singular + "es"
	default:
		return singular + "s"
	}
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// splitCamel breaks a CamelCase identifier into words, keeping acronym
// runs together: "LineItem" -> ["Line", "Item"], "HTTPRoute" ->
// ["HTTP", "Route"].
func splitCamel(s string) []string {
	var words []string
	runes := []rune(s)
	start := 0

	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := false
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(cur):
			boundary = true
		case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			boundary = true
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))
	return words
}
