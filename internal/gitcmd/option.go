// Package gitcmd provides a declarative schema for git subcommand options
// and a runner that executes validated argument vectors as subprocesses.
//
// Each subcommand (add, clone, log, ...) is described as pure data: an
// ordered list of option definitions. Supplied options are validated against
// the schema and serialized into a correct, ordered argument vector before a
// process is ever spawned.
package gitcmd

import (
	"strconv"
	"strings"
)

// Kind identifies the variant carried by a Value. Definitions match supplied
// options by alias name and by kind, so two definitions may share an alias
// and be disambiguated purely by the value's kind.
type Kind int

const (
	// KindBool is a toggle flag value
	KindBool Kind = iota
	// KindInt is an integer value
	KindInt
	// KindString is a single string value
	KindString
	// KindStringList is an ordered list of strings
	KindStringList
)

// String returns the human-readable kind name used in error messages
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindStringList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a tagged variant holding one option value. The zero Value is a
// false bool.
type Value struct {
	kind Kind
	b    bool
	i    int
	s    string
	list []string
}

// Bool creates a bool Value
func Bool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

// Int creates an int Value
func Int(v int) Value {
	return Value{kind: KindInt, i: v}
}

// String creates a string Value
func String(v string) Value {
	return Value{kind: KindString, s: v}
}

// Strings creates a string-list Value
func Strings(v ...string) Value {
	return Value{kind: KindStringList, list: v}
}

// Kind returns the variant tag of the value
func (v Value) Kind() Kind {
	return v.kind
}

// IsFalse reports whether the value is the boolean false. A false flag is a
// pure toggle-absence and serializes to nothing.
func (v Value) IsFalse() bool {
	return v.kind == KindBool && !v.b
}

// render returns the value's argument tokens. Bools render to nothing: a
// true flag emits only its flag token, which the caller handles.
func (v Value) render() []string {
	switch v.kind {
	case KindInt:
		return []string{strconv.Itoa(v.i)}
	case KindString:
		return []string{v.s}
	case KindStringList:
		return v.list
	default:
		return nil
	}
}

// text returns the single-token textual form used for choice comparison
func (v Value) text() string {
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.i)
	case KindString:
		return v.s
	case KindStringList:
		return strings.Join(v.list, " ")
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// Alias is one spelling of an option flag
type Alias struct {
	Name  string
	Short bool
}

// Aliases is the alias set of one option, e.g. {"force", "-f"}
type Aliases []Alias

// Has reports whether name is one of the alias spellings
func (a Aliases) Has(name string) bool {
	for _, alias := range a {
		if alias.Name == name {
			return true
		}
	}
	return false
}

// Long returns the first long-form alias name and whether one exists
func (a Aliases) Long() (string, bool) {
	for _, alias := range a {
		if !alias.Short {
			return alias.Name, true
		}
	}
	return "", false
}

// Short returns the first short-form alias name and whether one exists
func (a Aliases) Short() (string, bool) {
	for _, alias := range a {
		if alias.Short {
			return alias.Name, true
		}
	}
	return "", false
}

// Names returns all alias names in declaration order
func (a Aliases) Names() []string {
	names := make([]string, 0, len(a))
	for _, alias := range a {
		names = append(names, alias.Name)
	}
	return names
}

// Group returns the alias names joined by "|", the form used when reporting
// missing required options.
func (a Aliases) Group() string {
	return strings.Join(a.Names(), "|")
}

// Option pairs an alias name with a value, as supplied by a caller. It is
// matched against definitions by name and by the value's kind.
type Option struct {
	Name  string
	Value Value
}

// Option creates a supplied option for this alias set, preferring the long
// alias spelling when one exists. Pure function, no failure modes.
func (a Aliases) Option(value Value) Option {
	name, ok := a.Long()
	if !ok {
		name, _ = a.Short()
	}
	return Option{Name: name, Value: value}
}
