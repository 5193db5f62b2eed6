// Package cmdline turns typed settings into argument lists for external tools.
//
// Every option type declares a single Flag describing its flag name and how its
// value is emitted. The set of kinds is closed: Bool, List, Arg, Args and Custom.
package cmdline

import "strings"

// Kind selects the emission rule of a Flag.
type Kind uint8

const (
	// KindBool emits the flag alone when the value is true.
	KindBool Kind = iota
	// KindList emits the flag followed by all elements joined into one token.
	KindList
	// KindArg always emits the flag followed by the value.
	KindArg
	// KindArgs emits the flag followed by one token per element.
	KindArgs
	// KindCustom emits whatever the extraction function returns.
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindArg:
		return "arg"
	case KindArgs:
		return "args"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Flag is the declaration of a command-line option owned by values of type T.
// The zero value emits nothing. Build flags with Bool, List, Arg, Args or Custom.
type Flag[T any] struct {
	name    string
	kind    Kind
	boolFn  func(T) bool
	valueFn func(T) string
	listFn  func(T) []string
}

// Bool declares a toggle: `--flag` when fn returns true.
func Bool[T any](name string, fn func(T) bool) Flag[T] {
	return Flag[T]{name: name, kind: KindBool, boolFn: fn}
}

// List declares a flag whose elements travel as one space separated token:
//
//	--flag "a b c"
func List[T any](name string, fn func(T) []string) Flag[T] {
	return Flag[T]{name: name, kind: KindList, listFn: fn}
}

// Arg declares a flag with exactly one value. It is emitted even when the value
// is the zero value of its type.
func Arg[T any](name string, fn func(T) string) Flag[T] {
	return Flag[T]{name: name, kind: KindArg, valueFn: fn}
}

// Args declares a flag followed by a variable number of values:
//
//	--flag a b
func Args[T any](name string, fn func(T) []string) Flag[T] {
	return Flag[T]{name: name, kind: KindArgs, listFn: fn}
}

// Custom declares an option that renders its own tokens. No flag name is
// prepended.
func Custom[T any](fn func(T) []string) Flag[T] {
	return Flag[T]{kind: KindCustom, listFn: fn}
}

// Name returns the flag name; empty for Custom flags.
func (f Flag[T]) Name() string { return f.name }

// Kind returns the emission rule.
func (f Flag[T]) Kind() Kind { return f.kind }

// Tokens serializes v according to the flag kind.
func (f Flag[T]) Tokens(v T) []string {
	switch f.kind {
	case KindBool:
		if f.boolFn == nil || !f.boolFn(v) {
			return nil
		}
		return []string{f.name}
	case KindList:
		list := f.list(v)
		if len(list) == 0 {
			return nil
		}
		return []string{f.name, strings.Join(list, " ")}
	case KindArg:
		value := ""
		if f.valueFn != nil {
			value = f.valueFn(v)
		}
		return []string{f.name, value}
	case KindArgs:
		list := f.list(v)
		if len(list) == 0 {
			return nil
		}
		out := make([]string, 0, len(list)+1)
		out = append(out, f.name)
		return append(out, list...)
	case KindCustom:
		return f.list(v)
	}
	return nil
}

func (f Flag[T]) list(v T) []string {
	if f.listFn == nil {
		return nil
	}
	return f.listFn(v)
}
