// Package argparse provides an argparse-style command-line argument parser:
// declare positional and optional arguments on a Parser, hand it the raw
// token slice, and it classifies, matches, coerces, and validates them into
// a flat result Namespace.
//
// The parser supports the full argparse arity vocabulary (optional single
// values, "?", "*", "+", fixed counts, REMAINDER, and subparser delegation),
// short-option clustering, long-option prefix abbreviation, mutually
// exclusive groups, @file argument expansion, and a layout-driven help
// formatter.
package argparse

import (
	"regexp"
)

// Suppress is the sentinel that suppresses default materialization in the
// Namespace and hides an argument from help output.
const Suppress = "==SUPPRESS=="

// ConflictHandler selects how ActionContainer.AddArgument reacts to a
// duplicate option string.
type ConflictHandler int

const (
	// ConflictError raises a declaration error naming every conflicting
	// option string.
	ConflictError ConflictHandler = iota
	// ConflictResolve silently strips the conflicting option strings from
	// the action that declared them first.
	ConflictResolve
)

// Kind names the behavior an Action performs when matched.
type Kind string

const (
	KindStore        Kind = "store"
	KindStoreConst   Kind = "store_const"
	KindStoreTrue    Kind = "store_true"
	KindStoreFalse   Kind = "store_false"
	KindAppend       Kind = "append"
	KindAppendConst  Kind = "append_const"
	KindCount        Kind = "count"
	KindHelp         Kind = "help"
	KindVersion      Kind = "version"
	KindSubParsers   Kind = "parsers"
)

// TypeFunc coerces a raw token into a typed value. Coercion failure must
// return a non-nil error; the parser wraps it with the type name and the
// offending value.
type TypeFunc func(raw string) (any, error)

// FilterFunc is the signature of an Action's PreFilter/PostFilter
// value-rewriting hooks (see argument_config_funcs.go), which run
// before/after coercion. Coercions themselves are TypeFuncs.
type FilterFunc func(string) string

var negativeNumberRe = regexp.MustCompile(`^-\d+$|^-\d*\.\d+$`)

// identityType is the "auto"/null coercion: returns the raw string unchanged.
func identityType(raw string) (any, error) { return raw, nil }

// builtin type registry names, exposed for use with WithType;
// ActionContainer.Register("type", name, fn) adds names alongside them or
// overrides one of them.
const (
	TypeAuto     = "auto"
	TypeString   = "string"
	TypeInt      = "int"
	TypeFloat    = "float"
	TypeBool     = "bool"
	TypeTime     = "time"
	TypeDuration = "duration"
)
