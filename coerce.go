package argparse

import (
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// stringify renders an arbitrary coerced value the way usage/help/error text
// does: numbers and durations print bare, everything else falls back to
// fmt's default verb.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case time.Duration:
		return t.String()
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

// coerceInt is the "int" builtin TypeFunc.
func coerceInt(raw string) (any, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid int value: %q", raw)
	}
	return int(n), nil
}

// coerceFloat is the "float" builtin TypeFunc.
func coerceFloat(raw string) (any, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid float value: %q", raw)
	}
	return f, nil
}

// coerceBool is the "bool" builtin TypeFunc; accepts the same vocabulary as
// strconv.ParseBool plus the bare presence of the flag is normally handled by
// store_true/store_false instead of this coercion.
func coerceBool(raw string) (any, error) {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid bool value: %q", raw)
	}
	return b, nil
}

// coerceString is the explicit "string" builtin TypeFunc: identical to auto,
// kept distinct so a Choices list typed against strings reads naturally.
func coerceString(raw string) (any, error) { return raw, nil }

// coerceTime is the "time" builtin TypeFunc: a layout-free, best-effort
// timestamp parse, since spec.md's date/time argument values arrive in
// whatever format the invoking shell/user typed.
func coerceTime(raw string) (any, error) {
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid time value: %q", raw)
	}
	return t, nil
}

// coerceDuration is the "duration" builtin TypeFunc.
func coerceDuration(raw string) (any, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid duration value: %q", raw)
	}
	return d, nil
}

// builtinTypes is the seed registry consulted by ActionContainer.resolveType
// after a container's own Register("type", ...) entries, so those can
// override a builtin name.
var builtinTypes = map[string]TypeFunc{
	TypeAuto:     identityType,
	TypeString:   coerceString,
	TypeInt:      coerceInt,
	TypeFloat:    coerceFloat,
	TypeBool:     coerceBool,
	TypeTime:     coerceTime,
	TypeDuration: coerceDuration,
}
