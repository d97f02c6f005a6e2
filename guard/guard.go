package guard

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidArgument is the sentinel all guard failures match via errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Reason classifies which constraint a guard failure violated.
type Reason string

const (
	ReasonEmpty     Reason = "empty"
	ReasonBlank     Reason = "blank"
	ReasonNil       Reason = "nil"
	ReasonRange     Reason = "out_of_range"
	ReasonSign      Reason = "wrong_sign"
	ReasonTimeout   Reason = "invalid_timeout"
	ReasonPattern   Reason = "pattern_mismatch"
	ReasonNotOneOf  Reason = "not_one_of"
	ReasonPredicate Reason = "predicate_failed"
)

// InvalidArgumentError reports a violated parameter precondition.
type InvalidArgumentError struct {
	Param  string
	Reason Reason
	msg    string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Param, e.msg)
}

// Is makes every guard failure match ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func fail(param string, reason Reason, format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{
		Param:  param,
		Reason: reason,
		msg:    fmt.Sprintf(format, args...),
	}
}

// NotEmpty validates that s is not the empty string.
func NotEmpty(s, param string) (string, error) {
	if s == "" {
		return "", fail(param, ReasonEmpty, "must not be empty")
	}
	return s, nil
}

// NotBlank validates that s contains at least one non-whitespace character.
func NotBlank(s, param string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", fail(param, ReasonBlank, "must not be blank")
	}
	return s, nil
}

// NotNil validates that p is a non-nil pointer.
func NotNil[T any](p *T, param string) (*T, error) {
	if p == nil {
		return nil, fail(param, ReasonNil, "must not be nil")
	}
	return p, nil
}

// InRange validates that lo <= v <= hi.
func InRange[T cmp.Ordered](v, lo, hi T, param string) (T, error) {
	if v < lo || v > hi {
		var zero T
		return zero, fail(param, ReasonRange, "must be in [%v, %v], got %v", lo, hi, v)
	}
	return v, nil
}

// Min validates that v >= lo.
func Min[T cmp.Ordered](v, lo T, param string) (T, error) {
	if v < lo {
		var zero T
		return zero, fail(param, ReasonRange, "must be >= %v, got %v", lo, v)
	}
	return v, nil
}

// Max validates that v <= hi.
func Max[T cmp.Ordered](v, hi T, param string) (T, error) {
	if v > hi {
		var zero T
		return zero, fail(param, ReasonRange, "must be <= %v, got %v", hi, v)
	}
	return v, nil
}

// Positive validates that v > 0.
func Positive[T ~int | ~int64 | ~float64](v T, param string) (T, error) {
	if v <= 0 {
		var zero T
		return zero, fail(param, ReasonSign, "must be positive, got %v", v)
	}
	return v, nil
}

// NonNegative validates that v >= 0.
func NonNegative[T ~int | ~int64 | ~float64](v T, param string) (T, error) {
	if v < 0 {
		var zero T
		return zero, fail(param, ReasonSign, "must not be negative, got %v", v)
	}
	return v, nil
}

// Timeout validates that d is a positive duration.
func Timeout(d time.Duration, param string) (time.Duration, error) {
	if d <= 0 {
		return 0, fail(param, ReasonTimeout, "must be a positive duration, got %v", d)
	}
	return d, nil
}

// MatchesPattern validates that s matches the compiled pattern.
func MatchesPattern(s string, pattern *regexp.Regexp, param string) (string, error) {
	if !pattern.MatchString(s) {
		return "", fail(param, ReasonPattern, "must match %s, got %q", pattern, s)
	}
	return s, nil
}

// OneOf validates that v equals one of the allowed values.
func OneOf[T comparable](v T, allowed []T, param string) (T, error) {
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	var zero T
	return zero, fail(param, ReasonNotOneOf, "must be one of %v, got %v", allowed, v)
}

// Requires validates v against an arbitrary predicate. The constraint text
// should describe what the predicate demands, e.g. "be an absolute path".
func Requires[T any](v T, pred func(T) bool, constraint, param string) (T, error) {
	if !pred(v) {
		var zero T
		return zero, fail(param, ReasonPredicate, "must %s, got %v", constraint, v)
	}
	return v, nil
}

// Must unwraps a guard result, panicking on failure. Intended for
// constructors, package initialization, and tests where a violated
// precondition is a programming error.
//
// Example:
//
//	format := guard.Must(guard.OneOf(f, validFormats, "format"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
