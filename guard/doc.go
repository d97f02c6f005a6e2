// Package guard provides precondition checks for function boundaries.
//
// Each check validates one parameter and returns it unchanged on success.
// On failure it returns an [*InvalidArgumentError] naming the offending
// parameter and describing the violated constraint in one line:
//
//	timeout, err := guard.Timeout(cfg.Timeout, "timeout")
//	if err != nil {
//	    return err
//	}
//
// All failures map to the single error kind [ErrInvalidArgument] with a
// sub-reason, so callers can branch on the kind without string matching:
//
//	if errors.Is(err, guard.ErrInvalidArgument) { ... }
//
// Guard failures are precondition violations: they propagate immediately
// to the caller with no retry or recovery. For constructors and test
// setup, wrap a check in [Must] to panic instead.
package guard
