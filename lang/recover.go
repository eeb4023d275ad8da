package lang

import (
	"runtime/debug"

	"github.com/grailbio/base/errors"
)

// recoverEval runs cb, turning any panic into an error rather than
// letting it escape. The evaluator is total on well-typed input and
// diag-guarded against analysis errors, so a panic here means an
// internal bug (e.g. a Value accessor such as Int called on a value of
// another kind) rather than
// a user mistake; Run uses this as a last-resort backstop so one
// malformed expression can't take down an interactive session.
func recoverEval(cb func()) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = errors.E("panic %v: %v", e, string(debug.Stack()))
		}
	}()
	cb()
	return nil
}
