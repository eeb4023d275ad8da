package lang

import (
	"fmt"

	"github.com/grailbio/base/log"
)

// Debugf logs a debug-level trace attributed to node's source position.
// Eval uses it to trace function applications without threading a
// logger through every function signature.
func Debugf(node Node, format string, args ...interface{}) {
	if log.At(log.Debug) {
		log.Output(2, log.Debug, node.Pos().String()+": "+node.String()+": "+fmt.Sprintf(format, args...)) // nolint: errcheck
	}
}

// Errorf logs an error-level trace attributed to node's source
// position. Unlike diag.Sink.Errorf, this does not affect the
// evaluator's run guard — it is for host-side tracing of internal
// failures (e.g. a panic recovered mid-evaluation), not user-facing
// diagnostics.
func Errorf(node Node, format string, args ...interface{}) {
	log.Output(2, log.Error, node.Pos().String()+": "+node.String()+": "+fmt.Sprintf(format, args...)) // nolint: errcheck
}
