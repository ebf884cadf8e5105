// Package trace decorates invocables with structured invocation logging.
//
// Tracing is a diagnostics collaborator: a traced invocable forwards
// arguments, results, and errors unchanged, and only adds log output on the
// way through. Wrap the target before handing it to partial.Make to observe
// every invocation of the resulting delayed call.
package trace

import (
	"github.com/google/uuid"
	"github.com/on-the-ground/partial_ive_go/partial"
	"go.uber.org/zap"
)

// Wrap returns an invocable that logs each invocation of target through
// logger. Every invocation gets a fresh call id so concurrent invocations
// remain distinguishable in the output. If target is a *partial.Call, its
// rendering and fingerprint are attached to the start entry.
func Wrap(name string, target partial.Invocable, logger *zap.Logger) partial.Invocable {
	return traced{name: name, target: target, logger: logger}
}

type traced struct {
	name   string
	target partial.Invocable
	logger *zap.Logger
}

func (t traced) Invoke(args partial.Args, kwargs partial.KwArgs) (any, error) {
	callID := uuid.New().String()

	startFields := []zap.Field{
		zap.String("call_id", callID),
		zap.String("target", t.name),
		zap.Int("num_args", len(args)),
		zap.Int("num_kwargs", len(kwargs)),
	}
	if c, ok := t.target.(*partial.Call); ok {
		startFields = append(startFields,
			zap.Stringer("delayed_call", c),
			zap.Uint64("fingerprint", c.Fingerprint()),
		)
	}
	t.logger.Debug("invoking target", startFields...)

	res, err := t.target.Invoke(args, kwargs)
	if err != nil {
		t.logger.Error("target failed",
			zap.String("call_id", callID),
			zap.String("target", t.name),
			zap.Error(err),
		)
		return res, err
	}

	t.logger.Debug("target completed",
		zap.String("call_id", callID),
		zap.String("target", t.name),
	)
	return res, nil
}
