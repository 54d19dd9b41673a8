package pipeline

import (
	"context"

	"github.com/seqkit/seqkit/logger"
)

// Log passes every value through unchanged while writing it to lg at debug
// level, tagged with the given stage name. A Tap specialization for tracing
// what flows between stages.
func Log[T any](p *Pipeline[T], lg *logger.Logger, stage string) *Pipeline[T] {
	return Tap(p, func(_ context.Context, val T) error {
		lg.Debug("stage value", logger.Fields(
			logger.FieldStage, stage,
			logger.FieldValue, val,
		))
		return nil
	})
}
