// Package logger provides structured logging for seqkit using zerolog.
//
// It supports JSON and console output, level configuration from a YAML file
// or environment variables, and component-scoped loggers with structured
// fields. pipeline.Log uses it to trace values flowing between stages.
//
// # Usage
//
//	log := logger.Get("pipeline")
//	log.Info("chain complete", logger.Fields(logger.FieldCount, 7))
package logger
