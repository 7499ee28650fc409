package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels, counted from repeated -v flags.
const (
	VerbosityUser  = 0 // errors and warnings
	VerbosityInfo  = 1 // -v: conversion phases
	VerbosityDebug = 2 // -vv: bundle details
)

// VerbosityToLevel maps a -v count to a zap level.
//
//	0      -> WarnLevel
//	1      -> InfoLevel
//	2 and up -> DebugLevel
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Options configures New.
type Options struct {
	Verbosity int
	// JSON selects structured output for machine consumption.
	JSON bool
	// Output defaults to stderr so converted documents can go to stdout.
	Output io.Writer
}

// New builds a logger. Console output is short and human-readable; JSON
// output uses the production encoder.
func New(opts Options) *zap.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var enc zapcore.Encoder

	if opts.JSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(out), VerbosityToLevel(opts.Verbosity))

	return zap.New(core)
}
