// Package logger builds the zap logger used by the command line tool.
//
// Verbosity follows the -v count: warnings only by default, conversion
// phases with -v and bundle details with -vv.
package logger
