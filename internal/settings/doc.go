// Package settings loads the runtime options of the command line tool from
// defaults, an optional settings file, JSON2REQIF_* environment variables and
// command line flags, in increasing order of precedence.
package settings
