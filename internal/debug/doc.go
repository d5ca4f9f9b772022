// Package debug provides optional file-based debug logging.
//
// When the ARRANGE_DEBUG environment variable is set to a file path, debug
// messages are appended to that file as structured log lines. Otherwise the
// logger discards everything.
package debug
