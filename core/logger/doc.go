// Package logger is a standardized event logging framework for the shell.
//
// Entries are newline delimited JSON objects encoded from protobuf Struct
// messages so they can be read back without generated types.
package logger
