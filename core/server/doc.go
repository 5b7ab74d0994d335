// Package server holds the HTTP server configuration.
//
// The serve command builds the Fiber application; this package only defines the
// settings it reads: the listen port and the optional API key guarding every route.
package server
