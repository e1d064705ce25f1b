// Package web implements the browser front end for files-chunker.
//
// It serves an upload form, runs the chunking pipeline synchronously per
// request, and offers the produced chunks for download, individually or as
// the combined bundle. Each browser session is isolated in its own
// workspace keyed by a session cookie; results live only as long as the
// server process and the session workspace.
package web
