// Package dashboard assembles the board the textboard CLI draws: a header
// line naming the source, a streaming sector of its most recent lines and a
// status line.
//
// A Dashboard is owned by one goroutine. Run reads the source on a second
// goroutine and hands lines over through a channel, so every board call
// happens on the caller's goroutine.
package dashboard
