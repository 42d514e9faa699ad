// Package source provides line sources that feed streaming sectors.
//
// Reader splits any io.Reader into lines. Process runs a command and reads
// its stdout and stderr, merged in write order, the same way.
package source
