// Package textboard implements the textboard command line.
package textboard
