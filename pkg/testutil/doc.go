// Package testutil provides utilities for testing textboard components.
//
// Key components:
//   - TestEnvironment: an isolated home, config and state directory per test
//
// Usage guidelines:
//   - Tests that touch config or log files must use NewTestEnvironment so
//     nothing leaks into the real user directories
//   - All test data should be defined inline, not in external files
package testutil
