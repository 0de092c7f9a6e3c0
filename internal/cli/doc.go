// Package cli parses command-line arguments for the line counter,
// validates user input, and owns process-level concerns like exit codes.
// It translates argv into the application's internal configuration.
package cli
