package main

// Exit codes.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (not in a project, invalid paths)
	ExitDataError   = 3 // Data error (malformed input, missing reference/document)
)
