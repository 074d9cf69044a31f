// Package application provides application initialization and dependency wiring.
// It ties the settings, the logger and the component registry to a loader, keeping
// the main package focused on CLI parsing and exit codes.
package application
