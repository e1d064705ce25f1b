// Package cmd provides the command-line interface implementation for files-chunker.
//
// This package contains all the subcommand implementations for the
// files-chunker CLI tool. It uses the Cobra library for command structure
// and Fang for beautiful styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - serve: Browser upload front end
//   - pack: One-shot directory chunking
//   - join: Part archive reassembly
//   - verify: Bundle round-trip verification
//   - watch: Continuous re-packing on directory changes
//   - seed: Test file generation
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The package leverages the chunker
// package for the core pipeline and the session package for workspace
// management.
package cmd
