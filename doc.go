// Package main provides the files-chunker command-line interface.
//
// files-chunker repackages a set of files and folders into size-bounded zip
// archives. Files larger than the configured chunk size are split at the
// byte level into rejoinable parts that can be concatenated back together;
// smaller files are grouped into independently usable zips. All outputs are
// bundled into one combined archive with a generated usage note.
//
// The main binary supports multiple subcommands:
//   - serve: Run the browser upload front end
//   - pack: Chunk a directory from the command line
//   - join: Reassemble a split file from its part archives
//   - verify: Check that a bundle reproduces its input directory
//   - watch: Re-pack a directory whenever its contents change
//   - seed: Generate test files around a size threshold
package main
