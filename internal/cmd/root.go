package cmd

import (
	"github.com/Divyansh-2003/files-chunker/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the
// files-chunker CLI. It sets up all subcommands, command groups, and basic
// configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "files-chunker",
		Short: "files-chunker - Repackage files into size-bounded zip chunks",
		Long: `files-chunker repackages a set of files and folders into size-bounded
zip archives. Files larger than the configured chunk size are split at the
byte level into rejoinable parts; smaller files are grouped into
independently usable zips. All outputs are bundled into one combined
archive with a generated usage note.

Use subcommands to perform different operations:
  - serve: Run the browser upload front end
  - pack: Chunk a directory from the command line
  - join: Reassemble a split file from its part archives
  - verify: Check that a bundle reproduces its input directory
  - watch: Re-pack a directory whenever its contents change
  - seed: Generate test files around a size threshold`,
		Version: version.GetFullVersion(),
	}

	groupChunking := "chunking"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupChunking,
		Title: "Chunking Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	serveCmd := NewServeCmd()
	packCmd := NewPackCmd()
	joinCmd := NewJoinCmd()
	verifyCmd := NewVerifyCmd()
	watchCmd := NewWatchCmd()
	seedCmd := NewSeedCmd()

	serveCmd.GroupID = groupChunking
	packCmd.GroupID = groupChunking
	watchCmd.GroupID = groupChunking
	joinCmd.GroupID = groupUtilities
	verifyCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
