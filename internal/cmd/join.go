package cmd

import (
	"fmt"
	"log"

	"github.com/Divyansh-2003/files-chunker/chunker"
	"github.com/spf13/cobra"
)

// NewJoinCmd creates and returns the join subcommand for the files-chunker
// CLI. It reassembles a split file from its rejoinable part archives.
func NewJoinCmd() *cobra.Command {
	var (
		dir    string
		output string
	)

	cmd := &cobra.Command{
		Use:   "join NAME",
		Short: "Reassemble a split file from its part archives",
		Long: `Reassemble a file that was split into rejoinable part archives.

NAME is the original file name, e.g. "video.mp4". The command looks for
NAME.part*.zip in the part directory, extracts each payload, and
concatenates them in part order into the output file.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runJoin(args[0], dir, output)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "./", "Directory containing the part archives")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: NAME in the part directory)")

	return cmd
}

func runJoin(name, dir, output string) {
	parts, err := chunker.FindParts(dir, name)
	if err != nil {
		log.Fatalf("Failed to list part archives: %v", err)
	}
	if len(parts) == 0 {
		log.Fatalf("No part archives found for %s in %s", name, dir)
	}
	if output == "" {
		output = name
	}

	if err := chunker.JoinParts(parts, output); err != nil {
		log.Fatalf("Failed to rejoin %s: %v", name, err)
	}
	fmt.Printf("Rejoined %d parts into %s\n", len(parts), output)
}
