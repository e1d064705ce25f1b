package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/Divyansh-2003/files-chunker/chunker"
	"github.com/spf13/cobra"
)

// NewPackCmd creates and returns the pack subcommand for the files-chunker
// CLI. It chunks a directory in one pass without the web front end.
func NewPackCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		sizeText   string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Repackage a directory into size-bounded zip chunks",
		Long: `Repackage the files under a directory into size-bounded zip chunks.

Files larger than the chunk size are split into rejoinable part archives;
the rest are grouped into independent archives. All outputs land in the
output directory together with the combined bundle.`,
		Run: func(cmd *cobra.Command, args []string) {
			runPack(inputPath, outputPath, sizeText, verbose)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to input directory (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().StringVarP(&sizeText, "size", "s", "", "Max chunk size, e.g. 5MB (default 5MB)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}

func runPack(inputPath, outputPath, sizeText string, verbose bool) {
	threshold, err := chunker.ParseThreshold(sizeText)
	if err != nil {
		log.Printf("Invalid size %q, using default %s", sizeText, chunker.FormatThreshold(chunker.DefaultThreshold))
		threshold = chunker.DefaultThreshold
	}

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		log.Fatalf("Input directory does not exist: %s", inputPath)
	}
	if err := os.MkdirAll(outputPath, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	if verbose {
		fmt.Printf("Chunking %s into %s (max chunk size %s)\n", inputPath, outputPath, chunker.FormatThreshold(threshold))
	}

	res, err := chunker.Process(inputPath, outputPath, chunker.Options{Threshold: threshold})
	if err != nil {
		log.Fatalf("Failed to process directory: %v", err)
	}

	for _, notice := range res.Notices {
		log.Printf("Warning: %s", notice)
	}

	if verbose {
		fmt.Printf("Chunking complete!\n")
		fmt.Printf("  Rejoinable chunks: %d\n", len(res.Rejoinable))
		fmt.Printf("  Independent chunks: %d\n", len(res.Independent))
		fmt.Printf("  Bundle: %s\n", res.BundlePath)
	} else {
		fmt.Printf("Wrote %d chunks and %s\n", len(res.Rejoinable)+len(res.Independent), res.BundlePath)
	}
}
