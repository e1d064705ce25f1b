package cmd

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"

	"github.com/Divyansh-2003/files-chunker/chunker"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the files-chunker
// CLI. It generates test files with sizes spread around a chunk threshold.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		sizeText   string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate test files with sizes spread around a threshold",
		Long: `Generate test files for exercising files-chunker.

Files are written into a shallow directory structure with sizes ranging
from well below the chunk size to several times above it, so a pack run
produces both rejoinable and independent chunks. Content is repeated UUID
lines, so output is cheap to generate but not all-zero.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(outputPath, fileCount, sizeText, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 20, "Number of files to generate")
	cmd.Flags().StringVarP(&sizeText, "size", "s", "64KB", "Chunk size the files should straddle")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(outputPath string, fileCount int, sizeText string, verbose bool) {
	threshold, err := chunker.ParseThreshold(sizeText)
	if err != nil {
		log.Fatalf("Invalid size %q: %v", sizeText, err)
	}
	if err := os.MkdirAll(outputPath, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	if verbose {
		fmt.Printf("Generating %d test files around %s in %s\n",
			fileCount, chunker.FormatThreshold(threshold), outputPath)
	}

	// Generate pool of 50 UUIDs to use as file content
	uuidPool := make([]string, 50)
	for i := range uuidPool {
		uuidPool[i] = uuid.New().String()
	}

	for i := 0; i < fileCount; i++ {
		// Sizes from ~1% of the threshold up to 3x it, so roughly a
		// quarter of the files end up on the oversized path.
		sizeRand, _ := rand.Int(rand.Reader, big.NewInt(3*threshold))
		size := sizeRand.Int64() + threshold/100 + 1

		dirPath := outputPath
		levelRand, _ := rand.Int(rand.Reader, big.NewInt(3))
		if levelRand.Int64() > 0 {
			dirPath = filepath.Join(outputPath, fmt.Sprintf("dir%02d", i%5))
		}
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			log.Printf("Warning: Failed to create directory %s: %v", dirPath, err)
			continue
		}

		uuidIndex, _ := rand.Int(rand.Reader, big.NewInt(int64(len(uuidPool))))
		line := []byte(uuidPool[uuidIndex.Int64()] + "\n")
		content := bytes.Repeat(line, int(size/int64(len(line)))+1)[:size]

		filePath := filepath.Join(dirPath, fmt.Sprintf("seed_%03d.txt", i))
		if err := os.WriteFile(filePath, content, 0644); err != nil {
			log.Printf("Warning: Failed to write file %s: %v", filePath, err)
			continue
		}

		if verbose {
			fmt.Printf("  %s (%d bytes)\n", filePath, size)
		}
	}

	if verbose {
		fmt.Printf("Done. Try: files-chunker pack -i %s -o ./chunks -s %s\n", outputPath, sizeText)
	}
}
