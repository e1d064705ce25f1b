package cmd

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/Divyansh-2003/files-chunker/chunker"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// debounceDelay is how long the watcher waits after the last change before
// re-packing, so a burst of writes produces one run.
const debounceDelay = 2 * time.Second

// NewWatchCmd creates and returns the watch subcommand for the
// files-chunker CLI. It re-packs a directory whenever its contents change.
func NewWatchCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		sizeText   string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-pack a directory whenever its contents change",
		Long: `Watch a directory and repackage it into chunks on every change.

The input tree is watched recursively. Changes are debounced so a burst of
writes triggers a single re-pack. Press Ctrl-C to stop.`,
		Run: func(cmd *cobra.Command, args []string) {
			runWatch(inputPath, outputPath, sizeText, verbose)
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

func runWatch(inputPath, outputPath, sizeText string, verbose bool) {
	threshold, err := chunker.ParseThreshold(sizeText)
	if err != nil {
		log.Printf("Invalid size %q, using default %s", sizeText, chunker.FormatThreshold(chunker.DefaultThreshold))
		threshold = chunker.DefaultThreshold
	}
	if err := os.MkdirAll(outputPath, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("Failed to create watcher: %v", err)
	}
	defer watcher.Close()

	if err := addWatchesRecursive(watcher, inputPath); err != nil {
		log.Fatalf("Failed to watch %s: %v", inputPath, err)
	}

	repack := func() {
		res, err := chunker.Process(inputPath, outputPath, chunker.Options{Threshold: threshold})
		if err != nil {
			log.Printf("Re-pack failed: %v", err)
			return
		}
		if verbose {
			fmt.Printf("Re-packed: %d rejoinable, %d independent chunks\n",
				len(res.Rejoinable), len(res.Independent))
		}
	}

	// Initial pack so the output is populated before the first change.
	repack()
	fmt.Printf("Watching %s (max chunk size %s), press Ctrl-C to stop\n",
		inputPath, chunker.FormatThreshold(threshold))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	debounce := time.NewTimer(debounceDelay)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			// New directories need their own watches.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addWatchesRecursive(watcher, event.Name); err != nil {
						log.Printf("Failed to watch new directory %s: %v", event.Name, err)
					}
				}
			}
			debounce.Reset(debounceDelay)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		case <-debounce.C:
			repack()
		case <-sigChan:
			fmt.Println("Stopping watcher")
			return
		}
	}
}

func addWatchesRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
