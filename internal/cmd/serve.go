package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/Divyansh-2003/files-chunker/chunker"
	"github.com/Divyansh-2003/files-chunker/internal/web"
	"github.com/Divyansh-2003/files-chunker/version"
	"github.com/spf13/cobra"
)

// NewServeCmd creates and returns the serve subcommand for the
// files-chunker CLI. It runs the browser upload front end.
func NewServeCmd() *cobra.Command {
	var (
		addr       string
		storageDir string
		sizeText   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the browser upload front end",
		Long: `Run the HTTP front end for files-chunker.

Users upload files or zip archives through a web form, pick a maximum chunk
size, and download the produced chunks either individually or as one
combined bundle. Each browser session gets its own isolated workspace under
the storage directory.`,
		Run: func(cmd *cobra.Command, args []string) {
			runServe(addr, storageDir, sizeText)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Address to listen on")
	cmd.Flags().StringVarP(&storageDir, "storage", "s", "", "Directory for session workspaces (default: a temp directory)")
	cmd.Flags().StringVar(&sizeText, "size", "", "Default max chunk size, e.g. 5MB")

	return cmd
}

func runServe(addr, storageDir, sizeText string) {
	threshold, err := chunker.ParseThreshold(sizeText)
	if err != nil {
		log.Printf("Invalid --size %q, using default %s", sizeText, chunker.FormatThreshold(chunker.DefaultThreshold))
		threshold = chunker.DefaultThreshold
	}

	if storageDir == "" {
		dir, err := os.MkdirTemp("", "files-chunker-*")
		if err != nil {
			log.Fatalf("Failed to create storage directory: %v", err)
		}
		defer os.RemoveAll(dir)
		storageDir = dir
	} else if err := os.MkdirAll(storageDir, 0755); err != nil {
		log.Fatalf("Failed to create storage directory: %v", err)
	}

	server := web.NewServer(storageDir, threshold)

	fmt.Printf("files-chunker %s listening on %s (storage: %s)\n", version.GetVersion(), addr, storageDir)
	if err := http.ListenAndServe(addr, server.Handler()); err != nil {
		log.Fatal(err)
	}
}
