package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"media-server/server"
)

// ServeCmd starts the HTTP server
var ServeCmd = withConfig(&cobra.Command{
	Use:   "serve",
	Short: "Serve media listings, files and the size report",
	Long: `Start the HTTP server.

Endpoints:
  GET /api/files        videos and audio in the video directory
  GET /api/images       images in the video directory
  GET /api/audio        audio in the audio directory
  GET /media/{name}     stream a file from the video directory
  GET /data_size        size report by date and media type
  GET /api/reports      archived report summaries (with --history-db)
  GET /ws/listing       websocket listing in chunks`,
	Args: cobra.NoArgs,
	RunE: runServe,
})

func runServe(c *cobra.Command, args []string) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	archive, err := openHistory(cfg)
	if err != nil {
		return err
	}
	if archive != nil {
		log.Printf("Archiving reports to: %s", cfg.HistoryDB)
		defer archive.Close()
	}

	srv := server.New(cfg, archive)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Listen()
	}()

	select {
	case err := <-errChan:
		return err
	case <-sigChan:
		log.Println("Received interrupt signal, shutting down...")
	}

	if err := srv.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Server stopped")
	return nil
}
