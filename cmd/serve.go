package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"verifact/internal/redisclient"
	"verifact/internal/server"
	"verifact/internal/storage"
	"verifact/worker"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the verification HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		cache := storage.NewRedisCache(rdb)

		blobs, err := storage.OpenBlobs(cfg.Blobs.Path)
		if err != nil {
			return err
		}
		defer blobs.Close()

		p := buildPipeline(cfg)

		prober := &worker.AvailabilityProber{
			Client:   p.model,
			Interval: 30 * time.Second,
		}

		orch := p.orchestrator(cfg, prober, cache, blobs)
		engine := server.New(orch, p.inspector, cfg.Server.CORSOrigins)

		mgr := worker.NewManager(
			prober,
			&worker.HTTPServer{Addr: cfg.Server.Addr, Handler: engine},
		)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Signal handling for systemd
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			s := <-sigc
			log.Printf("received signal: %s, shutting down", s)
			cancel()
		}()

		return mgr.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
