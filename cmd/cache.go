package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"verifact/internal/fingerprint"
	"verifact/internal/redisclient"
	"verifact/internal/storage"

	"github.com/spf13/cobra"
)

// cacheCmd groups verification-cache utilities.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Verification cache utilities",
}

var hexFingerprint = regexp.MustCompile(`^[0-9a-f]{16}$`)

// cacheShowCmd looks up a cache record by fingerprint, or by content
// (the fingerprint is derived when the argument is not a fingerprint).
var cacheShowCmd = &cobra.Command{
	Use:   "show <fingerprint|text>",
	Short: "Show the cache record for a fingerprint or text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		fp := args[0]
		if !hexFingerprint.MatchString(fp) {
			fp = fingerprint.Of(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "fingerprint: %s\n", fp)
		}

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		cache := storage.NewRedisCache(rdb)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		rec, err := cache.Get(ctx, fp)
		if err != nil {
			return err
		}
		if rec == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "no record")
			return nil
		}
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

// cachePingCmd pings the configured Redis server.
var cachePingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Ping Redis and print PONG",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		res, err := rdb.Ping(ctx).Result()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheShowCmd, cachePingCmd)
	rootCmd.AddCommand(cacheCmd)
}
