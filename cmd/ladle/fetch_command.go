package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ladle/internal/cache"
	"ladle/internal/download"
	"ladle/internal/logging"
	"ladle/internal/preflight"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var checksum string

	cmd := &cobra.Command{
		Use:   "fetch <name> <version> <url>",
		Short: "Download an artifact into the cache",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			if results := preflight.RunAll(cfg); !preflight.Passed(results) {
				stderr := cmd.ErrOrStderr()
				colorize := shouldColorize(stderr)
				for _, result := range results {
					if !result.Passed {
						fmt.Fprintln(stderr, renderCheckLine(result.Name, false, result.Detail, colorize))
					}
				}
				return errors.New("environment checks failed")
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			manager := cache.NewManager(cfg.Paths.CacheDir, logger)
			downloader := download.NewDownloader(cfg, manager, logger)

			result, err := downloader.Fetch(cmd.Context(), download.Request{
				Name:     args[0],
				Version:  args[1],
				URL:      args[2],
				Checksum: checksum,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Fetched %s %s: %s in %s\n",
				args[0], args[1], humanBytes(result.Bytes), result.Duration.Round(time.Millisecond))
			fmt.Fprintf(out, "Cached at %s\n", result.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&checksum, "checksum", "", "Expected digest, algo:hex or bare SHA-256 hex")
	return cmd
}
