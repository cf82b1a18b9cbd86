package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ladle/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show environment checks and cache usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			checks := preflight.RunAll(cfg)

			manager, err := ctx.cacheManager()
			if err != nil {
				return err
			}
			entries, listErr := manager.List()
			var total int64
			for _, entry := range entries {
				if size, err := entry.Size(); err == nil {
					total += size
				}
			}

			if jsonOut {
				cacheInfo := map[string]any{
					"directory":   manager.Dir(),
					"entries":     len(entries),
					"total_bytes": total,
				}
				if listErr != nil {
					cacheInfo["error"] = listErr.Error()
				}
				return writeJSON(cmd, map[string]any{
					"checks": checks,
					"cache":  cacheInfo,
				})
			}

			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)

			for _, line := range renderSectionHeader("Environment", colorize) {
				fmt.Fprintln(stdout, line)
			}
			for _, check := range checks {
				fmt.Fprintln(stdout, renderCheckLine(check.Name, check.Passed, check.Detail, colorize))
			}

			fmt.Fprintln(stdout)
			for _, line := range renderSectionHeader("Cache", colorize) {
				fmt.Fprintln(stdout, line)
			}
			if listErr != nil {
				fmt.Fprintln(stdout, renderCheckLine("Contents", false, listErr.Error(), colorize))
				return nil
			}
			fmt.Fprintf(stdout, "%sDirectory: %s\n", statusIndent, manager.Dir())
			fmt.Fprintf(stdout, "%sCached:    %d files, %s\n", statusIndent, len(entries), humanBytes(total))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
