package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ladle/internal/cache"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list [pattern]",
		Short: "List cached downloads, optionally filtered by package name prefix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := "*"
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				pattern = strings.TrimSpace(args[0])
			}

			manager, err := ctx.cacheManager()
			if err != nil {
				return err
			}
			entries, err := manager.Matching(pattern)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeCacheEntriesJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				if pattern == "*" {
					fmt.Fprintln(out, "Cache is empty")
				} else {
					fmt.Fprintf(out, "No cached downloads match %q\n", pattern)
				}
				return nil
			}

			rows, total := buildCacheRows(entries)
			fmt.Fprintln(out, renderTable([]string{"Name", "Version", "Size", "Source"}, rows, 2))
			fmt.Fprintf(out, "Total: %d files, %s\n", len(entries), humanBytes(total))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func buildCacheRows(entries []cache.Entry) ([][]string, int64) {
	rows := make([][]string, 0, len(entries))
	var total int64
	for _, entry := range entries {
		sizeText := "-"
		if size, err := entry.Size(); err == nil {
			sizeText = humanBytes(size)
			total += size
		}
		rows = append(rows, []string{entry.Name(), entry.Version(), sizeText, entry.Source()})
	}
	return rows, total
}

func writeCacheEntriesJSON(cmd *cobra.Command, entries []cache.Entry) error {
	type jsonEntry struct {
		Name      string `json:"name"`
		Version   string `json:"version"`
		Source    string `json:"source"`
		Path      string `json:"path"`
		SizeBytes int64  `json:"size_bytes"`
	}
	items := make([]jsonEntry, 0, len(entries))
	for _, entry := range entries {
		size, _ := entry.Size()
		items = append(items, jsonEntry{
			Name:      entry.Name(),
			Version:   entry.Version(),
			Source:    entry.Source(),
			Path:      entry.Path(),
			SizeBytes: size,
		})
	}
	return writeJSON(cmd, map[string]any{"entries": items})
}
