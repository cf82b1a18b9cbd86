package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <pattern>",
		Aliases: []string{"rm"},
		Short:   "Remove cached downloads matching a package name prefix, or * for everything",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := strings.TrimSpace(args[0])
			if pattern == "" {
				return errors.New("pattern is required")
			}

			manager, err := ctx.cacheManager()
			if err != nil {
				return err
			}
			entries, err := manager.Matching(pattern)
			if err != nil {
				return err
			}
			var freed int64
			for _, entry := range entries {
				if size, err := entry.Size(); err == nil {
					freed += size
				}
			}

			if err := manager.Remove(pattern); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if pattern == "*" {
				fmt.Fprintf(out, "Emptied the cache: %d cached files, %s\n", len(entries), humanBytes(freed))
				return nil
			}
			if len(entries) == 0 {
				fmt.Fprintf(out, "No cached downloads match %q\n", pattern)
				return nil
			}
			fmt.Fprintf(out, "Removed %d cached files, %s\n", len(entries), humanBytes(freed))
			return nil
		},
	}
}
