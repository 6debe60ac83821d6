package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"docshard/internal/manifest"
)

func newShardsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shards OUTPUT_DIR",
		Short: "Show the shard files written by the most recent run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := manifest.Open(args[0])
			if err != nil {
				return fmt.Errorf("open manifest: %w", err)
			}
			defer store.Close()

			ctx := cmd.Context()
			run, err := store.LatestRun(ctx)
			if err != nil {
				return err
			}
			shards, err := store.Shards(ctx, run.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			status := "in progress"
			if run.FinishedAt != "" {
				status = "finished " + run.FinishedAt
			}
			fmt.Fprintf(out, "Run %s (%s): input %s, %d/%d documents accepted\n",
				run.ID, status, run.Input, run.Accepted, run.Seen)

			if len(shards) == 0 {
				fmt.Fprintln(out, "No shards recorded")
				return nil
			}
			rows := make([][]string, 0, len(shards))
			for _, sh := range shards {
				ids := "-"
				if sh.Docs > 0 {
					ids = fmt.Sprintf("%d-%d", sh.FirstID, sh.LastID)
				}
				rows = append(rows, []string{sh.Path, strconv.Itoa(sh.Docs), ids})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Shard", "Docs", "Doc ids"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}
}
