package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dripdirective/drip/internal/api"
)

func wardrobeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wardrobe",
		Short: "Manage wardrobe items",
	}
	cmd.AddCommand(wardrobeAddCmd(), wardrobeListCmd(), wardrobeRemoveCmd())
	return cmd
}

func wardrobeAddCmd() *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "add [photo]...",
		Short: "Upload garment photos to the wardrobe",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			jobs := make([]api.UploadJob, len(args))
			for i, path := range args {
				jobs[i] = api.UploadJob{Path: path}
			}

			outcomes := env.Client.UploadWardrobeBatch(cmd.Context(), jobs, env.Config.UploadParallel, nil)

			failed := 0
			for _, out := range outcomes {
				if out.Err != nil {
					failed++
					fmt.Printf("FAIL  %s: %v\n", out.Job.Path, out.Err)
					continue
				}
				fmt.Printf("ok    %s (item #%d, %s)\n", out.Job.Path, out.Item.ID, out.Item.ProcessingStatus)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d uploads failed", failed, len(outcomes))
			}

			if _, err := env.Client.ProcessAllWardrobe(cmd.Context()); err != nil {
				return fmt.Errorf("start analysis: %w", err)
			}
			fmt.Println("Analysis started.")

			if wait {
				return waitForWardrobe(cmd)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "block until analysis finishes")
	return cmd
}

func wardrobeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List wardrobe items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			items, err := env.Client.WardrobeItems(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("Wardrobe is empty. Add items with `drip wardrobe add <photo>...`")
				return nil
			}

			for _, item := range items {
				summary := "awaiting analysis"
				if meta, err := item.Metadata(); err == nil && meta.GarmentType != "" {
					parts := []string{meta.Color, meta.GarmentType}
					if meta.Style != "" {
						parts = append(parts, "("+meta.Style+")")
					}
					summary = strings.TrimSpace(strings.Join(parts, " "))
				}
				fmt.Printf("#%-4d %-11s %s\n", item.ID, item.ProcessingStatus, summary)
			}
			return nil
		},
	}
}

func wardrobeRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]...",
		Short: "Remove wardrobe items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid item id %q", arg)
				}
				if err := env.Client.DeleteWardrobeItem(cmd.Context(), id); err != nil {
					// Already gone counts as removed.
					if api.IsNotFound(err) {
						fmt.Printf("item #%d not found (already removed?)\n", id)
						continue
					}
					return err
				}
				fmt.Printf("item #%d removed\n", id)
			}
			return nil
		},
	}
}

func waitForWardrobe(cmd *cobra.Command) error {
	fmt.Println("Waiting for wardrobe analysis...")
	items, err := env.Client.WaitWardrobeProcessed(cmd.Context(), api.WaitOptions{})
	if err != nil {
		return err
	}
	for _, item := range items {
		fmt.Printf("item #%d: %s\n", item.ID, item.ProcessingStatus)
	}
	return nil
}
