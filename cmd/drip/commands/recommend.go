package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dripdirective/drip/internal/api"
)

func recommendCmd() *cobra.Command {
	var (
		recType string
		wait    bool
	)

	cmd := &cobra.Command{
		Use:   "recommend [query]...",
		Short: "Request outfit recommendations for an occasion",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			query := strings.Join(args, " ")

			// The generate endpoint does not return the new id, so remember
			// the newest one before asking and poll past it afterwards.
			sinceID := int64(0)
			if existing, err := env.Client.Recommendations(cmd.Context(), 1); err == nil && len(existing) > 0 {
				sinceID = existing[0].ID
			}

			resp, err := env.Client.GenerateRecommendation(cmd.Context(), query, recType)
			if err != nil {
				return err
			}
			fmt.Println(resp.Message)

			if !wait {
				fmt.Println("Check back with `drip recommend` in the TUI or rerun with --wait.")
				return nil
			}

			fmt.Println("Waiting for outfits...")
			rec, err := env.Client.WaitNewRecommendation(cmd.Context(), sinceID, api.WaitOptions{})
			if err != nil {
				return err
			}

			printRecommendation(rec)
			return nil
		},
	}

	cmd.Flags().StringVar(&recType, "type", "styling", "recommendation type")
	cmd.Flags().BoolVar(&wait, "wait", false, "block until outfits are ready")

	return cmd
}

func printRecommendation(rec *api.Recommendation) {
	fmt.Printf("Recommendation #%d: %s\n", rec.ID, rec.Query)
	for i, outfit := range rec.Outfits {
		fmt.Printf("\n%d. %s", i+1, outfit.OutfitName)
		if outfit.Occasion != "" {
			fmt.Printf(" (%s)", outfit.Occasion)
		}
		fmt.Println()
		if outfit.Description != "" {
			fmt.Printf("   %s\n", outfit.Description)
		}
		for _, item := range outfit.Items {
			line := "   - " + item.ItemName
			if item.StylingTip != "" {
				line += ": " + item.StylingTip
			}
			fmt.Println(line)
		}
	}
}
