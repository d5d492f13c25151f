package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func tryonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tryon [recommendation-id] [outfit-number]",
		Short: "Generate a virtual try-on image for an outfit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			recID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid recommendation id %q", args[0])
			}
			outfitNum, err := strconv.Atoi(args[1])
			if err != nil || outfitNum < 1 {
				return fmt.Errorf("invalid outfit number %q (counting starts at 1)", args[1])
			}

			rec, err := env.Client.Recommendation(cmd.Context(), recID)
			if err != nil {
				return err
			}

			resp, err := env.Client.GenerateTryOn(cmd.Context(), rec, outfitNum-1)
			if err != nil {
				return err
			}

			fmt.Printf("Try-on image for %q: %s\n", rec.Outfits[outfitNum-1].OutfitName, resp.ImagePath)
			return nil
		},
	}
}
