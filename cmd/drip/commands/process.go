package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func processCmd() *cobra.Command {
	var (
		itemID int64
		photos bool
		wait   bool
	)

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Trigger AI analysis of photos or wardrobe items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			switch {
			case photos:
				resp, err := env.Client.ProcessUserImages(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Println(resp.Message)
				if wait {
					return waitForImages(cmd)
				}
			case itemID > 0:
				resp, err := env.Client.ProcessWardrobeItem(cmd.Context(), itemID)
				if err != nil {
					return err
				}
				fmt.Println(resp.Message)
				if wait {
					return waitForWardrobe(cmd)
				}
			default:
				resp, err := env.Client.ProcessAllWardrobe(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Println(resp.Message)
				if wait {
					return waitForWardrobe(cmd)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&photos, "photos", false, "analyze body photos instead of the wardrobe")
	cmd.Flags().Int64Var(&itemID, "item", 0, "analyze a single wardrobe item by id")
	cmd.Flags().BoolVar(&wait, "wait", false, "block until analysis finishes")
	cmd.MarkFlagsMutuallyExclusive("photos", "item")

	return cmd
}
