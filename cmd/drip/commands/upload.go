package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dripdirective/drip/internal/api"
)

func uploadCmd() *cobra.Command {
	var (
		imageType string
		wait      bool
	)

	cmd := &cobra.Command{
		Use:   "upload [photo]...",
		Short: "Upload body photos for analysis",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			jobs := make([]api.UploadJob, len(args))
			for i, path := range args {
				jobs[i] = api.UploadJob{Path: path, ImageType: api.ImageType(imageType)}
			}

			outcomes := env.Client.UploadImagesBatch(cmd.Context(), jobs, env.Config.UploadParallel, nil)

			failed := 0
			for _, out := range outcomes {
				if out.Err != nil {
					failed++
					fmt.Printf("FAIL  %s: %v\n", out.Job.Path, out.Err)
					continue
				}
				fmt.Printf("ok    %s (photo #%d, %s)\n", out.Job.Path, out.Image.ID, out.Image.ProcessingStatus)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d uploads failed", failed, len(outcomes))
			}

			if _, err := env.Client.ProcessUserImages(cmd.Context()); err != nil {
				return fmt.Errorf("start analysis: %w", err)
			}
			fmt.Println("Analysis started.")

			if wait {
				return waitForImages(cmd)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&imageType, "type", string(api.ImageGeneric),
		"photo angle: front, back, side, close_up or user_image")
	cmd.Flags().BoolVar(&wait, "wait", false, "block until analysis finishes")

	return cmd
}

func waitForImages(cmd *cobra.Command) error {
	fmt.Println("Waiting for photo analysis...")
	images, err := env.Client.WaitImagesProcessed(cmd.Context(), api.WaitOptions{})
	if err != nil {
		return err
	}
	for _, img := range images {
		fmt.Printf("photo #%d: %s\n", img.ID, img.ProcessingStatus)
	}
	return nil
}
