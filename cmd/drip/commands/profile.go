package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dripdirective/drip/internal/api"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the styling profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			profile, err := env.Client.Profile(cmd.Context())
			if err != nil {
				if api.IsNotFound(err) {
					fmt.Println("No profile yet. Create one with `drip profile set`.")
					return nil
				}
				return err
			}

			printProfile(profile)
			return nil
		},
	}

	cmd.AddCommand(profileSetCmd())
	return cmd
}

func profileSetCmd() *cobra.Command {
	var params api.ProfileParams

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update the styling profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			if params == (api.ProfileParams{}) {
				return fmt.Errorf("nothing to set: pass at least one field flag")
			}

			profile, err := env.Client.SaveProfile(cmd.Context(), params)
			if err != nil {
				return err
			}

			printProfile(profile)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Name, "name", "", "display name")
	cmd.Flags().StringVar(&params.Gender, "gender", "", "gender")
	cmd.Flags().IntVar(&params.Age, "age", 0, "age in years")
	cmd.Flags().Float64Var(&params.Height, "height", 0, "height in cm")
	cmd.Flags().Float64Var(&params.Weight, "weight", 0, "weight in kg")
	cmd.Flags().StringVar(&params.MaritalStatus, "marital-status", "", "marital status")
	cmd.Flags().StringVar(&params.BodyType, "body-type", "", "body type")
	cmd.Flags().StringVar(&params.FaceTone, "skin-tone", "", "skin tone")
	cmd.Flags().StringVar(&params.State, "state", "", "state or region")
	cmd.Flags().StringVar(&params.Country, "country", "", "country")
	cmd.Flags().StringVar(&params.Occupation, "occupation", "", "occupation")
	cmd.Flags().StringVar(&params.AdditionalInfo, "notes", "", "freeform styling notes")

	return cmd
}

func printProfile(p *api.Profile) {
	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Printf("%-14s %s\n", label, value)
	}

	row("Name", p.Name)
	row("Gender", p.Gender)
	if p.Age > 0 {
		row("Age", fmt.Sprintf("%d", p.Age))
	}
	if p.Height > 0 {
		row("Height", fmt.Sprintf("%.0f cm", p.Height))
	}
	if p.Weight > 0 {
		row("Weight", fmt.Sprintf("%.0f kg", p.Weight))
	}
	row("Marital", p.MaritalStatus)
	row("Body type", p.BodyType)
	row("Skin tone", p.FaceTone)
	row("Occupation", p.Occupation)
	row("Location", strings.Trim(strings.Join([]string{p.State, p.Country}, ", "), ", "))
	row("Notes", p.AdditionalInfo)
}
