package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func campingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "camping",
		Short: "Show pitches, facilities and prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := mountAndRefresh(cmd.Context(), appCtx.Camping.Mount, appCtx.Camping.Refresh)
			info := st.Data
			out := cmd.OutOrStdout()

			heading(out, info.Heading())
			paragraph(out, info.Description)
			section(out, "Pitch Types")
			bullets(out, info.PitchTypes)
			section(out, "Facilities")
			bullets(out, info.Facilities)
			section(out, "Pricing")
			field(out, "Tent", info.Pricing.Tent)
			field(out, "Tourer", info.Pricing.Tourer)
			field(out, "Motorhome", info.Pricing.Motorhome)
			if info.Pricing.Note != "" {
				fmt.Fprintf(out, "  Note: %s\n", info.Pricing.Note)
			}
			return nil
		},
	}
}
