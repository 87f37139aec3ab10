package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fishingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fishing",
		Short: "Show species, day tickets and lake rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := mountAndRefresh(cmd.Context(), appCtx.Fishing.Mount, appCtx.Fishing.Refresh)
			info := st.Data
			out := cmd.OutOrStdout()

			heading(out, info.Heading())
			paragraph(out, info.Description)
			section(out, "Fish Species")
			bullets(out, info.Species)
			section(out, "Day Tickets")
			field(out, "Price", info.DayTicketPrice)
			section(out, "Fishing Rules")
			for i, r := range info.Rules {
				fmt.Fprintf(out, "  %d. %s\n", i+1, r)
			}
			return nil
		},
	}
}
