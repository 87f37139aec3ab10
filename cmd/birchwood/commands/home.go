package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func homeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the welcome screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := mountAndRefresh(cmd.Context(), appCtx.Home.Mount, appCtx.Home.Refresh)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Birchwood Fishing & Camping")
			fmt.Fprintln(out, "A quiet, family-run site near Skegness, Lincolnshire.")
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Call us: %s\n", st.Data.Phone)
			if st.Data.Address != "" {
				fmt.Fprintf(out, "Find us: %s\n", st.Data.Address)
			}
			return nil
		},
	}
}
