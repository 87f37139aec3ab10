package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"birchwood/internal/domain"
)

func contactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contact",
		Short: "Show contact details and site rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := mountAndRefresh(cmd.Context(), appCtx.Contact.Mount, appCtx.Contact.Refresh)
			c, rules := st.Data.Contact, st.Data.Rules
			out := cmd.OutOrStdout()

			heading(out, "Get in Touch")
			section(out, "Quick Actions")
			field(out, "Call", c.CallURL())
			field(out, "Email", c.EmailURL())
			field(out, "Directions", c.DirectionsURL())
			field(out, "Facebook", c.Facebook)

			section(out, "Contact Information")
			field(out, "Phone", c.Phone)
			field(out, "Email", c.Email)
			field(out, "Address", c.Address)

			section(out, "Site Rules")
			for _, cat := range []domain.RuleCategory{domain.RuleGeneral, domain.RuleCamping, domain.RuleFishing} {
				for _, r := range rules.InCategory(cat) {
					fmt.Fprintf(out, "  [%s] %s: %s\n", r.Category, r.Title, r.Description)
				}
			}
			return nil
		},
	}
}
