package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ListStaffCmd creates the listStaff command
func ListStaffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listStaff",
		Short: "List the roster with seniority and shift-eligibility rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			roster := app.Session.Roster()

			fmt.Printf("\nTeam and seniority (%d staff):\n\n", len(roster))
			fmt.Printf("%-22s  %-20s  %-8s  %s\n", "Name", "Role", "Rank", "Shift Rule")
			fmt.Println(strings.Repeat("-", 80))

			for _, emp := range roster {
				stars := strings.Repeat("★", emp.Rank.Stars()) + strings.Repeat("☆", 3-emp.Rank.Stars())
				fmt.Printf("%-22s  %-20s  %-8s  %s\n", emp.Name, emp.Role, stars, emp.EffectiveRule().Label())
			}
			fmt.Println()

			return nil
		},
	}
}
