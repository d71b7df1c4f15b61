package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate a profile and report conflicts and overflow",
		Long: `Validate a profile. Reports buttons listed under more than one action
(the last listing wins) and buttons that do not fit in an action's three
rebindable slots. Exits 1 when the profile is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(cmd)
			if err != nil {
				return err
			}
			report := checkProfile(p)
			fmt.Fprint(cmd.OutOrStdout(), renderCheck(p.Name, report))
			if !report.OK() {
				return errCheckFailed
			}
			return nil
		},
	}
}
