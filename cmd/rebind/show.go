package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the rebind view of a profile",
		Long: `Print every action with its three rebindable slots, followed by the
mouse settings. Buttons past the third for an action are not shown; run
check to list them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(cmd)
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				return err
			}
			bd, err := p.Builder()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderRebind(p.Name, bd.BuildRebind()))
			return nil
		},
	}
}
