package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/engraving-planner/internal/config"
	"github.com/KirkDiggler/engraving-planner/internal/entities/lostark"
	"github.com/KirkDiggler/engraving-planner/internal/errors"
)

func newEngravingsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "engravings",
		Short: "List the engraving names a build document may use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := lostark.AllEngravings()

			switch format {
			case config.FormatTable:
				for _, e := range all {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), e.String()); err != nil {
						return err
					}
				}
				return nil
			case config.FormatJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(all)
			default:
				return errors.InvalidArgumentf("unknown format %q", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", config.FormatTable, "output format: table or json")

	return cmd
}
