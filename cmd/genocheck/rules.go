package main

import (
	"os"

	"github.com/carbocation/genocheck/rules"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the active validation rules as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := rules.LoadFile(cfg.RulesFile)
		if err != nil {
			return err
		}

		b, err := rules.Marshal(r)
		if err != nil {
			return err
		}

		_, err = os.Stdout.Write(b)
		return err
	},
}
