package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/porthorian/cryptshim"
)

func init() {
	rootCmd.AddCommand(newMkSaltCommand())
}

func newMkSaltCommand() *cobra.Command {
	var rounds int

	mksaltCmd := &cobra.Command{
		Use:   "mksalt",
		Short: "Generate a fresh SHA-512 crypt salt descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			salt, err := cryptshim.MkSalt(rounds)
			if err != nil {
				return fmt.Errorf("generate salt: %w", err)
			}

			cmd.Println(salt)
			return nil
		},
	}

	mksaltCmd.Flags().IntVar(&rounds, "rounds", 0, "Round count embedded in the salt. Defaults to the scheme default (5000).")

	return mksaltCmd
}
