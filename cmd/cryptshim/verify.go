package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/porthorian/cryptshim"
)

func init() {
	rootCmd.AddCommand(newVerifyCommand())
}

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <hash> [password]",
		Short: "Verify a password against a SHA-512 crypt hash",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := resolvePassword(cmd, args[1:])
			if err != nil {
				return err
			}

			ok, err := cryptshim.Verify(password, args[0])
			if err != nil {
				return fmt.Errorf("verify password: %w", err)
			}
			if !ok {
				return errors.New("password does not match")
			}

			cmd.Println("OK")
			return nil
		},
	}
}
