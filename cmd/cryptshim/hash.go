package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/porthorian/cryptshim"
)

type hashConfig struct {
	Salt   string
	Rounds int
}

func init() {
	rootCmd.AddCommand(newHashCommand())
}

func newHashCommand() *cobra.Command {
	cfg := hashConfig{}

	hashCmd := &cobra.Command{
		Use:   "hash [password]",
		Short: "Hash a password with SHA-512 crypt",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := resolvePassword(cmd, args)
			if err != nil {
				return err
			}

			salt := strings.TrimSpace(cfg.Salt)
			if salt == "" {
				salt, err = cryptshim.MkSalt(cfg.Rounds)
				if err != nil {
					return fmt.Errorf("generate salt: %w", err)
				}
			}

			hashed, err := cryptshim.Crypt(password, salt)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			cmd.Println(hashed)
			return nil
		},
	}

	hashCmd.Flags().StringVar(&cfg.Salt, "salt", "", "Full salt descriptor, e.g. $6$rounds=10000$abcdefgh. Generated when absent.")
	hashCmd.Flags().IntVar(&cfg.Rounds, "rounds", 0, "Round count for generated salts. Defaults to the scheme default (5000).")

	return hashCmd
}

func resolvePassword(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "" {
		return args[0], nil
	}

	if password := lookupEnv("CRYPTSHIM_PASSWORD"); password != "" {
		return password, nil
	}

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		cmd.PrintErr("Password: ")
		raw, err := term.ReadPassword(fd)
		cmd.PrintErrln()
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		if len(raw) == 0 {
			return "", errMissingPassword
		}
		return string(raw), nil
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read password from stdin: %w", err)
	}

	password := strings.TrimRight(string(raw), "\r\n")
	if password == "" {
		return "", errMissingPassword
	}
	return password, nil
}

var errMissingPassword = errors.New("missing password: pass it as an argument or set CRYPTSHIM_PASSWORD")

func lookupEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
