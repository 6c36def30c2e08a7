package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"srkeys/internal/crypto"
	"srkeys/internal/domain"
	"srkeys/internal/ss58"
)

func signCmd() *cobra.Command {
	var hexMsg bool
	cmd := &cobra.Command{
		Use:   "sign <name> <message>",
		Short: "Sign a message with a named key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			msg, err := messageBytes(args[1], hexMsg)
			if err != nil {
				return err
			}
			sig, err := wire.Keys.Sign(domain.KeyName(args[0]), passphrase, msg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), crypto.Hex(sig))
			return nil
		},
	}
	cmd.Flags().BoolVar(&hexMsg, "hex", false, "treat the message as hex")
	return cmd
}

func verifyCmd() *cobra.Command {
	var hexMsg bool
	cmd := &cobra.Command{
		Use:   "verify <pubkey|address> <message> <signature>",
		Short: "Verify a signature against a public key or SS58 address",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := parsePublic(args[0])
			if err != nil {
				return err
			}
			msg, err := messageBytes(args[1], hexMsg)
			if err != nil {
				return err
			}
			sig, err := crypto.ParseHex(args[2])
			if err != nil {
				return fmt.Errorf("signature: %w", err)
			}
			ok, err := wire.Keys.Verify(pub, msg, sig)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("signature is NOT valid")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signature is valid")
			return nil
		},
	}
	cmd.Flags().BoolVar(&hexMsg, "hex", false, "treat the message as hex")
	return cmd
}

// parsePublic accepts a hex public key or an SS58 address of any prefix.
func parsePublic(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") || len(s) == 64 {
		pub, err := crypto.ParseHexN(s, 32)
		if err != nil {
			return nil, fmt.Errorf("public key: %w", err)
		}
		return pub, nil
	}
	pub, _, err := ss58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("address: %w", err)
	}
	return pub, nil
}

func messageBytes(s string, isHex bool) ([]byte, error) {
	if !isHex {
		return []byte(s), nil
	}
	b, err := crypto.ParseHex(s)
	if err != nil {
		return nil, fmt.Errorf("message: %w", err)
	}
	return b, nil
}
