package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"srkeys/internal/mnemonic"
)

func mnemonicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Generate or check recovery phrases",
	}
	cmd.AddCommand(mnemonicNewCmd(), mnemonicValidateCmd())
	return cmd
}

func mnemonicNewCmd() *cobra.Command {
	var words int
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Print a fresh recovery phrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mnemonic.Generate(words, nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.String())
			return nil
		},
	}
	cmd.Flags().IntVar(&words, "words", 12, "phrase length: 12, 15, 18, 21 or 24")
	return cmd
}

func mnemonicValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <phrase>",
		Short: "Check a phrase's words and checksum",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mnemonic.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid (%d words)\n", m.WordCount())
			return nil
		},
	}
}
