package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"srkeys/internal/crypto"
	"srkeys/internal/domain"
	"srkeys/internal/util/memzero"
)

func keygenCmd() *cobra.Command {
	var words int
	cmd := &cobra.Command{
		Use:   "keygen <name>",
		Short: "Create a named key from a new recovery phrase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			info, phrase, err := wire.Keys.Create(domain.KeyName(args[0]), passphrase, words)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printInfo(out, info)
			fmt.Fprintf(out, "Phrase:      %s\n", phrase)
			fmt.Fprintln(out, "Write the phrase down. It is the only way to recover this key.")
			return nil
		},
	}
	cmd.Flags().IntVar(&words, "words", 12, "phrase length: 12, 15, 18, 21 or 24")
	return cmd
}

func importCmd() *cobra.Command {
	var (
		phrase      string
		seedHex     string
		mnemonicPwd string
	)
	cmd := &cobra.Command{
		Use:   "import <name>",
		Short: "Store a named key from a recovery phrase or raw seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			name := domain.KeyName(args[0])

			var (
				info domain.KeyInfo
				err  error
			)
			switch {
			case phrase != "" && seedHex != "":
				return fmt.Errorf("use either --phrase or --seed, not both")
			case phrase != "":
				info, err = wire.Keys.Import(name, passphrase, phrase, mnemonicPwd)
			case seedHex != "":
				seed, perr := crypto.ParseHexN(seedHex, 32)
				if perr != nil {
					return fmt.Errorf("seed: %w", perr)
				}
				info, err = wire.Keys.ImportSeed(name, passphrase, seed)
				memzero.Zero(seed)
			default:
				return fmt.Errorf("one of --phrase or --seed is required")
			}
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), info)
			return nil
		},
	}
	cmd.Flags().StringVar(&phrase, "phrase", "", "recovery phrase")
	cmd.Flags().StringVar(&seedHex, "seed", "", "32-byte seed as hex")
	cmd.Flags().StringVar(&mnemonicPwd, "mnemonic-password", "", "optional password mixed into the phrase derivation")
	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := wire.Keys.List()
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no keys")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tADDRESS\tFINGERPRINT\tMNEMONIC")
			for _, info := range infos {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", info.Name, info.Address, info.Fingerprint, info.HasMnemonic)
			}
			return tw.Flush()
		},
	}
}

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey <name>",
		Short: "Print a key's public key and address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := wire.Keys.Public(domain.KeyName(args[0]))
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a stored key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Keys.Delete(domain.KeyName(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Print a key's recovery phrase, or its seed with --seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			name := domain.KeyName(args[0])
			if seed {
				b, err := wire.Keys.ExportSeed(name, passphrase)
				if err != nil {
					return err
				}
				defer memzero.Zero(b)
				fmt.Fprintln(cmd.OutOrStdout(), crypto.Hex(b))
				return nil
			}
			phrase, err := wire.Keys.Export(name, passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), phrase)
			return nil
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "print the 32-byte seed instead of the phrase")
	return cmd
}

func printInfo(out io.Writer, info domain.KeyInfo) {
	fmt.Fprintf(out, "Name:        %s\n", info.Name)
	fmt.Fprintf(out, "Scheme:      %s\n", info.Scheme)
	fmt.Fprintf(out, "Public key:  %s\n", crypto.Hex(info.Public[:]))
	fmt.Fprintf(out, "Address:     %s\n", info.Address)
	fmt.Fprintf(out, "Fingerprint: %s\n", info.Fingerprint)
}
