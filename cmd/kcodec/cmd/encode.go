package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rayokota/hentitydb-sub001/pkg/textcodec"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <codec> <value>",
	Short: "Encode a value and print it as hex",
	Long: `Encode a value with a registered codec and print the bytes as hex.

Examples:
  kcodec encode varint 40002
  kcodec encode inverted-long 1719043200000
  kcodec encode string woo --salt`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tc, err := textcodec.For(args[0], keyOptions(cmd))
		if err != nil {
			return err
		}
		encoded, err := tc.Encode(args[1])
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		cmd.Println(hex.EncodeToString(encoded))
		return nil
	},
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <codec> <hex>",
	Short: "Decode hex bytes and print the value",
	Long: `Decode hex encoded bytes with a registered codec.

Example:
  kcodec decode varint 84f104`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tc, err := textcodec.For(args[0], keyOptions(cmd))
		if err != nil {
			return err
		}
		raw, err := textcodec.ParseHex(args[1])
		if err != nil {
			return fmt.Errorf("invalid hex: %w", err)
		}
		value, err := tc.Decode(raw)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		cmd.Println(value)
		return nil
	},
}

// keyOptions reads the wrapping flags shared by encode, decode and the
// store commands
func keyOptions(cmd *cobra.Command) textcodec.Options {
	salt, _ := cmd.Flags().GetBool("salt")
	return textcodec.Options{Salt: salt, Buckets: settings.Codec.SaltBuckets}
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)

	for _, c := range []*cobra.Command{encodeCmd, decodeCmd} {
		c.Flags().Bool("salt", false, "Prefix a salt bucket byte")
	}
}
