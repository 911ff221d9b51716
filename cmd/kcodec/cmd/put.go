package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rayokota/hentitydb-sub001/pkg/codec"
	"github.com/rayokota/hentitydb-sub001/pkg/store"
	"github.com/rayokota/hentitydb-sub001/pkg/textcodec"
)

// tableCodecs holds the adapters selected by the store command flags
type tableCodecs struct {
	table *store.Table[[]byte, []byte]
	key   textcodec.Adapter
	value textcodec.Adapter
}

func openTable(cmd *cobra.Command, db *store.DB) (*tableCodecs, error) {
	name, _ := cmd.Flags().GetString("table")
	keyID, _ := cmd.Flags().GetString("key-codec")
	valueID, _ := cmd.Flags().GetString("value-codec")
	compress, _ := cmd.Flags().GetBool("compress")
	checksum, _ := cmd.Flags().GetBool("checksum")

	key, err := textcodec.For(keyID, keyOptions(cmd))
	if err != nil {
		return nil, fmt.Errorf("key codec: %w", err)
	}
	value, err := textcodec.For(valueID, textcodec.Options{Compress: compress, Checksum: checksum})
	if err != nil {
		return nil, fmt.Errorf("value codec: %w", err)
	}

	return &tableCodecs{
		table: store.NewTable[[]byte, []byte](db, name, codec.ByteArray(false), codec.ByteArray(false)),
		key:   key,
		value: value,
	}, nil
}

func addTableFlags(c *cobra.Command) {
	c.Flags().String("table", "default", "Table name")
	c.Flags().String("key-codec", "string-raw", "Codec id for keys")
	c.Flags().String("value-codec", "string-raw", "Codec id for values")
	c.Flags().Bool("salt", false, "Prefix keys with a salt bucket byte")
	c.Flags().Bool("compress", false, "Snappy compress values")
	c.Flags().Bool("checksum", false, "Guard values with a CRC32")
}

// putCmd represents the put command
var putCmd = &cobra.Command{
	Use:   "put <key> <value>",
	Short: "Put a key-value pair",
	Long: `Put a key-value pair into a table, encoding both with the selected
codecs.

Example:
  kcodec put --key-codec inverted-long --value-codec string 1719043200000 "login"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		tc, err := openTable(cmd, db)
		if err != nil {
			return err
		}
		key, err := tc.key.Encode(args[0])
		if err != nil {
			return err
		}
		value, err := tc.value.Encode(args[1])
		if err != nil {
			return err
		}
		if err := tc.table.Put(key, value); err != nil {
			return fmt.Errorf("error putting key-value: %w", err)
		}

		cmd.Printf("Successfully put key '%s' (%x)\n", args[0], key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(putCmd)
	addTableFlags(putCmd)
}
