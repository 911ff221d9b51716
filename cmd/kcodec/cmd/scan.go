package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a table in key order",
	Long: `Print the rows of a table in the byte order of their encoded keys.
--from is inclusive and --to exclusive; both are parsed with --key-codec.

Example:
  kcodec scan --key-codec inverted-long --limit 10`,
	Args: cobra.NoArgs,
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

		var from, to *[]byte
		if s, _ := cmd.Flags().GetString("from"); s != "" {
			k, err := tc.key.Encode(s)
			if err != nil {
				return err
			}
			from = &k
		}
		if s, _ := cmd.Flags().GetString("to"); s != "" {
			k, err := tc.key.Encode(s)
			if err != nil {
				return err
			}
			to = &k
		}
		limit, _ := cmd.Flags().GetInt("limit")

		var rowErr error
		count := 0
		err = tc.table.Scan(cmd.Context(), from, to, func(k, v []byte) bool {
			key, err := tc.key.Decode(k)
			if err != nil {
				rowErr = fmt.Errorf("key %x: %w", k, err)
				return false
			}
			value, err := tc.value.Decode(v)
			if err != nil {
				rowErr = fmt.Errorf("value of %s: %w", key, err)
				return false
			}
			cmd.Printf("%s\t%s\n", key, value)
			count++
			return limit <= 0 || count < limit
		})
		if err != nil {
			return err
		}
		if rowErr != nil {
			return rowErr
		}
		plog.Debugf("scanned %d rows", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	addTableFlags(scanCmd)
	scanCmd.Flags().String("from", "", "First key to include")
	scanCmd.Flags().String("to", "", "Key to stop before")
	scanCmd.Flags().Int("limit", 0, "Maximum rows to print, 0 for all")
}
