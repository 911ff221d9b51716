package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a value for a key",
	Long: `Get a value for a key from a table.

Example:
  kcodec get --key-codec inverted-long 1719043200000`,
	Args: cobra.ExactArgs(1),
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
		raw, err := tc.table.Get(key)
		if err != nil {
			return fmt.Errorf("error getting value: %w", err)
		}
		value, err := tc.value.Decode(raw)
		if err != nil {
			return err
		}

		cmd.Println(value)
		return nil
	},
}

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a key",
	Args:  cobra.ExactArgs(1),
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
		if err := tc.table.Delete(key); err != nil {
			return fmt.Errorf("error deleting key: %w", err)
		}

		cmd.Printf("Deleted key '%s'\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(deleteCmd)
	addTableFlags(getCmd)
	addTableFlags(deleteCmd)
}
