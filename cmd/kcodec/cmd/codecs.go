package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rayokota/hentitydb-sub001/pkg/codec"
	"github.com/rayokota/hentitydb-sub001/pkg/textcodec"
)

// codecsCmd represents the codecs command
var codecsCmd = &cobra.Command{
	Use:   "codecs",
	Short: "List registered codecs",
	Long: `List every codec id in the registry. Codecs marked with * accept
text values on the command line.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, id := range codec.Registered() {
			marker := " "
			if textcodec.Supported(id) {
				marker = "*"
			}
			cmd.Printf("%s %s\n", marker, id)
		}
	},
}

func init() {
	rootCmd.AddCommand(codecsCmd)
}
