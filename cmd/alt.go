package cmd

import (
	"github.com/brogergvhs/evangelio/internal/sources"

	"github.com/spf13/cobra"
)

var altCmd = &cobra.Command{
	Use:     "alternativo",
	Aliases: []string{"alt"},
	Short:   "Descarga desde la fuente alternativa (bible.com, Reina Valera 1960)",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSource(cmd, sources.BibleCom)
	},
}

func init() {
	rootCmd.AddCommand(altCmd)
}
