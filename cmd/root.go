package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "noteseq",
	Short: "Symbolic music notation toolkit",
	Long:  `Parses compact note notation and renders, transforms or plays it as MIDI.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
