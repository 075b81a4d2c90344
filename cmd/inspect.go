package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/jsphweid/noteseq/music"
	"github.com/jsphweid/noteseq/score"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspects a parsed score",
	Long:  `Inspects a parsed score`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	seq, err := score.ParseFile(path, music.DefaultScoreVolume)
	if err != nil {
		panic("Could not parse score: " + err.Error())
	}
	spew.Dump(seq.Events())
	for _, t := range seq.Tuples() {
		fmt.Printf("tuple: %v\n", t)
	}
}
