package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jsphweid/noteseq/constants"
	"github.com/jsphweid/noteseq/midi"
	"github.com/jsphweid/noteseq/music"
	"github.com/jsphweid/noteseq/score"
	"github.com/spf13/cobra"
)

var (
	renderVolume int
	renderTempo  float64
	renderOut    string
)

func init() {
	renderCmd.Flags().IntVar(&renderVolume, "volume", music.DefaultScoreVolume, "velocity applied to every note")
	renderCmd.Flags().Float64Var(&renderTempo, "tempo", constants.DefaultTempo, "tempo in bpm")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "output .mid path (defaults next to the score)")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Renders a score file to MIDI",
	Long:  `Renders a score file to MIDI`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		render(args[0])
	},
}

func render(path string) {
	seq, err := score.ParseFile(path, renderVolume)
	if err != nil {
		panic("Could not parse score: " + err.Error())
	}

	s, err := midi.NewSMF(seq.Tuples(), renderTempo)
	if err != nil {
		panic("Could not build midi: " + err.Error())
	}

	out := renderOut
	if out == "" {
		ext := filepath.Ext(path)
		out = strings.TrimSuffix(path, ext) + ".mid"
	}
	if err := s.WriteFile(out); err != nil {
		panic("Write failed for midi file: " + err.Error())
	}
	fmt.Printf("Wrote %v\n", out)
}
