package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/noteseq/constants"
	"github.com/jsphweid/noteseq/midi"
	"github.com/jsphweid/noteseq/music"
	"github.com/jsphweid/noteseq/score"
	"github.com/jsphweid/noteseq/util"
	"github.com/spf13/cobra"
)

var (
	transformTranspose       int
	transformInvert          int
	transformRotate          int
	transformRetrograde      bool
	transformStretchDur      float64
	transformStretchInterval int
	transformVolume          int
	transformTempo           float64
)

func init() {
	transformCmd.Flags().IntVar(&transformTranspose, "transpose", 0, "shift every note by n semitones")
	transformCmd.Flags().IntVar(&transformInvert, "invert", 0, "invert every note around this axis")
	transformCmd.Flags().IntVar(&transformRotate, "rotate", 0, "cyclically rotate the sequence left by n")
	transformCmd.Flags().BoolVar(&transformRetrograde, "retrograde", false, "reverse the sequence")
	transformCmd.Flags().Float64Var(&transformStretchDur, "stretch-dur", 1, "scale every duration by this factor")
	transformCmd.Flags().IntVar(&transformStretchInterval, "stretch-interval", 0, "widen every step interval by n semitones")
	transformCmd.Flags().IntVar(&transformVolume, "volume", music.DefaultScoreVolume, "velocity applied to every note")
	transformCmd.Flags().Float64Var(&transformTempo, "tempo", constants.DefaultTempo, "tempo in bpm")
	rootCmd.AddCommand(transformCmd)
}

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Transforms a score and writes the result as MIDI",
	Long:  `Transforms a score and writes the result as MIDI`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		transform(cmd, args[0])
	},
}

func transform(cmd *cobra.Command, path string) {
	seq, err := score.ParseFile(path, transformVolume)
	if err != nil {
		panic("Could not parse score: " + err.Error())
	}

	if transformTranspose != 0 {
		seq = seq.Transposition(transformTranspose)
	}
	if cmd.Flags().Changed("invert") {
		seq, err = seq.Inversion(transformInvert)
		if err != nil {
			panic("Could not invert: " + err.Error())
		}
	}
	if transformRetrograde {
		seq = seq.Retrograde()
	}
	if cmd.Flags().Changed("rotate") {
		seq, err = seq.Rotate(transformRotate)
		if err != nil {
			panic("Could not rotate: " + err.Error())
		}
	}
	if cmd.Flags().Changed("stretch-interval") {
		seq, err = seq.StretchInterval(transformStretchInterval)
		if err != nil {
			panic("Could not stretch intervals: " + err.Error())
		}
	}
	if transformStretchDur != 1 {
		seq = seq.StretchDur(transformStretchDur)
	}

	s, err := midi.NewSMF(seq.Tuples(), transformTempo)
	if err != nil {
		panic("Could not build midi: " + err.Error())
	}

	util.EnsureDir(constants.GetOutDir())
	out := filepath.Join(constants.GetOutDir(), uuid.New().String()+".mid")
	if err := s.WriteFile(out); err != nil {
		panic("Write failed for midi file: " + err.Error())
	}
	fmt.Printf("Wrote %v\n", out)
}
