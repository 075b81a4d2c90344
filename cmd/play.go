package cmd

import (
	"fmt"
	"time"

	"github.com/jsphweid/noteseq/constants"
	"github.com/jsphweid/noteseq/music"
	"github.com/jsphweid/noteseq/score"
	"github.com/jsphweid/noteseq/util"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var playTempo float64

func init() {
	playCmd.Flags().Float64Var(&playTempo, "tempo", constants.DefaultTempo, "tempo in bpm")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Plays a score on the first MIDI out port",
	Long:  `Plays a score on the first MIDI out port`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		play(args[0])
	},
}

func play(path string) {
	defer midi.CloseDriver()

	out, err := midi.OutPort(0)
	if err != nil {
		fmt.Println("can't find a midi out port")
		return
	}
	send, err := midi.SendTo(out)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	seq, err := score.ParseFile(path, music.DefaultScoreVolume)
	if err != nil {
		panic("Could not parse score: " + err.Error())
	}

	quarter := time.Duration(float64(time.Minute) / playTempo)
	for _, t := range seq.Tuples() {
		d := time.Duration(t.Dur * float64(quarter))
		if !t.Pitched() {
			time.Sleep(d)
			continue
		}
		key := t.MidiNumber()
		if key < 0 || key > 127 {
			continue
		}
		vel := uint8(util.Clamp(t.Volume, 0, 127))
		send(midi.NoteOn(0, uint8(key), vel))
		time.Sleep(d)
		send(midi.NoteOff(0, uint8(key)))
	}
}
