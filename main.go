package main

import "github.com/jsphweid/noteseq/cmd"

func main() {
	cmd.Execute()
}
