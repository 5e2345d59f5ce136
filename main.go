package main

import (
	"fmt"
	"os"

	"rkatz/portfolio-parser/cmd/parse"
	"rkatz/portfolio-parser/cmd/root"
	"rkatz/portfolio-parser/cmd/worker"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(worker.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
