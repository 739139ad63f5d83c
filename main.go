package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/tebeka/atexit"

	"github.com/hexalang/hexagony/hex"
)

var debug = flag.Bool("debug", false, "Run under the debug console, pausing before every instruction.")

func main() {
	flag.Parse()
	atexit.Register(glog.Flush)
	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "No filename specified.")
		atexit.Exit(1)
	}
	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening file:", err)
		atexit.Exit(1)
	}
	program := hex.NewProgram(src)
	glog.V(1).Infof("Loaded a %d-ring program (%d cells)", program.Rings(), program.Size())
	console := hex.NewConsole(program, os.Stdin, os.Stdout, *debug)
	if err := console.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
