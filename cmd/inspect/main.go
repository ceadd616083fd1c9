// Command inspect prints the instruction list generated for a route.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"bve-compiler/internal/log"
	"bve-compiler/internal/route"
)

func main() {
	rw := flag.Bool("rw", false, "Parse as RW regardless of extension")
	pass1 := flag.Bool("pass1", false, "Assign track positions and sort before printing")
	seed := flag.Int64("seed", 0, "Random seed for $Rnd and weighted includes (0: clock)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: inspect [flags] route.csv|route.rw\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)
	log.Init(log.FromEnv())

	ft := route.FileTypeFor(path)
	if *rw {
		ft = route.RW
	}
	list, errs, err := route.Instructions(path, route.Options{FileType: ft, Seed: *seed}, *pass1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var sb strings.Builder
	list.Dump(&sb)
	fmt.Print(sb.String())
	fmt.Printf("\nInstructions: %d, Files: %d\n", len(list.Instructions), len(list.Filenames))
	if errs.Len() > 0 {
		fmt.Printf("Diagnostics (%d):\n", errs.Len())
		errs.Print(os.Stdout)
	}
}
