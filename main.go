package main

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/pgrterm/pgr/cmd"
)

func main() {
	if cpuProfile := os.Getenv("PGR_CPU_PROFILE"); cpuProfile != "" {
		f, err := os.Create("cpu.prof")
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := cmd.Execute(); err != nil {
		pprof.StopCPUProfile()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
