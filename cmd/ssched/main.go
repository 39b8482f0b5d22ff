package main

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

func main() {
	bin, err := exec.LookPath("samplescheduler")
	if err != nil {
		fmt.Fprintln(os.Stderr, "ssched: samplescheduler not found on PATH")
		os.Exit(1)
	}
	if err := syscall.Exec(bin, append([]string{"samplescheduler"}, os.Args[1:]...), os.Environ()); err != nil {
		fmt.Fprintf(os.Stderr, "ssched: %v\n", err)
		os.Exit(1)
	}
}
