// Command n64core runs, disassembles and single-steps N64 cartridge
// images against the VR4300 pipeline and memory controller in pkg/core.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)

	root := &cobra.Command{
		Use:   "n64core",
		Short: "A cycle-oriented VR4300 pipeline and N64 memory controller",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newDisasmCmd())
	root.AddCommand(newStepCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func readFile(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("n64core: %v", err)
	}
	return data
}
