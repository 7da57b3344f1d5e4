package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/n64core/n64core/pkg/core"
)

func newStepCmd() *cobra.Command {
	var pifPath string

	cmd := &cobra.Command{
		Use:   "step <cartridge>",
		Short: "Load a cartridge and single-step it, pausing for Enter between instructions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cart := readFile(args[0])
			var pifROM []byte
			if pifPath != "" {
				pifROM = readFile(pifPath)
			}
			c, err := core.NewCore(cart, pifROM)
			if err != nil {
				return err
			}
			fmt.Printf("loaded %q (%d bytes), press Enter to step, Ctrl-D to quit\n", c.Header.Name, len(cart))

			in := bufio.NewScanner(os.Stdin)
			for in.Scan() {
				pc := c.CPU.PC()
				if err := c.Step(); err != nil {
					fmt.Printf("halted at %#016x: %v\n", pc, err)
					return nil
				}
				fmt.Printf("pc=%#016x\n", c.CPU.PC())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&pifPath, "pif", "", "path to a PIF boot ROM image")
	return cmd
}
