package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/n64core/n64core/pkg/core"
	"github.com/n64core/n64core/pkg/vr4300"
)

func newRunCmd() *cobra.Command {
	var maxSteps int
	var pifPath string

	cmd := &cobra.Command{
		Use:   "run <cartridge>",
		Short: "Load a cartridge and PIF ROM and execute it",
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
			fmt.Printf("loaded %q (%d bytes)\n", c.Header.Name, len(cart))

			results := make(chan vr4300.TestResult, 16)
			c.AttachResults(results)
			go func() {
				for r := range results {
					fmt.Printf("syscall: rs=%#x rd=%#x sa=%d pass=%v\n", r.RS, r.RD, r.SA, r.Pass)
				}
			}()

			for i := 0; maxSteps == 0 || i < maxSteps; i++ {
				if err := c.Step(); err != nil {
					log.Fatalf("n64core: step %d: %v", i, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&maxSteps, "steps", "n", 0, "stop after this many instructions (0 = run until fatal)")
	cmd.Flags().StringVar(&pifPath, "pif", "", "path to a PIF boot ROM image")
	return cmd
}
