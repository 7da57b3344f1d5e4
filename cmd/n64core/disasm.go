package main

import (
	"encoding/binary"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/n64core/n64core/pkg/vr4300"
)

func newDisasmCmd() *cobra.Command {
	var base uint32

	cmd := &cobra.Command{
		Use:   "disasm <image>",
		Short: "Decode a stream of big-endian 32-bit words and print each instruction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data := readFile(args[0])
			for off := 0; off+4 <= len(data); off += 4 {
				word := binary.BigEndian.Uint32(data[off : off+4])
				instr := vr4300.Decode(word)
				fmt.Printf("%08x: %08x  %s\n", base+uint32(off), word, instr)
			}
			return nil
		},
	}
	cmd.Flags().Uint32Var(&base, "base", 0, "address of the first word, for the printed offset column")
	return cmd
}
