package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"github.com/zeozeozeo/gotegra/emulator"
)

// disasmCmd decodes a raw command-stream file and prints the register
// writes it would produce, without driving any engines.
type disasmCmd struct{}

func (*disasmCmd) Name() string     { return "disasm" }
func (*disasmCmd) Synopsis() string { return "decode a raw command-stream file" }
func (*disasmCmd) Usage() string {
	return `disasm <stream.bin>:
	Decode the little endian command words of the file and print the
	expansion of every header.
`
}

func (*disasmCmd) SetFlags(f *flag.FlagSet) {}

func (cmd *disasmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	words, err := loadWords(f.Arg(0))
	if err != nil {
		logrus.WithError(err).Error("failed to load stream")
		return subcommands.ExitFailure
	}

	if err := disassemble(os.Stdout, words); err != nil {
		logrus.WithError(err).Error("stream aborted")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// disassemble walks `words` the way the command processor would and
// writes one line per header and per dispatched register write.
func disassemble(w io.Writer, words []uint32) error {
	cursor := uint32(0)
	size := uint32(len(words))

	// reads the next argument word of the current run
	next := func() uint32 {
		word := words[cursor]
		cursor++
		return word
	}

	for cursor < size {
		offset := cursor * 4
		header := emulator.DecodeCommandHeader(words[cursor])
		cursor++

		switch header.Mode {
		case emulator.MODE_INCREASING_OLD, emulator.MODE_INCREASING:
			fmt.Fprintf(w, "%06x: [%s] method 0x%04x subch %d args %d\n",
				offset, header.Mode, header.Method, header.Subchannel, header.ArgCount)
			for i := uint32(0); i < header.ArgCount && cursor < size; i++ {
				argOffset := cursor * 4
				fmt.Fprintf(w, "%06x:   0x%04x <- 0x%08x\n", argOffset, header.Method+i, next())
			}

		case emulator.MODE_NON_INCREASING_OLD, emulator.MODE_NON_INCREASING:
			fmt.Fprintf(w, "%06x: [%s] method 0x%04x subch %d args %d\n",
				offset, header.Mode, header.Method, header.Subchannel, header.ArgCount)
			for i := uint32(0); i < header.ArgCount && cursor < size; i++ {
				argOffset := cursor * 4
				fmt.Fprintf(w, "%06x:   0x%04x <- 0x%08x\n", argOffset, header.Method, next())
			}

		case emulator.MODE_INCREASE_ONCE:
			if header.ArgCount < 1 {
				return fmt.Errorf("offset 0x%x: increase-once header with no arguments", offset)
			}
			fmt.Fprintf(w, "%06x: [%s] method 0x%04x subch %d args %d\n",
				offset, header.Mode, header.Method, header.Subchannel, header.ArgCount)
			if cursor < size {
				argOffset := cursor * 4
				fmt.Fprintf(w, "%06x:   0x%04x <- 0x%08x\n", argOffset, header.Method, next())
			}
			for i := uint32(1); i < header.ArgCount && cursor < size; i++ {
				argOffset := cursor * 4
				fmt.Fprintf(w, "%06x:   0x%04x <- 0x%08x\n", argOffset, header.Method+1, next())
			}

		case emulator.MODE_INLINE:
			fmt.Fprintf(w, "%06x: [%s] method 0x%04x subch %d value 0x%04x\n",
				offset, header.Mode, header.Method, header.Subchannel, header.InlineData)

		default:
			return fmt.Errorf("offset 0x%x: unknown submission mode %d", offset, header.Mode)
		}
	}
	return nil
}
