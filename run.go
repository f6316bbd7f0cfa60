package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"github.com/zeozeozeo/gotegra/emulator"
)

// runCmd replays the command lists of a session config through the
// command processor and reports the resulting engine state.
type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "replay a command-stream session" }
func (*runCmd) Usage() string {
	return `run <session.toml>:
	Load the session config, map its command lists into GPU memory and
	process them in order.
`
}

func (*runCmd) SetFlags(f *flag.FlagSet) {}

func (cmd *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	conf, err := loadConfig(f.Arg(0))
	if err != nil {
		logrus.WithError(err).Error("failed to load session config")
		return subcommands.ExitFailure
	}

	log := logrus.NewEntry(logrus.StandardLogger())
	ram := emulator.NewRAM(conf.RAMSize)
	mm := emulator.NewMemoryManager(ram)
	for _, mapping := range conf.Mappings {
		mm.Map(mapping.GPUAddr, mapping.Base, mapping.Length)
	}

	fermi := emulator.NewFermi2D(log)
	maxwell := emulator.NewMaxwell3D(log)
	compute := emulator.NewMaxwellCompute(log)
	gpu := emulator.NewGPU(mm, fermi, maxwell, compute, log)

	for _, list := range conf.CommandLists {
		words, err := loadWords(list.File)
		if err != nil {
			logrus.WithError(err).Errorf("failed to load command list %q", list.File)
			return subcommands.ExitFailure
		}

		count := list.Words
		if count == 0 {
			count = uint32(len(words))
		}

		offset, err := mm.Translate(list.GPUAddr)
		if err != nil {
			logrus.WithError(err).Errorf("command list %q is not mapped", list.File)
			return subcommands.ExitFailure
		}
		ram.WriteWords(offset, words)

		logrus.Infof("processing %q: %d words at 0x%x", list.File, count, list.GPUAddr)
		if err := gpu.ProcessCommandList(list.GPUAddr, count); err != nil {
			logrus.WithError(err).Error("stream aborted")
			return subcommands.ExitFailure
		}
	}

	// summary of what the streams produced
	for subchannel, id := range gpu.BoundEngines {
		fmt.Printf("subchannel %d: %s\n", subchannel, id)
	}
	fmt.Printf("macros uploaded: %d\n", len(maxwell.Macros))
	return subcommands.ExitSuccess
}

// loadWords reads a binary file of little endian 32 bit words.
// Trailing bytes that don't form a full word are ignored.
func loadWords(path string) ([]uint32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	words := make([]uint32, 0, len(data)/4)
	for i := 0; i+4 <= len(data); i += 4 {
		word := uint32(data[i]) | uint32(data[i+1])<<8 |
			uint32(data[i+2])<<16 | uint32(data[i+3])<<24
		words = append(words, word)
	}
	return words, nil
}
