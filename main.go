package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&runCmd{}, "")
	subcommands.Register(&disasmCmd{}, "")

	logLevel := flag.String("loglevel", "info", "log level (trace, debug, info, warn, error)")
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logrus.Fatalf("invalid log level %q", *logLevel)
	}
	logrus.SetLevel(level)

	os.Exit(int(subcommands.Execute(context.Background())))
}
