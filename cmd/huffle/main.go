package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chronos-tachyon/huffle/internal/app"
	"github.com/chronos-tachyon/huffle/internal/config"
	"github.com/chronos-tachyon/huffle/internal/logger"
)

func main() {
	var (
		opts       app.Options
		configPath string
	)

	flag.StringVar(&opts.String, "s", "", "input string")
	flag.StringVar(&opts.File, "f", "", "input file")
	flag.BoolVar(&opts.Decode, "d", false, "decode the input instead of encoding it")
	flag.StringVar(&opts.Output, "o", "", "output file (default: print to stdout)")
	flag.StringVar(&configPath, "config", "", "YAML configuration file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-config file] (-s text | -f path) [-d] [-o path]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "s" {
			opts.HasString = true
		}
	})

	conf, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(conf, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := app.New(conf, log, os.Stdout).Run(opts); err != nil {
		if app.IsUsageError(err) {
			fmt.Fprintln(os.Stderr, err)
			flag.Usage()
			os.Exit(2)
		}
		log.Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}
