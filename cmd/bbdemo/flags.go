// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --config, --height, --workers, --tasks, --level, --version

package main

import "flag"

type cliArgs struct {
	config  string
	height  int
	workers int
	tasks   int
	level   string
	version bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.config, "config", "", "Path to YAML config file")
	flag.IntVar(&args.height, "height", 0, "Region height in rows (overrides config)")
	flag.IntVar(&args.workers, "workers", 0, "Concurrent workers (overrides config)")
	flag.IntVar(&args.tasks, "tasks", 20, "Tasks per worker")
	flag.StringVar(&args.level, "level", "", "Log level: debug, info, warn, error (overrides config)")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}
