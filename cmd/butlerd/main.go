// butlerd is the butler runtime daemon: approval gate, executor pool,
// scheduler, ingress switchboard, worker spawner, and the dashboard API.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/butlerhq/butlerd/pkg/version"
)

const defaultConfigPath = "butler.toml"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	// .env is optional; a missing file just means the environment is already
	// set up (systemd unit, container env, CI).
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	var err error
	switch cmd := os.Args[1]; cmd {
	case "up":
		err = cmdUp(os.Args[2:])
	case "run":
		err = cmdRun(os.Args[2:])
	case "list":
		err = cmdList(os.Args[2:])
	case "init":
		err = cmdInit(os.Args[2:])
	case "dashboard":
		err = cmdDashboard(os.Args[2:])
	case "version":
		fmt.Println(version.Full())
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		slog.Error("Command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: butlerd <command> [flags]

Commands:
  up         start the butler daemon (gate, executor, scheduler, API)
  run        trigger one worker session and wait for it
  list       list butler configurations in a directory
  init       scaffold a butler configuration file
  dashboard  serve the read API detached from a butler process
  version    print the butlerd version

Run "butlerd <command> -h" for command flags.
`)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
