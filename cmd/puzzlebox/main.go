// Command puzzlebox runs the puzzle collection front end.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/user-none/puzzlebox/standalone"
)

// Version is set at build time with -ldflags "-X main.Version=..."
var Version = "dev"

// Environment variables read after .env is loaded
const (
	envDataDir    = "PUZZLEBOX_DATA_DIR"
	envBackupKeep = "PUZZLEBOX_BACKUP_KEEP"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	// A missing .env is normal
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	opts, err := parseOptions(args, os.Getenv)
	if err != nil {
		return err
	}
	return standalone.Run(opts)
}

// parseOptions builds run options from flags, falling back to the
// environment for values not given on the command line.
func parseOptions(args []string, getenv func(string) string) (standalone.Options, error) {
	fs := flag.NewFlagSet("puzzlebox", flag.ContinueOnError)
	backend := fs.String("backend", "", "Open settings for this puzzle (e.g. net, bridges)")
	stringsPath := fs.String("strings", "", "YAML file overriding UI strings")
	dataDir := fs.String("data-dir", getenv(envDataDir), "Directory for prefs and backups")
	if err := fs.Parse(args); err != nil {
		return standalone.Options{}, err
	}

	opts := standalone.Options{
		AppName:         "Puzzles",
		Version:         Version,
		DataDir:         *dataDir,
		StringsOverride: *stringsPath,
		Backend:         *backend,
	}

	if v := getenv(envBackupKeep); v != "" {
		keep, err := strconv.Atoi(v)
		if err != nil || keep < 1 {
			return standalone.Options{}, fmt.Errorf("invalid %s %q: must be a positive integer", envBackupKeep, v)
		}
		opts.BackupKeep = keep
	}
	return opts, nil
}
