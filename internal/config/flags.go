package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/mykeychain/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-u string   path of the account store file (default from Config)
//	-s string   path of the charset file (default from Config)
//
// Only the flags handled here are parsed; flagx.FilterArgs keeps the JSON
// config flags out of the way.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.UsersFile, "u", cfg.UsersFile, "path of the account store file")
	fs.StringVar(&cfg.CharsetFile, "s", cfg.CharsetFile, "path of the charset file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
