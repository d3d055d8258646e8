// Package main provides addrconv, a command line tool that parses, derives and
// converts Bitcoin-family addresses across coin profiles.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klingon-exchange/coinaddr/internal/config"
	"github.com/klingon-exchange/coinaddr/pkg/chain"
	"github.com/klingon-exchange/coinaddr/pkg/logging"
)

var (
	version = "0.1.0-dev"
	commit  = "unknown"
)

const usage = `usage: addrconv [flags] <command> [args]

commands:
  parse <address>                          decode an address
  script <hex>                             address for a scriptPubKey
  convert <address> <symbol>               re-encode under another coin profile
  pubkey <hex> <p2pkh|p2wpkh|p2sh-p2wpkh>  derive an address from a public key
  coins                                    list registered coin profiles

flags:
`

// errUsage marks errors caused by bad arguments; they exit with status 2.
var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options are the resolved global settings for a command.
type options struct {
	network  chain.Network
	profile  chain.Profile
	explicit bool // coin came from -coin rather than the config default
	jsonOut  bool
	log      *logging.Logger
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("addrconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		coin        = fs.String("coin", "", "Coin profile symbol (default: from config, BTC)")
		network     = fs.String("network", "", "Network: mainnet, testnet, signet, regtest (default: from config)")
		configFile  = fs.String("config", "", "Config file path")
		logLevel    = fs.String("log-level", "", "Log level (debug, info, warn, error)")
		jsonOut     = fs.Bool("json", false, "Print results as JSON")
		showVersion = fs.Bool("version", false, "Show version and exit")
	)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "addrconv %s (commit: %s)\n", version, commit)
		return 0
	}

	cfg := config.DefaultConfig()
	if *configFile != "" {
		loaded, err := config.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	// CLI flags take precedence over the config file
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *network != "" {
		cfg.Network = *network
	}
	if *coin != "" {
		cfg.Coin = *coin
	}

	log := logging.New(&logging.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		TimeFormat: time.TimeOnly,
		Timestamps: true,
		Output:     stderr,
	}).Component("addrconv")
	logging.SetDefault(log)

	if err := cfg.ApplyProfiles(log); err != nil {
		log.Error("Failed to register profiles", "error", err)
		return 1
	}

	net, err := cfg.NetworkValue()
	if err != nil {
		log.Error("Invalid network", "error", err)
		return 2
	}
	profile, err := cfg.ResolveProfile()
	if err != nil {
		log.Error("Invalid coin", "error", err)
		return 2
	}

	opts := &options{
		network:  net,
		profile:  profile,
		explicit: *coin != "",
		jsonOut:  *jsonOut,
		log:      log,
	}
	log.Debug("Settings resolved", "coin", profile.Symbol, "network", opts.network, "config", *configFile)

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	out, err := dispatch(strings.ToLower(rest[0]), rest[1:], opts)
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "error: %v\n", err)
			fs.Usage()
			return 2
		}
		log.Error("Command failed", "command", rest[0], "error", err)
		return 1
	}

	if err := out.write(stdout, opts.jsonOut); err != nil {
		log.Error("Failed to write output", "error", err)
		return 1
	}
	return 0
}
