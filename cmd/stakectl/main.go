// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// stakectl is a small command-line front end for exercising the staking
// contract directly, without a running node: it loads a contract's
// canonical encoding from a local file, applies one operation, and writes
// the result back. It is a debugging and test-fixture tool, not a wallet.
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	alog "github.com/albatross-go/staking/log"
)

var (
	version   string
	gitCommit string
	gitTag    string
)

var commonFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "state",
		Usage: "path to the contract's canonical-encoding state file",
		Value: "stakectl.state",
	},
	cli.StringFlag{
		Name:  "policy",
		Usage: "path to a YAML policy file (devnet defaults if unset)",
	},
	cli.IntFlag{
		Name:  "verbosity",
		Value: int(log.LvlInfo),
		Usage: "log verbosity (0-9)",
	},
}

func setupLogging(ctx *cli.Context) {
	h := log.NewGlogHandler(log.StreamHandler(os.Stderr, log.TerminalFormat(true)))
	h.Verbosity(log.Lvl(ctx.Int("verbosity")))
	alog.Root().SetHandler(h)
}

func main() {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	app := cli.App{
		Version:   fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta),
		Name:      "stakectl",
		Usage:     "inspect and drive the staking contract from the command line",
		Copyright: "2025 The Albatross-Go developers",
		Flags:     commonFlags,
		Before: func(ctx *cli.Context) error {
			setupLogging(ctx)
			return nil
		},
		Commands: []cli.Command{
			cmdInit,
			cmdInspect,
			cmdStake,
			cmdRetire,
			cmdUnpark,
			cmdUnstake,
			cmdSlash,
			cmdFinalize,
			cmdSelect,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, errors.Cause(err))
		os.Exit(1)
	}
}
