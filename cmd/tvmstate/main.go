// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/tvmstate/log"
	"github.com/vechain/tvmstate/metrics"
	"github.com/vechain/tvmstate/repository"
	"github.com/vechain/tvmstate/state"
	"github.com/vechain/tvmstate/tvm"
)

var (
	version   = "0.1.0"
	gitCommit string
	gitTag    string

	logger = log.WithContext("pkg", "tvmstate")

	dumper = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "tvmstate",
		Usage:     "Inspect and modify the layered contract-VM state",
		Copyright: "2026 VeChain Foundation <https://vechain.org/>",
		Flags: []cli.Flag{
			dataDirFlag,
			configFlag,
			rootFlag,
			verbosityFlag,
			enableMetricsFlag,
			metricsAddrFlag,
		},
		Before: func(ctx *cli.Context) error {
			initLogger(ctx)
			if ctx.GlobalBool(enableMetricsFlag.Name) {
				metrics.InitializePrometheusMetrics()
			}
			return nil
		},
		Commands: []cli.Command{
			{
				Name:      "account",
				Usage:     "dump an account with its balance and energy left from freeze",
				ArgsUsage: "<address>",
				Action:    withEnv(accountAction),
			},
			{
				Name:      "transfer",
				Usage:     "move balance between two accounts and persist the result",
				ArgsUsage: "<from> <to> <amount>",
				Action:    withEnv(transferAction),
			},
			{
				Name:      "block",
				Usage:     "resolve a block by its height",
				ArgsUsage: "<number>",
				Action:    withEnv(blockAction),
			},
			{
				Name:   "props",
				Usage:  "print total weights, global limits and the head slot",
				Action: withEnv(propsAction),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Fatal:", err)
		os.Exit(1)
	}
}

// withEnv opens the state environment around a command and, when enabled,
// keeps the metrics endpoint up until an exit signal arrives.
func withEnv(fn func(ctx *cli.Context, env *stateEnv) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		env, err := openStateEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		if err := fn(ctx, env); err != nil {
			return err
		}
		if !ctx.GlobalBool(enableMetricsFlag.Name) {
			return nil
		}

		exitSignal := handleExitSignal()
		url, closeFunc, err := startMetricsServer(ctx.GlobalString(metricsAddrFlag.Name))
		if err != nil {
			return err
		}
		defer closeFunc()
		logger.Info("metrics server started, interrupt to exit", "url", url)
		<-exitSignal.Done()
		return nil
	}
}

func accountAction(ctx *cli.Context, env *stateEnv) error {
	if ctx.NArg() != 1 {
		return errors.New("usage: account <address>")
	}
	addr, err := parseAddressArg(ctx.Args().Get(0), "address")
	if err != nil {
		return err
	}
	return dumpAccount(ctx.App.Writer, env.newRoot(), addr)
}

func dumpAccount(w io.Writer, repo *repository.Repository, addr tvm.Address) error {
	acc, err := repo.GetAccount(addr)
	if err != nil {
		return err
	}
	if acc == nil {
		fmt.Fprintf(w, "account %v not found\n", addr)
		return nil
	}
	energy, err := repo.GetAccountLeftEnergyFromFreeze(acc)
	if err != nil {
		return err
	}
	net, err := repo.GetAccountLeftNetFromFreeze(acc)
	if err != nil {
		return err
	}
	dumper.Fdump(w, acc)
	fmt.Fprintf(w, "balance:     %d\n", acc.Balance)
	fmt.Fprintf(w, "energy left: %d\n", energy)
	fmt.Fprintf(w, "net left:    %d\n", net)
	return nil
}

func transferAction(ctx *cli.Context, env *stateEnv) error {
	if ctx.NArg() != 3 {
		return errors.New("usage: transfer <from> <to> <amount>")
	}
	from, err := parseAddressArg(ctx.Args().Get(0), "from")
	if err != nil {
		return err
	}
	to, err := parseAddressArg(ctx.Args().Get(1), "to")
	if err != nil {
		return err
	}
	amount, err := parseInt64Arg(ctx.Args().Get(2), "amount")
	if err != nil {
		return err
	}
	if err := transfer(env.newRoot(), from, to, amount); err != nil {
		return err
	}
	logger.Info("transferred", "from", from, "to", to, "amount", amount)
	return nil
}

// transfer applies both deltas in a child layer, folds it into root and
// writes root to disk. Nothing is persisted if either delta fails.
func transfer(root *repository.Repository, from, to tvm.Address, amount int64) error {
	if amount <= 0 {
		return errors.Errorf("invalid amount %d", amount)
	}
	child := root.NewChild()
	if _, err := child.AddBalance(from, -amount); err != nil {
		return err
	}
	if _, err := child.AddBalance(to, amount); err != nil {
		return err
	}
	if err := child.Commit(); err != nil {
		return errors.Wrap(err, "commit child")
	}
	if err := root.Commit(); err != nil {
		return errors.Wrap(err, "commit root")
	}
	return nil
}

func blockAction(ctx *cli.Context, env *stateEnv) error {
	if ctx.NArg() != 1 {
		return errors.New("usage: block <number>")
	}
	num, err := parseInt64Arg(ctx.Args().Get(0), "number")
	if err != nil {
		return err
	}
	if num < 0 {
		return errors.Errorf("invalid block number %d", num)
	}
	b, err := env.newRoot().GetBlockByNum(uint64(num))
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, b)
	return nil
}

func propsAction(ctx *cli.Context, env *stateEnv) error {
	return printProps(ctx.App.Writer, env.newRoot())
}

func printProps(w io.Writer, repo *repository.Repository) error {
	netWeight, err := repo.GetTotalNetWeight()
	if err != nil {
		return err
	}
	energyWeight, err := repo.GetTotalEnergyWeight()
	if err != nil {
		return err
	}
	slot, err := repo.GetHeadSlot()
	if err != nil {
		return err
	}
	netLimit, err := repo.GetDynamicProperty(tvm.KeyTotalNetLimit)
	if err != nil {
		return err
	}
	energyLimit, err := repo.GetDynamicProperty(tvm.KeyTotalEnergyCurrentLimit)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "total net weight:     %d\n", netWeight)
	fmt.Fprintf(w, "total energy weight:  %d\n", energyWeight)
	fmt.Fprintf(w, "total net limit:      %s\n", propString(netLimit))
	fmt.Fprintf(w, "total energy limit:   %s\n", propString(energyLimit))
	fmt.Fprintf(w, "head slot:            %d\n", slot)
	return nil
}

func propString(v []byte) string {
	if v == nil {
		return "<unset>"
	}
	n, err := state.DecodeInt64(v)
	if err != nil {
		return fmt.Sprintf("<malformed %x>", v)
	}
	return strconv.FormatInt(n, 10)
}
