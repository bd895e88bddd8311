// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/tvmstate/chain"
	"github.com/vechain/tvmstate/log"
	"github.com/vechain/tvmstate/lvldb"
	"github.com/vechain/tvmstate/repository"
	"github.com/vechain/tvmstate/tvm"
	"github.com/vechain/tvmstate/worldstate"
)

func initLogger(ctx *cli.Context) {
	lvl := log.FromVerbosity(ctx.GlobalInt(verbosityFlag.Name))
	useColor := isatty.IsTerminal(os.Stderr.Fd()) && os.Getenv("TERM") != "dumb"
	log.Init(os.Stderr, lvl, useColor)
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".tvmstate")
	}
	return ".tvmstate"
}

func handleExitSignal() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		exitSignalCh := make(chan os.Signal, 1)
		signal.Notify(exitSignalCh, os.Interrupt, syscall.SIGTERM)

		sig := <-exitSignalCh
		logger.Info("exit signal received", "signal", sig)
		cancel()
	}()
	return ctx
}

func loadConfig(ctx *cli.Context) (tvm.ProtocolConfig, error) {
	path := ctx.GlobalString(configFlag.Name)
	if path == "" {
		return tvm.DefaultProtocolConfig(), nil
	}
	return tvm.LoadProtocolConfig(path)
}

func parseRoot(s string) (tvm.Bytes32, error) {
	if s == "" {
		return tvm.Bytes32{}, nil
	}
	root, err := tvm.ParseBytes32(s)
	if err != nil {
		return tvm.Bytes32{}, errors.Wrap(err, "root")
	}
	return root, nil
}

func parseInt64Arg(s, name string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "%s", name)
	}
	return v, nil
}

func parseAddressArg(s, name string) (tvm.Address, error) {
	addr, err := tvm.ParseAddress(s)
	if err != nil {
		return tvm.Address{}, errors.Wrapf(err, "%s", name)
	}
	return addr, nil
}

// stateEnv is the opened state database and the world state over it.
type stateEnv struct {
	db     *lvldb.LevelDB
	snap   *worldstate.Snapshot
	blocks *chain.BlockReader
	cfg    tvm.ProtocolConfig
}

func openStateEnv(ctx *cli.Context) (*stateEnv, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	root, err := parseRoot(ctx.GlobalString(rootFlag.Name))
	if err != nil {
		return nil, err
	}

	dataDir := ctx.GlobalString(dataDirFlag.Name)
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, errors.Wrap(err, "create data dir")
	}
	db, err := lvldb.New(filepath.Join(dataDir, "state.db"), lvldb.Options{
		CacheSize:              128,
		OpenFilesCacheCapacity: 64,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open state database")
	}
	blocks, err := chain.NewBlockReader(db, 64)
	if err != nil {
		db.Close()
		return nil, err
	}
	logger.Debug("state database opened", "dir", dataDir, "root", root, "config", cfg)

	return &stateEnv{
		db:     db,
		snap:   worldstate.New(db, root, worldstate.Options{}),
		blocks: blocks,
		cfg:    cfg,
	}, nil
}

func (e *stateEnv) newRoot() *repository.Repository {
	return repository.NewRoot(e.snap, e.db, e.cfg, repository.WithBlockReader(e.blocks))
}

func (e *stateEnv) Close() {
	e.snap.Close()
	if err := e.db.Close(); err != nil {
		logger.Warn("failed to close state database", "err", err)
	}
}
