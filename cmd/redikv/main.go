// Command redikv runs the key-value server: it wires together
// configuration, the keyspace store, the command dispatcher, and the
// connection loop, restores a snapshot on startup, and saves one back on
// a clean shutdown signal. The startup/shutdown sequence is grounded on
// the teacher's cmd/main.go (config → state → listeners → signal
// handling → final save), trimmed to the features this server keeps.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/akashmaji946/redikv/internal/command"
	"github.com/akashmaji946/redikv/internal/common"
	"github.com/akashmaji946/redikv/internal/config"
	"github.com/akashmaji946/redikv/internal/diag"
	"github.com/akashmaji946/redikv/internal/resp"
	"github.com/akashmaji946/redikv/internal/server"
	"github.com/akashmaji946/redikv/internal/store"
)

func main() {
	os.Exit(run())
}

// run performs the whole server lifecycle and returns the process exit
// code, per spec.md §6: 0 on a normal SIGINT/SIGTERM shutdown, non-zero
// on an invalid argument or an unrecoverable startup failure.
func run() int {
	logger := common.NewLogger()

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "redikv:", err)
		return 2
	}

	fmt.Println(common.ASCII_ART)
	logger.Info("redikv starting on port %d, save directory %s", cfg.Port, cfg.SaveDir)

	prefix := filepath.Join(cfg.SaveDir, config.StoragePrefix)

	clock := store.SystemClock{}
	kv := store.NewWithClock(clock)

	if err := kv.Load(prefix); err != nil {
		logger.Error("failed to load snapshot from %s: %v", prefix, err)
		return 1
	}
	logger.Info("keyspace restored from %s (or started empty if absent)", prefix)

	dispatcher := command.New(kv, clock, logger)

	srv := server.New(fmt.Sprintf(":%d", cfg.Port), dispatcher, logger)
	dispatcher.Register("INFO", func(args []string) resp.Reply {
		return resp.Bulk(diag.Build(cfg.Port, srv.State.ServerStartTime, srv.State))
	})

	expireCtx, cancelExpire := context.WithCancel(context.Background())
	defer cancelExpire()
	go kv.RunExpirationCollector(expireCtx)

	serveErrCh := make(chan error, 1)
	go func() {
		serveErrCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Warn("received signal %s, shutting down", sig)
	case err := <-serveErrCh:
		if err != nil {
			logger.Error("listener failed: %v", err)
			return 1
		}
	}

	cancelExpire()
	srv.Shutdown()

	if err := kv.Save(prefix); err != nil {
		fmt.Fprintln(os.Stderr, "redikv: snapshot save failed:", err)
		logger.Error("snapshot save failed: %v", err)
		return 0
	}
	logger.Info("snapshot saved to %s, goodbye", prefix)
	return 0
}
