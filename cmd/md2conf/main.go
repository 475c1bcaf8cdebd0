package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(mainExitCode())
}

func mainExitCode() int {
	flags, inputs, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}

	if flags.version {
		fmt.Println("md2conf", Version)
		return ExitSuccess
	}

	log := newLogger(flags.verbose)
	defer log.Sync() //nolint:errcheck // stderr sync failure is unreportable

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		log.Debug(fmt.Sprintf(format, args...))
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, flags, inputs, log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// newLogger builds a console logger; verbose enables debug output.
func newLogger(verbose bool) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}
