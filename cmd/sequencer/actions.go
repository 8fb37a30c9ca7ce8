package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	humanize "github.com/dustin/go-humanize"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/sequencer/assembler"
	"github.com/katalvlaran/sequencer/config"
	"github.com/katalvlaran/sequencer/fragment"
	"github.com/katalvlaran/sequencer/loader"
	"github.com/katalvlaran/sequencer/overlap"
	"github.com/katalvlaran/sequencer/state"
)

// loadReads reads SOURCE honouring the --format override. Each rejected
// record is logged before the combined error is returned.
func loadReads(env *state.LocalEnv, cmd *cli.Command) ([]fragment.Fragment, error) {
	if cmd.NArg() == 0 {
		return nil, errors.New("no SOURCE has been specified")
	}
	src := cmd.Args().Get(0)

	format := env.Cfg.Input.Format
	if cmd.IsSet("format") {
		var err error
		if format, err = loader.ParseFormat(cmd.String("format")); err != nil {
			return nil, err
		}
	}

	reads, err := loader.ReadFile(src, format, loader.WithUpperCase(env.Cfg.Input.UpperCase))
	if err != nil {
		for _, e := range multierr.Errors(err) {
			env.Log.Warn("Rejected record", zap.String("source", src), zap.Error(e))
		}
		return nil, fmt.Errorf("unable to load reads from '%s': %w", src, err)
	}
	env.Log.Debug("Reads loaded", zap.String("source", src), zap.Stringer("format", format), zap.Int("count", len(reads)))
	return reads, nil
}

func runAssemble(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if env.Cfg == nil {
		return errors.New("configuration is not loaded")
	}
	if cmd.NArg() > 2 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	reads, err := loadReads(env, cmd)
	if err != nil {
		return err
	}

	workers := env.Cfg.Assembly.Workers
	if cmd.IsSet("workers") {
		workers = int(cmd.Int("workers"))
	}
	opts := []assembler.Option{
		assembler.WithWorkers(workers),
		assembler.WithCache(env.Cfg.Assembly.Cache && !cmd.Bool("no-cache")),
	}
	if cmd.Bool("trace") {
		opts = append(opts, assembler.WithOnMerge(func(st assembler.Step) {
			env.Log.Debug("Merged",
				zap.Int("left", st.Pair.Left),
				zap.Int("right", st.Pair.Right),
				zap.Int("overlap", st.Pair.Overlap),
				zap.Int("length", st.Merged.Len()),
				zap.Int("remaining", st.Remaining))
		}))
	}

	start := time.Now()
	asm := assembler.New(reads, opts...)
	merges, err := asm.AssembleAllContext(ctx)
	if err != nil {
		return fmt.Errorf("assembly interrupted after %d merges: %w", merges, err)
	}
	result := asm.Fragments()

	dst := cmd.Args().Get(1)
	if err := writeOutput(dst, result); err != nil {
		return err
	}

	longest := 0
	for _, f := range result {
		longest = max(longest, f.Len())
	}
	if len(dst) == 0 {
		dst = "STDOUT"
	}
	env.Log.Info("Assembly completed",
		zap.String("reads", humanize.Comma(int64(len(reads)))),
		zap.String("merges", humanize.Comma(int64(merges))),
		zap.String("fragments", humanize.Comma(int64(len(result)))),
		zap.String("longest", humanize.Comma(int64(longest))+" bp"),
		zap.String("destination", dst),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

func runOverlap(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if env.Cfg == nil {
		return errors.New("configuration is not loaded")
	}

	reads, err := loadReads(env, cmd)
	if err != nil {
		return err
	}
	table := overlap.New(reads, overlap.WithWorkers(env.Cfg.Assembly.Workers))
	if _, err := io.WriteString(cmd.Root().Writer, table.String()); err != nil {
		return fmt.Errorf("unable to write overlap table: %w", err)
	}
	return nil
}

// writeOutput writes fragments one per line to fname, or to stdout when
// fname is empty.
func writeOutput(fname string, frags []fragment.Fragment) (err error) {
	out := os.Stdout
	if len(fname) > 0 {
		if out, err = os.Create(fname); err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer func() {
			err = multierr.Append(err, out.Close())
		}()
	}
	return writeFragments(out, frags)
}

func writeFragments(w io.Writer, frags []fragment.Fragment) error {
	bw := bufio.NewWriter(w)
	for _, f := range frags {
		if _, err := bw.WriteString(f.String()); err != nil {
			return fmt.Errorf("unable to write fragment: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("unable to write fragment: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("unable to write fragments: %w", err)
	}
	return nil
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)

	out := os.Stdout
	if len(fname) > 0 {
		out, err = os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()
	}

	if cmd.Bool("default") || env.Cfg == nil {
		state = "default"
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Outputing configuration", zap.String("state", state), zap.String("file", fname))

	_, err = out.Write(data)
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
