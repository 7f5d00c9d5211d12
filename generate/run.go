// Package generate drives presentation production from the fixed deck to the
// file on disk and implements package inspection command.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"pptgen/content"
	"pptgen/deck"
	"pptgen/pptx"
	"pptgen/state"
	"pptgen/utils/debug"
)

// Run builds the ChainCare deck and writes it out.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	env.Overwrite = cmd.Bool("overwrite")

	if cmd.Args().Len() > 0 {
		log.Warn("Malformed command line, unexpected arguments", zap.Strings("ignoring", cmd.Args().Slice()))
	}

	d, err := content.ChainCare()
	if err != nil {
		return fmt.Errorf("unable to prepare deck: %w", err)
	}

	log.Info("Processing starting", zap.Int("slides", d.Len()))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	out, err := process(ctx, d, cmd.String("output"), env, log)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.Root().Writer, "Presentation created successfully: %s\n", out)
	fmt.Fprintf(cmd.Root().Writer, "Total slides: %d\n", d.Len())
	return nil
}

// process writes deck to dst, which is either file name, directory or empty
// for working directory, and returns name of the produced file.
func process(ctx context.Context, d *deck.Deck, dst string, env *state.LocalEnv, log *zap.Logger) (string, error) {
	env.Rpt.StoreData("deck.txt", []byte(d.String()))

	out := buildOutputPath(d, dst, content.OutputName, &env.Cfg.Document, log)

	data, err := Build(ctx, d, &env.Cfg.Document, log)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := os.Stat(out); err == nil && env.Overwrite {
		log.Warn("Overwriting existing file", zap.String("file", out))
	}
	if err := writeFile(out, data, env.Overwrite); err != nil {
		return "", err
	}
	log.Debug("Presentation written", zap.String("file", out), zap.Int("size", len(data)))

	// Store result for debugging
	if err := env.Rpt.StoreCopy("result"+filepath.Ext(out), out); err != nil {
		log.Warn("Unable to store result in debug report", zap.Error(err))
	}
	return out, nil
}

// Inspect reads presentation package and prints its structure.
func Inspect(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inspect")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no presentation has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	sum, err := inspectFile(src)
	if err != nil {
		return err
	}
	log.Debug("Package inspected", zap.String("file", src), zap.Int("slides", len(sum.Slides)), zap.Int("parts", len(sum.Parts)))

	_, err = io.WriteString(cmd.Root().Writer, describe(src, sum))
	return err
}

func inspectFile(path string) (*pptx.Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, &IOError{Op: "stat", Path: path, Err: err}
	}
	sum, err := pptx.Inspect(f, fi.Size())
	if err != nil {
		return nil, fmt.Errorf("unable to inspect %s: %w", path, err)
	}
	return sum, nil
}

func describe(name string, sum *pptx.Summary) string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "Package %s: %d slides, %d parts", name, len(sum.Slides), len(sum.Parts))
	tw.TextBlock(1, "Title", sum.Title)
	tw.TextBlock(1, "Creator", sum.Creator)
	tw.TextBlock(1, "Identifier", sum.Identifier)
	for i, s := range sum.Slides {
		tw.Line(1, "Slide %d: %s", i+1, s.Part)
		for _, f := range s.Frames {
			tw.Line(2, "Frame %q", f.Name)
			for _, p := range f.Paragraphs {
				tw.Line(3, "(%d) %q", p.Level, p.Text)
			}
		}
		if s.NotesPart != "" {
			tw.Line(2, "Notes: %s", s.NotesPart)
			tw.TextBlock(3, "Text", s.Notes)
		}
	}
	return tw.String()
}
