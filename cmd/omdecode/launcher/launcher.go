package launcher

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-opus-magnum/flags"
	"github.com/rony4d/go-opus-magnum/inter"
)

var app = flags.NewApp()

func init() {
	app.Action = decodeAction
}

// Launch parses args, decodes every file argument and renders the results.
func Launch(args []string) error {
	return app.Run(args)
}

func decodeAction(ctx *cli.Context) error {
	cfg, err := MakeAllConfigs(ctx)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Logging, os.Stderr)
	if err != nil {
		return err
	}

	files := []string(ctx.Args())
	if len(files) == 0 {
		return fmt.Errorf("no input files, usage: %s %s", app.Name, app.ArgsUsage)
	}

	out := io.Writer(ctx.App.Writer)
	if cfg.Output.Path != "" {
		f, err := os.Create(cfg.Output.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return run(cfg, logger, files, out)
}

// run decodes files, logs every failure and writes the successfully decoded records.
func run(cfg Config, logger *logrus.Logger, files []string, out io.Writer) error {
	results := decodeFiles(files, inter.Kind(cfg.Decode.Kind), cfg.Decode.Workers)

	views := make([]fileView, 0, len(results))
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			logger.WithError(res.Err).WithFields(logrus.Fields{
				"file": res.File,
				"kind": errorKind(res.Err),
			}).Error("Decode failed")
			continue
		}
		view := newFileView(res.File, res.Record)
		logger.WithFields(logrus.Fields{
			"file":  res.File,
			"bytes": res.Size,
			"type":  view.Kind,
		}).Debug("Decoded")
		views = append(views, view)
	}

	encoded, err := encode(cfg.Output.Format, views)
	if err != nil {
		return err
	}
	if _, err := out.Write(encoded); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{"decoded": len(views), "failed": failed}).Info("Done")
	if failed != 0 {
		return fmt.Errorf("%d of %d files failed to decode", failed, len(files))
	}
	return nil
}
