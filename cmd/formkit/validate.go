package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/formkit/modules/customer"
	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/form"
)

var errInvalidSnapshots = errors.New("one or more snapshots are invalid")

type fileOutcome struct {
	File string `json:"file"`
	customer.Outcome
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "validate customer form snapshots stored as JSON files",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "lang",
				Value: "en",
				Usage: "language of the messages",
			},
			&cli.BoolFlag{
				Name:  "touched",
				Usage: "report messages for every field, as on submit",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			files := cmd.Args().Slice()
			if len(files) == 0 {
				return errors.New("no snapshot files given")
			}

			cfg, err := loadConfig(cmd.String("env-file"))
			if err != nil {
				return err
			}
			log := newLogger(cfg)
			translator, err := newTranslator(ctx, cfg, log)
			if err != nil {
				return fmt.Errorf("load translations: %w", err)
			}

			svc := customer.NewService(cfg.Customer, translator, nil, nil, customer.WithLogger(log))
			defer svc.Close()

			outcomes, err := validateFiles(ctx, svc, files, cmd.String("lang"), cmd.Bool("touched"))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(outcomes); err != nil {
				return err
			}
			for _, o := range outcomes {
				if !o.Valid {
					return errInvalidSnapshots
				}
			}
			return nil
		},
	}
}

// validateFiles checks every file concurrently and returns the outcomes in
// argument order.
func validateFiles(ctx context.Context, svc *customer.Service, files []string, lang string, touchAll bool) ([]fileOutcome, error) {
	futures := make([]*async.Future[fileOutcome], len(files))
	for i, name := range files {
		futures[i] = async.Async(ctx, name, func(ctx context.Context, name string) (fileOutcome, error) {
			snap, err := readSnapshot(name)
			if err != nil {
				return fileOutcome{}, err
			}
			if touchAll {
				snap.Touched = allPaths()
			}
			out, err := svc.Validate(ctx, lang, snap)
			if err != nil {
				return fileOutcome{}, fmt.Errorf("%s: %w", name, err)
			}
			return fileOutcome{File: name, Outcome: out}, nil
		})
	}
	return async.WaitAll(futures...)
}

func readSnapshot(name string) (form.Snapshot, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return form.Snapshot{}, err
	}
	var snap form.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return form.Snapshot{}, fmt.Errorf("%s: %w", name, err)
	}
	return snap, nil
}

// allPaths lists the top-level controls of the customer form. Touching a
// group or array touches everything below it.
func allPaths() []string {
	var paths []string
	for _, c := range customer.NewForm().Controls() {
		paths = append(paths, c.Name())
	}
	return paths
}
