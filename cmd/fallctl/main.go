package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/application-research/fallible"
	"github.com/application-research/fallible/outcome"
	"github.com/application-research/fallible/result"
	logging "github.com/ipfs/go-log/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/urfave/cli/v2"
)

var log = logging.Logger("fallctl")

func main() {
	logging.SetLogLevel("fallctl", "info")

	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)

	app := newApp()
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatalf("Command failed: %v", err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "fallctl"
	app.Usage = "Evaluate fallible operations and keep a history of their outcomes"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "data-dir",
			Value: "",
			Usage: "Directory for the outcome history (default ~/.fallctl)",
		},
		&cli.StringFlag{
			Name:  "config",
			Value: "",
			Usage: "TOML config file (default <data-dir>/config.toml, if present)",
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:      "divide",
			Usage:     "Divide two numbers",
			ArgsUsage: "<dividend> <divisor>",
			Action:    cmdDivide,
		},
		{
			Name:   "register",
			Usage:  "Validate an age and an email address",
			Action: cmdRegister,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:     "age",
					Aliases:  []string{"a"},
					Required: true,
				},
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
				},
			},
		},
		{
			Name:   "history",
			Usage:  "List stored outcomes, oldest first",
			Action: cmdHistory,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "op",
					Usage: "Only show outcomes of this operation",
				},
				&cli.BoolFlag{
					Name:  "failed",
					Usage: "Only show failed outcomes",
				},
				&cli.IntFlag{
					Name:  "limit",
					Usage: "Only show the newest n outcomes",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "Write the outcomes to this file as JSON lines instead of printing them",
				},
			},
		},
	}
	return app
}

func dataDir(ctx *cli.Context) string {
	if dir := ctx.String("data-dir"); dir != "" {
		return dir
	}

	dataDir, err := homedir.Expand("~/.fallctl")
	if err != nil {
		log.Warnf("Using current working directory as data dir because home dir could not be expanded: %v", err)
		return "data"
	}
	return dataDir
}

func cmdDivide(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return fmt.Errorf("expected 2 arguments, got %d", ctx.NArg())
	}

	a, err := strconv.ParseFloat(ctx.Args().Get(0), 64)
	if err != nil {
		return fmt.Errorf("could not parse dividend: %v", err)
	}
	b, err := strconv.ParseFloat(ctx.Args().Get(1), 64)
	if err != nil {
		return fmt.Errorf("could not parse divisor: %v", err)
	}

	fallctl, err := New(ctx, dataDir(ctx))
	if err != nil {
		return err
	}
	defer fallctl.Close()

	input := ctx.Args().Get(0) + " " + ctx.Args().Get(1)
	return report(ctx, fallctl, "divide", input, fallible.Divide(a, b))
}

func cmdRegister(ctx *cli.Context) error {
	fallctl, err := New(ctx, dataDir(ctx))
	if err != nil {
		return err
	}
	defer fallctl.Close()

	age, email := ctx.Int("age"), ctx.String("email")
	input := strconv.Itoa(age) + " " + email
	return report(ctx, fallctl, "register", input, fallctl.validator.Register(age, email))
}

func cmdHistory(ctx *cli.Context) error {
	fallctl, err := New(ctx, dataDir(ctx))
	if err != nil {
		return err
	}
	defer fallctl.Close()

	opts := []outcome.ListOption{
		outcome.ListWithOp(ctx.String("op")),
		outcome.ListWithLimit(ctx.Int("limit")),
	}
	if ctx.IsSet("failed") {
		opts = append(opts, outcome.ListWithFailed(ctx.Bool("failed")))
	}

	if output := ctx.String("output"); output != "" {
		written := fallctl.store.ExportToFile(ctx.Context, output, opts...)
		if e, failed := written.Err(); failed {
			return fmt.Errorf("could not export history: %w", e)
		}
		fmt.Fprintf(ctx.App.Writer, "Saved %d outcomes to %s\n", written.Unwrap(), output)
		return nil
	}

	records, err := listRecords(ctx, fallctl, opts...)
	if err != nil {
		return err
	}

	for _, rec := range records {
		fmt.Fprintf(ctx.App.Writer, "%s\t%s\t%s\t%s\t%s\n",
			rec.ID, rec.At.Format("2006-01-02T15:04:05Z07:00"), rec.Op, rec.Input, rec.Result())
	}
	return nil
}

func listRecords(ctx *cli.Context, fallctl *Fallctl, opts ...outcome.ListOption) ([]outcome.Record, error) {
	records := fallctl.store.List(ctx.Context, opts...)
	if e, failed := records.Err(); failed {
		return nil, fmt.Errorf("could not list history: %w", e)
	}
	return records.Unwrap(), nil
}

// report prints r, saves it, and turns an Err outcome into a command error so
// the process exits non-zero.
func report[T, E any](ctx *cli.Context, fallctl *Fallctl, op, input string, r result.Result[T, E]) error {
	fmt.Fprintln(ctx.App.Writer, r)

	outcome.Save(ctx.Context, fallctl.store, op, input, r).
		InspectErr(func(err error) {
			log.Errorf("Failed to save %s outcome: %v", op, err)
		})

	return result.Match(r,
		func(T) error { return nil },
		func(e E) error { return fmt.Errorf("%s failed: %v", op, e) },
	)
}
