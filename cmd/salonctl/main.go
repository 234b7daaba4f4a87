package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/m04kA/SMC-SalonService/internal/cli"
)

var CLI struct {
	Version kong.VersionFlag

	Status   cli.StatusCmd   `cmd:"" help:"Show whether the salon is open at a given moment."`
	Validate cli.ValidateCmd `cmd:"" help:"Check every day of a schedule file."`
	Format   cli.FormatCmd   `cmd:"" help:"Print a schedule file in canonical form."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("salonctl"),
		kong.Description("Offline tool for salon business-hours schedule files"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	err := ctx.Run(&cli.Context{
		Out: os.Stdout,
		Now: time.Now,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
