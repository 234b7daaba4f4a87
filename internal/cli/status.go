package cli

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/usecase/get_store_status"
)

type StatusCmd struct {
	File string `arg:"" help:"Schedule file (TOML)." type:"existingfile"`
	At   string `help:"Moment to check in the salon timezone (YYYY-MM-DD HH:MM). Defaults to now."`
}

func (c *StatusCmd) Run(ctx *Context) error {
	f, err := LoadScheduleFile(c.File)
	if err != nil {
		return err
	}

	loc, err := f.Location()
	if err != nil {
		return err
	}

	schedule, err := f.Schedule()
	if err != nil {
		return err
	}

	var now time.Time
	if c.At == "" {
		now = ctx.Now().In(loc)
	} else {
		now, err = time.ParseInLocation(domain.DateTimeFormat, c.At, loc)
		if err != nil {
			return fmt.Errorf("invalid --at, use YYYY-MM-DD HH:MM: %w", err)
		}
	}

	status := get_store_status.GetStoreStatus(now, schedule)

	fmt.Fprintf(ctx.Out, "%s (%s, %s)\n", status.Message, now.Format("Monday 15:04"), loc)
	if status.NextInfo != nil {
		fmt.Fprintln(ctx.Out, *status.NextInfo)
	} else {
		fmt.Fprintln(ctx.Out, "Closed all week")
	}
	return nil
}
