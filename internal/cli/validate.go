package cli

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type ValidateCmd struct {
	File string `arg:"" help:"Schedule file (TOML)." type:"existingfile"`
}

// Run проверяет каждый день отдельно и печатает все найденные ошибки, а не только первую
func (c *ValidateCmd) Run(ctx *Context) error {
	f, err := LoadScheduleFile(c.File)
	if err != nil {
		return err
	}

	problems := 0

	if _, err := f.Location(); err != nil {
		fmt.Fprintf(ctx.Out, "timezone: %v\n", err)
		problems++
	}

	for _, key := range f.sortedKeys() {
		raw := f.WorkingHours[key]
		if _, err := domain.ParseWeekday(key); err != nil {
			fmt.Fprintf(ctx.Out, "%s: %v\n", key, err)
			problems++
			continue
		}
		if _, err := domain.ParseHoursStringStrict(raw); err != nil {
			fmt.Fprintf(ctx.Out, "%s: %v\n", key, err)
			problems++
			continue
		}
		fmt.Fprintf(ctx.Out, "%s: ok\n", key)
	}

	for _, w := range domain.AllWeekdays() {
		if _, ok := f.WorkingHours[w.Key()]; !ok {
			fmt.Fprintf(ctx.Out, "%s: missing, default %s applies\n", w.Key(), domain.FormatHours(domain.DefaultDayHours()))
		}
	}

	if problems > 0 {
		return fmt.Errorf("%w: %d problem(s) in %s", ErrInvalidSchedule, problems, c.File)
	}
	return nil
}
