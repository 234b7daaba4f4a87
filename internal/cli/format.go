package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type FormatCmd struct {
	File string `arg:"" help:"Schedule file (TOML)." type:"existingfile"`
}

// formattedHours фиксированный порядок дней в выводе (toml сортирует ключи map по алфавиту)
type formattedHours struct {
	Monday    string `toml:"monday"`
	Tuesday   string `toml:"tuesday"`
	Wednesday string `toml:"wednesday"`
	Thursday  string `toml:"thursday"`
	Friday    string `toml:"friday"`
	Saturday  string `toml:"saturday"`
	Sunday    string `toml:"sunday"`
}

type formattedFile struct {
	Timezone     string         `toml:"timezone"`
	WorkingHours formattedHours `toml:"working_hours"`
}

// Run печатает расписание в каноническом виде: все семь дней, время "hh:mm AM|PM"
func (c *FormatCmd) Run(ctx *Context) error {
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

	for i := range schedule {
		schedule[i] = schedule[i].Normalize()
	}
	hours := schedule.WorkingHours()

	out := formattedFile{
		Timezone: loc.String(),
		WorkingHours: formattedHours{
			Monday:    hours["monday"],
			Tuesday:   hours["tuesday"],
			Wednesday: hours["wednesday"],
			Thursday:  hours["thursday"],
			Friday:    hours["friday"],
			Saturday:  hours["saturday"],
			Sunday:    hours["sunday"],
		},
	}

	if err := toml.NewEncoder(ctx.Out).Encode(out); err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}
	return nil
}
