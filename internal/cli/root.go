// Package cli implements salonctl commands. All commands work offline on a
// TOML schedule file and never touch the service storage.
package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrReadSchedule ошибка чтения файла расписания
	ErrReadSchedule = errors.New("failed to read schedule file")

	// ErrInvalidSchedule файл расписания содержит некорректные значения
	ErrInvalidSchedule = errors.New("invalid schedule")
)

// Context общие зависимости команд
type Context struct {
	Out io.Writer
	Now func() time.Time
}

// ScheduleFile содержимое TOML файла расписания:
//
//	timezone = "Europe/Moscow"
//
//	[working_hours]
//	monday = "10:00 AM — 08:00 PM"
//	sunday = "Closed"
type ScheduleFile struct {
	Timezone     string            `toml:"timezone"`
	WorkingHours map[string]string `toml:"working_hours"`
}

// LoadScheduleFile читает файл расписания. Неизвестные поля считаются ошибкой.
func LoadScheduleFile(path string) (*ScheduleFile, error) {
	var f ScheduleFile
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadSchedule, path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%w: %s: unknown fields: %s", ErrReadSchedule, path, strings.Join(keys, ", "))
	}

	return &f, nil
}

// Location часовой пояс салона, UTC если не задан
func (f *ScheduleFile) Location() (*time.Location, error) {
	if f.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(f.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidSchedule, f.Timezone, err)
	}
	return loc, nil
}

// Schedule строгий разбор расписания. Отсутствующие дни берутся по умолчанию.
func (f *ScheduleFile) Schedule() (domain.WeeklySchedule, error) {
	schedule, err := domain.ScheduleFromWorkingHoursStrict(domain.DefaultWeeklySchedule(), f.WorkingHours)
	if err != nil {
		return domain.WeeklySchedule{}, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	return schedule, nil
}

// sortedKeys ключи working_hours: сначала дни недели по порядку, затем неизвестные по алфавиту
func (f *ScheduleFile) sortedKeys() []string {
	keys := make([]string, 0, len(f.WorkingHours))
	for k := range f.WorkingHours {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		wi, errI := domain.ParseWeekday(keys[i])
		wj, errJ := domain.ParseWeekday(keys[j])
		switch {
		case errI == nil && errJ == nil:
			return wi < wj
		case errI == nil:
			return true
		case errJ == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}
