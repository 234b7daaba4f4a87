package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

const (
	settingsTable     = "salon_settings"
	workingHoursTable = "salon_working_hours"
)

// Repository репозиторий настроек салона и его расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает настройки салона вместе с расписанием на все 7 дней
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, s *domain.GeneralSettings) (*domain.GeneralSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(settingsTable).
		Columns("owner_id", "name", "phone", "address", "timezone").
		Values(s.OwnerID, s.Name, s.Phone, s.Address, s.Timezone).
		Suffix("RETURNING salon_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.SalonID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	days := make(map[domain.Weekday]domain.DayHours, domain.DaysInWeek)
	for _, weekday := range domain.AllWeekdays() {
		days[weekday] = s.WorkingHours.Day(weekday)
	}
	if err := r.upsertDays(ctx, executor, s.SalonID, days); err != nil {
		return nil, err
	}

	return s, nil
}

// Get получает настройки салона. Дни без строки в salon_working_hours получают значения по умолчанию
func (r *Repository) Get(ctx context.Context, salonID int64) (*domain.GeneralSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"salon_id",
		"owner_id",
		"name",
		"phone",
		"address",
		"timezone",
		"created_at",
		"updated_at",
	).
		From(settingsTable).
		Where(squirrel.Eq{"salon_id": salonID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.GeneralSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.SalonID,
		&s.OwnerID,
		&s.Name,
		&s.Phone,
		&s.Address,
		&s.Timezone,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	schedule, err := r.getSchedule(ctx, executor, salonID)
	if err != nil {
		return nil, err
	}
	s.WorkingHours = schedule

	return &s, nil
}

// UpdateLocation частично обновляет адрес, часовой пояс и расписание салона
// Расписание обновляется только для переданных дней недели
func (r *Repository) UpdateLocation(ctx context.Context, salonID int64, info domain.LocationInfo) (*domain.GeneralSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	days := make(map[domain.Weekday]domain.DayHours, len(info.WorkingHours))
	for key, raw := range info.WorkingHours {
		weekday, err := domain.ParseWeekday(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWorkingHours, err)
		}
		days[weekday] = domain.ParseHoursString(raw)
	}

	update := psqlbuilder.Update(settingsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"salon_id": salonID})
	if info.Address != nil {
		update = update.Set("address", *info.Address)
	}
	if info.Timezone != nil {
		update = update.Set("timezone", *info.Timezone)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateLocation - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateLocation - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateLocation - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return nil, ErrSettingsNotFound
	}

	if err := r.upsertDays(ctx, executor, salonID, days); err != nil {
		return nil, err
	}

	return r.Get(ctx, salonID)
}

// getSchedule читает расписание салона
func (r *Repository) getSchedule(ctx context.Context, executor DBExecutor, salonID int64) (domain.WeeklySchedule, error) {
	schedule := domain.DefaultWeeklySchedule()

	query, args, err := psqlbuilder.Select("weekday", "is_open", "opening_time", "closing_time").
		From(workingHoursTable).
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return schedule, fmt.Errorf("%w: getSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return schedule, fmt.Errorf("%w: getSchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			weekday int
			day     domain.DayHours
		)
		if err := rows.Scan(&weekday, &day.IsOpen, &day.OpeningTime, &day.ClosingTime); err != nil {
			return schedule, fmt.Errorf("%w: getSchedule - scan row: %v", ErrScanRow, err)
		}
		if !domain.Weekday(weekday).IsValid() {
			continue
		}
		schedule[weekday] = day
	}

	if err := rows.Err(); err != nil {
		return schedule, fmt.Errorf("%w: getSchedule - rows error: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// upsertDays записывает дни расписания одним запросом INSERT ... ON CONFLICT
func (r *Repository) upsertDays(ctx context.Context, executor DBExecutor, salonID int64, days map[domain.Weekday]domain.DayHours) error {
	if len(days) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert(workingHoursTable).
		Columns("salon_id", "weekday", "is_open", "opening_time", "closing_time")

	// Порядок дней фиксирован, чтобы запрос был детерминированным
	for _, weekday := range domain.AllWeekdays() {
		day, ok := days[weekday]
		if !ok {
			continue
		}
		insert = insert.Values(salonID, int(weekday), day.IsOpen, day.OpeningTime, day.ClosingTime)
	}

	query, args, err := insert.
		Suffix("ON CONFLICT (salon_id, weekday) DO UPDATE SET " +
			"is_open = EXCLUDED.is_open, " +
			"opening_time = EXCLUDED.opening_time, " +
			"closing_time = EXCLUDED.closing_time, " +
			"updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: upsertDays - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: upsertDays - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
