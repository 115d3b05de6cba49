package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	"github.com/LauraGA777/gmsf-backend-sub001/pkg/dbmetrics"
	"github.com/LauraGA777/gmsf-backend-sub001/pkg/psqlbuilder"
)

// sessionColumns полный набор колонок таблицы training_sessions
var sessionColumns = []string{
	"id",
	"title",
	"description",
	"start_time",
	"end_time",
	"trainer_id",
	"client_id",
	"status",
	"notes",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с тренировками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тренировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую тренировку.
// Если в контексте передана активная транзакция (через context.Value),
// использует её - при создании бронирования conflict-скан и INSERT обязаны
// выполняться в одной SERIALIZABLE транзакции, иначе возможен double booking.
func (r *Repository) Create(ctx context.Context, s *domain.TrainingSession) (*domain.TrainingSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("training_sessions").
		Columns(
			"title",
			"description",
			"start_time",
			"end_time",
			"trainer_id",
			"client_id",
			"status",
			"notes",
		).
		Values(
			s.Title,
			s.Description,
			s.StartTime,
			s.EndTime,
			s.TrainerID,
			s.ClientID,
			s.Status,
			s.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает тренировку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TrainingSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sessionColumns...).
		From("training_sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := r.scanSession(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan session: %v", ErrScanRow, err)
	}

	return s, nil
}

// FindOverlapping возвращает не отмененные тренировки, пересекающиеся с
// q.Range по полуоткрытым интервалам и разделяющие тренера и/или клиента.
// Тренировка, заканчивающаяся ровно в момент начала кандидата, пересечением
// не считается: start_time < q.End AND end_time > q.Start.
//
// При обновлении существующей тренировки её собственный ID исключается из
// скана через q.ExcludeID.
//
// Внутри транзакции добавляется FOR UPDATE, чтобы конкурирующее бронирование
// не прошло тот же скан до коммита.
func (r *Repository) FindOverlapping(ctx context.Context, q domain.OverlapQuery) ([]*domain.TrainingSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if q.TrainerID == nil && q.ClientID == nil {
		return nil, ErrEmptyOverlapQuery
	}

	owners := squirrel.Or{}
	if q.TrainerID != nil {
		owners = append(owners, squirrel.Eq{"trainer_id": *q.TrainerID})
	}
	if q.ClientID != nil {
		owners = append(owners, squirrel.Eq{"client_id": *q.ClientID})
	}

	selectBuilder := psqlbuilder.Select(sessionColumns...).
		From("training_sessions").
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Where(squirrel.Lt{"start_time": q.Range.End}).
		Where(squirrel.Gt{"end_time": q.Range.Start}).
		Where(owners).
		OrderBy("start_time ASC")

	if q.ExcludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *q.ExcludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSessions(rows)
}

// ListByTrainersAndRange получает не отмененные тренировки указанных
// тренеров, пересекающиеся с интервалом [from, to).
// Используется генератором свободных слотов.
func (r *Repository) ListByTrainersAndRange(ctx context.Context, trainerIDs []int64, rng domain.TimeRange) ([]*domain.TrainingSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if len(trainerIDs) == 0 {
		return []*domain.TrainingSession{}, nil
	}

	query, args, err := psqlbuilder.Select(sessionColumns...).
		From("training_sessions").
		Where(squirrel.Eq{"trainer_id": trainerIDs}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Where(squirrel.Lt{"start_time": rng.End}).
		Where(squirrel.Gt{"end_time": rng.Start}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByTrainersAndRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTrainersAndRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSessions(rows)
}

// ListWithFilter получает тренировки с фильтрацией и пагинацией.
// Возвращает страницу и общее число записей, подходящих под фильтр.
//
// Поддерживает фильтрацию по:
// - Подстроке в title (Search)
// - Статусу (Status), иначе отмененные скрыты если !IncludeCancelled
// - Тренеру и/или клиенту
// - Периоду (DateFrom, DateTo) по пересечению с [DateFrom, DateTo)
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.SessionFilter) ([]*domain.TrainingSession, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	applyFilter := func(b squirrel.SelectBuilder) squirrel.SelectBuilder {
		if filter.Search != nil && *filter.Search != "" {
			b = b.Where(squirrel.ILike{"title": "%" + *filter.Search + "%"})
		}
		if filter.Status != nil {
			b = b.Where(squirrel.Eq{"status": *filter.Status})
		} else if !filter.IncludeCancelled {
			b = b.Where(squirrel.NotEq{"status": domain.StatusCancelled})
		}
		if filter.TrainerID != nil {
			b = b.Where(squirrel.Eq{"trainer_id": *filter.TrainerID})
		}
		if filter.ClientID != nil {
			b = b.Where(squirrel.Eq{"client_id": *filter.ClientID})
		}
		if filter.DateFrom != nil {
			b = b.Where(squirrel.Gt{"end_time": *filter.DateFrom})
		}
		if filter.DateTo != nil {
			b = b.Where(squirrel.Lt{"start_time": *filter.DateTo})
		}
		return b
	}

	countQuery, countArgs, err := applyFilter(psqlbuilder.Select("COUNT(*)").From("training_sessions")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - scan count: %v", ErrScanRow, err)
	}

	page := filter.Page
	if page < 1 {
		page = domain.DefaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = domain.DefaultLimit
	}
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}

	query, args, err := applyFilter(psqlbuilder.Select(sessionColumns...).From("training_sessions")).
		OrderBy("start_time ASC, id ASC").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit)).
		ToSql()

	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sessions, err := r.scanSessions(rows)
	if err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

// Update обновляет изменяемые поля тренировки (время, тренер, клиент,
// заголовок, описание, заметки). Статус этим путем не меняется.
func (r *Repository) Update(ctx context.Context, s *domain.TrainingSession) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("training_sessions").
		Set("title", s.Title).
		Set("description", s.Description).
		Set("start_time", s.StartTime).
		Set("end_time", s.EndTime).
		Set("trainer_id", s.TrainerID).
		Set("client_id", s.ClientID).
		Set("notes", s.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// Cancel отменяет тренировку (soft delete).
// Строка остается в таблице, меняется только статус - история сохраняется,
// физическое удаление этим компонентом не выполняется.
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("training_sessions").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSession сканирует одну тренировку
func (r *Repository) scanSession(row rowScanner) (*domain.TrainingSession, error) {
	var s domain.TrainingSession
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Description,
		&s.StartTime,
		&s.EndTime,
		&s.TrainerID,
		&s.ClientID,
		&s.Status,
		&s.Notes,
		&s.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// scanSessions сканирует результаты запроса в слайс тренировок
func (r *Repository) scanSessions(rows *sql.Rows) ([]*domain.TrainingSession, error) {
	sessions := make([]*domain.TrainingSession, 0)

	for rows.Next() {
		s, err := r.scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSessions - scan row: %v", ErrScanRow, err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSessions - rows error: %v", ErrScanRow, err)
	}

	return sessions, nil
}
