package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registers the postgres dialect
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
	"github.com/hbnb-platform/hbnb-api/internal/platform/logger"
	"github.com/hbnb-platform/hbnb-api/internal/store"
)

var dialect = goqu.Dialect("postgres")

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// entityMapping describes how one entity type maps onto its table.
type entityMapping[T any] struct {
	table    string
	entity   string
	notFound error
	// duplicate, when set, replaces store.ErrDuplicate for unique violations.
	duplicate error
	// columns are selected in this order and passed to scan.
	columns []string
	// immutable columns are written on insert only.
	immutable []string
	audit     func(*T) *domain.Audit
	record    func(*T) goqu.Record
	scan      func(rowScanner) (*T, error)
	validate  func(*T) error
	// afterLoad, when set, completes entities read from the table.
	afterLoad func(ctx context.Context, db store.DBTX, items []*T) error
}

// repository implements store.Repository[T] for any mapped entity.
type repository[T any] struct {
	db     store.DBTX
	m      *entityMapping[T]
	logger *slog.Logger
}

func newRepository[T any](db store.DBTX, m *entityMapping[T], log *slog.Logger) *repository[T] {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &repository[T]{
		db:     db,
		m:      m,
		logger: log.With(slog.String("component", m.entity+"_store")),
	}
}

func (r *repository[T]) withDB(db store.DBTX) *repository[T] {
	return &repository[T]{db: db, m: r.m, logger: r.logger}
}

// Add implements store.Repository.
func (r *repository[T]) Add(ctx context.Context, entity *T) error {
	log := logger.FromContextOrDefault(ctx, r.logger)

	audit := r.m.audit(entity)
	if audit.ID == uuid.Nil {
		audit.ID = uuid.New()
	}
	if err := r.m.validate(entity); err != nil {
		log.Warn("validation failed during insert",
			slog.String("entity", r.m.entity),
			slog.String("error", err.Error()))
		return err
	}

	query, args, err := dialect.Insert(r.m.table).Prepared(true).Rows(r.m.record(entity)).ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build insert query for %s: %w", r.m.entity, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return r.writeError(log, "insert", audit.ID, err)
	}

	log.Debug("entity inserted", slog.String("id", audit.ID.String()))
	return nil
}

// Get implements store.Repository.
func (r *repository[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	return r.getOne(ctx, goqu.C("id").Eq(id), false)
}

// GetForUpdate implements store.Repository.
func (r *repository[T]) GetForUpdate(ctx context.Context, id uuid.UUID) (*T, error) {
	return r.getOne(ctx, goqu.C("id").Eq(id), true)
}

// GetAll implements store.Repository.
func (r *repository[T]) GetAll(ctx context.Context) ([]*T, error) {
	return r.list(ctx, nil)
}

// GetByAttribute implements store.Repository.
func (r *repository[T]) GetByAttribute(ctx context.Context, name string, value any) (*T, error) {
	if !slices.Contains(r.m.columns, name) {
		return nil, fmt.Errorf("%w: %s has no attribute %q", store.ErrUnknownAttribute, r.m.entity, name)
	}
	return r.getOne(ctx, goqu.C(name).Eq(value), false)
}

// Update implements store.Repository.
func (r *repository[T]) Update(ctx context.Context, id uuid.UUID, mutate store.MutateFn[T]) (*T, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	entity, err := r.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := mutate(entity); err != nil {
		return nil, err
	}
	if err := r.m.validate(entity); err != nil {
		return nil, err
	}

	record := r.m.record(entity)
	for _, col := range r.m.immutable {
		delete(record, col)
	}

	query, args, err := dialect.Update(r.m.table).Prepared(true).
		Set(record).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build update query for %s: %w", r.m.entity, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, r.writeError(log, "update", id, err)
	}
	if err := CheckRowsAffected(result, r.m.notFound); err != nil {
		return nil, err
	}

	log.Debug("entity updated", slog.String("id", id.String()))
	return entity, nil
}

// Delete implements store.Repository.
func (r *repository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, r.logger)

	query, args, err := dialect.Delete(r.m.table).Prepared(true).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build delete query for %s: %w", r.m.entity, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.writeError(log, "delete", id, err)
	}
	if err := CheckRowsAffected(result, r.m.notFound); err != nil {
		return err
	}

	log.Debug("entity deleted", slog.String("id", id.String()))
	return nil
}

// count returns the number of rows matching cond; a nil cond counts all rows.
func (r *repository[T]) count(ctx context.Context, cond exp.Expression) (int, error) {
	ds := dialect.From(r.m.table).Prepared(true).Select(goqu.COUNT("*"))
	if cond != nil {
		ds = ds.Where(cond)
	}
	query, args, err := ds.ToSQL()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query for %s: %w", r.m.entity, err)
	}

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, store.NewStoreError(r.m.entity, "count", "failed to count rows", MapError(err))
	}
	return n, nil
}

func (r *repository[T]) selectDataset() *goqu.SelectDataset {
	cols := make([]any, len(r.m.columns))
	for i, c := range r.m.columns {
		cols[i] = goqu.C(c)
	}
	return dialect.From(r.m.table).Prepared(true).Select(cols...).
		Order(goqu.C("created_at").Asc(), goqu.C("id").Asc())
}

func (r *repository[T]) getOne(ctx context.Context, cond exp.Expression, lock bool) (*T, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	ds := r.selectDataset().Where(cond).Limit(1)
	if lock {
		ds = ds.ForUpdate(exp.Wait)
	}
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query for %s: %w", r.m.entity, err)
	}

	entity, err := r.m.scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("entity not found")
			return nil, r.m.notFound
		}
		log.Error("failed to read entity", slog.String("error", err.Error()))
		return nil, store.NewStoreError(r.m.entity, "select", "failed to read row", MapError(err))
	}

	if err := r.complete(ctx, []*T{entity}); err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *repository[T]) list(ctx context.Context, cond exp.Expression) ([]*T, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	ds := r.selectDataset()
	if cond != nil {
		ds = ds.Where(cond)
	}
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query for %s: %w", r.m.entity, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list entities", slog.String("error", err.Error()))
		return nil, store.NewStoreError(r.m.entity, "list", "failed to query rows", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	items := []*T{}
	for rows.Next() {
		entity, err := r.m.scan(rows)
		if err != nil {
			return nil, store.NewStoreError(r.m.entity, "list", "failed to scan row", err)
		}
		items = append(items, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError(r.m.entity, "list", "failed to iterate rows", MapError(err))
	}

	if err := r.complete(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository[T]) complete(ctx context.Context, items []*T) error {
	if r.m.afterLoad == nil || len(items) == 0 {
		return nil
	}
	return r.m.afterLoad(ctx, r.db, items)
}

// writeError maps and logs a failed INSERT, UPDATE or DELETE.
func (r *repository[T]) writeError(log *slog.Logger, op string, id uuid.UUID, err error) error {
	if IsUniqueViolation(err) {
		log.Warn("unique constraint violation",
			slog.String("operation", op),
			slog.String("id", id.String()))
		if r.m.duplicate != nil {
			return fmt.Errorf("%w: %w", r.m.duplicate, err)
		}
		return MapError(err)
	}
	if IsForeignKeyViolation(err) {
		log.Warn("foreign key violation",
			slog.String("operation", op),
			slog.String("id", id.String()))
		return MapError(err)
	}

	log.Error("write failed",
		slog.String("operation", op),
		slog.String("id", id.String()),
		slog.String("error", err.Error()))
	return store.NewStoreError(r.m.entity, op, "database error", MapError(err))
}

// utc normalizes timestamps read from the database.
func utc(a *domain.Audit) {
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
}
