// Package tuplestore is the Postgres-backed implementation of
// tuple.Store (spec §4.1, §9 "tuples live in a relational store").
package tuplestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/go-redsync/redsync/v4"

	"github.com/LerianStudio/midaz/v3/common"
	"github.com/LerianStudio/midaz/v3/common/mopentelemetry"
	"github.com/LerianStudio/midaz/v3/common/mpostgres"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/tuple"
)

const tableName = "rebac_tuple"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// execQuerier is the narrow surface Write's helpers need from a
// transaction — just enough to stay agnostic of dbresolver's exact
// Tx type while still running inside the one transaction db.Begin()
// opened.
type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository is the Postgres-backed tuple.Store. It owns both the
// rebac_tuple table and the per-tenant rebac_revision counter, keeping
// every Write transactional across the two.
type Repository struct {
	connection *mpostgres.PostgresConnection
	locker     *redsync.Redsync
}

// New returns a Repository using the given Postgres connection. locker
// may be nil, in which case Write relies solely on Postgres's own
// `SELECT ... FOR UPDATE` row lock on rebac_revision for serialization.
func New(pc *mpostgres.PostgresConnection, locker *redsync.Redsync) *Repository {
	return &Repository{connection: pc, locker: locker}
}

var _ tuple.Store = (*Repository)(nil)

// Write implements tuple.Store.Write: applies adds and removes inside
// one transaction and advances rebac_revision exactly once iff the
// effective tuple set changed.
func (r *Repository) Write(ctx context.Context, tenant string, adds, removes []tuple.Tuple) (int64, error) {
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.tuplestore.write")
	defer span.End()

	if r.locker != nil {
		mutex := r.locker.NewMutex(fmt.Sprintf("rebac:write-lock:%s", tenant))

		if err := mutex.LockContext(ctx); err != nil {
			mopentelemetry.HandleSpanError(&span, "Failed to acquire cross-process write lock", err)
			return 0, err
		}

		defer func() { _, _ = mutex.UnlockContext(ctx) }()
	}

	db, err := r.connection.GetDB(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to begin transaction", err)
		return 0, err
	}

	changed, err := r.applyWrites(ctx, tx, tenant, adds, removes)
	if err != nil {
		_ = tx.Rollback()
		mopentelemetry.HandleSpanError(&span, "Failed to apply tuple writes", err)

		return 0, err
	}

	revision, err := r.bumpRevision(ctx, tx, tenant, changed)
	if err != nil {
		_ = tx.Rollback()
		mopentelemetry.HandleSpanError(&span, "Failed to bump tenant revision", err)

		return 0, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to commit tuple write", commitErr)
		return 0, commitErr
	}

	return revision, nil
}

func (r *Repository) applyWrites(ctx context.Context, tx execQuerier, tenant string, adds, removes []tuple.Tuple) (bool, error) {
	changed := false

	for _, t := range removes {
		t.Tenant = tenant

		query, args, err := psql.Delete(tableName).Where(keyEquals(t)).ToSql()
		if err != nil {
			return changed, err
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return changed, err
		}

		if n, _ := result.RowsAffected(); n > 0 {
			changed = true
		}
	}

	for _, t := range adds {
		t.Tenant = tenant
		row := fromTuple(t)

		query, args, err := psql.Insert(tableName).
			Columns("tenant", "object_type", "object_id", "relation", "subject_type", "subject_id", "subject_relation", "caveat_name", "caveat_expression", "caveat_params", "created_at").
			Values(row.Tenant, row.ObjectType, row.ObjectID, row.Relation, row.SubjectType, row.SubjectID, row.SubjectRelation, row.CaveatName, row.CaveatExpr, row.CaveatParams, row.CreatedAt).
			Suffix("ON CONFLICT (tenant, object_type, object_id, relation, subject_type, subject_id, subject_relation) DO NOTHING").
			ToSql()
		if err != nil {
			return changed, err
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return changed, err
		}

		if n, _ := result.RowsAffected(); n > 0 {
			changed = true
		}
	}

	return changed, nil
}

func (r *Repository) bumpRevision(ctx context.Context, tx execQuerier, tenant string, changed bool) (int64, error) {
	var revision int64

	err := tx.QueryRowContext(ctx, `SELECT revision FROM rebac_revision WHERE tenant = $1 FOR UPDATE`, tenant).Scan(&revision)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		revision = 0

		if _, insErr := tx.ExecContext(ctx, `INSERT INTO rebac_revision (tenant, revision) VALUES ($1, 0)`, tenant); insErr != nil {
			return 0, insErr
		}
	case err != nil:
		return 0, err
	}

	if !changed {
		return revision, nil
	}

	revision++

	if _, err := tx.ExecContext(ctx, `UPDATE rebac_revision SET revision = $1 WHERE tenant = $2`, revision, tenant); err != nil {
		return 0, err
	}

	return revision, nil
}

// GetDirectSubjects implements tuple.Store.GetDirectSubjects.
func (r *Repository) GetDirectSubjects(ctx context.Context, tenant string, object tuple.Ref, relation string) ([]tuple.Tuple, error) {
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.tuplestore.get_direct_subjects")
	defer span.End()

	query, args, err := psql.Select(tupleColumns...).From(tableName).
		Where(squirrel.Eq{"tenant": tenant, "object_type": object.Type, "object_id": object.ID, "relation": relation}).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryTuples(ctx, &span, query, args)
}

// FindRelatedObjects implements tuple.Store.FindRelatedObjects.
func (r *Repository) FindRelatedObjects(ctx context.Context, tenant string, fromObject tuple.Ref, relation string) ([]tuple.Ref, error) {
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.tuplestore.find_related_objects")
	defer span.End()

	query, args, err := psql.Select("subject_type", "subject_id").From(tableName).
		Where(squirrel.Eq{"tenant": tenant, "object_type": fromObject.Type, "object_id": fromObject.ID, "relation": relation}).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryRefs(ctx, &span, query, args)
}

// FindObjectsForSubject implements tuple.Store.FindObjectsForSubject:
// every object of objectType on which subject directly holds relation,
// plus every object reachable through a userset grant whose tupleset
// resolves to a group subject contains. The recursive CTE below walks
// that second hop without the evaluator needing a second traversal.
func (r *Repository) FindObjectsForSubject(ctx context.Context, tenant string, subject tuple.Ref, relation, objectType string) ([]tuple.Ref, error) {
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.tuplestore.find_objects_for_subject")
	defer span.End()

	db, err := r.connection.GetDB(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)
		return nil, err
	}

	const query = `
		WITH RECURSIVE reachable_subjects(subject_type, subject_id) AS (
			SELECT $1::text, $2::text
			UNION
			SELECT t.subject_type, t.subject_id
			FROM rebac_tuple t
			JOIN reachable_subjects rs ON t.object_type = rs.subject_type AND t.object_id = rs.subject_id
			WHERE t.tenant = $3 AND t.subject_relation <> ''
		)
		SELECT DISTINCT t.object_id
		FROM rebac_tuple t
		JOIN reachable_subjects rs ON t.subject_type = rs.subject_type AND t.subject_id = rs.subject_id
		WHERE t.tenant = $3 AND t.object_type = $4 AND t.relation = $5 AND t.subject_relation = ''`

	rows, err := db.QueryContext(ctx, query, subject.Type, subject.ID, tenant, objectType, relation)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to query objects for subject", err)
		return nil, err
	}
	defer rows.Close()

	var out []tuple.Ref

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		out = append(out, tuple.Ref{Type: objectType, ID: id})
	}

	return out, rows.Err()
}

// FindSubjectsForObjectType implements tuple.Store.FindSubjectsForObjectType.
func (r *Repository) FindSubjectsForObjectType(ctx context.Context, tenant string, relation string, fromType string, toObject tuple.Ref) ([]tuple.Ref, error) {
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.tuplestore.find_subjects_for_object_type")
	defer span.End()

	query, args, err := psql.Select("object_type", "object_id").From(tableName).
		Where(squirrel.Eq{
			"tenant":       tenant,
			"object_type":  fromType,
			"relation":     relation,
			"subject_type": toObject.Type,
			"subject_id":   toObject.ID,
		}).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryObjectRefs(ctx, &span, query, args)
}

// CurrentRevision implements tuple.Store.CurrentRevision.
func (r *Repository) CurrentRevision(ctx context.Context, tenant string) (int64, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return 0, err
	}

	var revision int64

	err = db.QueryRowContext(ctx, `SELECT revision FROM rebac_revision WHERE tenant = $1`, tenant).Scan(&revision)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}

	return revision, err
}

// Read implements tuple.Store.Read, streaming every tuple matching
// filter to visit.
func (r *Repository) Read(ctx context.Context, tenant string, filter tuple.Filter, visit func(tuple.Tuple) error) error {
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.tuplestore.read")
	defer span.End()

	builder := psql.Select(tupleColumns...).From(tableName).Where(squirrel.Eq{"tenant": tenant})
	builder = applyFilter(builder, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	db, err := r.connection.GetDB(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)
		return err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to read tuples", err)
		return err
	}
	defer rows.Close()

	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return err
		}

		if err := visit(row.toTuple()); err != nil {
			return err
		}
	}

	return rows.Err()
}

func applyFilter(builder squirrel.SelectBuilder, filter tuple.Filter) squirrel.SelectBuilder {
	eq := squirrel.Eq{}

	if filter.ObjectType != "" {
		eq["object_type"] = filter.ObjectType
	}

	if filter.ObjectID != "" {
		eq["object_id"] = filter.ObjectID
	}

	if filter.Relation != "" {
		eq["relation"] = filter.Relation
	}

	if filter.SubjectType != "" {
		eq["subject_type"] = filter.SubjectType
	}

	if filter.SubjectID != "" {
		eq["subject_id"] = filter.SubjectID
	}

	if len(eq) == 0 {
		return builder
	}

	return builder.Where(eq)
}

func keyEquals(t tuple.Tuple) squirrel.Eq {
	return squirrel.Eq{
		"tenant":           t.Tenant,
		"object_type":      t.ObjectType,
		"object_id":        t.ObjectID,
		"relation":         t.Relation,
		"subject_type":     t.SubjectType,
		"subject_id":       t.SubjectID,
		"subject_relation": t.SubjectRelation,
	}
}
