package tuplestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/LerianStudio/midaz/v3/common/mopentelemetry"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/tuple"
)

// tupleColumns is the column order scanRow expects.
var tupleColumns = []string{
	"tenant", "object_type", "object_id", "relation",
	"subject_type", "subject_id", "subject_relation",
	"caveat_name", "caveat_expression", "caveat_params", "created_at",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRow(s rowScanner) (tupleRow, error) {
	var row tupleRow

	err := s.Scan(
		&row.Tenant, &row.ObjectType, &row.ObjectID, &row.Relation,
		&row.SubjectType, &row.SubjectID, &row.SubjectRelation,
		&row.CaveatName, &row.CaveatExpr, &row.CaveatParams, &row.CreatedAt,
	)

	return row, err
}

func (r *Repository) queryTuples(ctx context.Context, span *trace.Span, query string, args []any) ([]tuple.Tuple, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(span, "Failed to get database connection", err)
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		mopentelemetry.HandleSpanError(span, "Failed to query tuples", err)
		return nil, err
	}
	defer rows.Close()

	var out []tuple.Tuple

	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, row.toTuple())
	}

	return out, rows.Err()
}

func (r *Repository) queryRefs(ctx context.Context, span *trace.Span, query string, args []any) ([]tuple.Ref, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(span, "Failed to get database connection", err)
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		mopentelemetry.HandleSpanError(span, "Failed to query refs", err)
		return nil, err
	}
	defer rows.Close()

	var out []tuple.Ref

	for rows.Next() {
		var ref tuple.Ref
		if err := rows.Scan(&ref.Type, &ref.ID); err != nil {
			return nil, err
		}

		out = append(out, ref)
	}

	return out, rows.Err()
}

// queryObjectRefs is queryRefs's twin for queries selecting
// (object_type, object_id) instead of (subject_type, subject_id).
func (r *Repository) queryObjectRefs(ctx context.Context, span *trace.Span, query string, args []any) ([]tuple.Ref, error) {
	return r.queryRefs(ctx, span, query, args)
}

// tupleRow is the row shape of the rebac_tuple table — one row per
// relation tuple, matched against tuple.Key for upsert/delete.
type tupleRow struct {
	Tenant          string
	ObjectType      string
	ObjectID        string
	Relation        string
	SubjectType     string
	SubjectID       string
	SubjectRelation string
	CaveatName      sql.NullString
	CaveatExpr      sql.NullString
	CaveatParams    []byte
	CreatedAt       time.Time
}

func fromTuple(t tuple.Tuple) tupleRow {
	row := tupleRow{
		Tenant:          t.Tenant,
		ObjectType:      t.ObjectType,
		ObjectID:        t.ObjectID,
		Relation:        t.Relation,
		SubjectType:     t.SubjectType,
		SubjectID:       t.SubjectID,
		SubjectRelation: t.SubjectRelation,
		CreatedAt:       t.CreatedAt,
	}

	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}

	if t.Caveat != nil {
		row.CaveatName = sql.NullString{String: t.Caveat.Name, Valid: true}
		row.CaveatExpr = sql.NullString{String: t.Caveat.Expression, Valid: true}

		if len(t.Caveat.Params) > 0 {
			// json.Marshal on a map literal never errors.
			row.CaveatParams, _ = json.Marshal(t.Caveat.Params)
		}
	}

	return row
}

func (r tupleRow) toTuple() tuple.Tuple {
	t := tuple.Tuple{
		Tenant:          r.Tenant,
		ObjectType:      r.ObjectType,
		ObjectID:        r.ObjectID,
		Relation:        r.Relation,
		SubjectType:     r.SubjectType,
		SubjectID:       r.SubjectID,
		SubjectRelation: r.SubjectRelation,
		CreatedAt:       r.CreatedAt,
	}

	if r.CaveatName.Valid {
		c := &tuple.Caveat{Name: r.CaveatName.String, Expression: r.CaveatExpr.String}

		if len(r.CaveatParams) > 0 {
			_ = json.Unmarshal(r.CaveatParams, &c.Params)
		}

		t.Caveat = c
	}

	return t
}
