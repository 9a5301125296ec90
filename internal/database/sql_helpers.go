package database

import (
	"database/sql"
	"time"

	"github.com/akyairhashvil/sprintflow/internal/util"
)

// nullableInt64 converts an optional id to sql.NullInt64.
func nullableInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

// nullableDate converts an optional civil date to sql.NullString.
func nullableDate(v *time.Time) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: util.FormatDate(*v), Valid: true}
}

// int64Ptr unpacks a NullInt64 back into an optional id.
func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

// datePtr unpacks a NullString date column back into an optional time.
func datePtr(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	d, err := util.ParseDate(v.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
