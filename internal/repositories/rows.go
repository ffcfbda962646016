package repositories

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"iter"
)

// scanAll streams the rows of a freshly built query, so the sequence can be ranged over again.
// Iteration stops after the first error.
func scanAll[T any](db *gorm.DB, query func(tx *gorm.DB) *gorm.DB) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T

		rows, err := query(db).Rows()
		if err != nil {
			yield(zero, errors.Wrap(err, "query rows"))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var item T
			if err = db.ScanRows(rows, &item); err != nil {
				yield(zero, errors.Wrap(err, "scan row"))
				return
			}
			if !yield(item, nil) {
				return
			}
		}

		if err = rows.Err(); err != nil {
			yield(zero, errors.Wrap(err, "iterate rows"))
		}
	}
}
