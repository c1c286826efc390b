// Package importer batch-loads catalog, user and review data from CSV
// files. Each file maps to one table, loads inside its own
// transaction, and aborts whole on the first bad row. Files are
// independent: a failure does not roll back files already committed.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"review-hub/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// fileSpec binds a registered CSV file name to its target table.
type fileSpec struct {
	Table string
}

// FileOrder is the registered file set in dependency order; "all"
// imports walk it front to back so parents land before children.
var FileOrder = []string{
	"users.csv",
	"category.csv",
	"genre.csv",
	"titles.csv",
	"genre_title.csv",
	"review.csv",
	"comments.csv",
}

var fileSpecs = map[string]fileSpec{
	"users.csv":       {Table: "users"},
	"category.csv":    {Table: "categories"},
	"genre.csv":       {Table: "genres"},
	"titles.csv":      {Table: "titles"},
	"genre_title.csv": {Table: "title_genres"},
	"review.csv":      {Table: "reviews"},
	"comments.csv":    {Table: "comments"},
}

// refTables maps the stripped foreign-key column prefix to the table
// the id must exist in.
var refTables = map[string]string{
	"author":   "users",
	"title":    "titles",
	"review":   "reviews",
	"category": "categories",
	"genre":    "genres",
}

// row is one parsed CSV record keyed by header column.
type row map[string]string

type Importer struct {
	db  database.PgxIface
	dir string
	log *zap.Logger
}

func New(db database.PgxIface, dir string, log *zap.Logger) *Importer {
	return &Importer{
		db:  db,
		dir: dir,
		log: log.With(zap.String("component", "importer")),
	}
}

// Run imports the named files, or every registered file when names is
// empty. Unknown names fail before any database work.
func (im *Importer) Run(ctx context.Context, names []string) error {
	if len(names) == 0 {
		names = FileOrder
	}

	for _, name := range names {
		if _, ok := fileSpecs[name]; !ok {
			return fmt.Errorf("unknown csv file %q", name)
		}
	}

	for _, name := range names {
		if err := im.importFile(ctx, name); err != nil {
			return fmt.Errorf("import %s: %w", name, err)
		}
		im.log.Info("File imported", zap.String("file", name))
	}

	return nil
}

// importFile loads one file inside a single transaction: either every
// row lands or none do.
func (im *Importer) importFile(ctx context.Context, name string) error {
	spec := fileSpecs[name]

	f, err := os.Open(filepath.Join(im.dir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	header, rows, err := parseRows(f)
	if err != nil {
		return err
	}

	tx, err := im.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	insert := buildInsert(spec.Table, header)

	for i, record := range rows {
		args, err := im.rowArgs(ctx, tx, header, record)
		if err != nil {
			// Hard failure: the whole file is abandoned.
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if _, err := tx.Exec(ctx, insert, args...); err != nil {
			return fmt.Errorf("row %d: insert: %w", i+2, err)
		}
	}

	// Imported rows carry explicit ids; move the sequence past them so
	// API-created rows do not collide.
	bump := fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %s))`,
		spec.Table, spec.Table,
	)
	if _, err := tx.Exec(ctx, bump); err != nil {
		return fmt.Errorf("bump id sequence: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	im.log.Info("Rows inserted",
		zap.String("table", spec.Table),
		zap.Int("rows", len(rows)),
	)
	return nil
}

// rowArgs converts one record into insert arguments, verifying every
// foreign-key column against its referenced table inside the
// transaction.
func (im *Importer) rowArgs(ctx context.Context, tx pgx.Tx, header []string, record row) ([]any, error) {
	args := make([]any, 0, len(header))
	for _, col := range header {
		value := record[col]

		ref, isFK := fkColumn(col)
		if !isFK {
			args = append(args, value)
			continue
		}

		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("column %s: %q is not a numeric id", col, value)
		}

		var exists bool
		query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, ref)
		if err := tx.QueryRow(ctx, query, id).Scan(&exists); err != nil {
			return nil, fmt.Errorf("column %s: check %s id %d: %w", col, ref, id, err)
		}
		if !exists {
			return nil, fmt.Errorf("column %s: no %s row with id %d", col, ref, id)
		}

		args = append(args, id)
	}
	return args, nil
}

// fkColumn reports whether col is a foreign-key reference and which
// table it points at. The "id" primary key is not a reference.
func fkColumn(col string) (refTable string, ok bool) {
	base, found := strings.CutSuffix(col, "_id")
	if !found || base == "" {
		return "", false
	}
	refTable, ok = refTables[base]
	return refTable, ok
}

// parseRows reads a header-driven CSV stream into keyed records.
func parseRows(r io.Reader) ([]string, []row, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("empty csv file")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	var rows []row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read record: %w", err)
		}

		rec := make(row, len(header))
		for i, col := range header {
			rec[col] = record[i]
		}
		rows = append(rows, rec)
	}

	return header, rows, nil
}

// buildInsert renders the parameterized INSERT for a header.
func buildInsert(table string, header []string) string {
	placeholders := make([]string, len(header))
	for i := range header {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(header, ", "),
		strings.Join(placeholders, ", "),
	)
}
