package usecase

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/xavierca1/corporate-ask/internal/entity"
)

func ExportFilename(table entity.Table, now time.Time) string {
	return fmt.Sprintf("%s_export_%s.csv", table, now.Format("2006-01-02"))
}

// WriteCSV writes the rows with a header taken from the first row's fields.
// NULL values become empty cells. Nothing is written for an empty slice.
func WriteCSV(w io.Writer, rows []entity.Record) error {
	if len(rows) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)

	first := rows[0].Fields()
	header := make([]string, len(first))
	for i, f := range first {
		header[i] = f.Name
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	line := make([]string, len(header))
	for _, r := range rows {
		for i, name := range header {
			v, _ := entity.FieldValue(r, name)
			line[i] = Stringify(v)
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
