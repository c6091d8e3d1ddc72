package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"inventory-manager/core/apperr"
)

// Header is the column row written at the top of every export.
var Header = []string{"name", "price", "quantity", "date"}

// Columns is the number of fields in an inventory row.
const Columns = 4

// Row is one data row read from an inventory CSV.
type Row struct {
	// Line is the 1-based line number in the source file.
	Line int
	// Fields are the raw, untrimmed cells.
	Fields []string
}

// Reader reads inventory rows, skipping the header.
type Reader struct {
	r          *csv.Reader
	headerRead bool
}

// NewReader creates a reader over r.
// Rows with a wrong column count are not rejected here; callers decide.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &Reader{r: cr}
}

// Next returns the next data row. It returns io.EOF when the input is exhausted.
// A malformed line yields a parse error; reading may continue afterwards.
func (r *Reader) Next() (Row, error) {
	if !r.headerRead {
		r.headerRead = true
		if _, err := r.read(); err != nil {
			return Row{}, err
		}
	}
	return r.read()
}

func (r *Reader) read() (Row, error) {
	fields, err := r.r.Read()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return Row{Line: perr.StartLine}, apperr.NewParse("row", fmt.Sprintf("line %d is not valid CSV", perr.StartLine)).WrapParent(err)
		}
		return Row{}, err
	}
	line, _ := r.r.FieldPos(0)
	return Row{Line: line, Fields: fields}, nil
}

// CheckColumns rejects rows that do not carry exactly Columns fields.
func CheckColumns(row Row) error {
	if len(row.Fields) != Columns {
		return apperr.NewParse("row", fmt.Sprintf("line %d: expected %d columns, got %d", row.Line, Columns, len(row.Fields)))
	}
	return nil
}

// Writer writes inventory rows.
type Writer struct {
	w *csv.Writer
}

// NewWriter creates a writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: csv.NewWriter(w)}
}

// WriteHeader writes the column row.
func (w *Writer) WriteHeader() error {
	return w.w.Write(Header)
}

// Write writes one data row.
func (w *Writer) Write(fields ...string) error {
	return w.w.Write(fields)
}

// Flush flushes buffered rows and reports any write error.
func (w *Writer) Flush() error {
	w.w.Flush()
	return w.w.Error()
}
