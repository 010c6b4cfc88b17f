package stage

import (
	"encoding/csv"
	"errors"
	"io"
)

// Record is one input line split on the delimiter. Fields are only valid
// until the next call to Read.
type Record struct {
	Line   int
	Fields []string
}

// RecordReader yields records lazily from a delimited byte stream. There is
// no header row; blank lines are skipped and every record must have as many
// fields as the first one. A quote is only special at the start of a field,
// so values such as 5" or he said "hi" are read as plain text.
type RecordReader struct {
	r *csv.Reader
}

// NewRecordReader splits r on delim.
func NewRecordReader(r io.Reader, delim rune) *RecordReader {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = 0
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	return &RecordReader{r: cr}
}

// Read returns the next record, or io.EOF once the stream is exhausted.
// Malformed input yields a KindParse error, read failures a KindIO error.
func (rr *RecordReader) Read() (Record, error) {
	fields, err := rr.r.Read()
	if err == io.EOF {
		return Record{}, io.EOF
	}
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return Record{}, &Error{Kind: KindParse, Stage: aggregateStage, Err: err}
		}
		return Record{}, &Error{Kind: KindIO, Stage: aggregateStage, Message: "read failed", Err: err}
	}
	line, _ := rr.r.FieldPos(0)
	return Record{Line: line, Fields: fields}, nil
}
