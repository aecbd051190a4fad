package creditscore

import (
	"creditscore/pkg/serrors"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
)

// CSVTable is a CSV file read with its first record as header.
type CSVTable struct {
	Header []string
	// Rows maps header names to values. Columns missing from a short record
	// are nil.
	Rows []map[string]*string
}

// LoadCSV reads the credit score table at path.
func LoadCSV(path string) (*CSVTable, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, serrors.Wrap(serrors.ErrNotFound, err, "CSV file not found")
	}
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "Error reading CSV file")
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses a CSV table from r.
func ReadCSV(r io.Reader) (*CSVTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return &CSVTable{Rows: []map[string]*string{}}, nil
	}
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "Error reading CSV file")
	}

	table := &CSVTable{Header: header, Rows: []map[string]*string{}}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrInternal, err, "Error reading CSV file")
		}

		row := make(map[string]*string, len(header))
		for i, name := range header {
			row[name] = nil
			if i < len(record) {
				row[name] = &record[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
