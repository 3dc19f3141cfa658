package normix

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
)

type Importer struct {
}

func NewImporter() *Importer {
	return &Importer{}
}

// Import reads the given zero-based column of a CSV file as a sample. Rows that are too
// short or whose cell is not a number, such as a header, are skipped.
func (i *Importer) Import(file string, column int) ([]float64, error) {
	if column < 0 {
		return []float64{}, ErrInvalidRange
	}

	f, err := os.Open(file)
	if err != nil {
		return []float64{}, err
	}

	defer f.Close()

	var (
		d = make([]float64, 0, 1024)
		r = csv.NewReader(bufio.NewReader(f))
	)

	r.FieldsPerRecord = -1

	for {
		record, err := r.Read()

		if err == io.EOF {
			break
		} else if err != nil {
			return []float64{}, err
		}

		if column >= len(record) {
			continue
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(record[column]), 64)
		if err != nil {
			continue
		}

		d = append(d, v)
	}

	return d, nil
}
