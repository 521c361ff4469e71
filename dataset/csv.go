// Package dataset reads sample sets from delimited text.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/linefit/linear"
	"github.com/YuminosukeSato/linefit/pkg/errors"
)

// ReadCSV parses rows of "x,y". Blank lines and lines starting with '#' are
// skipped. A first row whose fields are not numbers is treated as a header.
// Extra columns are ignored.
func ReadCSV(r io.Reader) (linear.SampleSet, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var samples linear.SampleSet
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read row %d", row)
		}
		if len(record) < 2 {
			return nil, errors.NewDimensionError("dataset.ReadCSV", 2, len(record), 1)
		}

		x, errX := parseFloat(record[0])
		y, errY := parseFloat(record[1])
		if errX != nil || errY != nil {
			if row == 1 && len(samples) == 0 {
				continue
			}
			return nil, errors.NewValueError("dataset.ReadCSV",
				"row "+strconv.Itoa(row)+": non-numeric value in "+strings.Join(record[:2], ","))
		}
		samples = append(samples, linear.Sample{X: x, Y: y})
	}

	if len(samples) == 0 {
		return nil, errors.WithStack(errors.ErrEmptyData)
	}
	return samples, nil
}

// LoadCSV reads the file at path with ReadCSV.
func LoadCSV(path string) (linear.SampleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	samples, err := ReadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return samples, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
