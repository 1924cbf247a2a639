// Package platecsv reads thermocycler CSV exports into measurement
// records for relative quantification.
package platecsv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/quantbio/qpcrmisc/ddct"
)

// WellRecord is one row of an instrument export.
type WellRecord struct {
	Well   string       `csv:"Well"`
	Sample string       `csv:"Sample Name"`
	Primer string       `csv:"Primer"`
	Ct     ddct.CtValue `csv:"Ct"`
}

// Reader converts instrument exports into ddct.Measurements according
// to one Layout.
type Reader struct {
	Layout Layout
}

// New looks up a named layout.
func New(layout string) (*Reader, error) {
	l, exists := Layouts[layout]
	if !exists {
		return nil, fmt.Errorf("layout %s is not found. Valid layout names include: %s", layout, LayoutNames())
	}

	return NewWithLayout(l), nil
}

func NewWithLayout(layout Layout) *Reader {
	return &Reader{Layout: layout}
}

// ReadFile reads and converts one export file.
func (pr *Reader) ReadFile(path string) ([]ddct.Measurement, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return pr.ReadBytes(fileBytes)
}

// Read consumes the full reader and converts its rows.
func (pr *Reader) Read(r io.Reader) ([]ddct.Measurement, error) {
	fileBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return pr.ReadBytes(fileBytes)
}

// ReadBytes converts one export held in memory. Structural problems
// (unknown primer label, bad well position, negative Ct) abort the
// read: a malformed export should be fixed, not partially ingested.
func (pr *Reader) ReadBytes(fileBytes []byte) ([]ddct.Measurement, error) {
	delimiter := pr.Layout.Delimiter
	if delimiter == 0 {
		delimiter = DetermineDelimiter(bytes.NewReader(fileBytes))
	}

	// Tell gocsv how this layout is delimited
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delimiter
		r.Comment = pr.Layout.Comment
		r.LazyQuotes = true
		return r
	})

	records := []*WellRecord{}
	if err := gocsv.UnmarshalBytes(fileBytes, &records); err != nil {
		return nil, pfx.Err(err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no rows in the input")
	}

	out := make([]ddct.Measurement, 0, len(records))
	for i, record := range records {
		if record.Well != "" {
			if err := ValidateWell(record.Well); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}

		if record.Sample == "" {
			return nil, fmt.Errorf("row %d: missing sample name", i+1)
		}

		group, exists := pr.Layout.PrimerGroups[strings.ToLower(strings.TrimSpace(record.Primer))]
		if !exists {
			return nil, fmt.Errorf("row %d: primer label %q is not mapped to a primer group in this layout", i+1, record.Primer)
		}

		out = append(out, ddct.Measurement{
			Well:       record.Well,
			SampleName: record.Sample,
			Group:      group,
			Ct:         record.Ct,
		})
	}

	return out, nil
}
