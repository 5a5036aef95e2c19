// Package tabular reads node input tables from CSV and writes node results
// back as CSV.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-sod/sax/internal/hotsax"
	"github.com/go-sod/sax/internal/node"
	"github.com/go-sod/sax/internal/saxerr"
	"github.com/go-sod/sax/internal/tsops"
	"github.com/go-sod/sax/internal/vsm"
)

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'
	return reader
}

func readAll(r io.Reader) ([][]string, error) {
	records, err := newReader(r).ReadAll()
	if err != nil {
		return nil, saxerr.InvalidInput("unable to read csv: %v", err)
	}
	return records, nil
}

func isHeader(record []string, names ...string) bool {
	if len(record) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(record[0]))
	for _, n := range names {
		if first == n {
			return true
		}
	}
	return false
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ReadSeries reads (timestamp, value) rows. A single column is taken as
// values and rows are numbered instead. A leading row whose value does not
// parse is treated as a header.
func ReadSeries(r io.Reader) (node.Series, error) {
	records, err := readAll(r)
	if err != nil {
		return nil, err
	}
	var res node.Series
	for i, rec := range records {
		if len(rec) == 0 {
			continue
		}
		ts, raw := strconv.Itoa(len(res)), rec[0]
		if len(rec) > 1 {
			ts, raw = rec[0], rec[1]
		}
		v, err := parseFloat(raw)
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, saxerr.InvalidInput("row %d: unable to parse value %q", i, raw)
		}
		res = append(res, node.Point{Timestamp: ts, Value: v})
	}
	if len(res) == 0 {
		return nil, saxerr.InvalidInput("empty series")
	}
	return res, nil
}

// ReadWords reads one SAX word per row, in row order. The word is the last
// column, so the output of WriteSAX reads back directly.
func ReadWords(r io.Reader) ([]string, error) {
	records, err := readAll(r)
	if err != nil {
		return nil, err
	}
	var res []string
	for i, rec := range records {
		if i == 0 && isHeader(rec, "word", "sax", "sax string", "timestamp") {
			continue
		}
		if len(rec) == 0 {
			continue
		}
		res = append(res, strings.TrimSpace(rec[len(rec)-1]))
	}
	return res, nil
}

// ParseSeriesString splits a whitespace separated list of numbers.
func ParseSeriesString(s string) ([]float64, error) {
	fields := strings.Fields(s)
	res := make([]float64, len(fields))
	for i, f := range fields {
		v, err := parseFloat(f)
		if err != nil {
			return nil, saxerr.InvalidInput("unable to parse value %q", f)
		}
		res[i] = v
	}
	return res, nil
}

func FormatSeriesString(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, " ")
}

// ReadLabelled reads (class, timeseries) rows.
func ReadLabelled(r io.Reader) ([]vsm.Sample, error) {
	records, err := readAll(r)
	if err != nil {
		return nil, err
	}
	var res []vsm.Sample
	for i, rec := range records {
		if i == 0 && isHeader(rec, "class") {
			continue
		}
		if len(rec) < 2 {
			return nil, saxerr.InvalidInput("row %d: expected class and timeseries columns", i)
		}
		series, err := ParseSeriesString(rec[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		res = append(res, vsm.Sample{Label: strings.TrimSpace(rec[0]), Series: series})
	}
	return res, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeAll(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("unable to write rows: %w", err)
	}
	return nil
}

func WriteSAX(w io.Writer, rows []node.SAXRow) error {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{r.Timestamp, r.Word}
	}
	return writeAll(w, []string{"timestamp", "word"}, out)
}

func WritePAA(w io.Writer, records []tsops.PAARecord) error {
	out := make([][]string, len(records))
	for i, r := range records {
		out[i] = []string{formatFloat(r.Start), formatFloat(r.End), formatFloat(r.Level)}
	}
	return writeAll(w, []string{"start", "end", "level"}, out)
}

func WriteDiscords(w io.Writer, discords []hotsax.DiscordRecord) error {
	out := make([][]string, len(discords))
	for i, d := range discords {
		out[i] = []string{
			d.Word,
			strconv.Itoa(d.Position),
			strconv.Itoa(d.Length),
			formatFloat(d.NNDistance),
			strconv.Itoa(d.RuleID),
		}
	}
	return writeAll(w, []string{"word", "position", "length", "nn_distance", "rule_id"}, out)
}

func WritePredictions(w io.Writer, predictions []vsm.Prediction) error {
	out := make([][]string, len(predictions))
	for i, p := range predictions {
		out[i] = []string{p.Actual, p.Predicted, FormatSeriesString(p.Series)}
	}
	return writeAll(w, []string{"actual", "predicted", "timeseries"}, out)
}

// WriteConfusion writes one row per predicted label and one column per
// actual label.
func WriteConfusion(w io.Writer, m *vsm.ConfusionMatrix) error {
	if m == nil {
		return errors.New("nil confusion matrix")
	}
	header := append([]string{"predicted"}, m.Labels...)
	out := make([][]string, len(m.Labels))
	for i, l := range m.Labels {
		row := []string{l}
		for _, c := range m.Counts[i] {
			row = append(row, strconv.Itoa(c))
		}
		out[i] = row
	}
	return writeAll(w, header, out)
}
