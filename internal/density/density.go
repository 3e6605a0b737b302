// Package density annotates tab separated records with the share each record
// contributes to the total of one numeric field, and the running share up to
// and including that record.
//
// Input is held in memory: no ratio can be written before the total is known.
package density

import (
	"bufio"
	"fmt"
	"io"
	"log"
)

// Config is fixed at startup and never changes during a run.
type Config struct {
	Field      int  // 0 origin tab field holding the value
	Percentage bool // scale both ratios by 100
	Verbose    bool
}

// Record is one input line and the value parsed from it.
type Record struct {
	Text  string
	Value float64
}

// Batch holds all records in input order and their sum.
type Batch struct {
	Records []Record
	Total   float64
}

// Ingest reads every line from src. The first unreadable or unparsable line
// aborts ingestion and nothing read so far is returned.
func Ingest(src Source, field int) (*Batch, error) {
	var (
		b = &Batch{}
		n int
	)
	err := src.Lines(func(line string) error {
		n++
		v, err := ParseLine(line, field)
		if err != nil {
			return &LineError{Line: n, Field: field, Text: line, Err: err}
		}
		b.Records = append(b.Records, Record{Text: line, Value: v})
		b.Total = b.Total + v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Each visits the records in input order along with their density and
// cumulative density.
func (b *Batch) Each(percentage bool, fn func(r Record, density, cumulative float64) error) error {
	var cum float64
	for _, r := range b.Records {
		cum = cum + r.Value
		if err := fn(r, ratio(r.Value, b.Total, percentage), ratio(cum, b.Total, percentage)); err != nil {
			return err
		}
	}
	return nil
}

// Emit writes each record followed by its density and cumulative density,
// five decimals each, tab separated.
func (b *Batch) Emit(w io.Writer, percentage bool) error {
	bw := bufio.NewWriter(w)
	err := b.Each(percentage, func(r Record, d, c float64) error {
		_, err := fmt.Fprintf(bw, "%s\t%.5f\t%.5f\n", r.Text, d, c)
		return err
	})
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Run reads all of in, then writes the annotated records to out. Verbose
// diagnostics go to logger.
func Run(cfg Config, in io.Reader, out io.Writer, logger *log.Logger) error {
	src := NewSource(in)
	defer src.Close()
	b, err := Ingest(src, cfg.Field)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logger.Printf("total: %v, total-lines: %d", b.Total, len(b.Records))
	}
	return b.Emit(out, cfg.Percentage)
}
