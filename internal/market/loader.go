package market

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"strings"
)

// The report carries 4 header rows before the data starts.
const headerRows = 4

// Columns: 0 name, 1 unit descriptor, 2 current price, 3 previous price
const (
	colName = iota
	colUnit
	colCurrent
	colPrevious
)

// DefaultTable is what the service runs on when the weekly report
// is missing or unreadable.
func DefaultTable() Table {
	return Table{
		"rice": {Price: 45, Trend: 0},
	}
}

// Load reads the weekly commodity report into an immutable price table.
// Any failure degrades to DefaultTable with a warning; startup never aborts
// on market data.
func Load(path string) Table {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("⚠️  market report missing (%s), using default prices", path)
		return DefaultTable()
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // report rows are ragged

	records, err := r.ReadAll()
	if err != nil {
		log.Printf("⚠️  market report unreadable: %v, using default prices", err)
		return DefaultTable()
	}

	if len(records) <= headerRows {
		log.Println("⚠️  market report has no data rows, using default prices")
		return DefaultTable()
	}

	table := Table{}
	for _, row := range records[headerRows:] {
		name, c, ok := parseRow(row)
		if !ok {
			continue // corrupted row, skip whole record
		}
		// last write wins for duplicate names
		table[name] = c
	}

	if len(table) == 0 {
		log.Println("⚠️  market report yielded no usable rows, using default prices")
		return DefaultTable()
	}

	log.Printf("✅ market table loaded: %d commodities", len(table))
	return table
}

func parseRow(row []string) (string, Commodity, bool) {
	if len(row) <= colCurrent {
		return "", Commodity{}, false
	}

	name := strings.ToLower(strings.TrimSpace(row[colName]))
	if name == "" {
		return "", Commodity{}, false
	}

	curr, err := strconv.ParseFloat(strings.TrimSpace(row[colCurrent]), 64)
	if err != nil {
		return "", Commodity{}, false
	}

	// previous price is optional; when absent the trend is flat
	prev := curr
	if len(row) > colPrevious {
		if p, err := strconv.ParseFloat(strings.TrimSpace(row[colPrevious]), 64); err == nil {
			prev = p
		}
	}

	// descriptors like "100 Kg" quote the price per hundred units
	price := curr
	if strings.Contains(row[colUnit], "100") {
		price = curr / 100
	}

	trend := 0.0
	if prev > 0 {
		trend = (curr - prev) / prev * 100
	}

	return name, Commodity{Price: price, Trend: trend}, true
}
