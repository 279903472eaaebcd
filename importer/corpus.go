package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// CorpusOptions controls how a raw invoice export is read.
type CorpusOptions struct {
	Column    int    // zero-based text column, -1 selects by median cell length
	Delimiter rune   // CSV delimiter
	Encoding  string // CSV encoding: utf-8, latin-1, windows-1252 or auto
	HasHeader bool   // skip the first row
	MinLength int    // drop cleaned lines shorter than this many runes
}

// DefaultCorpusOptions returns options matching the usual accounting
// exports: semicolon-separated, headered, UTF-8, auto-detected column.
func DefaultCorpusOptions() CorpusOptions {
	return CorpusOptions{
		Column:    -1,
		Delimiter: ';',
		Encoding:  "utf-8",
		HasHeader: true,
		MinLength: 3,
	}
}

// ImportStats summarizes one corpus import run.
type ImportStats struct {
	Column     int // text column actually used
	RowsRead   int // data rows seen
	RowsKept   int // cleaned lines kept
	Duplicates int // rows dropped as exact duplicates
	Dropped    int // rows dropped as empty or too short
}

// ImportCorpusFile reads an invoice export, cleans the text cell of every
// row and returns the deduplicated corpus lines in source order. Files
// ending in .xlsx or .xlsm are read as spreadsheets, everything else as
// CSV.
func ImportCorpusFile(path string, opts CorpusOptions) ([]string, ImportStats, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readSpreadsheet(path)
	default:
		rows, err = readDelimited(path, opts)
	}
	if err != nil {
		return nil, ImportStats{}, err
	}
	return extractCorpus(rows, opts)
}

func readSpreadsheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readDelimited(path string, opts CorpusOptions) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	data, err = decodeCharset(data, opts.Encoding)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = opts.Delimiter
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// malformed rows in hand-edited exports are expected
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// decodeCharset converts legacy exports to UTF-8. "auto" keeps valid
// UTF-8 untouched and otherwise picks the Latin codepage whose result
// carries the most Danish letters.
func decodeCharset(data []byte, name string) ([]byte, error) {
	var enc encoding.Encoding
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		if !utf8.Valid(data) {
			return nil, errors.New("file is not valid UTF-8, pass -encoding")
		}
		return data, nil
	case "auto":
		return detectCharset(data)
	case "latin-1", "latin1", "iso-8859-1":
		enc = charmap.ISO8859_1
	case "windows-1252", "cp1252":
		enc = charmap.Windows1252
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if !utf8.Valid(decoded) {
		return nil, fmt.Errorf("decode %s: result is not valid UTF-8", name)
	}
	return decoded, nil
}

func detectCharset(data []byte) ([]byte, error) {
	if utf8.Valid(data) {
		return data, nil
	}

	candidates := []struct {
		name string
		enc  encoding.Encoding
	}{
		{"windows-1252", charmap.Windows1252},
		{"iso-8859-1", charmap.ISO8859_1},
	}

	var best []byte
	bestScore := -1
	for _, candidate := range candidates {
		decoded, _, err := transform.Bytes(candidate.enc.NewDecoder(), data)
		if err != nil || !utf8.Valid(decoded) {
			continue
		}
		if score := danishLetterCount(string(decoded)); score > bestScore {
			bestScore, best = score, decoded
		}
	}
	if best == nil {
		return nil, errors.New("could not detect a usable encoding")
	}
	return best, nil
}

func danishLetterCount(s string) int {
	count := 0
	for _, r := range s {
		switch r {
		case 'æ', 'ø', 'å', 'Æ', 'Ø', 'Å', 'é', 'É':
			count++
		}
	}
	return count
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	stopRun       = regexp.MustCompile(`\s*[.\x{2026}]+\s*`)
	repeatedStops = regexp.MustCompile(`(\.\s*){2,}`)
)

// CleanLine turns one raw invoice cell into its canonical corpus form:
// uppercase, single spaces, commas and dot runs collapsed to ". ".
func CleanLine(raw string) string {
	s := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(raw)
	s = strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, ",", ".")
	s = stopRun.ReplaceAllString(s, ". ")
	s = strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
	s = repeatedStops.ReplaceAllString(s, ". ")
	return strings.TrimSpace(s)
}

func extractCorpus(rows [][]string, opts CorpusOptions) ([]string, ImportStats, error) {
	var stats ImportStats
	if opts.HasHeader && len(rows) > 0 {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, stats, errors.New("no data rows")
	}

	column := opts.Column
	if column < 0 {
		column = detectTextColumn(rows)
	}
	stats.Column = column

	seen := make(map[string]bool)
	var lines []string
	for _, row := range rows {
		stats.RowsRead++
		if isEmptyRow(row) || column >= len(row) {
			stats.Dropped++
			continue
		}
		line := CleanLine(row[column])
		if utf8.RuneCountInString(line) < opts.MinLength {
			stats.Dropped++
			continue
		}
		if seen[line] {
			stats.Duplicates++
			continue
		}
		seen[line] = true
		lines = append(lines, line)
	}
	stats.RowsKept = len(lines)
	return lines, stats, nil
}

// detectTextColumn picks the column whose cells have the highest median
// length. In invoice exports that is the free-text description column.
func detectTextColumn(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	best, bestMedian := 0, -1.0
	for col := 0; col < width; col++ {
		lengths := make([]int, 0, len(rows))
		for _, row := range rows {
			if col < len(row) {
				lengths = append(lengths, utf8.RuneCountInString(row[col]))
			}
		}
		if m := median(lengths); m > bestMedian {
			bestMedian, best = m, col
		}
	}
	return best
}

func median(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Ints(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return float64(values[mid])
	}
	return float64(values[mid-1]+values[mid]) / 2
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// WriteCorpus writes cleaned corpus lines, one per historical row.
func WriteCorpus(path string, lines []string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

// ReadCorpus reads a corpus file produced by WriteCorpus. Blank lines are
// skipped.
func ReadCorpus(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
