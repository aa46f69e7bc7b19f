package nehody

import (
	"archive/zip"
	"bufio"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// csvDelimiter is the fixed field separator of the upstream CSV entries.
const csvDelimiter = ";"

// parseArchive extracts and type-casts one region's row block from a zip
// archive. The archive entry is decoded from Windows-1250 regardless of any
// archive metadata. When the region's CSV entry is absent the archive
// contributes nothing: a zero-row table is returned with a warning logged,
// never an error. Infrastructure failures (unreadable archive, truncated
// entry) propagate.
func parseArchive(path, region string, logger *slog.Logger) (*Table, error) {
	csvName, ok := regionFiles[region]
	if !ok {
		return nil, fmt.Errorf("parsing archive %s: unknown region %q", path, region)
	}

	rz, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", path, err)
	}
	defer rz.Close()

	var entry *zip.File
	for _, f := range rz.File {
		if f.Name == csvName {
			entry = f
			break
		}
	}
	if entry == nil {
		logger.Warn("region CSV missing from archive", "region", region, "archive", path)
		return emptyTable(), nil
	}

	t, err := parseEntry(entry, region, logger)
	if err != nil {
		return nil, fmt.Errorf("parsing %s from %s: %w", csvName, path, err)
	}
	return t, nil
}

// parseEntry reads a single CSV entry into a typed table with the region
// marker appended as the 65th column.
func parseEntry(entry *zip.File, region string, logger *slog.Logger) (*Table, error) {
	fi, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("opening entry: %w", err)
	}
	defer fi.Close()

	t := emptyTable()
	rows := 0

	scanner := bufio.NewScanner(charmap.Windows1250.NewDecoder().Reader(fi))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, csvDelimiter)
		if len(fields) < len(columnSchema) {
			return nil, fmt.Errorf("row %d: %d fields, want at least %d", rows, len(fields), len(columnSchema))
		}
		for i, spec := range columnSchema {
			appendValue(&t.Cols[i], spec, normalize(fields[i], spec), logger)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading entry: %w", err)
	}

	// Region marker column.
	marker := &t.Cols[len(t.Cols)-1]
	marker.Str = make([]string, rows)
	for i := range marker.Str {
		marker.Str[i] = region
	}
	return t, nil
}

// normalize applies the per-field value rules used before type casting:
// embedded quotes are stripped, comma decimal separators become periods,
// the "XX" sentinel in integer columns becomes zero, and empty values
// collapse to the column's zero value.
func normalize(raw string, spec ColumnSpec) string {
	v := strings.ReplaceAll(raw, `"`, "")
	v = strings.ReplaceAll(v, ",", ".")

	if spec.Kind.IsInt() && v == "XX" {
		return "0"
	}
	if v == "" {
		if spec.Kind.IsInt() {
			return "0"
		}
		return ""
	}
	return v
}

// appendValue casts a normalized value to the column's declared type and
// appends it. Integer values that still fail to parse after normalization
// are coerced to zero; the upstream data is assumed to conform, so this is
// logged at debug level rather than surfaced.
func appendValue(col *Column, spec ColumnSpec, v string, logger *slog.Logger) {
	switch spec.Kind {
	case KindInt8:
		n, err := strconv.ParseInt(v, 10, 8)
		if err != nil {
			logger.Debug("uncastable integer value", "column", spec.Name, "value", v)
			n = 0
		}
		col.I8 = append(col.I8, int8(n))
	case KindInt16:
		n, err := strconv.ParseInt(v, 10, 16)
		if err != nil {
			logger.Debug("uncastable integer value", "column", spec.Name, "value", v)
			n = 0
		}
		col.I16 = append(col.I16, int16(n))
	default:
		col.Str = append(col.Str, truncate(v, spec.Width))
	}
}

// truncate caps a string at width runes. Width zero means unbounded.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
