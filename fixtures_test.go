package nehody

import (
	"archive/zip"
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

// testRow builds one 64-field CSV line with plausible defaults, applying
// overrides by column name.
func testRow(t *testing.T, overrides map[string]string) string {
	t.Helper()

	fields := make([]string, len(columnSchema))
	for i, spec := range columnSchema {
		if spec.Kind.IsInt() {
			fields[i] = "1"
		} else {
			fields[i] = "x"
		}
	}

	set := func(name, value string) {
		for i, spec := range columnSchema {
			if spec.Name == name {
				fields[i] = value
				return
			}
		}
		t.Fatalf("testRow: no column named %q", name)
	}

	set("ID", "002100160001")
	set("Datum", "2021-01-01")
	set("Cas", "1250")
	for name, value := range overrides {
		set(name, value)
	}
	return strings.Join(fields, ";")
}

// archiveBytes builds a zip archive whose entries are Windows-1250 encoded
// CSV payloads, one line per string.
func archiveBytes(t *testing.T, entries map[string][]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	enc := charmap.Windows1250.NewEncoder()
	for name, lines := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating entry %s: %v", name, err)
		}
		payload := strings.Join(lines, "\n")
		if payload != "" {
			payload += "\n"
		}
		encoded, err := enc.String(payload)
		if err != nil {
			t.Fatalf("encoding entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(encoded)); err != nil {
			t.Fatalf("writing entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}
	return buf.Bytes()
}

// writeArchive writes a zip fixture to disk.
func writeArchive(t *testing.T, path string, entries map[string][]string) {
	t.Helper()
	if err := os.WriteFile(path, archiveBytes(t, entries), 0644); err != nil {
		t.Fatalf("writing archive: %v", err)
	}
}

// discardLogger silences component logging in tests.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
