package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"srcmetrics/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMetrics() model.AggregateMetrics {
	var metrics model.AggregateMetrics
	metrics.Fold(model.FileMetrics{Path: "src/a.rs", SizeBytes: 6, LineCount: 3, TerminatedLines: 2, Semicolons: 2})
	metrics.Fold(model.FileMetrics{Path: "src/b.rs", SizeBytes: 2048, LineCount: 7, TerminatedLines: 6, Todos: 1, Fixmes: 3})
	return metrics
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  string
	}{
		{bytes: 0, want: "0.00 B"},
		{bytes: 1023, want: "1023.00 B"},
		{bytes: 1024, want: "1.00 KiB"},
		{bytes: 1536, want: "1.50 KiB"},
		{bytes: 1 << 20, want: "1.00 MiB"},
		{bytes: 1 << 30, want: "1.00 GiB"},
		{bytes: 1 << 40, want: "1.00 TiB"},
		{bytes: 1 << 50, want: "1.00 PiB"},
		{bytes: 1<<60 - 1, want: "1024.00 PiB"},
		{bytes: 1 << 60, want: "1152921504606846976"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.bytes), "bytes=%d", tt.bytes)
	}
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{"": FormatText, "TEXT": FormatText, "table": FormatTable, " json ": FormatJSON} {
		got, err := ParseFormat(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestPrintText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintText(&buf, sampleMetrics(), false))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 11)

	assert.Equal(t, "semicolons         2", lines[0])
	assert.Equal(t, "newlines           8", lines[1])
	assert.Equal(t, "todos              1", lines[2])
	assert.Equal(t, "fixmes             3", lines[3])
	assert.Equal(t, "files              2 files    2.01 KiB", lines[4])
	assert.Equal(t, "", lines[5])
	assert.Equal(t, "lines             10", lines[6])
	assert.Equal(t, "smallest file      3 lines      6.00 B     src/a.rs", lines[7])
	assert.Equal(t, "largest file       7 lines    2.00 KiB     src/b.rs", lines[8])
	assert.Equal(t, "average            5 lines    1.00 KiB", lines[9])
	assert.Equal(t, "", lines[10])
}

// TestPrintTextEmpty 验证没有匹配文件时输出提示而不是崩溃。
func TestPrintTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintText(&buf, model.AggregateMetrics{}, false))

	out := buf.String()
	assert.Contains(t, out, "files              0 files      0.00 B")
	assert.Contains(t, out, "no files found")
	assert.NotContains(t, out, "smallest file")
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, sampleMetrics()))

	out := buf.String()
	assert.Contains(t, out, "METRIC")
	assert.Contains(t, out, "semicolons")
	assert.Contains(t, out, "src/b.rs")
	assert.Contains(t, out, "2.01 KiB")
}

func TestPrintTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, model.AggregateMetrics{}))

	assert.Contains(t, buf.String(), "no files found")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, sampleMetrics()))

	var summary Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &summary))

	assert.Equal(t, uint64(2), summary.Files)
	assert.Equal(t, uint64(10), summary.Lines)
	require.NotNil(t, summary.LargestByLines)
	assert.Equal(t, "src/b.rs", summary.LargestByLines.Path)
	require.NotNil(t, summary.AverageSizeBytes)
	assert.Equal(t, uint64(1027), *summary.AverageSizeBytes)
}

func TestPrintJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, model.AggregateMetrics{}))

	assert.Contains(t, buf.String(), `"smallest_by_lines": null`)
	assert.Contains(t, buf.String(), `"average_lines": null`)
}

func TestWriteJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")
	require.NoError(t, WriteJSONFile(path, sampleMetrics()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"files": 2`)

	assert.Error(t, WriteJSONFile(" ", sampleMetrics()))
}
