// Package report 提供 srcmetrics 的输出能力。
// 当前实现支持原始文本格式、表格格式和 JSON 格式（含文件导出）。
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"srcmetrics/internal/model"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Format 表示输出格式。
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat 解析输出格式，大小写不敏感。
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatText, "":
		return FormatText, nil
	case FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format %q, allowed values: text, table, json", value)
	}
}

const (
	labelWidth  = 20
	sizeWidth   = 12
	pathPadding = "     "
	noFilesNote = "no files found"
)

var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}

// FormatBytes 使用二进制前缀格式化字节数，保留两位小数。
// 超过 PiB 范围（>= 1024^6）时直接输出整数字节数。
func FormatBytes(bytes uint64) string {
	threshold := uint64(1)
	for i, unit := range byteUnits {
		next := threshold * 1024
		if bytes < next {
			return fmt.Sprintf("%.2f %s", float64(bytes)/float64(threshold), unit)
		}
		if i < len(byteUnits)-1 {
			threshold = next
		}
	}
	return fmt.Sprintf("%d", bytes)
}

// Summary 是一次扫描结果的可序列化视图。
// 没有匹配文件时极值与平均值字段为 nil。
type Summary struct {
	Files            uint64          `json:"files"`
	Lines            uint64          `json:"lines"`
	Newlines         uint64          `json:"newlines"`
	SizeBytes        uint64          `json:"size_bytes"`
	Semicolons       uint64          `json:"semicolons"`
	Todos            uint64          `json:"todos"`
	Fixmes           uint64          `json:"fixmes"`
	SmallestByLines  *model.Extremum `json:"smallest_by_lines"`
	LargestByLines   *model.Extremum `json:"largest_by_lines"`
	SmallestBySize   *model.Extremum `json:"smallest_by_size"`
	LargestBySize    *model.Extremum `json:"largest_by_size"`
	AverageLines     *uint64         `json:"average_lines"`
	AverageSizeBytes *uint64         `json:"average_size_bytes"`
}

// NewSummary 从聚合结果生成 Summary。
func NewSummary(metrics model.AggregateMetrics) Summary {
	summary := Summary{
		Files:      metrics.TotalFiles,
		Lines:      metrics.TotalLines,
		Newlines:   metrics.TotalTerminatedLines,
		SizeBytes:  metrics.TotalSizeBytes,
		Semicolons: metrics.TotalSemicolons,
		Todos:      metrics.TotalTodos,
		Fixmes:     metrics.TotalFixmes,
	}
	if metrics.Empty() {
		return summary
	}

	summary.SmallestByLines = extremumOrNil(metrics.MinLines())
	summary.LargestByLines = extremumOrNil(metrics.MaxLines())
	summary.SmallestBySize = extremumOrNil(metrics.MinSize())
	summary.LargestBySize = extremumOrNil(metrics.MaxSize())
	summary.AverageLines = valueOrNil(metrics.AverageLines())
	summary.AverageSizeBytes = valueOrNil(metrics.AverageSize())
	return summary
}

func extremumOrNil(value model.Extremum, err error) *model.Extremum {
	if err != nil {
		return nil
	}
	return &value
}

func valueOrNil(value uint64, err error) *uint64 {
	if err != nil {
		return nil
	}
	return &value
}

// textWriter 把首个写入错误保存下来，避免每行都判断。
type textWriter struct {
	w       io.Writer
	colored bool
	err     error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

// metric 输出 "label<右对齐数值>"，label 与数值共占 labelWidth 列。
func (t *textWriter) metric(label string, value uint64) {
	width := labelWidth - len(label)
	if width < 1 {
		width = 1
	}
	if t.colored {
		label = color.New(color.Bold).Sprint(label)
	}
	t.printf("%s%*d", label, width, value)
}

// PrintText 按原始行格式输出统计结果。
func PrintText(writer io.Writer, metrics model.AggregateMetrics, colored bool) error {
	out := &textWriter{w: writer, colored: colored}

	out.metric("semicolons", metrics.TotalSemicolons)
	out.printf("\n")
	out.metric("newlines", metrics.TotalTerminatedLines)
	out.printf("\n")
	out.metric("todos", metrics.TotalTodos)
	out.printf("\n")
	out.metric("fixmes", metrics.TotalFixmes)
	out.printf("\n")
	out.metric("files", metrics.TotalFiles)
	out.printf(" files%*s\n", sizeWidth, FormatBytes(metrics.TotalSizeBytes))

	out.printf("\n")
	out.metric("lines", metrics.TotalLines)
	out.printf("\n")

	if metrics.Empty() {
		out.printf("%s\n", noFilesNote)
		return out.err
	}

	summary := NewSummary(metrics)
	out.metric("smallest file", summary.SmallestByLines.Value)
	out.printf(" lines%*s%s%s\n", sizeWidth, FormatBytes(summary.SmallestBySize.Value), pathPadding, summary.SmallestByLines.Path)
	out.metric("largest file", summary.LargestByLines.Value)
	out.printf(" lines%*s%s%s\n", sizeWidth, FormatBytes(summary.LargestBySize.Value), pathPadding, summary.LargestByLines.Path)
	out.metric("average", *summary.AverageLines)
	out.printf(" lines%*s\n", sizeWidth, FormatBytes(*summary.AverageSizeBytes))

	return out.err
}

// PrintTable 使用表格展示统计结果。
func PrintTable(writer io.Writer, metrics model.AggregateMetrics) error {
	table := tablewriter.NewTable(writer,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.Border{
				Left:   tw.Off,
				Right:  tw.Off,
				Top:    tw.Off,
				Bottom: tw.Off,
			},
			Settings: tw.Settings{
				Separators: tw.Separators{
					BetweenColumns: tw.Off,
				},
			},
		}),
	)

	table.Header([]string{"Metric", "Value", "Size", "Path"})

	rows := [][]string{
		{"semicolons", formatCount(metrics.TotalSemicolons), "", ""},
		{"newlines", formatCount(metrics.TotalTerminatedLines), "", ""},
		{"todos", formatCount(metrics.TotalTodos), "", ""},
		{"fixmes", formatCount(metrics.TotalFixmes), "", ""},
		{"files", formatCount(metrics.TotalFiles), FormatBytes(metrics.TotalSizeBytes), ""},
		{"lines", formatCount(metrics.TotalLines), "", ""},
	}

	if metrics.Empty() {
		rows = append(rows, []string{"extrema", noFilesNote, "", ""})
	} else {
		summary := NewSummary(metrics)
		rows = append(rows,
			[]string{"smallest file", formatCount(summary.SmallestByLines.Value) + " lines", FormatBytes(summary.SmallestBySize.Value), summary.SmallestByLines.Path},
			[]string{"largest file", formatCount(summary.LargestByLines.Value) + " lines", FormatBytes(summary.LargestBySize.Value), summary.LargestByLines.Path},
			[]string{"average", formatCount(*summary.AverageLines) + " lines", FormatBytes(*summary.AverageSizeBytes), ""},
		)
	}

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("append table row: %w", err)
		}
	}
	return table.Render()
}

func formatCount(value uint64) string {
	return fmt.Sprintf("%d", value)
}

// PrintJSON 把统计结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, metrics model.AggregateMetrics) error {
	content, err := json.MarshalIndent(NewSummary(metrics), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(append(content, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteJSONFile 将 JSON 结果导出到指定路径。
// 如果目录不存在会自动创建。
func WriteJSONFile(path string, metrics model.AggregateMetrics) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("output path is empty")
	}

	content, err := json.MarshalIndent(NewSummary(metrics), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, content, 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}
