// Package model 定义 srcmetrics 的核心数据模型。
// 这些结构会被遍历器、扫描器、输出层和命令层共同使用。
package model

import "errors"

// ErrEmptyDataset 表示本次扫描没有匹配到任何文件。
// 极值与平均值查询在这种情况下返回该错误，而不是崩溃。
var ErrEmptyDataset = errors.New("no files matched")

// ScanTarget 表示一个已经读入内存、等待扫描的文件。
// 扫描完成后只有路径、大小和派生统计值会被保留。
type ScanTarget struct {
	Content   string
	Path      string
	SizeBytes uint64
}

// FileMetrics 表示单文件扫描结果。
//
// 注意：
// - LineCount 按 "\n" 切分后的段数计数，空文件为 1
// - TerminatedLines 只统计以换行结尾且至少有一个字符的行
type FileMetrics struct {
	Path            string `json:"path"`
	SizeBytes       uint64 `json:"size_bytes"`
	LineCount       uint64 `json:"lines"`
	TerminatedLines uint64 `json:"newlines"`
	Semicolons      uint64 `json:"semicolons"`
	Todos           uint64 `json:"todos"`
	Fixmes          uint64 `json:"fixmes"`
}

// Extremum 是一次极值查询的结果。
type Extremum struct {
	Value uint64 `json:"value"`
	Path  string `json:"path"`
}

// AggregateMetrics 是全部文件折叠后的项目级统计。
// 零值即为空聚合，可以直接调用 Fold。
type AggregateMetrics struct {
	TotalFiles           uint64
	TotalLines           uint64
	TotalTerminatedLines uint64
	TotalSizeBytes       uint64
	TotalSemicolons      uint64
	TotalTodos           uint64
	TotalFixmes          uint64

	LinesIndex Index
	SizeIndex  Index
}

// Fold 将一个文件的统计值累加到聚合结果中。
func (m *AggregateMetrics) Fold(file FileMetrics) {
	m.TotalFiles++
	m.TotalLines += file.LineCount
	m.TotalTerminatedLines += file.TerminatedLines
	m.TotalSizeBytes += file.SizeBytes
	m.TotalSemicolons += file.Semicolons
	m.TotalTodos += file.Todos
	m.TotalFixmes += file.Fixmes

	m.LinesIndex.Insert(file.LineCount, file.Path)
	m.SizeIndex.Insert(file.SizeBytes, file.Path)
}

// Merge 合并另一个部分聚合结果，用于并行归约。
func (m *AggregateMetrics) Merge(other AggregateMetrics) {
	m.TotalFiles += other.TotalFiles
	m.TotalLines += other.TotalLines
	m.TotalTerminatedLines += other.TotalTerminatedLines
	m.TotalSizeBytes += other.TotalSizeBytes
	m.TotalSemicolons += other.TotalSemicolons
	m.TotalTodos += other.TotalTodos
	m.TotalFixmes += other.TotalFixmes

	m.LinesIndex.Merge(&other.LinesIndex)
	m.SizeIndex.Merge(&other.SizeIndex)
}

// Finalize 没有延迟计算，原样返回聚合结果。
func (m AggregateMetrics) Finalize() AggregateMetrics {
	return m
}

// Empty 判断是否没有任何文件参与折叠。
func (m AggregateMetrics) Empty() bool {
	return m.TotalFiles == 0
}

// MinLines 返回行数最少的文件。
func (m AggregateMetrics) MinLines() (Extremum, error) {
	return m.LinesIndex.First()
}

// MaxLines 返回行数最多的文件。
func (m AggregateMetrics) MaxLines() (Extremum, error) {
	return m.LinesIndex.Last()
}

// MinSize 返回字节数最小的文件。
func (m AggregateMetrics) MinSize() (Extremum, error) {
	return m.SizeIndex.First()
}

// MaxSize 返回字节数最大的文件。
func (m AggregateMetrics) MaxSize() (Extremum, error) {
	return m.SizeIndex.Last()
}

// AverageLines 返回每个文件的平均行数（整数除法）。
func (m AggregateMetrics) AverageLines() (uint64, error) {
	if m.Empty() {
		return 0, ErrEmptyDataset
	}
	return m.TotalLines / m.TotalFiles, nil
}

// AverageSize 返回每个文件的平均字节数（整数除法）。
func (m AggregateMetrics) AverageSize() (uint64, error) {
	if m.Empty() {
		return 0, ErrEmptyDataset
	}
	return m.TotalSizeBytes / m.TotalFiles, nil
}
