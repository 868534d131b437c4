package scanner

import (
	"strings"

	"srcmetrics/internal/model"
)

const (
	todoMarker  = "// TODO:"
	fixmeMarker = "// FIXME:"
)

// Scan 计算单个文件的文本统计值。
// 文件被视为不透明文本：字符串或注释中的 ; 与标记同样计数。
func Scan(target model.ScanTarget) model.FileMetrics {
	content := target.Content

	return model.FileMetrics{
		Path:            target.Path,
		SizeBytes:       target.SizeBytes,
		LineCount:       CountLines(content),
		TerminatedLines: CountTerminatedLines(content),
		Semicolons:      uint64(strings.Count(content, ";")),
		Todos:           uint64(strings.Count(content, todoMarker)),
		Fixmes:          uint64(strings.Count(content, fixmeMarker)),
	}
}

// CountLines 返回按 "\n" 切分后的段数。
// 空文件为 1，"a\n" 为 2：结尾换行会多计一行。
func CountLines(content string) uint64 {
	return uint64(strings.Count(content, "\n")) + 1
}

// CountTerminatedLines 返回以 "\n" 结尾且至少包含一个字符的行数。
// 空行与最后一个没有换行的行都不计入。
func CountTerminatedLines(content string) uint64 {
	var count uint64
	lineStart := 0
	for {
		idx := strings.IndexByte(content[lineStart:], '\n')
		if idx < 0 {
			return count
		}
		if idx > 0 {
			count++
		}
		lineStart += idx + 1
	}
}
