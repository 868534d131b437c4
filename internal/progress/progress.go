// Package progress 提供扫描阶段的 stderr 进度条。
package progress

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Tracker 包装进度条。nil Tracker 的全部方法都是空操作。
type Tracker struct {
	bar *progressbar.ProgressBar
}

// NewTracker 创建写入 stderr 的进度条。
func NewTracker(label string, total int) *Tracker {
	return NewTrackerWithWriter(os.Stderr, label, total)
}

// NewTrackerWithWriter 创建写入指定 writer 的进度条。
func NewTrackerWithWriter(writer io.Writer, label string, total int) *Tracker {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	return &Tracker{bar: bar}
}

// Tick 进度加一，可并发调用。
func (t *Tracker) Tick() {
	if t == nil {
		return
	}
	_ = t.bar.Add(1)
}

// Finish 结束并清除进度条。
func (t *Tracker) Finish() {
	if t == nil {
		return
	}
	_ = t.bar.Finish()
	_ = t.bar.Clear()
}
