// Package scanner 提供单文件统计与整体扫描调度能力。
// 该层负责把遍历结果分发给 worker 池并折叠为项目级统计。
package scanner

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"srcmetrics/internal/logging"
	"srcmetrics/internal/model"
	"srcmetrics/internal/progress"
	"srcmetrics/internal/walker"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Service 是扫描服务对象。
type Service struct {
	walker         *walker.Walker
	workers        int
	logger         *zap.Logger
	progressWriter io.Writer
}

// Option 用于定制 Service。
type Option func(*Service)

// WithLogger 设置日志对象。
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logging.OrNop(logger)
	}
}

// WithProgress 在扫描阶段向 writer 输出进度条，nil 表示关闭。
func WithProgress(writer io.Writer) Option {
	return func(s *Service) {
		s.progressWriter = writer
	}
}

// NewService 创建扫描服务。workers <= 0 时使用 CPU 核数。
func NewService(w *walker.Walker, workers int, opts ...Option) *Service {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	s := &Service{
		walker:  w,
		workers: workers,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run 遍历根路径、并发扫描全部文件并折叠结果。
// 折叠满足交换律和结合律，因此结果与 worker 数量和调度顺序无关。
func (s *Service) Run(ctx context.Context, roots []string, extensions []string) (model.AggregateMetrics, error) {
	var result model.AggregateMetrics
	started := time.Now()

	targets, err := s.walker.Walk(ctx, roots, extensions)
	if err != nil {
		return result, fmt.Errorf("walk: %w", err)
	}

	var tracker *progress.Tracker
	if s.progressWriter != nil && len(targets) > 0 {
		tracker = progress.NewTrackerWithWriter(s.progressWriter, "scanning", len(targets))
	}

	p := pool.NewWithResults[model.FileMetrics]().
		WithContext(ctx).
		WithMaxGoroutines(s.workers)
	for _, target := range targets {
		p.Go(func(ctx context.Context) (model.FileMetrics, error) {
			defer tracker.Tick()
			if err := ctx.Err(); err != nil {
				return model.FileMetrics{}, err
			}
			return Scan(target), nil
		})
	}

	files, err := p.Wait()
	tracker.Finish()
	if err != nil {
		return result, fmt.Errorf("scan: %w", err)
	}

	for _, file := range files {
		result.Fold(file)
	}

	s.logger.Debug("scan finished",
		zap.Strings("roots", roots),
		zap.Strings("extensions", extensions),
		zap.Uint64("files", result.TotalFiles),
		zap.Uint64("lines", result.TotalLines),
		zap.Int("workers", s.workers),
		zap.Duration("elapsed", time.Since(started)),
	)

	return result.Finalize(), nil
}
