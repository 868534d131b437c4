// Package walker 负责遍历目录并读取符合后缀条件的文件。
// 该层只负责文件发现与读取，不做任何统计。
package walker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"srcmetrics/internal/logging"
	"srcmetrics/internal/model"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrInvalidText 表示文件内容不是合法的 UTF-8 文本。
var ErrInvalidText = errors.New("file content is not valid UTF-8 text")

// PathError 记录失败的操作和路径。
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// newPathError 构造 PathError；底层若已是 *fs.PathError 则只保留其 Err，避免路径重复出现。
func newPathError(op string, path string, err error) *PathError {
	var inner *fs.PathError
	if errors.As(err, &inner) {
		err = inner.Err
	}
	return &PathError{Op: op, Path: path, Err: err}
}

// Walker 是目录遍历器。
type Walker struct {
	fs          afero.Fs
	logger      *zap.Logger
	excludeDirs map[string]struct{}
}

// Option 用于定制 Walker。
type Option func(*Walker)

// WithLogger 设置日志对象。
func WithLogger(logger *zap.Logger) Option {
	return func(w *Walker) {
		w.logger = logging.OrNop(logger)
	}
}

// WithExcludeDirs 设置需要跳过的目录名（只比较 base name）。
func WithExcludeDirs(names []string) Option {
	return func(w *Walker) {
		for _, name := range names {
			if name = strings.TrimSpace(name); name != "" {
				w.excludeDirs[name] = struct{}{}
			}
		}
	}
}

// New 创建遍历器。fs 为 nil 时使用真实文件系统。
func New(fs afero.Fs, opts ...Option) *Walker {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	w := &Walker{
		fs:          fs,
		logger:      zap.NewNop(),
		excludeDirs: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk 深度优先遍历全部根路径，返回命中后缀集合的文件。
//
// 约束说明：
// - 根路径存在但不是目录时静默跳过；无法 stat 时返回错误
// - 任一目录或文件读取失败都会中止整个遍历
// - 符号链接会被跟随，没有环检测
// - 返回结果不保证顺序
func (w *Walker) Walk(ctx context.Context, roots []string, extensions []string) ([]model.ScanTarget, error) {
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[ext] = struct{}{}
	}

	targets := make([]model.ScanTarget, 0)
	for _, root := range roots {
		info, err := w.fs.Stat(root)
		if err != nil {
			return nil, newPathError("stat", root, err)
		}
		if !info.IsDir() {
			w.logger.Debug("skip non-directory root", zap.String("path", root))
			continue
		}

		found, err := w.walkRoot(ctx, root, allowed)
		if err != nil {
			return nil, err
		}
		targets = append(targets, found...)
	}
	return targets, nil
}

// walkRoot 使用显式栈遍历单个根目录，避免深层目录导致栈溢出。
func (w *Walker) walkRoot(ctx context.Context, root string, allowed map[string]struct{}) ([]model.ScanTarget, error) {
	var targets []model.ScanTarget
	stack := []string{root}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := afero.ReadDir(w.fs, dir)
		if err != nil {
			return nil, newPathError("read dir", dir, err)
		}

		// 逆序入栈，使子目录按名称顺序出栈
		for i := len(entries) - 1; i >= 0; i-- {
			entry := entries[i]
			path := filepath.Join(dir, entry.Name())

			if w.isDir(path, entry) {
				if _, skip := w.excludeDirs[entry.Name()]; skip {
					w.logger.Debug("skip excluded directory", zap.String("path", path))
					continue
				}
				stack = append(stack, path)
				continue
			}

			ext, ok := Extension(entry.Name())
			if !ok {
				continue
			}
			if _, ok := allowed[ext]; !ok {
				continue
			}

			target, err := w.read(path)
			if err != nil {
				return nil, err
			}
			targets = append(targets, target)
		}
	}
	return targets, nil
}

// isDir 判断目录项是否为目录，符号链接会解析到目标。
func (w *Walker) isDir(path string, entry os.FileInfo) bool {
	if entry.Mode()&os.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := w.fs.Stat(path)
	if err != nil {
		// 失效的符号链接按普通文件处理，只有被选中读取时才会报错
		return false
	}
	return info.IsDir()
}

// read 读取完整文件内容，并通过元数据获取字节数。
func (w *Walker) read(path string) (model.ScanTarget, error) {
	content, err := afero.ReadFile(w.fs, path)
	if err != nil {
		return model.ScanTarget{}, newPathError("read", path, err)
	}
	if !utf8.Valid(content) {
		return model.ScanTarget{}, &PathError{Op: "decode", Path: path, Err: ErrInvalidText}
	}

	info, err := w.fs.Stat(path)
	if err != nil {
		return model.ScanTarget{}, newPathError("stat", path, err)
	}

	return model.ScanTarget{
		Content:   string(content),
		Path:      path,
		SizeBytes: uint64(info.Size()),
	}, nil
}

// Extension 返回文件名最后一个点之后的后缀（不含点号）。
// 没有点号、只有前导点号（如 .bashrc）或以点号结尾时返回 false。
func Extension(name string) (string, bool) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 || len(name) == idx+1 {
		return "", false
	}
	return name[idx+1:], true
}
