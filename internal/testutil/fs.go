// Package testutil 提供测试用的文件系统辅助函数。
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// MemFS 创建内存文件系统。
func MemFS() afero.Fs {
	return afero.NewMemMapFs()
}

// WriteFile 在指定文件系统中写入文件，必要时创建父目录。
func WriteFile(t testing.TB, fs afero.Fs, path string, content string) {
	t.Helper()

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir fixture dir failed: %v", err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture file failed: %v", err)
	}
}

// WriteTree 按 "路径 -> 内容" 批量写入文件，路径相对于 root。
func WriteTree(t testing.TB, fs afero.Fs, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		WriteFile(t, fs, filepath.Join(root, name), content)
	}
}

// WriteOSTree 在真实文件系统上写入文件树，用于命令层测试。
func WriteOSTree(t testing.TB, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir fixture dir failed: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture file failed: %v", err)
		}
	}
}
