// Package cmd 提供 srcmetrics 的命令行入口与子命令编排。
package cmd

import (
	"context"

	"srcmetrics/internal/languages"

	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	registry := languages.NewRegistry()
	rootCmd := newRootCmd(version, registry)
	return rootCmd.ExecuteContext(context.Background())
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string, registry *languages.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "srcmetrics",
		Short: "按文件后缀统计源码文本指标",
		Long: "srcmetrics 递归扫描目录，按后缀筛选文件，\n" +
			"统计行数、分号数、// TODO: 与 // FIXME: 标记数，以及文件大小的极值与平均值。",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd(registry))
	rootCmd.AddCommand(newScanCmd(registry))

	return rootCmd
}
