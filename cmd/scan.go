package cmd

import (
	"fmt"
	"io"
	"strings"

	"srcmetrics/internal/config"
	"srcmetrics/internal/languages"
	"srcmetrics/internal/logging"
	"srcmetrics/internal/model"
	"srcmetrics/internal/report"
	"srcmetrics/internal/scanner"
	"srcmetrics/internal/walker"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// scanOptions 存放 scan 命令的命令行参数。
// 只有显式设置的参数才会覆盖配置文件。
type scanOptions struct {
	configPath  string
	extensions  []string
	languages   []string
	excludeDirs []string
	format      string
	output      string
	workers     int
	progress    bool
	noColor     bool
	verbose     bool
}

// newScanCmd 创建 scan 子命令。
// 示例：
//
//	srcmetrics scan ./src --ext rs
//	srcmetrics scan ./a ./b --lang go --format json --output result.json
func newScanCmd(registry *languages.Registry) *cobra.Command {
	options := scanOptions{}

	scanCmd := &cobra.Command{
		Use:   "scan PATH...",
		Short: "扫描目录并输出文本度量信息",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, options)
			if err != nil {
				return err
			}

			format, err := report.ParseFormat(cfg.Output.Format)
			if err != nil {
				return err
			}

			extensions, err := registry.Expand(cfg.Extensions, cfg.Languages)
			if err != nil {
				return err
			}

			logger := logging.NewWithWriter(cmd.ErrOrStderr(), options.verbose)
			defer func() { _ = logger.Sync() }()

			if len(extensions) == 0 {
				logger.Warn("no extensions given, every file will be excluded")
			}

			serviceOptions := []scanner.Option{scanner.WithLogger(logger)}
			if cfg.Output.Progress {
				serviceOptions = append(serviceOptions, scanner.WithProgress(cmd.ErrOrStderr()))
			}

			w := walker.New(nil,
				walker.WithLogger(logger),
				walker.WithExcludeDirs(cfg.ExcludeDirs),
			)
			service := scanner.NewService(w, cfg.Workers, serviceOptions...)

			result, err := service.Run(cmd.Context(), args, extensions)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), logger, format, cfg.Output, result)
		},
	}

	flags := scanCmd.Flags()
	flags.StringVar(&options.configPath, "config", "", "配置文件路径，默认在当前目录查找 srcmetrics.{toml,yaml,yml,json}")
	flags.StringSliceVarP(&options.extensions, "ext", "e", nil, "需要统计的文件后缀（不含点号，大小写敏感），可重复或逗号分隔")
	flags.StringSliceVarP(&options.languages, "lang", "l", nil, "语言预设名称，展开为对应后缀")
	flags.StringSliceVar(&options.excludeDirs, "exclude-dir", nil, "遍历时跳过的目录名")
	flags.StringVar(&options.format, "format", "text", "输出格式: text, table 或 json")
	flags.StringVar(&options.output, "output", "", "json 导出文件路径")
	flags.IntVar(&options.workers, "workers", 0, "并发 worker 数量，默认等于 CPU 核数")
	flags.BoolVar(&options.progress, "progress", false, "在 stderr 显示扫描进度条")
	flags.BoolVar(&options.noColor, "no-color", false, "关闭文本输出的颜色")
	flags.BoolVarP(&options.verbose, "verbose", "v", false, "输出调试日志")

	return scanCmd
}

// resolveConfig 加载配置文件并用显式设置的命令行参数覆盖。
func resolveConfig(cmd *cobra.Command, options scanOptions) (*config.Config, error) {
	cfg, path, err := config.LoadOrDefault(options.configPath, ".")
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("ext") {
		cfg.Extensions = options.extensions
	}
	if flags.Changed("lang") {
		cfg.Languages = options.languages
	}
	if flags.Changed("exclude-dir") {
		cfg.ExcludeDirs = options.excludeDirs
	}
	if flags.Changed("format") {
		cfg.Output.Format = options.format
	}
	if flags.Changed("output") {
		cfg.Output.File = options.output
	}
	if flags.Changed("workers") {
		cfg.Workers = options.workers
	}
	if flags.Changed("progress") {
		cfg.Output.Progress = options.progress
	}
	if options.noColor {
		cfg.Output.Color = false
	}

	if err := cfg.Validate(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("invalid config %s: %w", path, err)
		}
		return nil, err
	}
	return cfg, nil
}

// render 按格式输出结果，json 格式在配置了导出路径时额外写文件。
func render(out io.Writer, logger *zap.Logger, format report.Format, output config.OutputConfig, result model.AggregateMetrics) error {
	switch format {
	case report.FormatTable:
		return report.PrintTable(out, result)
	case report.FormatJSON:
		if err := report.PrintJSON(out, result); err != nil {
			return err
		}

		outputPath := strings.TrimSpace(output.File)
		if outputPath == "" {
			return nil
		}
		if err := report.WriteJSONFile(outputPath, result); err != nil {
			return err
		}
		logger.Info("json exported", zap.String("path", outputPath))
		return nil
	default:
		return report.PrintText(out, result, output.Color)
	}
}
