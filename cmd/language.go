package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"srcmetrics/internal/languages"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// newLanguageCmd 创建 language 子命令。
// 展示内置语言预设及其后缀，预设名称可直接用于 scan --lang。
func newLanguageCmd(registry *languages.Registry) *cobra.Command {
	var asJSON bool

	languageCmd := &cobra.Command{
		Use:   "language",
		Short: "展示内置语言预设及后缀",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items := registry.Languages()

			if asJSON {
				content, err := json.MarshalIndent(items, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal json: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(content))
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header([]string{"Language", "Extensions"})
			for _, item := range items {
				if err := table.Append([]string{item.Name, strings.Join(item.Extensions, ", ")}); err != nil {
					return fmt.Errorf("append table row: %w", err)
				}
			}
			return table.Render()
		},
	}

	languageCmd.Flags().BoolVar(&asJSON, "json", false, "以 JSON 格式输出")

	return languageCmd
}
