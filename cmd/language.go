package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"codecounter/internal/languages"

	"github.com/spf13/cobra"
)

// newLanguageCmd 创建 language 子命令。
// 命令用于展示内置语言、对应文件后缀以及单行注释前缀。
func newLanguageCmd(catalog *languages.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:   "language",
		Short: "展示支持的语言、后缀及注释前缀",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if _, err := fmt.Fprintln(writer, "LANGUAGE\tEXTENSIONS\tCOMMENT"); err != nil {
				return err
			}

			for _, item := range catalog.Languages() {
				if _, err := fmt.Fprintf(writer, "%s\t%s\t%s\n", item.Name, strings.Join(item.Extensions, ", "), uniqueMarkers(item.Markers)); err != nil {
					return err
				}
			}

			return writer.Flush()
		},
	}
}

// uniqueMarkers 去重后拼接注释前缀，没有前缀时显示 -。
func uniqueMarkers(markers []string) string {
	seen := make(map[string]struct{}, len(markers))
	var result []string
	for _, marker := range markers {
		if marker == "" {
			continue
		}
		if _, ok := seen[marker]; ok {
			continue
		}
		seen[marker] = struct{}{}
		result = append(result, marker)
	}
	if len(result) == 0 {
		return "-"
	}
	return strings.Join(result, " ")
}
