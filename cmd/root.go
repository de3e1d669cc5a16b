// Package cmd 提供 codecounter 的命令行入口与子命令编排。
package cmd

import (
	"context"

	"codecounter/internal/config"
	"codecounter/internal/languages"
	"codecounter/internal/policy"

	"github.com/spf13/cobra"
)

// dependencies 是各命令共享的只读策略表。
type dependencies struct {
	catalog *languages.Catalog
	rules   policy.ExclusionRules
}

// Execute 组装根命令并执行。
// version 参数由 main 包注入；ctx 被取消（例如 Ctrl+C）时扫描会中止。
func Execute(ctx context.Context, version string) error {
	deps := dependencies{
		catalog: languages.NewCatalog(),
		rules:   policy.DefaultExclusionRules(),
	}
	rootCmd := newRootCmd(version, deps)
	return rootCmd.ExecuteContext(ctx)
}

// newRootCmd 创建根命令并注册全部子命令。
// 根命令本身等价于 scan：codecounter [目录]。
func newRootCmd(version string, deps dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "codecounter [path]",
		Short: "按语言统计目录中的有效代码行数",
		Long: "codecounter 递归扫描目录，按后缀识别语言，\n" +
			"统计去除空行与单行注释后的代码行数，并支持 HTML/日志/JSON 报表导出。\n" +
			"根目录下的 .codecounterignore 可以用通配模式排除文件或目录。",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          newScanRunner(deps),
	}

	rootCmd.PersistentFlags().String(config.KeyLogLevel, "warn", "日志级别: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool(config.KeyLogJSON, false, "以 JSON 格式输出日志")
	rootCmd.PersistentFlags().String(config.KeyConfig, "", "配置文件路径，默认读取当前目录的 .codecounter.yaml")
	bindScanFlags(rootCmd)

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd(deps.catalog))
	rootCmd.AddCommand(newScanCmd(deps))

	return rootCmd
}
