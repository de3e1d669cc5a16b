package cmd

import (
	"fmt"
	"strings"
	"time"

	"codecounter/internal/config"
	"codecounter/internal/languages"
	"codecounter/internal/logging"
	"codecounter/internal/report"
	"codecounter/internal/scanner"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reportFilePrefix 是自动生成报表文件名的前缀。
const reportFilePrefix = "code_report"

// newScanCmd 创建 scan 子命令。
// 示例：
//
//	codecounter scan .
//	codecounter scan ./project --detailed --format html
//	codecounter scan ./project --format json --output result.json
func newScanCmd(deps dependencies) *cobra.Command {
	scanCmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "扫描目录并输出各语言代码行数",
		Args:  cobra.MaximumNArgs(1),
		RunE:  newScanRunner(deps),
	}
	bindScanFlags(scanCmd)
	return scanCmd
}

// bindScanFlags 注册扫描相关参数，根命令与 scan 子命令共用。
func bindScanFlags(command *cobra.Command) {
	command.Flags().BoolP(config.KeyDetailed, "d", false, "输出并导出单文件明细")
	command.Flags().String(config.KeyFormat, report.FormatTable, "输出格式: "+strings.Join(report.Formats(), ", "))
	command.Flags().String(config.KeyOutput, "", "报表导出路径，html/log 默认生成带时间戳的文件名")
	command.Flags().String(config.KeyIgnoreFile, "", "忽略模式文件路径，默认读取扫描目录下的 .codecounterignore")
}

// newScanRunner 返回执行扫描的 RunE。
func newScanRunner(deps dependencies) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}

		format, err := report.ParseFormat(cfg.Format)
		if err != nil {
			return err
		}

		logger, err := logging.New(cmd.ErrOrStderr(), logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		directory, err := resolveDirectory(cmd, args)
		if err != nil {
			return err
		}

		service := scanner.NewService(deps.catalog, deps.rules, logger)
		result, err := service.ScanPath(cmd.Context(), directory, scanner.ScanOptions{
			Detailed:   cfg.Detailed,
			IgnoreFile: cfg.IgnoreFile,
		})
		if err != nil {
			return err
		}

		now := time.Now()
		summary := report.NewSummary(result, languages.PriorityLanguages, now)

		switch format {
		case report.FormatTable:
			if err := report.PrintTable(cmd.OutOrStdout(), summary); err != nil {
				return err
			}
			if strings.TrimSpace(cfg.Output) == "" {
				return nil
			}
		case report.FormatJSON:
			if err := report.PrintJSON(cmd.OutOrStdout(), summary); err != nil {
				return err
			}
		default:
			if err := report.PrintTable(cmd.OutOrStdout(), summary); err != nil {
				return err
			}
		}

		outputPath := strings.TrimSpace(cfg.Output)
		if outputPath == "" {
			outputPath = report.TimestampedName(reportFilePrefix, format, now)
		}
		if err := report.WriteFile(outputPath, format, summary); err != nil {
			return err
		}

		logger.Info("report exported", zap.String("path", outputPath), zap.String("format", format))
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nReport exported to %s\n", outputPath)
		return nil
	}
}
