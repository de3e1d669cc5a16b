package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codecounter/internal/languages"
	"codecounter/internal/policy"
	"codecounter/internal/scanner"
)

// runRoot 是测试辅助函数，执行根命令并返回标准输出。
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	deps := dependencies{
		catalog: languages.NewCatalog(),
		rules:   policy.DefaultExclusionRules(),
	}
	rootCmd := newRootCmd("test", deps)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), err
}

// writeFixture 在临时目录中写入测试文件。
func writeFixture(t *testing.T, path string, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir fixture dir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture file failed: %v", err)
	}
}

// TestRootScanTable 验证根命令直接扫描目录并输出表格。
func TestRootScanTable(t *testing.T) {
	testChdir(t, t.TempDir())
	project := t.TempDir()
	writeFixture(t, filepath.Join(project, "main.py"), "x = 1\n# c\ny = 2\n")

	output, err := runRoot(t, project)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if !strings.Contains(output, "Python") || !strings.Contains(output, "TOTAL") {
		t.Fatalf("unexpected output:\n%s", output)
	}
	if strings.Contains(output, "Report exported") {
		t.Fatalf("table format must not export a file by default")
	}
}

// TestScanSubcommandHTMLExport 验证 html 格式导出报表文件。
func TestScanSubcommandHTMLExport(t *testing.T) {
	testChdir(t, t.TempDir())
	project := t.TempDir()
	writeFixture(t, filepath.Join(project, "index.wxml"), "<view></view>\n")
	writeFixture(t, filepath.Join(project, "app.js"), "App({})\n")

	outputPath := filepath.Join(t.TempDir(), "out", "report.html")
	output, err := runRoot(t, "scan", project, "--format", "html", "--detailed", "--output", outputPath)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if !strings.Contains(output, "Report exported to "+outputPath) {
		t.Fatalf("expected export message:\n%s", output)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read exported report failed: %v", err)
	}
	if !strings.Contains(string(content), "index.wxml") || !strings.Contains(string(content), languages.WeChatTemplate) {
		t.Fatalf("unexpected html report:\n%s", content)
	}
}

// TestScanLogTimestampedName 验证未指定输出路径时生成带时间戳的文件。
func TestScanLogTimestampedName(t *testing.T) {
	workDir := t.TempDir()
	testChdir(t, workDir)
	project := t.TempDir()
	writeFixture(t, filepath.Join(project, "main.go"), "package main\n")

	if _, err := runRoot(t, project, "--format", "log"); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(workDir, "code_report_*.log"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one timestamped log report, got %v (%v)", matches, err)
	}
}

// TestScanPipedInputDefaultsToCurrentDirectory 验证非交互输入时默认扫描当前目录。
func TestScanPipedInputDefaultsToCurrentDirectory(t *testing.T) {
	workDir := t.TempDir()
	testChdir(t, workDir)
	writeFixture(t, filepath.Join(workDir, "tool.sh"), "#!/bin/sh\necho hi\n")

	output, err := runRoot(t)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if !strings.Contains(output, "Shell") {
		t.Fatalf("expected current directory to be scanned:\n%s", output)
	}
}

// TestScanErrors 验证参数过多、目录不存在与非法格式都返回错误。
func TestScanErrors(t *testing.T) {
	testChdir(t, t.TempDir())
	project := t.TempDir()

	if _, err := runRoot(t, project, project); err == nil {
		t.Fatalf("expected error for too many arguments")
	}

	_, err := runRoot(t, filepath.Join(project, "missing"))
	if !errors.Is(err, scanner.ErrRootNotFound) {
		t.Fatalf("expected ErrRootNotFound, got %v", err)
	}

	if _, err := runRoot(t, project, "--format", "xml"); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

// TestLanguageCommand 验证 language 子命令输出语言与注释前缀。
func TestLanguageCommand(t *testing.T) {
	output, err := runRoot(t, "language")
	if err != nil {
		t.Fatalf("language command failed: %v", err)
	}
	if !strings.Contains(output, "LANGUAGE") || !strings.Contains(output, ".py") || !strings.Contains(output, "Prolog") {
		t.Fatalf("unexpected language output:\n%s", output)
	}
}

// TestVersionCommand 验证 version 子命令。
func TestVersionCommand(t *testing.T) {
	output, err := runRoot(t, "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(output, "codecounter version test") {
		t.Fatalf("unexpected version output: %s", output)
	}
}

// TestPromptDirectory 验证交互输入的解析。
func TestPromptDirectory(t *testing.T) {
	var prompt bytes.Buffer

	directory, err := promptDirectory(strings.NewReader("  ./src \n"), &prompt)
	if err != nil || directory != "./src" {
		t.Fatalf("unexpected prompt result: %q, %v", directory, err)
	}
	if !strings.Contains(prompt.String(), "请输入要统计的目录路径") {
		t.Fatalf("expected prompt message, got %q", prompt.String())
	}

	directory, err = promptDirectory(strings.NewReader("\n"), &bytes.Buffer{})
	if err != nil || directory != "." {
		t.Fatalf("empty answer must default to current directory, got %q, %v", directory, err)
	}
}
