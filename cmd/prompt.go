package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// resolveDirectory 决定扫描目录：
// 有位置参数时直接使用；否则在交互终端中提示输入，管道输入时默认当前目录。
func resolveDirectory(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if !isInteractive(cmd.InOrStdin()) {
		return ".", nil
	}

	// 等待输入期间也要响应中断。
	type answer struct {
		directory string
		err       error
	}
	answers := make(chan answer, 1)
	go func() {
		directory, err := promptDirectory(cmd.InOrStdin(), cmd.OutOrStdout())
		answers <- answer{directory: directory, err: err}
	}()

	select {
	case <-cmd.Context().Done():
		return "", cmd.Context().Err()
	case result := <-answers:
		return result.directory, result.err
	}
}

// isInteractive 判断输入是否来自终端。
func isInteractive(reader io.Reader) bool {
	file, ok := reader.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// promptDirectory 提示用户输入目录，直接回车返回当前目录。
func promptDirectory(reader io.Reader, writer io.Writer) (string, error) {
	if _, err := fmt.Fprintln(writer, "请输入要统计的目录路径（直接回车则统计当前目录）："); err != nil {
		return "", err
	}

	line, err := bufio.NewReader(reader).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read directory input: %w", err)
	}

	directory := strings.TrimSpace(line)
	if directory == "" {
		return ".", nil
	}
	return directory, nil
}
