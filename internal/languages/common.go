package languages

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrInvalidEncoding 表示文件内容不是合法的 UTF-8 文本。
var ErrInvalidEncoding = errors.New("content is not valid utf-8")

// normalizeLine 用于去除每行末尾的换行符。
// 该函数适配 Windows 的 \r\n 与 Unix 的 \n。
func normalizeLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line
}

// IsCodeLine 判断一行是否计为代码。
//
// 规则：
// - 去掉首尾空白后为空的行不计数
// - 存在注释前缀且去空白后以该前缀开头的行不计数
// - 其余行计 1 行（行尾注释、块注释续行都按代码处理）
func IsCodeLine(line string, marker string, hasMarker bool) bool {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return false
	}
	if hasMarker && strings.HasPrefix(stripped, marker) {
		return false
	}
	return true
}

// CountLines 统计已拆分好的行中有多少行代码。
func CountLines(lines []string, ext string, catalog *Catalog) int64 {
	marker, hasMarker := catalog.CommentMarker(ext)

	var count int64
	for _, line := range lines {
		if IsCodeLine(line, marker, hasMarker) {
			count++
		}
	}
	return count
}

// CountReader 流式读取内容并统计代码行数。
// \n、\r\n 与单独的 \r 都视为换行；内容不是合法 UTF-8 时返回 ErrInvalidEncoding。
func CountReader(reader io.Reader, ext string, catalog *Catalog) (int64, error) {
	marker, hasMarker := catalog.CommentMarker(ext)
	bufferedReader := bufio.NewReader(reader)

	var count int64
	for {
		line, err := bufferedReader.ReadString('\n')
		// 完整 EOF（无残余字符）直接结束。
		if errors.Is(err, io.EOF) && len(line) == 0 {
			break
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		if !utf8.ValidString(line) {
			return 0, ErrInvalidEncoding
		}

		for _, part := range strings.Split(normalizeLine(line), "\r") {
			if IsCodeLine(part, marker, hasMarker) {
				count++
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}
	}

	return count, nil
}
