package report

import (
	"fmt"
	"html/template"
	"io"
	"time"
)

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"size":     FormatSize,
	"datetime": func(value time.Time) string { return value.Format("2006-01-02 15:04:05") },
}).Parse(`<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="utf-8">
<title>代码统计报告</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 2em; }
th, td { border: 1px solid #ccc; padding: 4px 12px; }
td.num { text-align: right; }
tr.total { font-weight: bold; }
</style>
</head>
<body>
<h1>代码统计报告</h1>
<p>扫描目录: {{.ScannedPath}}</p>
<p>生成时间: {{datetime .GeneratedAt}}</p>
<table>
<tr><th>语言</th><th>行数</th><th>文件数</th><th>大小</th></tr>
{{- range .Languages}}
<tr><td>{{.Language}}</td><td class="num">{{.Lines}}</td><td class="num">{{.Files}}</td><td class="num">{{size .Bytes}}</td></tr>
{{- end}}
<tr class="total"><td>总计</td><td class="num">{{.TotalLines}}</td><td class="num">{{.TotalFiles}}</td><td class="num">{{size .TotalBytes}}</td></tr>
</table>
{{- if .Detailed}}
<h2>文件明细</h2>
<table>
<tr><th>文件</th><th>语言</th><th>行数</th><th>大小</th><th>修改时间</th></tr>
{{- range .Files}}
<tr><td>{{.Path}}</td><td>{{.Language}}</td><td class="num">{{.Lines}}</td><td class="num">{{size .Size}}</td><td>{{datetime .ModTime}}</td></tr>
{{- end}}
</table>
{{- end}}
</body>
</html>
`))

// RenderHTML 输出独立的 HTML 报表，所有文本都会经过转义。
func RenderHTML(writer io.Writer, summary Summary) error {
	if err := htmlTemplate.Execute(writer, summary); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
