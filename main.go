// main.go 是 codecounter 的程序入口。
// 该文件负责注入版本号、处理中断信号并执行 Cobra 根命令，
// 业务逻辑保持在 cmd/internal 目录中，便于测试和扩展。
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"codecounter/cmd"
)

// version 默认值为 dev。
// 发布时可以通过 -ldflags "-X main.version=vX.Y.Z" 覆盖该值。
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx, version); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "\nscan interrupted by user")
		} else {
			fmt.Fprintf(os.Stderr, "codecounter error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
