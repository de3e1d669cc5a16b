package config

import (
	"os"
	"testing"
)

// testChdir 与 Go 1.24 的 t.Chdir 等价：切换工作目录，并在测试结束时恢复。
func testChdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd %s: %v", prev, err)
		}
	})
}
