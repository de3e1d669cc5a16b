package model

import (
	"testing"
	"time"
)

// TestFoldKnownAndUnknown 验证未识别后缀只计入总数。
func TestFoldKnownAndUnknown(t *testing.T) {
	result := NewScanResult("/repo", false)

	result.Fold(AcceptedFile{Path: "a.py", Size: 10}, 3, "Python", true)
	result.Fold(AcceptedFile{Path: "b.py", Size: 5}, 0, "Python", true)
	result.Fold(AcceptedFile{Path: "data.csv", Size: 100}, 0, "", false)

	if result.TotalFiles != 3 || result.TotalBytes != 115 {
		t.Fatalf("unexpected totals: files=%d bytes=%d", result.TotalFiles, result.TotalBytes)
	}

	stat := result.Languages["Python"]
	if stat == nil || stat.Lines != 3 || stat.Files != 2 || stat.Bytes != 15 {
		t.Fatalf("unexpected python stat: %+v", stat)
	}
	if len(result.Languages) != 1 {
		t.Fatalf("unknown extension must not create a language entry")
	}
	if result.TotalLines() != 3 {
		t.Fatalf("expected total lines 3, got %d", result.TotalLines())
	}
	if result.LanguageFiles() > result.TotalFiles {
		t.Fatalf("language files must not exceed total files")
	}
	if len(result.Files) != 0 {
		t.Fatalf("non-detailed result must not keep file records")
	}
}

// TestFoldDetailedRecords 验证详细模式保存单文件记录并按路径排序。
func TestFoldDetailedRecords(t *testing.T) {
	result := NewScanResult("/repo", true)
	modTime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	result.Fold(AcceptedFile{Path: "z/main.go", Size: 7, ModTime: modTime}, 2, "Go", true)
	result.Fold(AcceptedFile{Path: "a/app.js", Size: 3, ModTime: modTime}, 1, "JavaScript", true)
	result.Fold(AcceptedFile{Path: "readme", Size: 1}, 0, "", false)

	files := result.SortedFiles()
	if len(files) != 2 {
		t.Fatalf("expected 2 file records, got %d", len(files))
	}
	if files[0].Path != "a/app.js" || files[1].Path != "z/main.go" {
		t.Fatalf("unexpected order: %+v", files)
	}
	if files[1].Lines != 2 || files[1].Language != "Go" || !files[1].ModTime.Equal(modTime) {
		t.Fatalf("unexpected record: %+v", files[1])
	}
}

// TestOrderedLanguages 验证优先语言在前、其余按字典序排列。
func TestOrderedLanguages(t *testing.T) {
	result := NewScanResult("/repo", false)
	result.Fold(AcceptedFile{Size: 1}, 4, "Python", true)
	result.Fold(AcceptedFile{Size: 1}, 2, "Go", true)
	result.Fold(AcceptedFile{Size: 1}, 5, "wx-script", true)
	result.Fold(AcceptedFile{Size: 1}, 0, "wx-style", true)
	result.Fold(AcceptedFile{Size: 1}, 1, "wx-template", true)
	result.Fold(AcceptedFile{Size: 1}, 0, "C", true)

	priority := []string{"wx-template", "wx-style", "wx-script"}
	ordered := result.OrderedLanguages(priority)

	want := []string{"wx-template", "wx-script", "C", "Go", "Python"}
	if len(ordered) != len(want) {
		t.Fatalf("unexpected language count: %+v", ordered)
	}
	for i, language := range want {
		if ordered[i].Language != language {
			t.Fatalf("position %d: expected %s, got %s", i, language, ordered[i].Language)
		}
	}
}
