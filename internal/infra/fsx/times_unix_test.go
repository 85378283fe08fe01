//go:build unix

package fsx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSetFileTimes_SetsMtime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "IMG_1.HEIC")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("写入文件失败：%v", err)
	}

	taken := time.Unix(1538656332, 0)
	upload := time.Unix(1634467748, 0)

	if err := SetFileTimes(path, taken, upload); err != nil {
		t.Fatalf("不期望错误：%v", err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat 失败：%v", err)
	}
	if fi.ModTime().Unix() != upload.Unix() {
		t.Fatalf("期望 mtime=%d，实际 %d", upload.Unix(), fi.ModTime().Unix())
	}
}

func TestSetFileTimes_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "IMG_1.HEIC")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("写入文件失败：%v", err)
	}

	taken := time.Unix(100, 0)
	upload := time.Unix(200, 0)

	if err := SetFileTimes(path, taken, upload); err != nil {
		t.Fatalf("第一次设置失败：%v", err)
	}
	first, _ := os.Stat(path)
	if err := SetFileTimes(path, taken, upload); err != nil {
		t.Fatalf("第二次设置失败：%v", err)
	}
	second, _ := os.Stat(path)

	if !first.ModTime().Equal(second.ModTime()) {
		t.Fatalf("重复设置必须得到相同 mtime：%v / %v", first.ModTime(), second.ModTime())
	}
}

func TestSetFileTimes_MissingFile(t *testing.T) {
	err := SetFileTimes(filepath.Join(t.TempDir(), "nope"), time.Unix(1, 0), time.Unix(2, 0))
	var te *TimesError
	if !errors.As(err, &te) {
		t.Fatalf("期望 TimesError，实际 %v", err)
	}
}
