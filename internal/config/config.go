package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
)

const (
	// ErrCodeInvalid 表示配置文件无法读取/解析。
	ErrCodeInvalid = "config_invalid"
)

// FileName 是根目录下可选配置文件的固定名字。
const FileName = "takeout.json"

// FileConfig 对应 <root>/takeout.json 的解析结构。
type FileConfig struct {
	ExcludeDirs []string `json:"exclude_dirs"`
}

// Effective 是合并并做最小规范化后的最终配置（实现层直接消费）。
type Effective struct {
	Root        string
	ExcludeDirs []string
}

// Error 是配置阶段的结构化错误（带 error_code）。
type Error struct {
	Code string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s：配置文件 %q 无效：%v", e.Code, e.Path, e.Err)
	}
	return fmt.Sprintf("%s：配置文件 %q 无效", e.Code, e.Path)
}

func (e *Error) Unwrap() error { return e.Err }

// Code 从 error 中提取 error_code；若不是 *Error 则返回空串。
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Load 读取 <root>/takeout.json（可选）并返回最终配置。
//
// - 文件不存在：返回默认配置，不算错误
// - 文件存在但无法读取/解析：致命的启动期错误（调用方直接退出）
func Load(root string) (Effective, error) {
	root = filepath.Clean(strings.TrimSpace(root))
	eff := Effective{Root: root}

	cfgPath := filepath.Join(root, FileName)
	b, err := os.ReadFile(cfgPath)
	if err != nil {
		if os.IsNotExist(err) {
			return eff, nil
		}
		return Effective{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: err}
	}

	var fc FileConfig
	if err := json.Unmarshal(b, &fc); err != nil {
		return Effective{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: err}
	}

	eff.ExcludeDirs = append([]string(nil), fc.ExcludeDirs...)
	return eff, nil
}
