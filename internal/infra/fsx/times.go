// Package fsx 封装平台相关的文件时间戳系统调用。
//
// 语义（所有平台一致）：
// - 修改时间 = upload（上传时间）
// - 访问时间保持不变
// - 出生时间（birth/creation time）= photoTaken，仅在平台支持可写出生时间时设置
//   （darwin 经 setattrlist，windows 经 SetFileTime；其余平台忽略 photoTaken）
package fsx

import "fmt"

// TimesError 表示对目标文件设置时间戳失败（io_failed）。
type TimesError struct {
	Path string
	Err  error
}

func (e *TimesError) Error() string {
	return fmt.Sprintf("设置文件时间失败 %q：%v", e.Path, e.Err)
}

func (e *TimesError) Unwrap() error { return e.Err }
