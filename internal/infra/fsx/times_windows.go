//go:build windows

package fsx

import (
	"time"

	"golang.org/x/sys/windows"
)

// SetFileTimes 经 SetFileTime 设置创建时间=photoTaken、写入时间=upload；
// 访问时间传 nil 保持不变。
func SetFileTimes(path string, photoTaken, upload time.Time) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return &TimesError{Path: path, Err: err}
	}

	h, err := windows.CreateFile(
		p,
		windows.FILE_WRITE_ATTRIBUTES,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL,
		0,
	)
	if err != nil {
		return &TimesError{Path: path, Err: err}
	}
	defer windows.CloseHandle(h)

	ctime := windows.NsecToFiletime(photoTaken.UnixNano())
	wtime := windows.NsecToFiletime(upload.UnixNano())
	if err := windows.SetFileTime(h, &ctime, nil, &wtime); err != nil {
		return &TimesError{Path: path, Err: err}
	}
	return nil
}
