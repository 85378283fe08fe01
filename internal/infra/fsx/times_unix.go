//go:build unix && !darwin

package fsx

import (
	"time"

	"golang.org/x/sys/unix"
)

// SetFileTimes 设置 mtime=upload，atime 不动（UTIME_OMIT）。
// photoTaken 在没有可写出生时间的平台上被忽略。
func SetFileTimes(path string, photoTaken, upload time.Time) error {
	_ = photoTaken

	ts := []unix.Timespec{
		{Nsec: unix.UTIME_OMIT},
		unix.NsecToTimespec(upload.UnixNano()),
	}
	if err := unix.UtimesNanoAt(unix.AT_FDCWD, path, ts, 0); err != nil {
		return &TimesError{Path: path, Err: err}
	}
	return nil
}
