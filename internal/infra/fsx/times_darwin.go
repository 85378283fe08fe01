//go:build darwin

package fsx

import (
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// SetFileTimes 经 setattrlist 一次性设置出生时间=photoTaken、修改时间=upload；
// 访问时间不在属性位图里，保持不变。
func SetFileTimes(path string, photoTaken, upload time.Time) error {
	attrs := unix.Attrlist{
		Bitmapcount: unix.ATTR_BIT_MAP_COUNT,
		Commonattr:  unix.ATTR_CMN_CRTIME | unix.ATTR_CMN_MODTIME,
	}

	// 属性缓冲区按属性位的数值顺序排列：CRTIME(0x200) 在 MODTIME(0x400) 之前。
	times := [2]unix.Timespec{
		unix.NsecToTimespec(photoTaken.UnixNano()),
		unix.NsecToTimespec(upload.UnixNano()),
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&times[0])), int(unsafe.Sizeof(times)))

	if err := unix.Setattrlist(path, &attrs, buf, 0); err != nil {
		return &TimesError{Path: path, Err: err}
	}
	return nil
}
