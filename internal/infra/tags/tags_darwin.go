//go:build darwin

package tags

import (
	"errors"
	"strings"

	"github.com/pkg/xattr"
	"howett.net/plist"
)

// Supported 标记当前平台是否注册标签相关的命令行 flag。
const Supported = true

// Finder 标签存储在该扩展属性里：二进制 plist 的字符串数组。
const userTagsAttr = "com.apple.metadata:_kMDItemUserTags"

// Finder 是 macOS 的标签实现。
type Finder struct{}

func New() Finder { return Finder{} }

func (Finder) Get(path string) ([]string, error) {
	b, err := xattr.Get(path, userTagsAttr)
	if err != nil {
		if isNoAttr(err) {
			return nil, nil
		}
		return nil, err
	}

	var raw []string
	if _, err := plist.Unmarshal(b, &raw); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(raw))
	for _, s := range raw {
		// Finder 的条目形如 "Name" 或 "Name\n<颜色编号>"；只关心名字。
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[:i]
		}
		out = append(out, s)
	}
	return out, nil
}

func (Finder) Set(path string, names []string) error {
	b, err := plist.Marshal(names, plist.BinaryFormat)
	if err != nil {
		return err
	}
	return xattr.Set(path, userTagsAttr, b)
}

func (Finder) RemoveAll(path string) error {
	if err := xattr.Remove(path, userTagsAttr); err != nil && !isNoAttr(err) {
		return err
	}
	return nil
}

func (f Finder) RemoveNamed(path string, names []string) error {
	current, err := f.Get(path)
	if err != nil {
		return err
	}
	keep := FilterNamed(current, names)
	if len(keep) == 0 {
		return f.RemoveAll(path)
	}
	return f.Set(path, keep)
}

func isNoAttr(err error) bool {
	return errors.Is(err, xattr.ENOATTR)
}
