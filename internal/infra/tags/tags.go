// Package tags 提供平台文件标签（macOS Finder Tags）的能力抽象。
//
// 标签操作只在暴露标签属性的平台上可用；其余平台编译进 Stub 实现，
// 对应的命令行 flag 根本不会注册（Supported=false），因此用户侧表现为
// “无法识别的参数”。
package tags

import (
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
)

// ErrUnsupported 表示当前平台没有文件标签能力。
var ErrUnsupported = errors.New("tags: 当前平台不支持文件标签")

// Tagger 是文件标签能力接口。
//
// 注意：RemoveNamed 是“读-过滤-写”三步，非事务；读与写之间外部进程
// 对标签的并发修改会被覆盖丢失。
type Tagger interface {
	// Get 读取文件当前的标签集合；文件没有标签属性时返回空集合。
	Get(path string) ([]string, error)
	// Set 把 names 作为文件的标签集合整体写入（替换既有标签，不做增量合并）。
	Set(path string, names []string) error
	// RemoveAll 清空文件的标签集合。
	RemoveAll(path string) error
	// RemoveNamed 从文件标签集合中删除 names 中精确匹配的条目，写回余下部分。
	RemoveNamed(path string, names []string) error
}

// FilterNamed 返回 current 中不在 remove 里的条目（保持原顺序）。
func FilterNamed(current, remove []string) []string {
	drop := mapset.NewSet(remove...)
	keep := make([]string, 0, len(current))
	for _, s := range current {
		if drop.Contains(s) {
			continue
		}
		keep = append(keep, s)
	}
	return keep
}
