package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/John-Robertt/takeout/internal/sidecar"
)

// ScanSidecars 扫描 root 下的 sidecar 元数据文件，并应用目录排除规则。
//
// 规则（硬约束）：
// - 只收集文件名命中识别后缀的文件（其他 .json 一律忽略）
// - excludeDirs：来自配置文件，均视为相对 root 的路径（若是绝对路径，则按绝对路径处理）
// - 单个条目的遍历错误不致命：通过 warn 上报后跳过，继续遍历
//
// 注意：扫描阶段只看文件名，不读文件内容。
func ScanSidecars(root string, excludeDirs []string, warn func(path string, err error)) []string {
	root = filepath.Clean(root)
	excluded := buildExcluded(root, excludeDirs)

	paths := make([]string, 0, 128)
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if warn != nil {
				warn(path, walkErr)
			}
			// d 为目录时跳过整棵子树；d 为空（root 本身失败）时也只能跳过。
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// 统一的排除判断：目录用 SkipDir，文件则直接跳过。
		if isExcluded(path, excluded) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if _, ok := sidecar.Match(d.Name()); !ok {
			return nil
		}

		paths = append(paths, path)
		return nil
	})

	// 强制稳定输出，避免不同平台/文件系统行为差异带来的不确定性。
	sort.Strings(paths)
	return paths
}

func buildExcluded(root string, excludeDirs []string) []string {
	excluded := make([]string, 0, len(excludeDirs))
	for _, x := range excludeDirs {
		x = strings.TrimSpace(x)
		if x == "" {
			continue
		}
		if filepath.IsAbs(x) {
			excluded = append(excluded, filepath.Clean(x))
			continue
		}
		// x 是相对路径：相对 root。
		excluded = append(excluded, filepath.Clean(filepath.Join(root, x)))
	}

	// 排除列表排序后，isExcluded 的行为更可预测（且便于测试）。
	sort.Strings(excluded)
	return excluded
}

func isExcluded(path string, excluded []string) bool {
	path = filepath.Clean(path)
	for _, base := range excluded {
		if isUnder(path, base) {
			return true
		}
	}
	return false
}

func isUnder(path, base string) bool {
	if path == base {
		return true
	}
	sep := string(filepath.Separator)
	return strings.HasPrefix(path, base+sep)
}
