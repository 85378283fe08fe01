package sidecar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/John-Robertt/takeout/internal/domain"
)

// MissingPrimaryError 表示 sidecar 对应的主文件不存在。
// 除 list-tags（只扫名字，不需要主文件）外的模式按 missing_primary_file 跳过该 sidecar。
type MissingPrimaryError struct {
	Sidecar string
	Primary string
}

func (e *MissingPrimaryError) Error() string {
	return fmt.Sprintf("%s：主文件不存在 %q（sidecar：%q）", domain.ErrCodeMissingPrimary, e.Primary, e.Sidecar)
}

// ResolveTargets 由 sidecar 路径推导它管辖的目标文件集合。
//
// 规则（与 Takeout 导出的实际形态一致）：
// - 主文件 = sidecar 文件名去掉命中后缀；不存在即 MissingPrimaryError
// - 伴生文件 <stem>.MP4：存在且自身没有任一后缀的 sidecar 时纳入
// - 伴生文件 <stem>.mp4：额外探测；存在、自身无 sidecar、且与大写变体不是
//   同一底层文件（大小写不敏感的文件系统上 os.SameFile 为真）时才独立纳入
//
// 返回顺序固定：主文件、大写伴生、小写伴生。
func ResolveTargets(sidecarPath string) ([]domain.Target, error) {
	base, ok := TrimSuffix(filepath.Base(sidecarPath))
	if !ok {
		return nil, fmt.Errorf("不是可识别的 sidecar 文件名：%q", sidecarPath)
	}

	dir := filepath.Dir(sidecarPath)
	primary := filepath.Join(dir, base)
	if _, err := os.Stat(primary); err != nil {
		return nil, &MissingPrimaryError{Sidecar: sidecarPath, Primary: primary}
	}

	targets := []domain.Target{{AbsPath: primary, Role: domain.RolePrimary}}

	stem := strings.TrimSuffix(base, filepath.Ext(base))
	upper := filepath.Join(dir, stem+".MP4")
	lower := filepath.Join(dir, stem+".mp4")

	upperInfo, upperErr := os.Stat(upper)
	if upperErr == nil && !hasOwnSidecar(dir, stem+".MP4") {
		targets = append(targets, domain.Target{AbsPath: upper, Role: domain.RoleCompanion})
	}

	lowerInfo, lowerErr := os.Stat(lower)
	if lowerErr == nil && !hasOwnSidecar(dir, stem+".mp4") {
		// 大小写不敏感的文件系统上两个探测指向同一文件：跳过小写变体，避免重复处理。
		same := upperErr == nil && os.SameFile(upperInfo, lowerInfo)
		if !same {
			targets = append(targets, domain.Target{AbsPath: lower, Role: domain.RoleCompanion})
		}
	}

	return targets, nil
}

// hasOwnSidecar 判断 dir 下的 name 是否有自己的 sidecar（任一识别后缀）。
func hasOwnSidecar(dir, name string) bool {
	for _, suffix := range []string{SuffixSupplemental, SuffixShort} {
		if _, err := os.Stat(filepath.Join(dir, name+suffix)); err == nil {
			return true
		}
	}
	return false
}
