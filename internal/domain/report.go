package domain

import "time"

// Mode 是一次运行激活的动作模式（命令行同时只允许一个）。
type Mode string

const (
	ModeNone            Mode = ""
	ModeList            Mode = "list"
	ModeSetDates        Mode = "set-dates"
	ModeListTags        Mode = "list-tags"
	ModeAssignTags      Mode = "assign-tags"
	ModeAssignAllTags   Mode = "assign-all-tags"
	ModeRemoveAllTags   Mode = "remove-all-tags"
	ModeRemoveNamedTags Mode = "remove-named-tags"
)

// NeedsTagger 返回该模式是否依赖平台标签能力。
func (m Mode) NeedsTagger() bool {
	switch m {
	case ModeAssignTags, ModeAssignAllTags, ModeRemoveAllTags, ModeRemoveNamedTags:
		return true
	default:
		return false
	}
}

const (
	ErrCodeMissingPrimary = "missing_primary_file"
	ErrCodeMalformedMeta  = "malformed_metadata"
	ErrCodeIOFailed       = "io_failed"
	ErrCodeUnsupported    = "unsupported_platform"
	ErrCodeConfigInvalid  = "config_invalid"
)

// RunReport 是一次运行的汇总（只进 stderr 日志；stdout 留给模式本身的输出契约）。
type RunReport struct {
	Root string
	Mode Mode

	StartedAt  time.Time
	FinishedAt time.Time

	Scanned   int // 发现的 sidecar 总数
	Processed int // 完整处理成功的 sidecar 数
	Skipped   int // 无动作可做的 sidecar 数（无模式、或标签计算结果为空）
	Failed    int // 至少报过一条错误的 sidecar 数
}

// Finalize 把时间统一为 UTC（保证日志输出的确定性）。
func (r *RunReport) Finalize() {
	r.StartedAt = r.StartedAt.UTC()
	r.FinishedAt = r.FinishedAt.UTC()
}
