// Package run 是动作分发器：对扫描到的每个 sidecar 依次执行当前模式的动作。
//
// 全程单线程、无挂起点；除 list-tags 的名字累加器（由 Execute 持有，
// 生命周期就是一次调用）外没有共享可变状态。单个 sidecar/目标的失败
// 只上报 stderr 日志并继续，绝不中断遍历。
package run

import (
	"fmt"
	"io"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog"

	"github.com/John-Robertt/takeout/internal/domain"
	"github.com/John-Robertt/takeout/internal/infra/fsx"
	"github.com/John-Robertt/takeout/internal/infra/tags"
	"github.com/John-Robertt/takeout/internal/scan"
	"github.com/John-Robertt/takeout/internal/sidecar"
)

// CSVHeader 是 list 模式 stdout 输出的首行（对外契约，勿改）。
const CSVHeader = "File,PhotoTakenTime,UploadTime,People"

// TagListHeader 是 list-tags 模式 stdout 输出的首行（对外契约，勿改）。
const TagListHeader = "Unique People Tags:"

// Options 是一次运行的全部输入。
type Options struct {
	Root string
	Mode domain.Mode

	// AssignNames / RemoveNames 仅在对应标签模式下非空（分号分隔、去空段后的结果）。
	AssignNames []string
	RemoveNames []string

	ExcludeDirs []string
}

// Deps 是运行期依赖（可注入，便于测试）。
type Deps struct {
	Tagger tags.Tagger
	Stdout io.Writer
	Log    zerolog.Logger
}

type status int

const (
	statusProcessed status = iota
	statusSkipped
	statusFailed
)

// Execute 执行一次完整遍历并返回汇总。
func Execute(opts Options, deps Deps) domain.RunReport {
	rr := domain.RunReport{
		Root:      opts.Root,
		Mode:      opts.Mode,
		StartedAt: time.Now().UTC(),
	}

	if opts.Mode == domain.ModeList {
		fmt.Fprintln(deps.Stdout, CSVHeader)
	}

	// list-tags 的唯一名字累加器：整棵树共享，初始为空，绝不重置。
	allPeople := mapset.NewSet[string]()

	sidecars := scan.ScanSidecars(opts.Root, opts.ExcludeDirs, func(path string, err error) {
		deps.Log.Error().Str("code", domain.ErrCodeIOFailed).Str("path", path).Err(err).
			Msg("遍历条目失败，跳过")
	})
	rr.Scanned = len(sidecars)

	for _, sc := range sidecars {
		switch processOne(opts, deps, sc, allPeople) {
		case statusProcessed:
			rr.Processed++
		case statusSkipped:
			rr.Skipped++
		case statusFailed:
			rr.Failed++
		}
	}

	if opts.Mode == domain.ModeListTags {
		fmt.Fprintln(deps.Stdout, TagListHeader)
		for _, name := range mapset.Sorted(allPeople) {
			fmt.Fprintln(deps.Stdout, name)
		}
	}

	rr.FinishedAt = time.Now().UTC()
	rr.Finalize()
	return rr
}

func processOne(opts Options, deps Deps, scPath string, allPeople mapset.Set[string]) status {
	// list-tags 只扫名字：主文件不存在也要继续。
	if opts.Mode == domain.ModeListTags {
		rec, err := sidecar.Parse(scPath)
		if err != nil {
			deps.Log.Error().Str("code", domain.ErrCodeMalformedMeta).Str("sidecar", scPath).Err(err).
				Msg("元数据无效，跳过")
			return statusFailed
		}
		allPeople.Append(rec.People...)
		return statusProcessed
	}

	// 其余模式：先定位目标文件（与原始行为一致，主文件缺失先于元数据错误上报）。
	targets, err := sidecar.ResolveTargets(scPath)
	if err != nil {
		deps.Log.Error().Str("code", domain.ErrCodeMissingPrimary).Str("sidecar", scPath).Err(err).
			Msg("主文件不存在，跳过")
		return statusFailed
	}

	rec, err := sidecar.Parse(scPath)
	if err != nil {
		deps.Log.Error().Str("code", domain.ErrCodeMalformedMeta).Str("sidecar", scPath).Err(err).
			Msg("元数据无效，跳过")
		return statusFailed
	}

	switch opts.Mode {
	case domain.ModeNone:
		// 没有激活任何模式：遍历照常进行，但不产生可观察动作。
		return statusSkipped

	case domain.ModeList:
		for _, t := range targets {
			fmt.Fprintf(deps.Stdout, "%s,%s,%s,%s\n",
				Field(t.AbsPath),
				Field(FormatTime(rec.PhotoTaken)),
				Field(FormatTime(rec.Uploaded)),
				PeopleField(rec.People),
			)
		}
		return statusProcessed

	case domain.ModeSetDates:
		failed := false
		for _, t := range targets {
			if err := fsx.SetFileTimes(t.AbsPath, rec.PhotoTaken, rec.Uploaded); err != nil {
				deps.Log.Error().Str("code", domain.ErrCodeIOFailed).Str("file", t.AbsPath).Err(err).
					Msg("设置文件时间失败，跳过该目标")
				failed = true
			}
		}
		if failed {
			return statusFailed
		}
		return statusProcessed

	case domain.ModeAssignTags:
		// 只应用 请求列表 ∩ people（按请求列表顺序）；交集为空则不动现有标签。
		apply := intersect(opts.AssignNames, rec.People)
		if len(apply) == 0 {
			return statusSkipped
		}
		return applyToTargets(deps, targets, "写入标签失败", func(path string) error {
			return deps.Tagger.Set(path, apply)
		})

	case domain.ModeAssignAllTags:
		names := dedup(rec.People)
		if len(names) == 0 {
			return statusSkipped
		}
		return applyToTargets(deps, targets, "写入标签失败", func(path string) error {
			return deps.Tagger.Set(path, names)
		})

	case domain.ModeRemoveAllTags:
		return applyToTargets(deps, targets, "清除标签失败", func(path string) error {
			return deps.Tagger.RemoveAll(path)
		})

	case domain.ModeRemoveNamedTags:
		return applyToTargets(deps, targets, "删除标签失败", func(path string) error {
			return deps.Tagger.RemoveNamed(path, opts.RemoveNames)
		})
	}

	return statusSkipped
}

// applyToTargets 对每个目标执行 op；单个目标失败只记日志，继续下一个。
func applyToTargets(deps Deps, targets []domain.Target, failMsg string, op func(path string) error) status {
	failed := false
	for _, t := range targets {
		if err := op(t.AbsPath); err != nil {
			deps.Log.Error().Str("code", domain.ErrCodeIOFailed).Str("file", t.AbsPath).Err(err).
				Msg(failMsg + "，跳过该目标")
			failed = true
		}
	}
	if failed {
		return statusFailed
	}
	return statusProcessed
}

// intersect 返回 requested 中出现在 people 里的名字，保持 requested 的顺序。
func intersect(requested, people []string) []string {
	have := mapset.NewSet(people...)
	out := make([]string, 0, len(requested))
	for _, name := range requested {
		if have.Contains(name) {
			out = append(out, name)
		}
	}
	return out
}

// dedup 去重但保持首次出现的顺序。
func dedup(in []string) []string {
	seen := mapset.NewSet[string]()
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen.Add(s) {
			out = append(out, s)
		}
	}
	return out
}
