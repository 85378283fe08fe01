package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/John-Robertt/takeout/internal/app/run"
	"github.com/John-Robertt/takeout/internal/config"
	"github.com/John-Robertt/takeout/internal/domain"
	"github.com/John-Robertt/takeout/internal/infra/tags"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	ca, err := parseArgs(args, tags.Supported)
	if err != nil {
		fmt.Fprintf(os.Stderr, "参数错误：%v\n\n", err)
		printUsage(os.Stderr)
		return 1
	}
	if ca.Help {
		printUsage(os.Stdout)
		return 0
	}
	if ca.Root == "" {
		printUsage(os.Stderr)
		return 1
	}

	if _, err := os.Stat(ca.Root); err != nil {
		fmt.Fprintf(os.Stderr, "目录不存在：%s\n", ca.Root)
		return 1
	}

	eff, err := config.Load(ca.Root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	rr := run.Execute(run.Options{
		Root:        eff.Root,
		Mode:        ca.Mode,
		AssignNames: ca.AssignNames,
		RemoveNames: ca.RemoveNames,
		ExcludeDirs: eff.ExcludeDirs,
	}, run.Deps{
		Tagger: tags.New(),
		Stdout: os.Stdout,
		Log:    log,
	})

	log.Info().
		Str("mode", string(rr.Mode)).
		Int("scanned", rr.Scanned).
		Int("processed", rr.Processed).
		Int("skipped", rr.Skipped).
		Int("failed", rr.Failed).
		Dur("elapsed", rr.FinishedAt.Sub(rr.StartedAt)).
		Msg("完成")

	// 单文件级错误不影响退出码：遍历正常结束即为成功。
	return 0
}

// cliArgs 是命令行解析结果。模式互斥在解析期强制（多个模式 flag 即报错）。
type cliArgs struct {
	Root string
	Mode domain.Mode

	AssignNames []string
	RemoveNames []string

	Help bool
}

func parseArgs(args []string, tagsSupported bool) (cliArgs, error) {
	if len(args) == 0 {
		return cliArgs{}, fmt.Errorf("缺少 <root-folder>")
	}

	ca := cliArgs{}

	setMode := func(m domain.Mode) error {
		if ca.Mode != domain.ModeNone {
			return fmt.Errorf("一次只能指定一个模式（已有 --%s）", ca.Mode)
		}
		ca.Mode = m
		return nil
	}

	takeValue := func(flag string, args []string, i *int) (string, error) {
		a := args[*i]
		if v, ok := strings.CutPrefix(a, flag+"="); ok {
			return v, nil
		}
		if *i+1 >= len(args) {
			return "", fmt.Errorf("%s 需要一个值", flag)
		}
		*i++
		return args[*i], nil
	}

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case isHelp(a):
			ca.Help = true
			return ca, nil

		case a == "--list":
			if err := setMode(domain.ModeList); err != nil {
				return cliArgs{}, err
			}
		case a == "--set-file-dates":
			if err := setMode(domain.ModeSetDates); err != nil {
				return cliArgs{}, err
			}
		case a == "--list-tags":
			if err := setMode(domain.ModeListTags); err != nil {
				return cliArgs{}, err
			}

		case tagsSupported && (a == "--assign-people-tags" || strings.HasPrefix(a, "--assign-people-tags=")):
			v, err := takeValue("--assign-people-tags", args, &i)
			if err != nil {
				return cliArgs{}, err
			}
			if err := setMode(domain.ModeAssignTags); err != nil {
				return cliArgs{}, err
			}
			ca.AssignNames = splitNames(v)
		case tagsSupported && a == "--assign-all-people-tags":
			if err := setMode(domain.ModeAssignAllTags); err != nil {
				return cliArgs{}, err
			}
		case tagsSupported && a == "--remove-all-tags":
			if err := setMode(domain.ModeRemoveAllTags); err != nil {
				return cliArgs{}, err
			}
		case tagsSupported && (a == "--remove-named-tags" || strings.HasPrefix(a, "--remove-named-tags=")):
			v, err := takeValue("--remove-named-tags", args, &i)
			if err != nil {
				return cliArgs{}, err
			}
			if err := setMode(domain.ModeRemoveNamedTags); err != nil {
				return cliArgs{}, err
			}
			ca.RemoveNames = splitNames(v)

		case strings.HasPrefix(a, "-"):
			// 未启用标签能力的平台上，标签 flag 也落到这里：无法识别的参数。
			return cliArgs{}, fmt.Errorf("无法识别的参数 %q", a)

		default:
			if ca.Root != "" {
				return cliArgs{}, fmt.Errorf("重复的 root-folder：%q 与 %q", ca.Root, a)
			}
			ca.Root = a
		}
	}

	return ca, nil
}

// splitNames 按分号拆分名字列表，丢弃空段。
func splitNames(s string) []string {
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func isHelp(s string) bool {
	return s == "-h" || s == "--help" || s == "help"
}

func printUsage(w *os.File) {
	fmt.Fprint(w, `用法：
  takeout <root-folder> [flags]

flags：
  --help                       显示帮助
  --list                       以 CSV 列出文件、拍摄/上传时间与 people
  --set-file-dates             按元数据设置文件时间
  --list-tags                  列出全部唯一的 people 名字
`)
	if tags.Supported {
		fmt.Fprint(w, `  --assign-people-tags "a;b"   把指定名字（与 people 取交集）写为 Finder 标签（仅 macOS）
  --assign-all-people-tags     把全部 people 名字写为 Finder 标签（仅 macOS）
  --remove-all-tags            清除文件的全部 Finder 标签（仅 macOS）
  --remove-named-tags "a;b"    删除指定的 Finder 标签（仅 macOS）
`)
	}
	fmt.Fprint(w, `
可选配置：<root-folder>/takeout.json（exclude_dirs 排除子目录）。
`)
}
