package main

import (
	"testing"

	"github.com/John-Robertt/takeout/internal/domain"
)

func TestParseArgs_RootOnly(t *testing.T) {
	ca, err := parseArgs([]string{"/photos"}, false)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if ca.Root != "/photos" || ca.Mode != domain.ModeNone {
		t.Fatalf("解析结果不正确：%+v", ca)
	}
}

func TestParseArgs_Modes(t *testing.T) {
	cases := []struct {
		args []string
		mode domain.Mode
	}{
		{[]string{"/p", "--list"}, domain.ModeList},
		{[]string{"/p", "--set-file-dates"}, domain.ModeSetDates},
		{[]string{"/p", "--list-tags"}, domain.ModeListTags},
	}
	for _, c := range cases {
		ca, err := parseArgs(c.args, false)
		if err != nil {
			t.Fatalf("%v：不期望错误：%v", c.args, err)
		}
		if ca.Mode != c.mode {
			t.Fatalf("%v：期望模式 %q，实际 %q", c.args, c.mode, ca.Mode)
		}
	}
}

func TestParseArgs_TagFlagsNeedSupport(t *testing.T) {
	// 无标签能力的平台：标签 flag 是无法识别的参数。
	for _, args := range [][]string{
		{"/p", "--assign-people-tags", "Ann"},
		{"/p", "--assign-all-people-tags"},
		{"/p", "--remove-all-tags"},
		{"/p", "--remove-named-tags", "Ann"},
	} {
		if _, err := parseArgs(args, false); err == nil {
			t.Fatalf("%v：无标签能力时必须报错", args)
		}
	}

	// 有标签能力：正常解析。
	ca, err := parseArgs([]string{"/p", "--assign-people-tags", "Ann;Bob"}, true)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if ca.Mode != domain.ModeAssignTags || len(ca.AssignNames) != 2 {
		t.Fatalf("解析结果不正确：%+v", ca)
	}
}

func TestParseArgs_EqualsForm(t *testing.T) {
	ca, err := parseArgs([]string{"/p", "--remove-named-tags=Ann;;Bob"}, true)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if ca.Mode != domain.ModeRemoveNamedTags {
		t.Fatalf("模式不正确：%+v", ca)
	}
	// 空段丢弃。
	if len(ca.RemoveNames) != 2 || ca.RemoveNames[0] != "Ann" || ca.RemoveNames[1] != "Bob" {
		t.Fatalf("名字列表不正确：%v", ca.RemoveNames)
	}
}

func TestParseArgs_MissingValue(t *testing.T) {
	if _, err := parseArgs([]string{"/p", "--assign-people-tags"}, true); err == nil {
		t.Fatalf("缺值的 flag 必须报错")
	}
}

func TestParseArgs_MultipleModesRejected(t *testing.T) {
	if _, err := parseArgs([]string{"/p", "--list", "--set-file-dates"}, false); err == nil {
		t.Fatalf("多个模式 flag 必须在解析期拒绝")
	}
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	if _, err := parseArgs([]string{"/p", "--bogus"}, true); err == nil {
		t.Fatalf("未知 flag 必须报错")
	}
}

func TestParseArgs_Help(t *testing.T) {
	ca, err := parseArgs([]string{"--help"}, false)
	if err != nil || !ca.Help {
		t.Fatalf("--help 解析不正确：%+v %v", ca, err)
	}
	ca, err = parseArgs([]string{"/p", "-h"}, false)
	if err != nil || !ca.Help {
		t.Fatalf("-h 解析不正确：%+v %v", ca, err)
	}
}

func TestParseArgs_NoArgs(t *testing.T) {
	if _, err := parseArgs(nil, false); err == nil {
		t.Fatalf("无参数必须报错")
	}
}

func TestParseArgs_DuplicateRoot(t *testing.T) {
	if _, err := parseArgs([]string{"/a", "/b"}, false); err == nil {
		t.Fatalf("重复的 root-folder 必须报错")
	}
}

func TestSplitNames(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Ann;Bob", []string{"Ann", "Bob"}},
		{";Ann;;Bob;", []string{"Ann", "Bob"}},
		{"", nil},
		{";;;", nil},
		{"Ann Smith", []string{"Ann Smith"}},
	}
	for _, c := range cases {
		got := splitNames(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("splitNames(%q) 期望 %v，实际 %v", c.in, c.want, got)
		}
		for i := range c.want {
			if got[i] != c.want[i] {
				t.Fatalf("splitNames(%q) 期望 %v，实际 %v", c.in, c.want, got)
			}
		}
	}
}

func TestRealMain_MissingRoot(t *testing.T) {
	if code := realMain([]string{"/definitely/not/here"}); code != 1 {
		t.Fatalf("不存在的 root 必须退出码 1，实际 %d", code)
	}
}

func TestRealMain_Help(t *testing.T) {
	if code := realMain([]string{"--help"}); code != 0 {
		t.Fatalf("--help 必须退出码 0，实际 %d", code)
	}
}
