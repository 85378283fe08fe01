// Package sidecar 负责 Google Takeout sidecar 元数据文件的识别、解析与
// 主文件/伴生文件关联。
package sidecar

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/John-Robertt/takeout/internal/domain"
)

// 识别的 sidecar 文件名后缀（按顺序匹配，先命中者生效）。
// 其他 .json 文件一律忽略。
const (
	SuffixSupplemental = ".supplemental-metadata.json"
	SuffixShort        = ".suppl.json"
)

// Match 返回文件名命中的 sidecar 后缀；未命中返回 ok=false。
func Match(name string) (suffix string, ok bool) {
	if strings.HasSuffix(name, SuffixSupplemental) {
		return SuffixSupplemental, true
	}
	if strings.HasSuffix(name, SuffixShort) {
		return SuffixShort, true
	}
	return "", false
}

// TrimSuffix 去掉命中的 sidecar 后缀，得到主文件名。
func TrimSuffix(name string) (base string, ok bool) {
	suffix, ok := Match(name)
	if !ok {
		return "", false
	}
	return strings.TrimSuffix(name, suffix), true
}

// MalformedError 表示 sidecar 内容无效：JSON 解析失败，或时间戳字段缺失/非数字。
// 整个文件按 malformed_metadata 失败，处理继续下一个 sidecar。
type MalformedError struct {
	Path string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s：元数据无效 %q：%v", domain.ErrCodeMalformedMeta, e.Path, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// payload 对应 sidecar JSON 的已用子集。
// people[].name 按 any 解码：非字符串的 name 跳过该条目，而不是让整个文件失败。
type payload struct {
	PhotoTakenTime struct {
		Timestamp string `json:"timestamp"`
	} `json:"photoTakenTime"`
	CreationTime struct {
		Timestamp string `json:"timestamp"`
	} `json:"creationTime"`
	People []struct {
		Name any `json:"name"`
	} `json:"people"`
}

// Parse 读取并解析一个 sidecar 文件。
//
// - photoTakenTime.timestamp / creationTime.timestamp 必须是十进制秒的数字字符串
// - people 可选；条目顺序保留，文件内重复不去重
func Parse(path string) (domain.Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Record{}, &MalformedError{Path: path, Err: err}
	}

	var p payload
	if err := json.Unmarshal(b, &p); err != nil {
		return domain.Record{}, &MalformedError{Path: path, Err: err}
	}

	taken, err := parseEpoch("photoTakenTime.timestamp", p.PhotoTakenTime.Timestamp)
	if err != nil {
		return domain.Record{}, &MalformedError{Path: path, Err: err}
	}
	uploaded, err := parseEpoch("creationTime.timestamp", p.CreationTime.Timestamp)
	if err != nil {
		return domain.Record{}, &MalformedError{Path: path, Err: err}
	}

	var people []string
	for _, entry := range p.People {
		if name, ok := entry.Name.(string); ok {
			people = append(people, name)
		}
	}

	return domain.Record{
		PhotoTaken: taken,
		Uploaded:   uploaded,
		People:     people,
	}, nil
}

func parseEpoch(field, s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, fmt.Errorf("%s 缺失或为空", field)
	}
	sec, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s 不是十进制秒：%q", field, s)
	}
	return time.Unix(sec, 0).UTC(), nil
}
