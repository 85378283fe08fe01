package domain

import "time"

// Record 是一个 sidecar 元数据文件解析后的结果。
//
// 约束：
// - PhotoTaken / Uploaded 必填（sidecar 中缺失或非数字即整个文件失败）
// - People 保持 JSON 数组内的原始顺序，文件内重复不去重（去重只发生在 list-tags 的全局累加器）
// - 解析完成后不可变；处理完对应 sidecar 即丢弃，不跨运行持久化
type Record struct {
	PhotoTaken time.Time // photoTakenTime.timestamp（拍摄时间）
	Uploaded   time.Time // creationTime.timestamp（Takeout 的字段名是 creationTime，实际是上传时间）
	People     []string
}
