package domain

const (
	// RolePrimary 表示 sidecar 去掉元数据后缀得到的主文件。
	RolePrimary = "primary"
	// RoleCompanion 表示与主文件同名、自身没有 sidecar 的伴生视频文件。
	RoleCompanion = "companion"
)

// Target 是一个待处理的媒体文件路径及其角色。
//
// 不变量：伴生文件永远使用主文件的 Record 更新，绝不使用自己的元数据
// （伴生文件的定义就是“没有独立元数据”）。
type Target struct {
	AbsPath string
	Role    string
}
