//go:build !darwin

package tags

// Supported 标记当前平台是否注册标签相关的命令行 flag。
const Supported = false

// Stub 在没有文件标签能力的平台上占位；正常情况下走不到这里
// （对应 flag 根本不会被接受）。
type Stub struct{}

func New() Stub { return Stub{} }

func (Stub) Get(path string) ([]string, error) { return nil, ErrUnsupported }

func (Stub) Set(path string, names []string) error { return ErrUnsupported }

func (Stub) RemoveAll(path string) error { return ErrUnsupported }

func (Stub) RemoveNamed(path string, names []string) error { return ErrUnsupported }
