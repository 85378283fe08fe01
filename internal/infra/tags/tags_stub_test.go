//go:build !darwin

package tags

import (
	"errors"
	"testing"
)

func TestStub_AllOpsUnsupported(t *testing.T) {
	s := New()

	if _, err := s.Get("x"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Get 期望 ErrUnsupported，实际 %v", err)
	}
	if err := s.Set("x", []string{"a"}); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Set 期望 ErrUnsupported，实际 %v", err)
	}
	if err := s.RemoveAll("x"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("RemoveAll 期望 ErrUnsupported，实际 %v", err)
	}
	if err := s.RemoveNamed("x", []string{"a"}); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("RemoveNamed 期望 ErrUnsupported，实际 %v", err)
	}
	if Supported {
		t.Fatalf("Stub 平台 Supported 必须为 false")
	}
}
