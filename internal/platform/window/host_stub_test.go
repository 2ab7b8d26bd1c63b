//go:build !ebiten

package window

import (
	"errors"
	"testing"
)

func TestRunWithoutBackend(t *testing.T) {
	if err := Run(Options{}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Run() error = %v, expected ErrUnsupported", err)
	}
}
