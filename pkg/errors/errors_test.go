package errors

import (
	"testing"
)

func TestWrap_Nil(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should be nil")
	}
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Error("Wrapf(nil) should be nil")
	}
}

func TestWrap_PreservesSentinel(t *testing.T) {
	err := Wrap(ErrBusy, "start job")
	if !Is(err, ErrBusy) {
		t.Errorf("wrapped error should match ErrBusy: %v", err)
	}
	if err.Error() != "start job: engine busy" {
		t.Errorf("message: %q", err.Error())
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(ErrLoadFailed, "model %s", "pyannote")
	if !Is(err, ErrLoadFailed) {
		t.Errorf("wrapped error should match ErrLoadFailed: %v", err)
	}
	if err.Error() != "model pyannote: model load failed" {
		t.Errorf("message: %q", err.Error())
	}
}
