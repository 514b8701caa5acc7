package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("hunter2")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilAndEmpty(t *testing.T) {
	WipeByteArray(nil)
	WipeByteArray([]byte{})
}

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("username: %w", ErrInvalidField)
	if !errors.Is(wrapped, ErrInvalidField) {
		t.Fatalf("wrapped error does not match ErrInvalidField: %v", wrapped)
	}
	if errors.Is(wrapped, ErrStoreFull) {
		t.Fatalf("wrapped error unexpectedly matches ErrStoreFull")
	}
}
