package validation

import (
	"testing"

	"github.com/video-social-api/internal/apperrors"
)

func TestIsValidID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "valid UUID", id: "550e8400-e29b-41d4-a716-446655440000", want: true},
		{name: "valid UUID uppercase", id: "550E8400-E29B-41D4-A716-446655440000", want: true},
		{name: "empty string", id: "", want: false},
		{name: "not a UUID", id: "channel-42", want: false},
		{name: "truncated UUID", id: "550e8400-e29b-41d4-a716", want: false},
		{name: "UUID with trailing garbage", id: "550e8400-e29b-41d4-a716-446655440000x", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidID(tt.id); got != tt.want {
				t.Errorf("IsValidID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestValidateID(t *testing.T) {
	if err := ValidateID("video id", "550e8400-e29b-41d4-a716-446655440000"); err != nil {
		t.Errorf("Expected nil for valid id, got %v", err)
	}

	err := ValidateID("video id", "not-a-uuid")
	if err == nil {
		t.Fatal("Expected error for malformed id")
	}
	if apperrors.KindOf(err) != apperrors.KindInvalidIdentifier {
		t.Errorf("Expected KindInvalidIdentifier, got %v", apperrors.KindOf(err))
	}

	err = ValidateID("video id", "")
	if err == nil {
		t.Fatal("Expected error for empty id")
	}
	if apperrors.KindOf(err) != apperrors.KindInvalidIdentifier {
		t.Errorf("Expected KindInvalidIdentifier, got %v", apperrors.KindOf(err))
	}
}
