package display

import "testing"

func TestJSON(t *testing.T) {
	got, err := JSON(map[string]any{"status": "SUCCESS", "grid": []int{1111}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "{\n  \"grid\": [\n    1111\n  ],\n  \"status\": \"SUCCESS\"\n}"
	if got != want {
		t.Fatalf("JSON() = %q, want %q", got, want)
	}

	var empty map[string]any
	if got, _ := JSON(empty); got != "{}" {
		t.Fatalf("nil map should print as {}, got %q", got)
	}

	if _, err := JSON(func() {}); err == nil {
		t.Fatalf("expected an error for an unencodable value")
	}
}
