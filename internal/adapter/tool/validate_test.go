package tool

import "testing"

func TestRequireField(t *testing.T) {
	if err := RequireField("topic", "apollo"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := RequireField("topic", "")
	if err == nil {
		t.Fatal("expected error for empty field")
	}
	if err.Error() != "'topic' is required" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestValidateEnum(t *testing.T) {
	if err := ValidateEnum("depth", "deep", "normal", "deep"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateEnum("depth", "", "normal", "deep"); err != nil {
		t.Errorf("empty value should pass: %v", err)
	}
	if err := ValidateEnum("depth", "extreme", "normal", "deep"); err == nil {
		t.Error("expected error for value outside enum")
	}
}

func TestValidateURL(t *testing.T) {
	cases := []struct {
		name  string
		value string
		ok    bool
	}{
		{"https", "https://example.com/page", true},
		{"http", "http://example.com", true},
		{"empty allowed", "", true},
		{"ftp", "ftp://example.com/file", false},
		{"no host", "https://", false},
		{"relative", "/just/a/path", false},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL("url", tt.value)
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Errorf("expected error for %q", tt.value)
			}
		})
	}
}

func TestValidateAll(t *testing.T) {
	if err := ValidateAll(nil, nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := ValidateAll(
		RequireField("url", "https://example.com"),
		ValidateURL("url", "ftp://nope"),
	)
	if err == nil {
		t.Error("expected first failing validation to surface")
	}
}

func TestJoinComma(t *testing.T) {
	if got := joinComma(nil); got != "" {
		t.Errorf("got %q", got)
	}
	if got := joinComma([]string{"a"}); got != "a" {
		t.Errorf("got %q", got)
	}
	if got := joinComma([]string{"a", "b", "c"}); got != "a, b, c" {
		t.Errorf("got %q", got)
	}
}
