package validation

import "testing"

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		valid   bool
		wantMsg string
	}{
		{"valid https", "https://api.example.com", true, ""},
		{"valid http", "http://api.test", true, ""},
		{"valid with port", "http://localhost:8080", true, ""},
		{"valid with path", "https://example.com/trends", true, ""},
		{"empty string", "", false, "Base URL is required"},
		{"no scheme", "api.example.com", false, "Base URL must use http:// or https:// scheme"},
		{"file scheme", "file:///etc/passwd", false, "Base URL must use http:// or https:// scheme"},
		{"javascript scheme", "javascript:alert(1)", false, "Base URL must use http:// or https:// scheme"},
		{"uppercase scheme", "HTTPS://example.com", true, ""},
		{"scheme only", "https://", false, "Base URL must have a valid host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateBaseURL(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateBaseURL(%q) valid = %v, want %v", tt.url, valid, tt.valid)
			}
			if !valid && msg != tt.wantMsg {
				t.Errorf("ValidateBaseURL(%q) msg = %q, want %q", tt.url, msg, tt.wantMsg)
			}
		})
	}
}

func TestExtractPostID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"status url", "https://x.com/someone/status/1234567890", "1234567890", false},
		{"trailing slash", "https://x.com/someone/status/1234567890/", "1234567890", false},
		{"query string", "https://x.com/someone/status/1234567890?s=20&t=abc", "1234567890", false},
		{"trailing slash and query", "https://x.com/someone/status/1234567890?s=20/", "1234567890", false},
		{"bare id", "1234567890", "1234567890", false},
		{"legacy domain", "https://twitter.com/someone/status/42", "42", false},
		{"empty string", "", "", true},
		{"only slashes", "///", "", true},
		{"no id segment", "https://x.com/someone", "", true},
		{"non-numeric segment", "https://x.com/someone/status/abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractPostID(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractPostID(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractPostID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
