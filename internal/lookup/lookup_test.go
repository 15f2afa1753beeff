package lookup

import "testing"

func TestNewBuilder(t *testing.T) {
	tests := []struct {
		name     string
		template string
		wantErr  bool
	}{
		{name: "default", template: "", wantErr: false},
		{name: "custom", template: "https://www.merriam-webster.com/dictionary/{word}", wantErr: false},
		{name: "query placement", template: "https://example.com/search?q={word}", wantErr: false},
		{name: "missing placeholder", template: "https://example.com/dictionary/", wantErr: true},
		{name: "javascript scheme", template: "javascript:alert({word})", wantErr: true},
		{name: "relative", template: "/dictionary/{word}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBuilder(tt.template)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewBuilder(%q) expected error, got nil", tt.template)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewBuilder(%q) unexpected error: %v", tt.template, err)
			}
			if b == nil {
				t.Fatal("NewBuilder() returned nil")
			}
		})
	}
}

func TestBuilder_URL(t *testing.T) {
	b, err := NewBuilder("")
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	tests := []struct {
		name string
		word string
		want string
	}{
		{
			name: "plain word",
			word: "cat",
			want: "https://dictionary.cambridge.org/dictionary/english/cat",
		},
		{
			name: "space is escaped",
			word: "give up",
			want: "https://dictionary.cambridge.org/dictionary/english/give%20up",
		},
		{
			name: "slash cannot add a path segment",
			word: "and/or",
			want: "https://dictionary.cambridge.org/dictionary/english/and%2For",
		},
		{
			name: "query characters are escaped",
			word: "what?#x",
			want: "https://dictionary.cambridge.org/dictionary/english/what%3F%23x",
		},
		{
			name: "non-ascii",
			word: "café",
			want: "https://dictionary.cambridge.org/dictionary/english/caf%C3%A9",
		},
		{
			name: "surrounding whitespace trimmed",
			word: "  dog ",
			want: "https://dictionary.cambridge.org/dictionary/english/dog",
		},
		{
			name: "empty word",
			word: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.URL(tt.word); got != tt.want {
				t.Errorf("URL(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}
