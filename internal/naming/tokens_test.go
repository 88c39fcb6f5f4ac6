package naming

import "testing"

func TestSanitizeTokens(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{
			name:   "plain two-token name",
			in:     "MARIA JOSE",
			want:   "MARIA JOSE",
			wantOK: true,
		},
		{
			name:   "keeps short connectives",
			in:     "JOAO DE SOUZA",
			want:   "JOAO DE SOUZA",
			wantOK: true,
		},
		{
			name:   "drops single-letter tokens",
			in:     "JOAO D SILVA",
			want:   "JOAO SILVA",
			wantOK: true,
		},
		{
			name:   "drops form-field stopwords",
			in:     "MARIA JOSE CARGO CTPS",
			want:   "MARIA JOSE",
			wantOK: true,
		},
		{
			name:   "strips digits and punctuation",
			in:     "MARIA123 JOSE.SILVA",
			want:   "MARIA JOSE SILVA",
			wantOK: true,
		},
		{
			name:   "caps at six tokens",
			in:     "UM DOIS TRES QUATRO CINCO SEIS SETE OITO",
			want:   "UM DOIS TRES QUATRO CINCO SEIS",
			wantOK: true,
		},
		{
			name:   "single surviving token rejected",
			in:     "CARGO MARIA",
			wantOK: false,
		},
		{
			name:   "empty input rejected",
			in:     "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SanitizeTokens(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("SanitizeTokens(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("SanitizeTokens(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`a/b:c`, "a b c"},
		{`report*?"<>|`, "report"},
		{"  spaced   name  ", "spaced name"},
		{`\\//`, FallbackName},
		{"", FallbackName},
		{"MARIA JOSE", "MARIA JOSE"},
	}

	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
