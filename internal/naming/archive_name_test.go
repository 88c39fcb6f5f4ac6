package naming

import (
	"strings"
	"testing"
)

func TestArchiveName(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{
			name:  "codes sorted numerically",
			files: []string{"obra_123.pdf", "obra_045.pdf"},
			want:  "045_&_123.zip",
		},
		{
			name:  "duplicate codes collapse",
			files: []string{"ponto_777.pdf", "777_extra.pdf"},
			want:  "777.zip",
		},
		{
			name:  "short numbers ignored",
			files: []string{"folha_12.pdf"},
			want:  FallbackArchiveName,
		},
		{
			name:  "no codes at all",
			files: []string{"folha.pdf", "ponto.pdf"},
			want:  FallbackArchiveName,
		},
		{
			name: "more than five inputs",
			files: []string{
				"a_100.pdf", "b_200.pdf", "c_300.pdf",
				"d_400.pdf", "e_500.pdf", "f_600.pdf",
			},
			want: GenericArchiveName,
		},
		{
			name:  "directory prefix stripped",
			files: []string{"/data/in/obra_555.pdf"},
			want:  "555.zip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArchiveName(tt.files); got != tt.want {
				t.Errorf("ArchiveName(%v) = %q, want %q", tt.files, got, tt.want)
			}
		})
	}
}

func TestArchiveNameTruncatesLongJoins(t *testing.T) {
	files := []string{
		"a_1111111111111.pdf",
		"b_2222222222222.pdf",
		"c_3333333333333.pdf",
		"d_4444444444444.pdf",
		"e_5555555555555.pdf",
	}

	got := ArchiveName(files)
	if !strings.HasSuffix(got, "....zip") {
		t.Fatalf("expected truncated name ending in ....zip, got %q", got)
	}
	if len(got) != maxArchiveBase+len(".zip") {
		t.Errorf("expected %d chars, got %d (%q)", maxArchiveBase+len(".zip"), len(got), got)
	}
}
