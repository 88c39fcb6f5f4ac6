package naming

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses whitespace and uppercases",
			in:   "empregado:  123   maria\tjose\n silva",
			want: "EMPREGADO: 123 MARIA JOSE SILVA",
		},
		{
			name: "joins hyphenated line breaks",
			in:   "GON-\nCALVES",
			want: "GON CALVES",
		},
		{
			name: "trims surrounding space",
			in:   "  ponto  ",
			want: "PONTO",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name   string
		clean  string
		raw    string
		want   string
		wantOK bool
	}{
		{
			name:   "localizacao layout terminated by CTPS",
			clean:  "LOCALIZAÇÃO: 101 MARIA JOSE DA SILVA CTPS: 12345 MENSALISTA",
			want:   "MARIA JOSE DA SILVA",
			wantOK: true,
		},
		{
			name:   "localizacao layout terminated by long number",
			clean:  "LOCALIZAÇÃO: 2043 ANTONIO CARLOS PEREIRA 987654 CATEGORIA: X",
			want:   "ANTONIO CARLOS PEREIRA",
			wantOK: true,
		},
		{
			name:   "empregado layout with registration number",
			clean:  "EMPREGADO: 4567 JOAO CARLOS DOS SANTOS CARGO: AUXILIAR",
			want:   "JOAO CARLOS DOS SANTOS",
			wantOK: true,
		},
		{
			name:   "bare empregado layout",
			clean:  "EMPREGADO: FRANCISCA LIMA",
			want:   "FRANCISCA LIMA",
			wantOK: true,
		},
		{
			name:   "blank form layout",
			clean:  "CADASTRO: 889 ANTONIO MARQUES CNPJ 00.111.222/0001-33",
			want:   "ANTONIO MARQUES",
			wantOK: true,
		},
		{
			name:   "blank form recovered from raw text",
			clean:  "FOLHA DE PONTO",
			raw:    "cadastro: 12  pedro henrique alves  cnpj 11.222",
			want:   "PEDRO HENRIQUE ALVES",
			wantOK: true,
		},
		{
			name:   "no layout matches",
			clean:  "RELATORIO MENSAL DE HORAS",
			wantOK: false,
		},
		{
			name:   "empty page",
			clean:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractName(tt.clean, tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ExtractName ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ExtractName = %q, want %q", got, tt.want)
			}
		})
	}
}
