package dictionary

import "testing"

const shalomStressed = "\u05E9\u05B8\u05C1\u05DC\u05AB\u05D5\u05B9\u05DD"

func TestExpand(t *testing.T) {
	d := New(map[string]string{
		"צה\"ל": "[tsahal](/tsaˈhal/)",
		"שלום":  shalomStressed,
		"%":     "אָחוּז",
		"5":     "never",
		"ok!":   "okay",
	})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"whole run", "צה\"ל", "[tsahal](/tsaˈhal/)"},
		{"nikud insensitive", "\u05E9\u05B8\u05C1\u05DC\u05D5\u05B9\u05DD", shalomStressed},
		{"hebrew span inside run", "(שלום)", "(" + shalomStressed + ")"},
		{"symbol", "50 %", "50 אָחוּז"},
		{"numbers untouched", "5", "5"},
		{"latin run", "ok!", "okay"},
		{"whitespace kept", "שלום\tעולם  ", shalomStressed + "\tעולם  "},
		{"unknown", "בית", "בית"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Expand(tt.input); got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
