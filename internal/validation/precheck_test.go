package validation

import (
	"testing"

	"prepwise-backend/internal/model"
)

func TestCheckSyntaxSQL(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"valid select", "SELECT * FROM t", true},
		{"lowercase select", "select id from users", true},
		{"unbalanced parens", "SELECT * FROM t(", false},
		{"closing before opening", "SELECT )( FROM t", false},
		{"missing select", "UPDATE t SET a = 1", false},
		{"select as substring only", "SELECTED * FROM t", false},
		{"subquery with balanced parens", "SELECT * FROM (SELECT id FROM t) sub", true},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := CheckSyntax(tt.code, model.ModuleSQL)
			if got != tt.want {
				t.Errorf("CheckSyntax(%q) = %v (%s), want %v", tt.code, got, reason, tt.want)
			}
		})
	}
}

func TestCheckSyntaxPython(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"balanced function", "def f(x):\n    return [x]", true},
		{"unbalanced paren", "def f(: pass", false},
		{"mismatched pair", "a = [1, 2)", false},
		{"bracket inside string ignored", `s = "a ( b"` + "\nprint(s)", true},
		{"escaped quote inside string", `s = "say \" (" ` + "\nprint(s)", true},
		{"single quoted bracket", "s = '('\nprint(s)", true},
		{"nested structures", "d = {'a': [1, (2, 3)]}", true},
		{"empty code is balanced", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := CheckSyntax(tt.code, model.ModulePython)
			if got != tt.want {
				t.Errorf("CheckSyntax(%q) = %v (%s), want %v", tt.code, got, reason, tt.want)
			}
		})
	}
}

func TestCheckSyntaxExcel(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"formula", "=VLOOKUP(A2,B:C,2,FALSE)", true},
		{"free text description", "I would build a pivot table over the raw data", true},
		{"empty", "", false},
		{"whitespace only", "   \n\t", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := CheckSyntax(tt.code, model.ModuleExcel)
			if got != tt.want {
				t.Errorf("CheckSyntax(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}
