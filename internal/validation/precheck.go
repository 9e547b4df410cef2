package validation

import (
	"strings"

	"prepwise-backend/internal/model"
)

// CheckSyntax is the local pre-check run before any external call. It
// is a pure predicate: pre-check failure short-circuits validation and
// the external service is never contacted.
func CheckSyntax(code string, module model.Module) (bool, string) {
	switch module {
	case model.ModuleSQL:
		return checkSQL(code)
	case model.ModulePython:
		return checkPython(code)
	case model.ModuleExcel:
		// Deliberately permissive: Excel answers may be formulas or a
		// free-text description of the approach.
		if strings.TrimSpace(code) == "" {
			return false, "Answer is empty"
		}
		return true, ""
	}
	if strings.TrimSpace(code) == "" {
		return false, "Answer is empty"
	}
	return true, ""
}

func checkSQL(code string) (bool, string) {
	upper := strings.ToUpper(code)
	if !containsToken(upper, "SELECT") {
		return false, "SQL must contain a SELECT statement"
	}

	depth := 0
	for _, ch := range code {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false, "Unbalanced parentheses"
			}
		}
	}
	if depth != 0 {
		return false, "Unbalanced parentheses"
	}
	return true, ""
}

// checkPython balances ()[]{} while ignoring characters inside string
// literals, honoring escaped quotes.
func checkPython(code string) (bool, string) {
	var stack []byte
	inString := false
	var quote byte
	escaped := false

	for i := 0; i < len(code); i++ {
		ch := code[i]

		if escaped {
			escaped = false
			continue
		}

		if inString {
			switch ch {
			case '\\':
				escaped = true
			case quote:
				inString = false
			}
			continue
		}

		switch ch {
		case '\'', '"':
			inString = true
			quote = ch
		case '(', '[', '{':
			stack = append(stack, ch)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != opener(ch) {
				return false, "Unbalanced brackets"
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) != 0 {
		return false, "Unbalanced brackets"
	}
	return true, ""
}

func opener(closer byte) byte {
	switch closer {
	case ')':
		return '('
	case ']':
		return '['
	default:
		return '{'
	}
}

func containsToken(upper, token string) bool {
	idx := 0
	for {
		pos := strings.Index(upper[idx:], token)
		if pos < 0 {
			return false
		}
		pos += idx
		beforeOK := pos == 0 || !isWordChar(upper[pos-1])
		after := pos + len(token)
		afterOK := after >= len(upper) || !isWordChar(upper[after])
		if beforeOK && afterOK {
			return true
		}
		idx = pos + len(token)
	}
}

func isWordChar(ch byte) bool {
	return ch == '_' || (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9')
}
