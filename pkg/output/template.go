package output

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// placeholderPattern matches {{expression}} or {variable}. Both kinds are
// replaced in a single pass so substituted values are never rescanned.
var placeholderPattern = regexp.MustCompile(`\{\{([^}]+)\}\}|\{([a-zA-Z_][a-zA-Z0-9_\.]*)\}`)

// TemplateEngine renders text with {{expression}} and {variable} placeholders.
// Expressions are evaluated with expr and compiled programs are cached.
type TemplateEngine struct {
	mu           sync.Mutex
	programCache map[string]*vm.Program
}

// NewTemplateEngine creates a new template engine.
func NewTemplateEngine() *TemplateEngine {
	return &TemplateEngine{
		programCache: make(map[string]*vm.Program),
	}
}

// Render renders a template string with the given data.
// Supports two template syntaxes:
//  1. Expr expressions: {{expression}}
//  2. Simple variables: {variable_name} or {object.field}
//
// Rendered values are inserted as-is, even when they contain braces.
func (t *TemplateEngine) Render(template string, data map[string]interface{}) (string, error) {
	if template == "" {
		return "", nil
	}
	if data == nil {
		data = make(map[string]interface{})
	}

	var lastErr error
	result := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		if lastErr != nil {
			return match
		}

		var (
			value interface{}
			err   error
		)
		if strings.HasPrefix(match, "{{") {
			value, err = t.evaluateExpression(strings.TrimSpace(match[2:len(match)-2]), data)
			if err != nil {
				err = fmt.Errorf("failed to evaluate expression: %w", err)
			}
		} else {
			value, err = resolveVariable(match[1:len(match)-1], data)
			if err != nil {
				err = fmt.Errorf("failed to resolve variable: %w", err)
			}
		}
		if err != nil {
			lastErr = err
			return match
		}
		return fmt.Sprint(value)
	})

	if lastErr != nil {
		return "", lastErr
	}
	return result, nil
}

func (t *TemplateEngine) evaluateExpression(expression string, data map[string]interface{}) (interface{}, error) {
	t.mu.Lock()
	program, ok := t.programCache[expression]
	if !ok {
		var err error
		program, err = expr.Compile(expression, expr.Env(data), expr.AllowUndefinedVariables())
		if err != nil {
			t.mu.Unlock()
			return nil, fmt.Errorf("failed to compile expression '%s': %w", expression, err)
		}
		t.programCache[expression] = program
	}
	t.mu.Unlock()

	result, err := expr.Run(program, data)
	if err != nil {
		return nil, fmt.Errorf("failed to execute expression '%s': %w", expression, err)
	}
	return result, nil
}

// resolveVariable resolves a variable path like "name" or "site.baseUrl".
func resolveVariable(path string, data map[string]interface{}) (interface{}, error) {
	var current interface{} = data

	for _, part := range strings.Split(path, ".") {
		switch v := current.(type) {
		case map[string]interface{}:
			val, ok := v[part]
			if !ok {
				return nil, fmt.Errorf("variable '%s' not found", path)
			}
			current = val
		case map[string]string:
			val, ok := v[part]
			if !ok {
				return nil, fmt.Errorf("variable '%s' not found", path)
			}
			current = val
		default:
			return nil, fmt.Errorf("cannot access field '%s' on non-map type", part)
		}
	}

	return current, nil
}
