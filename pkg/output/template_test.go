package output

import "testing"

func TestTemplateEngine_Render(t *testing.T) {
	engine := NewTemplateEngine()

	tests := []struct {
		name     string
		template string
		data     map[string]interface{}
		expected string
	}{
		{
			name:     "expression placeholder",
			template: "name: {{siteName}}",
			data:     map[string]interface{}{"siteName": "Acme"},
			expected: "name: Acme",
		},
		{
			name:     "quoted with toJSON",
			template: "name: {{ toJSON(siteName) }}",
			data:     map[string]interface{}{"siteName": "Acme: Tools"},
			expected: `name: "Acme: Tools"`,
		},
		{
			name:     "conditional expression",
			template: "{{n}} {{n == 1 ? \"page\" : \"pages\"}}",
			data:     map[string]interface{}{"n": 2},
			expected: "2 pages",
		},
		{
			name:     "simple variable",
			template: "Created {path}",
			data:     map[string]interface{}{"path": "lib/seo.yaml"},
			expected: "Created lib/seo.yaml",
		},
		{
			name:     "nested variable",
			template: "{site.baseUrl}",
			data: map[string]interface{}{
				"site": map[string]string{"baseUrl": "https://acme.test"},
			},
			expected: "https://acme.test",
		},
		{
			name:     "braces with spaces are left alone",
			template: "import { SEO } from \"@/lib/seo\"",
			data:     nil,
			expected: "import { SEO } from \"@/lib/seo\"",
		},
		{
			name:     "expression value with braces is not rescanned",
			template: "name: {{ toJSON(siteName) }}",
			data:     map[string]interface{}{"siteName": "Acme {beta}"},
			expected: `name: "Acme {beta}"`,
		},
		{
			name:     "variable value with braces is not rescanned",
			template: "Created {path} ({{n}})",
			data:     map[string]interface{}{"path": "{tmp}/seo.yaml", "n": 1},
			expected: "Created {tmp}/seo.yaml (1)",
		},
		{
			name:     "empty template",
			template: "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Render(tt.template, tt.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestTemplateEngine_Errors(t *testing.T) {
	engine := NewTemplateEngine()

	if _, err := engine.Render("{missing}", map[string]interface{}{}); err == nil {
		t.Error("expected error for missing variable")
	}
	if _, err := engine.Render("{{ 1 + }}", nil); err == nil {
		t.Error("expected error for invalid expression")
	}
	if _, err := engine.Render("{name.first}", map[string]interface{}{"name": "x"}); err == nil {
		t.Error("expected error for field access on a string")
	}
}

func TestTemplateEngine_Cache(t *testing.T) {
	engine := NewTemplateEngine()
	data := map[string]interface{}{"a": 1, "b": 2}

	for i := 0; i < 2; i++ {
		got, err := engine.Render("{{a + b}}", data)
		if err != nil || got != "3" {
			t.Errorf("expected 3, got %q (%v)", got, err)
		}
	}
	if len(engine.programCache) != 1 {
		t.Errorf("expected 1 cached program, got %d", len(engine.programCache))
	}
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]interface{}
		expected string
	}{
		{
			name:     "doctor_summary",
			data:     map[string]interface{}{"errors": 1, "warnings": 0, "suggestions": 2},
			expected: "1 error, 0 warnings, 2 suggestions",
		},
		{
			name:     "config_valid",
			data:     map[string]interface{}{"pages": 1},
			expected: "Configuration is valid (1 page)",
		},
		{
			name:     "generated",
			data:     map[string]interface{}{"path": "lib/seo.tsx"},
			expected: "Generated lib/seo.tsx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderMessage(tt.name, tt.data); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}

	if got := RenderMessage("nope", nil); got != "nope" {
		t.Errorf("expected fallback to name, got %q", got)
	}
	if _, err := Messages.Get("usage_hint"); err != nil {
		t.Errorf("expected usage_hint in message library: %v", err)
	}
}
