package output

import "fmt"

// MessageTemplate is a named, reusable message.
type MessageTemplate struct {
	Name     string
	Template string
	engine   *TemplateEngine
}

// NewMessageTemplate creates a new message template.
func NewMessageTemplate(name, template string) *MessageTemplate {
	return &MessageTemplate{
		Name:     name,
		Template: template,
		engine:   NewTemplateEngine(),
	}
}

// Render renders the template with the given data.
func (m *MessageTemplate) Render(data map[string]interface{}) (string, error) {
	return m.engine.Render(m.Template, data)
}

// TemplateLibrary manages a collection of message templates.
type TemplateLibrary struct {
	templates map[string]*MessageTemplate
}

// NewTemplateLibrary creates a new template library.
func NewTemplateLibrary() *TemplateLibrary {
	return &TemplateLibrary{
		templates: make(map[string]*MessageTemplate),
	}
}

// Add adds a template to the library.
func (l *TemplateLibrary) Add(template *MessageTemplate) {
	l.templates[template.Name] = template
}

// Get retrieves a template by name.
func (l *TemplateLibrary) Get(name string) (*MessageTemplate, error) {
	template, ok := l.templates[name]
	if !ok {
		return nil, fmt.Errorf("template '%s' not found", name)
	}
	return template, nil
}

// Render renders a template by name with the given data.
func (l *TemplateLibrary) Render(name string, data map[string]interface{}) (string, error) {
	template, err := l.Get(name)
	if err != nil {
		return "", err
	}
	return template.Render(data)
}

// Messages holds the CLI's user-facing messages.
var Messages = func() *TemplateLibrary {
	lib := NewTemplateLibrary()

	lib.Add(NewMessageTemplate("config_created", "Created {path}"))
	lib.Add(NewMessageTemplate("config_exists", "{path} already exists (use --force to overwrite)"))
	lib.Add(NewMessageTemplate("config_valid", "Configuration is valid ({{pages}} {{pages == 1 ? \"page\" : \"pages\"}})"))
	lib.Add(NewMessageTemplate("generated", "Generated {path}"))
	lib.Add(NewMessageTemplate("usage_hint", "Import it with: import { SEO } from \"@/lib/seo\""))
	lib.Add(NewMessageTemplate("doctor_summary",
		"{{errors}} {{errors == 1 ? \"error\" : \"errors\"}}, "+
			"{{warnings}} {{warnings == 1 ? \"warning\" : \"warnings\"}}, "+
			"{{suggestions}} {{suggestions == 1 ? \"suggestion\" : \"suggestions\"}}"))

	return lib
}()

// RenderMessage renders a message from Messages. Unknown names or render
// errors return the raw template name so output is never empty.
func RenderMessage(name string, data map[string]interface{}) string {
	msg, err := Messages.Render(name, data)
	if err != nil {
		return name
	}
	return msg
}
