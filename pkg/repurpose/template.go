package repurpose

import (
	"fmt"
	"sort"
	"strings"
	"text/template"
	"text/template/parse"
)

// Template couples a prompt body with the placeholders it requires and the
// documented defaults for the optional ones.
type Template struct {
	Format Format
	System string

	// Fields lists every placeholder the body references, original_content
	// included. Kept in sync with the body; see Placeholders.
	Fields []string

	// Defaults covers every field except original_content, which always
	// comes from the caller.
	Defaults map[string]any

	body *template.Template
}

// registry is read-only after package init; no locking needed.
var registry = map[Format]*Template{
	FormatBlogPost: newTemplate(FormatBlogPost, blogSystemPrompt, blogPromptTemplate,
		[]string{ParamContent, ParamAudience, ParamTone, ParamLength},
		map[string]any{
			ParamAudience: "general audience",
			ParamTone:     "informative",
			ParamLength:   500,
		}),
	FormatTweetThread: newTemplate(FormatTweetThread, tweetSystemPrompt, tweetPromptTemplate,
		[]string{ParamContent, ParamTone},
		map[string]any{
			ParamTone: "engaging",
		}),
	FormatInstagramCarousel: newTemplate(FormatInstagramCarousel, carouselSystemPrompt, carouselPromptTemplate,
		[]string{ParamContent, ParamTone, ParamNumSlides},
		map[string]any{
			ParamTone:      "visual and inspiring",
			ParamNumSlides: 5,
		}),
}

func newTemplate(format Format, system, text string, fields []string, defaults map[string]any) *Template {
	body := template.Must(template.New(string(format)).Option("missingkey=error").Parse(text))
	return &Template{
		Format:   format,
		System:   system,
		Fields:   fields,
		Defaults: defaults,
		body:     body,
	}
}

// Resolve returns the template for format. Formats without a template,
// the coming-soon placeholders included, resolve to an error.
func Resolve(format Format) (*Template, error) {
	t, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("format %q: %w", format, ErrUnsupportedFormat)
	}
	return t, nil
}

// Defaults returns a copy of the documented defaults for format, or nil
// when the format has no template.
func Defaults(format Format) map[string]any {
	t, ok := registry[format]
	if !ok {
		return nil
	}
	out := make(map[string]any, len(t.Defaults))
	for name, value := range t.Defaults {
		out[name] = value
	}
	return out
}

// Render substitutes every placeholder with its value from data. A missing
// key is a render failure, never an empty substitution.
func (t *Template) Render(data map[string]any) (string, error) {
	var sb strings.Builder
	if err := t.body.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return sb.String(), nil
}

// Placeholders lists the distinct fields the template body references,
// sorted. Tests compare this against Fields to keep the two in sync.
func (t *Template) Placeholders() []string {
	seen := make(map[string]bool)
	for _, node := range t.body.Tree.Root.Nodes {
		action, ok := node.(*parse.ActionNode)
		if !ok {
			continue
		}
		for _, cmd := range action.Pipe.Cmds {
			for _, arg := range cmd.Args {
				field, ok := arg.(*parse.FieldNode)
				if !ok || len(field.Ident) == 0 {
					continue
				}
				seen[field.Ident[0]] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
