package repurpose

import (
	"errors"
	"sort"
	"strings"
	"testing"
)

func TestPlaceholdersMatchFields(t *testing.T) {
	for format, tpl := range registry {
		fields := make([]string, len(tpl.Fields))
		copy(fields, tpl.Fields)
		sort.Strings(fields)

		placeholders := tpl.Placeholders()

		if len(fields) != len(placeholders) {
			t.Fatalf("%s: fields %v, placeholders %v", format, fields, placeholders)
		}
		for i := range fields {
			if fields[i] != placeholders[i] {
				t.Errorf("%s: fields %v, placeholders %v", format, fields, placeholders)
				break
			}
		}
	}
}

func TestDefaultsCoverOptionalFields(t *testing.T) {
	for format, tpl := range registry {
		for _, field := range tpl.Fields {
			if field == ParamContent {
				continue
			}
			if _, ok := tpl.Defaults[field]; !ok {
				t.Errorf("%s: field %s has no default", format, field)
			}
		}
		if _, ok := tpl.Defaults[ParamContent]; ok {
			t.Errorf("%s: original_content must not have a default", format)
		}
	}
}

func TestResolveUnknownFormat(t *testing.T) {
	_, err := Resolve(Format("podcast_script"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("got %v, want ErrUnsupportedFormat", err)
	}
}

func TestResolvePlaceholderFormats(t *testing.T) {
	for _, format := range []Format{FormatLinkedInPost, FormatEmailNewsletter} {
		_, err := Resolve(format)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%s: got %v, want ErrUnsupportedFormat", format, err)
		}
		if format.Available() {
			t.Errorf("%s: should not be available", format)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "blog_post", want: FormatBlogPost},
		{input: "tweet_thread", want: FormatTweetThread},
		{input: "instagram_carousel", want: FormatInstagramCarousel},
		{input: "linkedin_post", want: FormatLinkedInPost},
		{input: "Blog Post", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("ParseFormat(%q): got %v, want ErrUnsupportedFormat", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v, want %q", tt.input, got, err, tt.want)
		}
	}
}

func TestRenderMissingFieldFails(t *testing.T) {
	tpl, err := Resolve(FormatBlogPost)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	_, err = tpl.Render(map[string]any{ParamContent: "some content"})
	if !errors.Is(err, ErrRenderFailed) {
		t.Errorf("got %v, want ErrRenderFailed", err)
	}
}

func TestRenderSubstitutesAllFields(t *testing.T) {
	tpl, err := Resolve(FormatBlogPost)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	prompt, err := tpl.Render(map[string]any{
		ParamContent:  "AI is everywhere.",
		ParamAudience: "developers",
		ParamTone:     "casual",
		ParamLength:   300,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{"AI is everywhere.", "developers", "casual", "300"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(prompt, "{{") {
		t.Errorf("prompt contains unrendered placeholder: %s", prompt)
	}
}

func TestDefaultsReturnsCopy(t *testing.T) {
	defaults := Defaults(FormatBlogPost)
	if defaults[ParamLength] != 500 {
		t.Fatalf("got %v, want 500", defaults[ParamLength])
	}

	defaults[ParamLength] = 999
	if Defaults(FormatBlogPost)[ParamLength] != 500 {
		t.Error("Defaults exposed registry state")
	}

	if Defaults(FormatLinkedInPost) != nil {
		t.Error("placeholder format should have nil defaults")
	}
}
