package repurpose

import "fmt"

// Placeholder names shared by the templates and the parameter merge.
const (
	ParamContent   = "original_content"
	ParamAudience  = "target_audience"
	ParamTone      = "tone"
	ParamLength    = "length"
	ParamNumSlides = "num_slides"
)

// Bounds match the ranges the presentation layer exposes. Out-of-range
// values are rejected, not clamped.
const (
	MinLength    = 100
	MaxLength    = 1000
	MinNumSlides = 3
	MaxNumSlides = 10
)

// Params carries per-request overrides. Zero values fall back to the
// format's documented defaults.
type Params struct {
	Audience  string
	Tone      string
	Length    int
	NumSlides int
}

// ValidateParams checks overrides against the format's parameter set
// without issuing a request. Callers that queue work for later use this
// to reject bad jobs up front.
func ValidateParams(format Format, params Params) error {
	t, err := Resolve(format)
	if err != nil {
		return err
	}
	_, err = params.apply(t, "-")
	return err
}

// apply merges explicit values over the template defaults and attaches the
// original content. Overrides for parameters the format does not declare
// are rejected rather than silently dropped.
func (p Params) apply(t *Template, content string) (map[string]any, error) {
	data := make(map[string]any, len(t.Fields))
	data[ParamContent] = content
	for name, value := range t.Defaults {
		data[name] = value
	}

	set := func(name string, value any) error {
		if _, ok := t.Defaults[name]; !ok {
			return fmt.Errorf("%w: %s is not a %s parameter", ErrInvalidParam, name, t.Format)
		}
		data[name] = value
		return nil
	}

	if p.Audience != "" {
		if err := set(ParamAudience, p.Audience); err != nil {
			return nil, err
		}
	}
	if p.Tone != "" {
		if err := set(ParamTone, p.Tone); err != nil {
			return nil, err
		}
	}
	if p.Length != 0 {
		if p.Length < MinLength || p.Length > MaxLength {
			return nil, fmt.Errorf("%w: length %d outside %d-%d", ErrInvalidParam, p.Length, MinLength, MaxLength)
		}
		if err := set(ParamLength, p.Length); err != nil {
			return nil, err
		}
	}
	if p.NumSlides != 0 {
		if p.NumSlides < MinNumSlides || p.NumSlides > MaxNumSlides {
			return nil, fmt.Errorf("%w: num_slides %d outside %d-%d", ErrInvalidParam, p.NumSlides, MinNumSlides, MaxNumSlides)
		}
		if err := set(ParamNumSlides, p.NumSlides); err != nil {
			return nil, err
		}
	}

	return data, nil
}
