package repurpose

import "fmt"

// Format names a repurposing target. The set is fixed at build time.
type Format string

const (
	FormatBlogPost          Format = "blog_post"
	FormatTweetThread       Format = "tweet_thread"
	FormatInstagramCarousel Format = "instagram_carousel"

	// Declared but not implemented yet. Known to the API listing,
	// rejected everywhere else.
	FormatLinkedInPost    Format = "linkedin_post"
	FormatEmailNewsletter Format = "email_newsletter"
)

var formatOrder = []Format{
	FormatBlogPost,
	FormatTweetThread,
	FormatInstagramCarousel,
	FormatLinkedInPost,
	FormatEmailNewsletter,
}

var displayNames = map[Format]string{
	FormatBlogPost:          "Blog Post",
	FormatTweetThread:       "Tweet Thread",
	FormatInstagramCarousel: "Instagram Carousel",
	FormatLinkedInPost:      "LinkedIn Post",
	FormatEmailNewsletter:   "Email Newsletter",
}

// ParseFormat maps a wire value to a known Format.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if _, ok := displayNames[f]; !ok {
		return "", fmt.Errorf("unknown format %q: %w", s, ErrUnsupportedFormat)
	}
	return f, nil
}

// Available reports whether the format has a template and can be served.
func (f Format) Available() bool {
	_, ok := registry[f]
	return ok
}

func (f Format) DisplayName() string {
	return displayNames[f]
}

// Formats returns all known formats, available or not, in stable order.
func Formats() []Format {
	out := make([]Format, len(formatOrder))
	copy(out, formatOrder)
	return out
}
