package repurpose

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// tweetLimit is the per-entry bound the thread schema declares to the model.
const tweetLimit = 280

// ParseTweets deserializes a tweet-thread model response into its ordered
// entries. It either returns a well-formed list or fails; it never repairs
// or truncates entries.
func ParseTweets(raw string) ([]string, error) {
	content := cleanJSONResponse(raw)

	var parsed struct {
		Tweets []string `json:"tweets"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if len(parsed.Tweets) == 0 {
		return nil, fmt.Errorf("%w: response has no tweets field", ErrMalformedOutput)
	}
	for i, tweet := range parsed.Tweets {
		if strings.TrimSpace(tweet) == "" {
			return nil, fmt.Errorf("%w: tweet %d is empty", ErrMalformedOutput, i+1)
		}
		if n := utf8.RuneCountInString(tweet); n > tweetLimit {
			return nil, fmt.Errorf("%w: tweet %d is %d characters, limit %d", ErrMalformedOutput, i+1, n, tweetLimit)
		}
	}
	return parsed.Tweets, nil
}

// validateOutput applies the format's output contract to a raw model
// response. Free-text formats pass through unchanged; the tweet thread is
// parsed against its schema and joined with blank lines, order preserved.
func validateOutput(format Format, raw string) (string, error) {
	switch format {
	case FormatTweetThread:
		tweets, err := ParseTweets(raw)
		if err != nil {
			return "", err
		}
		return strings.Join(tweets, "\n\n"), nil
	default:
		if strings.TrimSpace(raw) == "" {
			return "", fmt.Errorf("%w: model returned empty text", ErrMalformedOutput)
		}
		return raw, nil
	}
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
