package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// TextService reduces user-entered text to plain text before it is stored.
type TextService interface {
	PlainText(input string) string
	PlainTextPtr(input *string) *string
}

type textServiceImpl struct {
	policy *bluemonday.Policy
}

func NewTextService() TextService {
	return &textServiceImpl{
		policy: bluemonday.StrictPolicy(),
	}
}

// PlainText strips every tag and returns the unescaped remainder, trimmed.
func (s *textServiceImpl) PlainText(input string) string {
	if input == "" {
		return ""
	}
	stripped := s.policy.Sanitize(input)
	return strings.TrimSpace(html.UnescapeString(stripped))
}

func (s *textServiceImpl) PlainTextPtr(input *string) *string {
	if input == nil {
		return nil
	}
	out := s.PlainText(*input)
	return &out
}
