package signature

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// SanitizeText strips any markup from an employee-supplied field before
// it is interpolated into signature HTML. Field values are plain text;
// anything that survives a strict policy is not. Entities are unescaped
// afterwards so the template layer performs the single final escape.
func SanitizeText(raw string) string {
	cleaned := textSanitizer().Sanitize(raw)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// SanitizeFields returns a copy of in with every textual field cleaned.
func SanitizeFields(in Fields) Fields {
	return Fields{
		Name:      SanitizeText(in.Name),
		Title:     SanitizeText(in.Title),
		Phone:     SanitizeText(in.Phone),
		Extension: SanitizeText(in.Extension),
		Email:     SanitizeText(in.Email),
		Fax:       SanitizeText(in.Fax),
		Address:   SanitizeText(in.Address),
	}
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
