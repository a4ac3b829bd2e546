package signature

import (
	"fmt"
	"strings"
)

// Literal defaults applied to blank fields. Rendering never fails on
// incomplete input: a live preview renders with these placeholders and
// a fully-populated historical record renders without them.
const (
	DefaultName    = "Worker Name"
	DefaultTitle   = "Job Title"
	DefaultPhone   = "718.400.WELL (9355)"
	DefaultExt     = "000"
	DefaultEmail   = "email@wellboundhc.com"
	DefaultFax     = "718.766.2109"
	DefaultAddress = "7424 13th Avenue | Brooklyn, NY 11228"
)

// Fields carries the per-employee text of a signature. Fax and Address
// are company-wide values; they ride along so callers can override them
// in one place instead of patching rendered output.
type Fields struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Phone     string `json:"phone"`
	Extension string `json:"extension"`
	Email     string `json:"email"`
	Fax       string `json:"fax,omitempty"`
	Address   string `json:"address,omitempty"`
}

// ResolveFields applies the documented precedence: a caller-supplied
// value wins, a blank value falls back to the literal default. The
// result always renders.
func ResolveFields(in Fields) Fields {
	return Fields{
		Name:      fallback(in.Name, DefaultName),
		Title:     fallback(in.Title, DefaultTitle),
		Phone:     fallback(in.Phone, DefaultPhone),
		Extension: fallback(in.Extension, DefaultExt),
		Email:     fallback(in.Email, DefaultEmail),
		Fax:       fallback(in.Fax, DefaultFax),
		Address:   fallback(in.Address, DefaultAddress),
	}
}

// Validate rejects input that should not be persisted or published.
// Rendering itself tolerates blanks; this guard is for the generate and
// directory-add flows, which require the employee-identifying fields.
func Validate(in Fields) error {
	var missing []string
	for _, field := range []struct {
		name, value string
	}{
		{"name", in.Name},
		{"title", in.Title},
		{"extension", in.Extension},
		{"email", in.Email},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("signature: required fields missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
