package directory

import "strings"

// Employee is a directory record as the collaborator returns it. The
// rendering core treats it as opaque read-only input; the fax number is
// a global default, not stored per employee.
type Employee struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Phone     string `json:"phone"`
	Extension string `json:"extension"`
	Email     string `json:"email"`
	ImageURL  string `json:"imageUrl"`
}

// Extension is one phone-extension entry.
type Extension struct {
	Extension    string `json:"extension"`
	Name         string `json:"name"`
	OutboundName string `json:"outboundName"`
}

// SearchResult is the collaborator's answer to a name search.
type SearchResult struct {
	Found    bool      `json:"found"`
	Employee *Employee `json:"employee"`
}

// AddRequest is the payload for appending an employee record. The
// image URL, when present, points at an already-uploaded photo.
type AddRequest struct {
	Action    string `json:"action"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	Phone     string `json:"phone"`
	Extension string `json:"extension"`
	Email     string `json:"email"`
	ImageURL  string `json:"imageUrl"`
}

// AddOutcome distinguishes a server-confirmed write from a dispatch the
// collaborator never acknowledged. The store historically accepted
// writes without a readable response, so "sent but unconfirmed" is a
// legitimate non-error outcome callers may want to surface.
type AddOutcome struct {
	Acknowledged bool
}

// FilterEmployees returns the records whose name or title contains the
// query, case-insensitively. An empty query returns the input slice.
func FilterEmployees(employees []Employee, query string) []Employee {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return employees
	}
	var out []Employee
	for _, emp := range employees {
		if strings.Contains(strings.ToLower(emp.Name), query) ||
			strings.Contains(strings.ToLower(emp.Title), query) {
			out = append(out, emp)
		}
	}
	return out
}

// FilterExtensions returns the entries whose extension, name, or
// outbound name contains the query, case-insensitively.
func FilterExtensions(extensions []Extension, query string) []Extension {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return extensions
	}
	var out []Extension
	for _, ext := range extensions {
		if strings.Contains(strings.ToLower(ext.Extension), query) ||
			strings.Contains(strings.ToLower(ext.Name), query) ||
			strings.Contains(strings.ToLower(ext.OutboundName), query) {
			out = append(out, ext)
		}
	}
	return out
}
