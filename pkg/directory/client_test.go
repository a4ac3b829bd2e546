package directory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestContract_ValidatesAndCarriesDefaults(t *testing.T) {
	doc, err := Contract(context.Background())
	if err != nil {
		t.Fatalf("contract: %v", err)
	}
	if contractBaseURL(doc) == "" {
		t.Fatalf("contract has no server entry")
	}
	actions := contractActions(doc)
	for _, want := range []string{"list", "search", "extensions"} {
		if !actions[want] {
			t.Fatalf("contract missing action %q", want)
		}
	}
}

func newDirectoryServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			var req AddRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode add request: %v", err)
			}
			if req.Action != "add" {
				t.Errorf("add action = %q", req.Action)
			}
			w.WriteHeader(http.StatusOK)
			return
		}

		switch r.URL.Query().Get("action") {
		case "list":
			json.NewEncoder(w).Encode([]Employee{
				{Name: "Jane Doe", Title: "Nurse", Extension: "42", Email: "jane@x.com"},
				{Name: "John Roe", Title: "Coordinator", Extension: "17", Email: "john@x.com"},
			})
		case "search":
			if r.URL.Query().Get("firstName") == "Jane" {
				json.NewEncoder(w).Encode(SearchResult{
					Found:    true,
					Employee: &Employee{Name: "Jane Doe", Title: "Nurse"},
				})
				return
			}
			json.NewEncoder(w).Encode(SearchResult{Found: false})
		case "extensions":
			json.NewEncoder(w).Encode([]Extension{
				{Extension: "100", Name: "Front Desk", OutboundName: "Reception"},
			})
		default:
			http.Error(w, "unknown action", http.StatusBadRequest)
		}
	}))
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(context.Background(), WithBaseURL(baseURL))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestClient_List(t *testing.T) {
	srv := newDirectoryServer(t)
	defer srv.Close()

	employees, err := newTestClient(t, srv.URL).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []Employee{
		{Name: "Jane Doe", Title: "Nurse", Extension: "42", Email: "jane@x.com"},
		{Name: "John Roe", Title: "Coordinator", Extension: "17", Email: "john@x.com"},
	}
	if diff := cmp.Diff(want, employees); diff != "" {
		t.Fatalf("employees mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_Search(t *testing.T) {
	srv := newDirectoryServer(t)
	defer srv.Close()
	client := newTestClient(t, srv.URL)

	hit, err := client.Search(context.Background(), "Jane", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !hit.Found || hit.Employee == nil || hit.Employee.Name != "Jane Doe" {
		t.Fatalf("unexpected hit: %+v", hit)
	}

	miss, err := client.Search(context.Background(), "Nobody", "")
	if err != nil {
		t.Fatalf("search miss: %v", err)
	}
	if miss.Found || miss.Employee != nil {
		t.Fatalf("expected a miss, got %+v", miss)
	}

	if _, err := client.Search(context.Background(), "", ""); err == nil {
		t.Fatalf("empty search must be rejected locally")
	}
}

func TestClient_Extensions(t *testing.T) {
	srv := newDirectoryServer(t)
	defer srv.Close()

	extensions, err := newTestClient(t, srv.URL).Extensions(context.Background())
	if err != nil {
		t.Fatalf("extensions: %v", err)
	}
	if len(extensions) != 1 || extensions[0].OutboundName != "Reception" {
		t.Fatalf("unexpected extensions: %+v", extensions)
	}
}

func TestClient_AddAcknowledged(t *testing.T) {
	srv := newDirectoryServer(t)
	defer srv.Close()

	outcome, err := newTestClient(t, srv.URL).Add(context.Background(), AddRequest{
		Name:      "Jane Doe",
		Title:     "Nurse",
		Extension: "42",
		Email:     "jane@x.com",
		ImageURL:  "https://photos.example.com/jane.jpg",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !outcome.Acknowledged {
		t.Fatalf("2xx write should be acknowledged")
	}
}

func TestClient_AddRequiresName(t *testing.T) {
	srv := newDirectoryServer(t)
	defer srv.Close()

	if _, err := newTestClient(t, srv.URL).Add(context.Background(), AddRequest{}); err == nil {
		t.Fatalf("nameless add must be rejected locally")
	}
}

func TestClient_UnavailableCollaborator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).List(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}

func TestFilterEmployees(t *testing.T) {
	employees := []Employee{
		{Name: "Jane Doe", Title: "Nurse"},
		{Name: "John Roe", Title: "Care Coordinator"},
	}

	if got := FilterEmployees(employees, "jane"); len(got) != 1 || got[0].Name != "Jane Doe" {
		t.Fatalf("name filter: %+v", got)
	}
	if got := FilterEmployees(employees, "coordinator"); len(got) != 1 || got[0].Name != "John Roe" {
		t.Fatalf("title filter: %+v", got)
	}
	if got := FilterEmployees(employees, "  "); len(got) != 2 {
		t.Fatalf("blank query should pass everything through: %+v", got)
	}
}

func TestFilterExtensions(t *testing.T) {
	extensions := []Extension{
		{Extension: "100", Name: "Front Desk", OutboundName: "Reception"},
		{Extension: "204", Name: "Billing", OutboundName: "Accounts"},
	}

	if got := FilterExtensions(extensions, "reception"); len(got) != 1 || got[0].Extension != "100" {
		t.Fatalf("outbound filter: %+v", got)
	}
	if got := FilterExtensions(extensions, "20"); len(got) != 1 || got[0].Name != "Billing" {
		t.Fatalf("extension filter: %+v", got)
	}
}
