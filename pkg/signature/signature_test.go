package signature

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wellboundhc/go-siggen/pkg/format"
)

func TestResolveFields_BlanksFallBack(t *testing.T) {
	got := ResolveFields(Fields{})
	want := Fields{
		Name:      DefaultName,
		Title:     DefaultTitle,
		Phone:     DefaultPhone,
		Extension: DefaultExt,
		Email:     DefaultEmail,
		Fax:       DefaultFax,
		Address:   DefaultAddress,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("resolved fields mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveFields_SuppliedValuesWin(t *testing.T) {
	got := ResolveFields(Fields{Name: "Jane Doe", Fax: "555-0199"})
	if got.Name != "Jane Doe" || got.Fax != "555-0199" {
		t.Fatalf("supplied values lost: %+v", got)
	}
	if got.Title != DefaultTitle {
		t.Fatalf("blank title should fall back, got %q", got.Title)
	}

	// Whitespace-only counts as blank.
	if got := ResolveFields(Fields{Name: "   "}); got.Name != DefaultName {
		t.Fatalf("whitespace name should fall back, got %q", got.Name)
	}
}

func TestValidate(t *testing.T) {
	complete := Fields{Name: "Jane Doe", Title: "Nurse", Extension: "42", Email: "jane@x.com"}
	if err := Validate(complete); err != nil {
		t.Fatalf("complete record rejected: %v", err)
	}

	err := Validate(Fields{Name: "Jane Doe"})
	if err == nil {
		t.Fatalf("incomplete record accepted")
	}
	for _, field := range []string{"title", "extension", "email"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("error %q does not name %q", err, field)
		}
	}
	if strings.Contains(err.Error(), "name,") || strings.HasSuffix(err.Error(), "name") {
		t.Fatalf("error %q names a present field", err)
	}
}

func TestImageSourceKind_Precedence(t *testing.T) {
	cases := []struct {
		name string
		src  ImageSource
		want ImageSourceKind
	}{
		{"url wins over preview", ImageSource{URL: "https://x/p.jpg", Preview: "data:image/png;base64,x"}, SourceURL},
		{"preview when no url", ImageSource{Preview: "data:image/png;base64,x"}, SourcePreview},
		{"placeholder when empty", ImageSource{}, SourcePlaceholder},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.src.Kind(); got != tc.want {
				t.Fatalf("kind = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestSuperscriptOrdinals(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"7424 13th Avenue", "7424 13<sup>th</sup> Avenue"},
		{"1st and 22nd and 3rd", "1<sup>st</sup> and 22<sup>nd</sup> and 3<sup>rd</sup>"},
		{"21ST Street", "21<sup>ST</sup> Street"},
		{"no ordinals here", "no ordinals here"},
	}
	for _, tc := range cases {
		if got := SuperscriptOrdinals(tc.in); got != tc.want {
			t.Fatalf("SuperscriptOrdinals(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeFields_StripsMarkup(t *testing.T) {
	got := SanitizeFields(Fields{
		Name:  `<script>alert("x")</script>Jane Doe`,
		Title: "Nurse <b>RN</b>",
		Email: "jane@x.com",
	})
	if got.Name != "Jane Doe" {
		t.Fatalf("name = %q", got.Name)
	}
	if got.Title != "Nurse RN" {
		t.Fatalf("title = %q", got.Title)
	}
	if got.Email != "jane@x.com" {
		t.Fatalf("email = %q", got.Email)
	}
}

func TestSanitizeText_LeavesEntitiesUnescaped(t *testing.T) {
	// The template layer performs the single final escape; sanitization
	// must not pre-escape plain punctuation.
	if got := SanitizeText("Research & Development"); got != "Research & Development" {
		t.Fatalf("got %q", got)
	}
}

func TestNew_SanitizesAndResolves(t *testing.T) {
	sig := New(Fields{Name: "<i>Jane</i>"}, ImageSource{}, format.Wellbound())
	if sig.Fields.Name != "Jane" {
		t.Fatalf("name = %q", sig.Fields.Name)
	}
	if sig.Fields.Title != DefaultTitle {
		t.Fatalf("blank title should resolve to default, got %q", sig.Fields.Title)
	}
	if sig.Format.ID != "wellbound" {
		t.Fatalf("format = %q", sig.Format.ID)
	}
}
