package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/bikemarket/internal/web"
)

func newTestRouter(t *testing.T, repo Repository) *chi.Mux {
	t.Helper()
	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	router := chi.NewRouter()
	NewHandler(NewService(repo), renderer, log.New(io.Discard, "", 0)).RegisterRoutes(router)
	return router
}

func serve(t *testing.T, router http.Handler, req *http.Request) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec.Code, rec.Body.String()
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func assertContains(t *testing.T, body string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(body, w) {
			t.Errorf("body missing %q", w)
		}
	}
}

func assertNotContains(t *testing.T, body string, unwanted ...string) {
	t.Helper()
	for _, u := range unwanted {
		if strings.Contains(body, u) {
			t.Errorf("body should not contain %q", u)
		}
	}
}

func TestHomePage(t *testing.T) {
	router := newTestRouter(t, NewMemoryRepository(Fixtures()))
	code, body := serve(t, router, httptest.NewRequest(http.MethodGet, "/", nil))
	if code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", code)
	}
	assertContains(t, body, "Find Your Perfect Bike", "Shop by Category", "1247 bikes",
		"Featured Bikes", "Trek Domane SL 7", "Giant TCR Advanced Pro", `href="/bike/4"`)
	assertNotContains(t, body, "Santa Cruz Hightower", "RadCity")
}

func TestBikesPageDefault(t *testing.T) {
	router := newTestRouter(t, NewMemoryRepository(Fixtures()))
	code, body := serve(t, router, httptest.NewRequest(http.MethodGet, "/bikes", nil))
	if code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", code)
	}
	assertContains(t, body, "All Bikes", "6 bikes found", "Rad Power RadCity 5", "$3,499", "Highest Rated")
}

func TestBikesPageIgnoresQueryString(t *testing.T) {
	router := newTestRouter(t, NewMemoryRepository(Fixtures()))
	_, body := serve(t, router, httptest.NewRequest(http.MethodGet, "/bikes?category=Mountain&q=trek", nil))
	assertContains(t, body, "6 bikes found")
}

func TestBikesPageFiltersSubmittedForm(t *testing.T) {
	router := newTestRouter(t, NewMemoryRepository(Fixtures()))
	code, body := serve(t, router, postForm("/bikes", url.Values{
		"category":  {"Mountain"},
		"min_price": {"0"},
		"max_price": {"5000"},
		"sort":      {"featured"},
	}))
	if code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", code)
	}
	assertContains(t, body, "2 bikes found", "Specialized Stumpjumper", "Santa Cruz Hightower",
		`value="Mountain" checked`)
	assertNotContains(t, body, "Trek Domane SL 7")
	if strings.Index(body, "Specialized Stumpjumper") > strings.Index(body, "Santa Cruz Hightower") {
		t.Error("featured order should keep Stumpjumper before Hightower")
	}
}

func TestBikesPageSortSelection(t *testing.T) {
	router := newTestRouter(t, NewMemoryRepository(Fixtures()))
	_, body := serve(t, router, postForm("/bikes", url.Values{"sort": {"price-low"}}))
	assertContains(t, body, `value="price-low" selected`)
	if strings.Index(body, "Cannondale Quick CX 3") > strings.Index(body, "Giant TCR Advanced Pro") {
		t.Error("price-low should list the Cannondale before the Giant")
	}
}

func TestBikesPageEmptyResult(t *testing.T) {
	router := newTestRouter(t, NewMemoryRepository(Fixtures()))
	code, body := serve(t, router, postForm("/bikes", url.Values{"q": {"penny-farthing"}}))
	if code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", code)
	}
	assertContains(t, body, "0 bikes found", "No bikes found matching your criteria.",
		"Try adjusting your filters or search terms.")
}

func TestBikesPageSearchKeepsSurroundingSpaces(t *testing.T) {
	router := newTestRouter(t, NewMemoryRepository(Fixtures()))
	_, body := serve(t, router, postForm("/bikes", url.Values{"q": {" x"}}))
	assertContains(t, body, "0 bikes found", `value=" x"`)
	assertNotContains(t, body, "Cannondale Quick CX 3")
}

func TestBikesPageToleratesBadNumbers(t *testing.T) {
	router := newTestRouter(t, NewMemoryRepository(Fixtures()))
	code, body := serve(t, router, postForm("/bikes", url.Values{"min_price": {"cheap"}, "brand": {"Giant"}}))
	if code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", code)
	}
	assertContains(t, body, "1 bikes found", "Giant TCR Advanced Pro")
}

func TestBikeDetail(t *testing.T) {
	router := newTestRouter(t, NewMemoryRepository(Fixtures()))
	code, body := serve(t, router, httptest.NewRequest(http.MethodGet, "/bike/1", nil))
	if code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", code)
	}
	assertContains(t, body, "Trek Domane SL 7", "$3,499", "$3,799", "Sale", "OCLV 500 Carbon",
		"Electronic shifting", "Pro Bike Shop", "Member since 2019", "Matte Black", "Seller Information")
}

func TestBikeDetailNotFound(t *testing.T) {
	router := newTestRouter(t, NewMemoryRepository(Fixtures()))
	for _, path := range []string{"/bike/999", "/bike/0", "/bike/abc", "/bike/+1", "/bike/01", "/bike/1abc", "/bike/-1", "/sell"} {
		code, body := serve(t, router, httptest.NewRequest(http.MethodGet, path, nil))
		if code != http.StatusNotFound {
			t.Errorf("%s: status got %d, want 404", path, code)
		}
		assertContains(t, body, "Bike not found")
	}
}

func TestAPIListListings(t *testing.T) {
	router := newTestRouter(t, NewMemoryRepository(Fixtures()))
	code, body := serve(t, router, httptest.NewRequest(http.MethodGet,
		"/api/v1/catalog/listings?category=Mountain&sort=price-high", nil))
	if code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", code)
	}
	var got []Listing
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].ID != 5 || got[1].ID != 2 {
		t.Errorf("listings: got %+v", got)
	}
}

func TestAPIListListingsEmptyIsArray(t *testing.T) {
	router := newTestRouter(t, NewMemoryRepository(Fixtures()))
	_, body := serve(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/listings?category=BMX", nil))
	if strings.TrimSpace(body) != "[]" {
		t.Errorf("body: got %q, want []", body)
	}
}

func TestAPIListListingsRejectsBadNumbers(t *testing.T) {
	router := newTestRouter(t, NewMemoryRepository(Fixtures()))
	code, _ := serve(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/listings?min_price=abc", nil))
	if code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", code)
	}
}

func TestAPIGetListing(t *testing.T) {
	router := newTestRouter(t, NewMemoryRepository(Fixtures()))
	code, body := serve(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/listings/1", nil))
	if code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", code)
	}
	var l Listing
	if err := json.Unmarshal([]byte(body), &l); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if l.ID != 1 || l.Seller.Name != "Pro Bike Shop" {
		t.Errorf("listing: got %+v", l)
	}

	code, body = serve(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/listings/999", nil))
	if code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", code)
	}
	assertContains(t, body, "listing not found")
}

func TestParseListingID(t *testing.T) {
	tests := []struct {
		in   string
		id   int
		want bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"", 0, false},
		{"0", 0, false},
		{"01", 0, false},
		{"+1", 0, false},
		{"-1", 0, false},
		{"1abc", 0, false},
		{"99999999999999999999999", 0, false},
	}
	for _, tt := range tests {
		id, ok := parseListingID(tt.in)
		if ok != tt.want || id != tt.id {
			t.Errorf("parseListingID(%q): got (%d, %v), want (%d, %v)", tt.in, id, ok, tt.id, tt.want)
		}
	}
}

func TestAPIGetListingRejectsNonCanonicalIDs(t *testing.T) {
	router := newTestRouter(t, NewMemoryRepository(Fixtures()))
	for _, path := range []string{"/api/v1/catalog/listings/01", "/api/v1/catalog/listings/+1"} {
		code, _ := serve(t, router, httptest.NewRequest(http.MethodGet, path, nil))
		if code != http.StatusNotFound {
			t.Errorf("%s: status got %d, want 404", path, code)
		}
	}
}

func TestAPIOptions(t *testing.T) {
	router := newTestRouter(t, NewMemoryRepository(Fixtures()))
	_, body := serve(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/options", nil))
	var opts Options
	if err := json.Unmarshal([]byte(body), &opts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(opts.Conditions) != 4 || opts.Conditions[1] != ConditionUsedExcellent {
		t.Errorf("options: got %+v", opts)
	}
}

func TestRespondLogsEncodeFailure(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: log.New(&buf, "", 0)}
	rec := httptest.NewRecorder()
	h.respond(rec, http.StatusOK, map[string]interface{}{"bad": make(chan int)})
	if !strings.Contains(buf.String(), "encode response") {
		t.Errorf("log: got %q, want an encode failure", buf.String())
	}
}

type failingRepo struct{}

func (failingRepo) List(context.Context) ([]*Listing, error)       { return nil, errors.New("connection refused") }
func (failingRepo) GetByID(context.Context, int) (*Listing, error) { return nil, errors.New("connection refused") }
func (failingRepo) Source() string                                 { return "failing" }

func TestRepositoryFailureIsServerError(t *testing.T) {
	router := newTestRouter(t, failingRepo{})
	for _, path := range []string{"/", "/bikes", "/bike/1", "/api/v1/catalog/listings/1"} {
		code, body := serve(t, router, httptest.NewRequest(http.MethodGet, path, nil))
		if code != http.StatusInternalServerError {
			t.Errorf("%s: status got %d, want 500", path, code)
		}
		assertNotContains(t, body, "connection refused")
	}
}
