package catalog

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/bikemarket/internal/web"
)

const maxFormBytes = 1 << 20

// Handler serves the storefront pages and the read-only catalog API.
type Handler struct {
	service  Service
	renderer *web.Renderer
	logger   *log.Logger
}

func NewHandler(service Service, renderer *web.Renderer, logger *log.Logger) *Handler {
	return &Handler{service: service, renderer: renderer, logger: logger}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/", h.home)
	r.Get("/bikes", h.bikes)
	r.Post("/bikes", h.bikes)
	r.Get("/bike/{id}", h.bike)
	r.NotFound(h.notFound)

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/listings", h.listListings)
		r.Get("/listings/{id}", h.getListing)
		r.Get("/options", h.options)
	})
}

type homePage struct {
	Title      string
	Categories []Category
	Featured   []*Listing
}

type bikesPage struct {
	Title       string
	Filter      Filter
	Options     Options
	SortOptions []SortOption
	Listings    []*Listing
	Count       int
}

type bikePage struct {
	Title   string
	Listing *Listing
}

type notFoundPage struct {
	Title   string
	Message string
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	featured, err := h.service.Featured(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render(w, http.StatusOK, "home", homePage{
		Title:      "Find Your Perfect Bike",
		Categories: h.service.Categories(r.Context()),
		Featured:   featured,
	})
}

// bikes renders the listing browser. GET always starts from the default
// filter; POST applies the submitted form. Filter state never reaches the URL.
func (h *Handler) bikes(w http.ResponseWriter, r *http.Request) {
	filter := DefaultFilter()
	if r.Method == http.MethodPost {
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var err error
		filter, err = DecodeFilter(r.PostForm)
		if err != nil {
			h.logger.Printf("listing filter: ignoring invalid fields: %v", err)
		}
	}
	filter = filter.Normalize(h.service.Options())

	listings, err := h.service.Browse(r.Context(), filter)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render(w, http.StatusOK, "bikes", bikesPage{
		Title:       "All Bikes",
		Filter:      filter,
		Options:     h.service.Options(),
		SortOptions: SortOptions(),
		Listings:    listings,
		Count:       len(listings),
	})
}

func (h *Handler) bike(w http.ResponseWriter, r *http.Request) {
	l, err := h.lookup(r)
	if errors.Is(err, ErrNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render(w, http.StatusOK, "bike", bikePage{Title: l.Name, Listing: l})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, "notfound", notFoundPage{
		Title:   "Not Found",
		Message: "The bike you are looking for does not exist or is no longer listed.",
	})
}

func (h *Handler) listListings(w http.ResponseWriter, r *http.Request) {
	filter, err := DecodeFilter(r.URL.Query())
	if err != nil {
		h.respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	listings, err := h.service.Browse(r.Context(), filter.Normalize(h.service.Options()))
	if err != nil {
		h.logger.Printf("list listings: %v", err)
		h.respond(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	h.respond(w, http.StatusOK, listings)
}

func (h *Handler) getListing(w http.ResponseWriter, r *http.Request) {
	l, err := h.lookup(r)
	if errors.Is(err, ErrNotFound) {
		h.respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		h.logger.Printf("get listing: %v", err)
		h.respond(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	h.respond(w, http.StatusOK, l)
}

func (h *Handler) options(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, h.service.Options())
}

// lookup resolves the {id} path parameter. Anything other than a canonical
// positive integer is reported as ErrNotFound.
func (h *Handler) lookup(r *http.Request) (*Listing, error) {
	id, ok := parseListingID(chi.URLParam(r, "id"))
	if !ok {
		return nil, ErrNotFound
	}
	return h.service.GetListing(r.Context(), id)
}

// parseListingID accepts only digits without a sign or leading zero, so each
// listing has exactly one URL.
func parseListingID(s string) (int, bool) {
	if s == "" || s[0] == '0' {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	if err := h.renderer.Render(w, status, name, data); err != nil {
		h.logger.Printf("render %s: %v", name, err)
	}
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	h.logger.Printf("catalog: %v", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func (h *Handler) respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Printf("catalog: encode response: %v", err)
	}
}
