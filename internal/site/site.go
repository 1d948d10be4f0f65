package site

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mownders/academy/internal/contact"
	"github.com/mownders/academy/internal/content"
	"github.com/mownders/academy/internal/ui"
)

// maxFormBytes bounds the size of a contact form post.
const maxFormBytes = 64 << 10

// Handler serves the landing page, its form post and the live testimonials
// carousel.
type Handler struct {
	holder    *content.Holder
	submitter *contact.Submitter
	interval  time.Duration
	sched     ui.Scheduler
	assetsDir string
	tmpl      *template.Template
}

// Option configures a Handler.
type Option func(*Handler)

// WithInterval sets the testimonial rotation interval.
func WithInterval(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.interval = d
		}
	}
}

// WithScheduler sets the scheduler driving live carousels.
func WithScheduler(s ui.Scheduler) Option {
	return func(h *Handler) { h.sched = s }
}

// WithAssetsDir serves images and other files from dir under /assets/.
func WithAssetsDir(dir string) Option {
	return func(h *Handler) { h.assetsDir = dir }
}

// New creates a Handler rendering the content currently held by holder.
func New(holder *content.Holder, submitter *contact.Submitter, opts ...Option) (*Handler, error) {
	tmpl, err := parsePage()
	if err != nil {
		return nil, err
	}

	h := &Handler{
		holder:    holder,
		submitter: submitter,
		interval:  ui.DefaultCarouselInterval,
		sched:     ui.TickerScheduler{},
		tmpl:      tmpl,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// RegisterRoutes mounts the page routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Post("/contact", h.handleContact)
	r.Get("/ws/testimonials", h.handleLive)
	r.Get("/static/style.css", serveBytes("text/css; charset=utf-8", cssContent))
	r.Get("/static/script.js", serveBytes("application/javascript; charset=utf-8", jsContent))
	if h.assetsDir != "" {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(h.assetsDir))))
	}
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.writePage(w, http.StatusOK, q, renderOptions{
		sent: q.Get("sent") == "1",
	})
}

func (h *Handler) handleContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	sub := contact.Submission{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Message: r.PostFormValue("message"),
	}

	_, err := h.submitter.SubmitFrom(r.Context(), sub, r.RemoteAddr)
	if err != nil {
		var verr *contact.ValidationError
		if errors.As(err, &verr) {
			h.writePage(w, http.StatusUnprocessableEntity, url.Values{}, renderOptions{
				form: formData{Values: sub, Errors: verr.Fields},
			})
			return
		}
		log.Printf("site: contact submission: %v", err)
		h.writePage(w, http.StatusInternalServerError, url.Values{}, renderOptions{
			form: formData{Values: sub},
		})
		return
	}

	http.Redirect(w, r, "/?sent=1#contact", http.StatusSeeOther)
}

func (h *Handler) writePage(w http.ResponseWriter, status int, q url.Values, opts renderOptions) {
	opts.interval = h.interval
	body, err := render(h.tmpl, buildPage(h.holder.Get(), q, opts))
	if err != nil {
		log.Printf("site: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

func serveBytes(contentType string, data []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write(data)
	}
}
