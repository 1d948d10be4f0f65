package site

import (
	"html/template"
	"net/url"
	"time"

	"github.com/mownders/academy/internal/contact"
	"github.com/mownders/academy/internal/content"
)

// pageData holds the data passed to the page template.
type pageData struct {
	Site         *content.Site
	Services     []serviceTab
	ActiveSvc    content.Service
	FAQ          []faqItem
	Testimonials []testimonialSlide
	Current      testimonialSlide
	Prev, Next   string
	Form         formData
	Sent         bool
	Static       bool
	BasePath     string
	LiveURL      string
	IntervalMS   int64
	Year         int
}

type serviceTab struct {
	content.Service
	Active bool
	Href   string
}

type faqItem struct {
	content.Question
	Index  int
	Open   bool
	Href   string
	Answer template.HTML
}

type testimonialSlide struct {
	content.Testimonial
	Index  int
	Active bool
	Href   string
}

// formData carries the contact form's values and errors across a failed
// submission.
type formData struct {
	Values contact.Submission
	Errors contact.FieldErrors
	Action string
}

// HasError reports whether field failed validation.
func (f formData) HasError(field string) bool {
	_, ok := f.Errors[contact.Field(field)]
	return ok
}

// Error returns the message for field.
func (f formData) Error(field string) string {
	return f.Errors[contact.Field(field)]
}

// renderOptions select between the served page and the static export.
type renderOptions struct {
	static   bool
	interval time.Duration
	form     formData
	sent     bool
}

// buildPage derives the view model for s in the state described by q.
func buildPage(s *content.Site, q url.Values, opts renderOptions) pageData {
	ctrl := newControllers(s, q)
	defer ctrl.close()
	st := ctrl.state()

	var defaultService string
	if len(s.Services.Items) > 0 {
		defaultService = s.Services.Items[0].ID
	}

	p := pageData{
		Site:       s,
		Form:       opts.form,
		Sent:       opts.sent,
		Static:     opts.static,
		IntervalMS: opts.interval.Milliseconds(),
		Year:       time.Now().Year(),
	}
	page := "/"
	if opts.static {
		page = "index.html"
		p.BasePath = "./"
		p.Form.Action = "mailto:" + s.Contact.Info.Email
	} else {
		p.BasePath = "/static/"
		p.LiveURL = "/ws/testimonials"
		p.Form.Action = "/contact#contact"
	}

	p.ActiveSvc, _ = s.Services.Find(st.Service)
	for _, svc := range s.Services.Items {
		next := st
		next.Service = svc.ID
		p.Services = append(p.Services, serviceTab{
			Service: svc,
			Active:  ctrl.tabs.IsActive(svc.ID),
			Href:    next.URL(page, defaultService, "services"),
		})
	}

	for i, q := range s.FAQ.Items {
		next := st
		if ctrl.accordion.IsOpen(i) {
			next.FAQ = -1
		} else {
			next.FAQ = i
		}
		p.FAQ = append(p.FAQ, faqItem{
			Question: q,
			Index:    i,
			Open:     ctrl.accordion.IsOpen(i),
			Href:     next.URL(page, defaultService, "faq"),
			Answer:   content.Markdown(q.Answer),
		})
	}

	n := len(s.Testimonials.Items)
	for i, t := range s.Testimonials.Items {
		next := st
		next.Testimonial = i
		slide := testimonialSlide{
			Testimonial: t,
			Index:       i,
			Active:      i == st.Testimonial,
			Href:        next.URL(page, defaultService, "testimonials"),
		}
		p.Testimonials = append(p.Testimonials, slide)
		if slide.Active {
			p.Current = slide
		}
	}
	if n > 0 {
		prev, next := st, st
		prev.Testimonial = (st.Testimonial - 1 + n) % n
		next.Testimonial = (st.Testimonial + 1) % n
		p.Prev = prev.URL(page, defaultService, "testimonials")
		p.Next = next.URL(page, defaultService, "testimonials")
	}

	return p
}

func (pageData) CheckIcon() template.HTML    { return content.IconCheck.SVG("check") }
func (pageData) ChevronIcon() template.HTML  { return content.IconChevronDown.SVG("chev-svg") }
func (pageData) MapPinIcon() template.HTML   { return content.IconMapPin.SVG("info-icon") }
func (pageData) EnvelopeIcon() template.HTML { return content.IconEnvelope.SVG("info-icon") }
func (pageData) PhoneIcon() template.HTML    { return content.IconPhone.SVG("info-icon") }
func (pageData) ClockIcon() template.HTML    { return content.IconClock.SVG("info-icon") }
