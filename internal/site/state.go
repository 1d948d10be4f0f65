package site

import (
	"net/url"
	"strconv"

	"github.com/mownders/academy/internal/content"
	"github.com/mownders/academy/internal/ui"
)

// State is the interactive state of the page as carried in the query string,
// so visitors without scripts can still switch tabs, open answers and page
// through testimonials.
type State struct {
	Service     string // active service id
	FAQ         int    // open question, -1 for none
	Testimonial int
}

// controllers holds the page's state controllers for a single render.
type controllers struct {
	tabs      *ui.Tabs
	accordion *ui.Accordion
	carousel  *ui.Carousel
}

// newControllers builds controllers for s and applies the query state. Ids
// and indexes that do not exist are ignored, leaving the initial state.
func newControllers(s *content.Site, q url.Values) controllers {
	c := controllers{
		tabs:      ui.NewTabs(s.Services.IDs()),
		accordion: ui.NewAccordion(len(s.FAQ.Items)),
		carousel:  ui.NewCarousel(len(s.Testimonials.Items)),
	}

	if id := q.Get("service"); id != "" {
		c.tabs.Select(id)
	}
	if i, err := strconv.Atoi(q.Get("faq")); err == nil {
		c.accordion.Toggle(i)
	}
	if i, err := strconv.Atoi(q.Get("t")); err == nil {
		c.carousel.SelectIndex(i)
	}
	return c
}

// state snapshots the controllers.
func (c controllers) state() State {
	st := State{
		Service:     c.tabs.Active(),
		FAQ:         -1,
		Testimonial: c.carousel.Current(),
	}
	if i, ok := c.accordion.Open(); ok {
		st.FAQ = i
	}
	return st
}

func (c controllers) close() {
	c.carousel.Close()
}

// URL encodes st as a link to page, omitting values equal to the initial
// state, and appends the fragment.
func (st State) URL(page, defaultService, fragment string) string {
	q := url.Values{}
	if st.Service != "" && st.Service != defaultService {
		q.Set("service", st.Service)
	}
	if st.FAQ >= 0 {
		q.Set("faq", strconv.Itoa(st.FAQ))
	}
	if st.Testimonial > 0 {
		q.Set("t", strconv.Itoa(st.Testimonial))
	}

	u := page
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	if fragment != "" {
		u += "#" + fragment
	}
	return u
}
