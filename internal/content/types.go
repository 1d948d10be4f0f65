package content

// Site is the complete copy of the landing page, one field per section.
type Site struct {
	SEO          SEO          `yaml:"seo"`
	Hero         Hero         `yaml:"hero"`
	Benefits     Benefits     `yaml:"benefits"`
	Offerings    Offerings    `yaml:"offerings"`
	WhyChooseUs  WhyChooseUs  `yaml:"why_choose_us"`
	About        About        `yaml:"about"`
	Services     Services     `yaml:"services"`
	Testimonials Testimonials `yaml:"testimonials"`
	FAQ          FAQ          `yaml:"faq"`
	CTA          CTA          `yaml:"cta"`
	Contact      Contact      `yaml:"contact"`
	Footer       Footer       `yaml:"footer"`
}

// SEO holds the document title and social sharing metadata.
type SEO struct {
	Title              string `yaml:"title"`
	Description        string `yaml:"description"`
	OGTitle            string `yaml:"og_title"`
	OGDescription      string `yaml:"og_description"`
	TwitterTitle       string `yaml:"twitter_title"`
	TwitterDescription string `yaml:"twitter_description"`
}

type Hero struct {
	Heading     string `yaml:"heading"`
	Subheading  string `yaml:"subheading"`
	Description string `yaml:"description"`
	CTAText     string `yaml:"cta_text"`
	CTALink     string `yaml:"cta_link"`
	ImageURL    string `yaml:"image_url"`
	ImageAlt    string `yaml:"image_alt"`
}

// Feature is a titled blurb with an icon, used by benefits and why-us.
type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        Icon   `yaml:"icon"`
}

type Benefits struct {
	Heading string    `yaml:"heading"`
	Items   []Feature `yaml:"items"`
}

type Offering struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
	Image       string   `yaml:"image"`
	ImageAlt    string   `yaml:"image_alt"`
}

type Offerings struct {
	Heading string     `yaml:"heading"`
	Items   []Offering `yaml:"items"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type WhyChooseUs struct {
	Heading    string    `yaml:"heading"`
	Subheading string    `yaml:"subheading"`
	Stats      []Stat    `yaml:"stats"`
	Features   []Feature `yaml:"features"`
}

type Value struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type TeamMember struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
	Bio   string `yaml:"bio"`
	Image string `yaml:"image"`
}

type About struct {
	Heading string `yaml:"heading"`
	Mission struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Image       string `yaml:"image"`
		ImageAlt    string `yaml:"image_alt"`
	} `yaml:"mission"`
	Values struct {
		Title string  `yaml:"title"`
		Items []Value `yaml:"items"`
	} `yaml:"values"`
	Team struct {
		Title       string       `yaml:"title"`
		Description string       `yaml:"description"`
		Members     []TeamMember `yaml:"members"`
	} `yaml:"team"`
}

// Service is one entry of the tabbed services selector, keyed by ID.
type Service struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
	Icon        Icon     `yaml:"icon"`
}

type Services struct {
	Badge       string    `yaml:"badge"`
	Heading     string    `yaml:"heading"`
	Description string    `yaml:"description"`
	Items       []Service `yaml:"items"`
}

// IDs returns the service ids in display order.
func (s Services) IDs() []string {
	ids := make([]string, len(s.Items))
	for i, svc := range s.Items {
		ids[i] = svc.ID
	}
	return ids
}

// Find returns the service with the given id. A missing id falls back to the
// first service; ok reports whether the id matched.
func (s Services) Find(id string) (svc Service, ok bool) {
	for _, item := range s.Items {
		if item.ID == id {
			return item, true
		}
	}
	if len(s.Items) > 0 {
		return s.Items[0], false
	}
	return Service{}, false
}

type Testimonial struct {
	Quote string `yaml:"quote"`
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
	Image string `yaml:"image"`
}

type Testimonials struct {
	Heading    string        `yaml:"heading"`
	Subheading string        `yaml:"subheading"`
	Items      []Testimonial `yaml:"items"`
}

// Question is one FAQ entry. Answer may contain markdown.
type Question struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type FAQ struct {
	Heading    string     `yaml:"heading"`
	Subheading string     `yaml:"subheading"`
	Items      []Question `yaml:"items"`
}

type CTA struct {
	Heading     string `yaml:"heading"`
	Description string `yaml:"description"`
	ButtonText  string `yaml:"button_text"`
	ButtonLink  string `yaml:"button_link"`
}

type ContactInfo struct {
	Address string `yaml:"address"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	Hours   string `yaml:"hours"`
}

type ContactForm struct {
	NamePlaceholder    string `yaml:"name_placeholder"`
	EmailPlaceholder   string `yaml:"email_placeholder"`
	PhonePlaceholder   string `yaml:"phone_placeholder"`
	MessagePlaceholder string `yaml:"message_placeholder"`
	ButtonText         string `yaml:"button_text"`
	SuccessTitle       string `yaml:"success_title"`
	SuccessMessage     string `yaml:"success_message"`
}

type Contact struct {
	Heading    string      `yaml:"heading"`
	Subheading string      `yaml:"subheading"`
	Info       ContactInfo `yaml:"info"`
	Form       ContactForm `yaml:"form"`
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type Footer struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Social      []Link `yaml:"social"`
	QuickLinks  []Link `yaml:"quick_links"`
}
