// Package ui holds the interaction state behind the landing page's stateful
// sections: the services tab selector, the FAQ accordion and the testimonial
// carousel. Each controller is owned by one view (an HTTP request, a websocket
// connection or a terminal preview) and is never shared between views.
package ui
