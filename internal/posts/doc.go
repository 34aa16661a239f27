// Package posts discovers blog post sources and derives the metadata shown
// on the index page (title and summary) from a post's raw and rendered forms.
package posts
