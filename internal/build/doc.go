// Package build runs the post pipeline: discover sources, render and extract
// each post, compose the post pages and the index, then write everything to
// the output directory.
//
// A build is all-or-nothing with respect to inputs: every post is read and
// rendered before the output directory is touched, so a missing posts
// directory or an unreadable post leaves no generated files behind.
package build
