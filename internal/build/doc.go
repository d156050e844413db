// Package build provides the site build pipeline.
//
// DefaultBuildService runs the stages of one build in order: layout check,
// output reset, data and config load, feed copy and page generation. Every
// execution path (the build command, preview rebuilds, tests) goes through
// BuildService so logging and metrics stay uniform.
//
// Generator is the page generation stage on its own. It renders every .html
// file of the output tree from the shared base template and the paired
// content file under _feed, one page at a time.
package build
