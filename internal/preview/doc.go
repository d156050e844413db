// Package preview serves a site's output directory over HTTP and rebuilds the
// site whenever its sources change.
package preview
