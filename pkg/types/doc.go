// Package types defines the constraint-link record model, the per-frame
// record container, run configuration, and standard errors shared by the
// linkcheck pipeline.
package types
