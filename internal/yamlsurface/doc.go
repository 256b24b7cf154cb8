// Package yamlsurface translates the simplified YAML workflow document
// described by spec.md §4.2/§6 into calls against the builder package's
// fluent ProcessBuilder, rather than building its own parallel model: the
// YAML surface has no semantics beyond what the builder already exposes.
package yamlsurface
