// Package config resolves the wrapper's effective configuration from three
// layered sources — the user config file, the project config file, and
// OPENENCODE_* environment variables — merged in ascending precedence and
// validated field by field. It also persists single settings and writes the
// default user config file. Per-source provenance is tracked for display only
// and never feeds back into the merge.
package config
