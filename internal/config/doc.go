// Package config defines generation configuration and its YAML loader.
//
// All knobs of a run live in one plain struct; absent keys take the
// documented defaults and unknown keys are rejected so typos surface at
// load time instead of silently changing output.
package config
