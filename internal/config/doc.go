// Package config manages configuration for the sales reporting pipeline.
//
// Configuration is ambient only: the pipeline's behavior is fixed given the
// input file's presence and shape, and config controls where that file is,
// where reports are written, and how logging behaves. Values are resolved
// in order of precedence:
//
//	1. Environment variables (SALES_* prefix)
//	2. Optional config.yaml / configs/config.yaml
//	3. Built-in defaults
//
// The Paths type is the single source of truth for every file the pipeline
// touches. Writer collaborators receive a *Paths value explicitly rather
// than reaching for the filesystem themselves, so the output directory is
// a configuration fact instead of a process-wide singleton.
package config
