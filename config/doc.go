// Package config loads and validates run configuration.
//
// A Config mirrors the CLI flags of cmd/keywalk one to one: a YAML file is
// just a persistent flag set. Load starts from Default and overlays the
// file, so omitted keys keep their defaults; unknown keys are rejected.
//
// Config does not construct anything itself; the accessors
// (GraphOptions, GeneticOptions, CorpusOptions) translate the plain
// YAML-friendly values into the option types of the domain packages.
package config
