// Package keywalk evolves keyboard layouts against a travel-cost model —
// from the key grid itself to the genetic loop that optimizes it.
//
// What is keywalk?
//
//	A small, deterministic toolkit that brings together:
//		• Layout model: multi-mode key grids (default, shifted, more) with
//		  a strict one-position-per-character invariant
//		• Cost graph: weighted position graph, Dijkstra shortest paths and
//		  Floyd–Warshall all-pairs travel costs
//		• Corpus statistics: character / bigram / trigram frequencies from
//		  training text
//		• Fitness: travel-cost evaluation of a layout against a corpus
//		• Genetic optimizer: tournament selection, order / PMX crossover,
//		  swap / inversion mutation, elitism, parallel evaluation
//
// Everything is organized under flat subpackages:
//
//	layout/   — key grids, presets (QWERTY, AZERTY), shuffling
//	keygraph/ — position graph, shortest paths, cost matrices, DOT export
//	corpus/   — training-text frequency statistics
//	fitness/  — layout scoring against corpus + cost matrix
//	genetic/  — population, operators, and the evolution loop
//	config/   — YAML run configuration shared with the CLI
//
// The cmd/keywalk binary wires these together: parse a training file, build
// the cost matrix once per geometry, then evolve a population of layouts.
//
//	go get github.com/keywalk/keywalk
package keywalk
