// Package altmap collects general-purpose, hashed, comparable-key hash
// maps used only as benchmark and cross-check comparators for the core
// intmap.Map table (see altmap/flat). None of these sit on the core
// table's path: they exist so bench_test.go has something realistic,
// i.e. actually hashed, to measure identity indexing against.
package altmap
