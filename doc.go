// Package patterns is your in-memory playground for the classic design
// patterns — creational, structural and behavioral — plus a handful of
// low-level-design exercises and interview puzzles, all as typed,
// testable Go.
//
// 🚀 What is patterns?
//
//	A small, dependency-light teaching library that brings together:
//		• Creational patterns: abstract factory, builder, factory method, prototype, singleton
//		• Structural patterns: adapter, bridge, composite, decorator, facade, flyweight, proxy
//		• Behavioral patterns: chain, command, interpreter, iterator, mediator,
//		  memento, observer, state, strategy, template method, visitor
//		• LLD exercises: a multi-level parking lot allocator, an LRU cache
//		• Puzzles: string increment, top-k frequent words, recursive matrix max, friend distance
//		• Live updates: bounded-retry long polling and a websocket subscriber
//
// ✨ Why choose patterns?
//
//   - Beginner-friendly – one package per catalog area, one file per pattern
//   - Interfaces over inheritance – every "must implement" contract is a
//     named capability set, never an embedded base struct
//   - Explicit over hidden – no package-level singletons; the one lazy
//     instance cell in the catalog is constructed and passed by the caller
//   - Tested – every example's expected output lives in its tests
//
// Under the hood, everything is organized by taxonomy:
//
//	creational/ — object creation idioms
//	structural/ — object composition idioms
//	behavioral/ — object interaction idioms
//	parking/    — a worked low-level design with real invariants
//	lru/        — capacity-bounded cache exercise
//	puzzles/    — standalone recursion & string exercises
//	liveupdate/ — polling and websocket client snippets, with bounded retry
//
// None of the packages depend on each other at runtime; the only shared
// thing is the taxonomy. Dive into each package's doc.go and
// example_test.go for runnable demonstrations.
//
//	go get github.com/katalvlaran/patterns
package patterns
