// Package object is a small dynamic object runtime: ordinary objects with
// insertion-ordered own properties, prototype chains, property descriptors and
// extensibility, plus callable functions and constructible classes.
//
// Every structural operation is a method of the Object interface, so a value that
// merely stands in for an object (for example a lazily realized handle) can intercept
// and forward each of them. The free functions in this package (Get, Set, Has, Call,
// Construct, ...) are the entry points callers should use; they behave the same way
// whether they are handed a real object or a stand-in.
//
// Example:
//
//	point := object.New(nil).With("x", 1).With("y", 2)
//	x, _ := object.GetAs[int](point, "x")
//
// The runtime makes no concurrency promises: an object is meant to be used from a
// single flow of control at a time.
package object
