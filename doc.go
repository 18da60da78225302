// Package toconv classifies conversion target types.
// It unwraps nullable pointers, groups types into a closed set of categories,
// extracts sequence element types, renders diagnostic type names and keeps
// a registry of enumerations declared as integer types.
//
// The conversion engine itself lives in the conv package.
package toconv
