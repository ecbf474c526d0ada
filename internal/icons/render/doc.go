// Package render materializes icons into SVG element trees.
//
// An Icon is bound to one host element. Whenever its inputs change it
// resolves the requested icon through a provider registry, computes the root
// attributes from the inputs and the injected default style, builds a fresh
// <svg> subtree and swaps it in for the host's previous children. Failed
// renders return an error and leave the host untouched.
package render
