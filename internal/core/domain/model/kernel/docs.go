// Package kernel provides the shared domain primitives of the depot.
//
// UUID identifies vehicles and drivers. Orders keep the caller supplied
// identifier they are created with, so they do not use it.
package kernel
