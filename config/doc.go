// Package config reads graphgen's key=value configuration files
// (spec.md §6). It is an external collaborator to the core sampling
// engine: Load produces a Config the outer driver uses to build readers,
// a GraphModel, and a writer, but the core package never imports this one.
package config
