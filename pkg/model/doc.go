// Package model provides the shared report domain types used across
// the PenSH packages: reports, findings, proof-of-concept images,
// customers, testers and the risk/OWASP enumerations.
//
// The types here are plain data carriers. Rendering logic lives in
// pkg/render, persistence in pkg/store.
package model
