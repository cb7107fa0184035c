// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Extractor: Produces plain text from one source of a given format family
//   - Transport: Performs the network fetch for remote sources
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any extractor, transport, or loader package
package driven
