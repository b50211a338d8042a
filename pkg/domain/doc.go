// Package domain contains the core entities of the Monty Hall game: doors,
// rounds, outcomes and the statistics accumulated over many rounds. These
// types carry no I/O or randomness so they can be shared across packages.
//
// Doors are zero-based indices everywhere in code. Only the console layer
// presents them to people as 1-based door numbers.
package domain
