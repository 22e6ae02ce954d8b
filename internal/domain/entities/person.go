package entities

// Person identifies a puzzle participant by their unique name.
// People carry no state beyond identity.
type Person string
