// Package generator seeds the store with synthetic users and transaction
// histories shaped by a small set of fixed spending personas.
package generator

// Persona is a behavioral archetype controlling how often and how much a
// synthetic user spends. Personas only influence generation; they are
// never persisted on the user.
type Persona string

const (
	PersonaFrugal     Persona = "frugal"
	PersonaBalanced   Persona = "balanced"
	PersonaImpulsive  Persona = "impulsive"
	PersonaWeekend    Persona = "weekend"
	PersonaBigSpender Persona = "big_spender"
)

// Personas lists every archetype a generated user can be assigned.
var Personas = []Persona{
	PersonaFrugal,
	PersonaBalanced,
	PersonaImpulsive,
	PersonaWeekend,
	PersonaBigSpender,
}
