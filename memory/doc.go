// Package memory provides the storage substrate of the differentiable
// neural computer: the address bank, the usage and temporal-linkage
// tracker, and the arena that owns every vector the subsystem acquires.
package memory
