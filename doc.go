// Package dnc implements the external-memory subsystem of a
// differentiable neural computer: a controller network coupled to an
// addressable memory bank through content-, allocation- and
// temporal-linkage-based read/write heads.
//
// A Comp owns the memory bank, the usage tracker and the heads, and
// drives the per-step protocol: decode the controller's interface vector,
// apply write heads, update read heads, feed the read vectors back into
// the controller and evaluate it. Build one with MakeBuilder.
package dnc
