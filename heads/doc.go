// Package heads implements the differentiable addressing units of the
// neural computer. A read head turns a content key into a weighting over
// the memory bank and a read vector; a write head combines content and
// allocation addressing to place erase-then-add updates.
package heads
