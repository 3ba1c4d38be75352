// Package sir implements the classical Susceptible-Infectious-Recovered
// compartmental epidemic model with forward-Euler integration at unit
// time steps.
//
// Two entry points produce trajectories:
//
//   - [Simulate]: constant transmission rate over the whole run
//   - [SimulateWithIntervention]: the transmission rate switches once at
//     a configured time index, modeling a policy change
//
// Both are pure functions of their parameters. A run allocates its own
// arrays, fills them sequentially, and returns; independent runs may
// execute concurrently with no coordination.
//
// # Numeric behavior
//
// The scheme is explicit Euler with no stability guard: compartments are
// not clamped and may leave [0, N] for extreme rate values. A
// non-positive population is likewise not rejected; the infection term
// divides by it, so the trajectory degenerates to NaN/Inf from the
// second record on. Callers needing to detect this should check the
// output for non-finite values.
package sir
