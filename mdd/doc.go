// Package mdd implements the restricted multi-valued decision diagram
// compiler: a width-bounded layered DAG built in place over a caller-supplied
// core.Problem, with optional diving along an incumbent prefix and best-parent
// shortest-path reconstruction.
//
// Design goals:
//   - Reusable workspace: one Compiler is built once and compiles many times;
//     Restricted/Exact reset the arena rather than reallocating it.
//   - Two-phase expansion: collecting a frontier node's candidate decisions
//     never interleaves with arena mutation, so no call into problem code
//     ever observes a half-updated diagram.
//   - Deterministic under a fixed seed: layer order, dedup order, and the
//     Bernoulli retention draws during restriction are all reproducible.
package mdd
