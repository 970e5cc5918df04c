// SPDX-License-Identifier: MIT

// Package module decomposes finitely presented modules over a Euclidean ring
// into cyclic summands and computes kernels and images of free-module maps.
//
// What & Why:
//
//	A presentation lists generators A and relations B as columns over an
//	ambient basis. Decompose runs Smith elimination on the relations
//	expressed in the generators and returns a Structure
//
//	    span(A) / span(B) ≅ R/(d₁) ⊕ … ⊕ R/(d_t) ⊕ R^rank,  d₁ | … | d_t,
//
//	with the new generators in ambient coordinates and a transition matrix,
//	so any ambient element can be Factorized into summand coordinates.
//
// Building blocks:
//   - Element: a finite linear combination of comparable labels.
//   - Hom: a free-module map given by the images of source labels, with
//     Matrix, Kernel, Image and Compose.
//   - Structure / Summand: the decomposition and its queries (Rank,
//     TorsionCoefficients, Generator, Factorize, SubSummands, String).
//   - NewAbstract / DirectSum: structures over the abstract basis e0, e1, ….
//   - Homology: ker / im at one position of a chain complex.
//
// Concurrency:
//
//	Structures, Elements and Homs are read-only after construction and may
//	be shared. Independent Decompose calls may run in parallel.
//
// Observability:
//
//	Logs through the "module" subsystem of github.com/ipfs/go-log/v2;
//	elimination options (WithTrace, WithVerify, WithMaxSteps) pass through.
package module
