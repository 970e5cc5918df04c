// SPDX-License-Identifier: MIT

// Package elimination computes exact normal forms of matrices over a
// Euclidean ring: row/column echelon, diagonal and Smith normal form.
//
// What & Why:
//
//	Eliminate(A, form) reduces a private copy of A with elementary row and
//	column operations (swap, scale by a unit, add a multiple) and records
//	every operation. From the log it derives invertible P and Q with
//
//	    D = P · A · Q
//
//	together with P⁻¹, Q⁻¹, the rank, the pivots (invariant factors for
//	Smith), the determinant, the inverse, and bases of kernel and image.
//
// Algorithm (Diagonal/Smith):
//
//  1. A zero matrix, or one already in the target form, is returned
//     unchanged with identity transformations.
//  2. The pivot is the entry of minimal Degree in the unprocessed block
//     (ties: fewer non-zeros in its row, then lower row, then lower column).
//  3. Its row and column are cleared by Euclidean division; a surviving
//     remainder has smaller degree and becomes the new pivot.
//  4. Smith only: if the pivot does not divide some remaining entry, that
//     entry's row is added to the pivot row and clearing restarts.
//  5. The pivot is normalized (positive, monic, 1) and the cursor advances.
//
// Every loop is iterative; the degree measure bounds the work.
//
// Concurrency:
//
//	Each call owns its working copy; Results are immutable and safe for
//	concurrent readers. Independent calls may run in parallel.
//
// Observability:
//
//	The package logs through the "elimination" subsystem of
//	github.com/ipfs/go-log/v2. WithTrace() additionally keeps the
//	step-by-step pivot log in Result.Steps(); results never depend on it.
package elimination
