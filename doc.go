// Package modstruct is an exact toolkit for finitely generated modules over
// Euclidean rings: it brings integer, rational, polynomial and prime-field
// matrices to echelon, diagonal or Smith normal form and reads off the
// invariant-factor decomposition of the module they present.
//
// 🚀 What is modstruct?
//
//	A pure-Go, exact-arithmetic library that brings together:
//		• Rings: Z (math/big), Q, Q[x], F_p behind one Euclidean contract
//		• Sparse matrices over any ring with elementary row/column operations
//		• Elimination: row/column echelon, diagonal and Smith forms, with
//		  the transformation matrices P, Q and their inverses
//		• Queries: rank, determinant, inverse, kernel and image bases
//		• Modules: span(A)/span(B) ≅ R/(d₁) ⊕ … ⊕ R^r, factorization of
//		  elements into summand coordinates, homology of chain complexes
//
// Under the hood, everything is organized under four subpackages:
//
//	ring/         Ring / Euclidean / Field contracts and concrete rings
//	matrix/       Sparse[T]: construction, arithmetic, elementary operations
//	elimination/  Eliminate(m, form, opts...) and the Result queries
//	module/       Element, Hom, Decompose, Structure, NewAbstract, Homology
//
// Quick example, Z³ modulo the relations e0 = 0 and 2e1 = 0:
//
//	    ┌ 1 0 ┐
//	B = │ 0 2 │   ⇒   Z/2 ⊕ Z,  generators e1, e2
//	    └ 0 0 ┘
//
// Logging goes through github.com/ipfs/go-log/v2 subsystems ("elimination",
// "module"); enable with GOLOG_LOG_LEVEL="elimination=debug".
//
//	go get github.com/katalvlaran/modstruct
package modstruct
