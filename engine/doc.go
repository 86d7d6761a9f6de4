// Package engine provides the core VRP construction/local-search domain
// model: jobs, places, vehicles, tours, and the mutable contexts the
// insertion heuristic operates on.
//
// # Reading Guide
//
// Start with these files to understand the domain model:
//   - job.go: Job variants (Single, Multi) and their places/tasks
//   - vehicle.go: Vehicle types, shifts, and the Actor that executes a tour
//   - tour.go: The ordered activity sequence for one actor
//   - solution_context.go: The four-way job partition (required/ignored/unassigned/locked)
//
// # Architecture
//
// engine defines the domain types and the contexts (RouteContext,
// SolutionContext, InsertionContext) that the rest of the system mutates.
// Extension points — constraint modules, insertion evaluation, recreate
// strategies — live in sibling packages that import engine one-directionally:
//   - engine/constraint: the constraint pipeline and its modules
//   - engine/insertion: the insertion evaluator, selectors, and reducers
//   - engine/recreate: concrete recreate strategies (gaps, regret)
//   - engine/format: minimal problem ingestion and fleet validation
//   - engine/metrics: post-run reporting
//
// engine itself never imports any of these, which keeps the domain model
// usable independent of any particular heuristic.
package engine
