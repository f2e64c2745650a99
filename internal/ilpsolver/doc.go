// Package ilpsolver defines the abstract contract a trajectory optimiser
// must satisfy (spec §4.6) and a reference BruteForceSolver implementing
// it by exhaustive search.
//
// The decision variables are conceptual: x_n per conflict-graph node, y_g
// per DAG, e per conflict edge. Given a DAG selection y, conflict
// activation forces e to 1 exactly when both of an edge's labelled DAGs
// are selected, and node coverage restricts x_n to 1 only for nodes
// belonging to every selected DAG; the objective then reduces to a maximum
// independent set search over the coverable nodes under active conflicts.
// BruteForceSolver computes this directly rather than through a real ILP
// formulation, which is why it is suitable only for small inputs and
// tests: production deployments plug a real solver in behind the same
// Solver interface.
package ilpsolver
