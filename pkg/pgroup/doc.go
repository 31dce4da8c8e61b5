// Package pgroup runs a pipeline of child processes connected by pipes and
// reports how the last stage terminated.
//
// A Group is created with New, populated with AddCommand, started with
// Execute, drained with WaitForData, and finalized with WaitForExit. Only
// one Execute/WaitForData/WaitForExit/Kill/Close cycle may be in flight for
// a given Group at a time; the package also serializes SIGCHLD handling
// across all Groups in the process, since disposition is process-wide.
package pgroup
