// Package sim provides the tick-driven uniprocessor scheduling engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - task.go: Task lifecycle (pending → ready → running → completed | missed) and the miss rule
//   - simulator.go: the per-run engine shared by every policy's tick loop
//   - policy_general.go: the simplest tick loops (FCFS, RR, SPN, SRT, HRRN)
//
// Real-time policies live in policy_realtime.go (ED, EDUI, RFCSC) and
// policy_periodic.go (FP, EDCD, which release instances of periodic templates).
//
// # Architecture
//
// The sim package owns the model and the policies; adapters live in
// sub-packages:
//   - sim/trace/: timeline records and their per-task summaries
//   - sim/workload/: batch file parsing
//   - sim/report/: console rendering of schedules and summary tables
//
// # Key Interfaces
//
// Policy is the single extension point: Name plus Run over a task list the run
// owns. Policies are built by name with NewPolicy and selected per batch kind
// with PoliciesFor. Simulate and RunBatch give every run a private deep copy
// of the workload, so runs never observe each other.
//
// Ready sets come in two shapes: ReadyQueue (FIFO) and ReadySet (ordered by a
// KeyFunc, ties broken by admission order).
package sim
