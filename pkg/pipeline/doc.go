// Package pipeline runs ordered, fail-fast sequences of setup steps.
//
// A Step pairs a human-readable label with an Action. Actions report an exit
// code; any non-zero code (or an error from the action itself) fails the
// step with an errors.StepError carrying the label. RunPipeline stops at the
// first failing step, so with step k of N failing exactly steps 1..k run.
//
// # Dry run
//
// In dry-run mode actions are not executed. An action that implements
// DryRunner is asked to simulate itself instead, which lets file mutations
// compute their changes without writing them.
//
// # Packaging
//
// MaybePackage is the single conditional branch at the end of a run: it
// creates the output directory and runs the packaging step only when the
// pipeline that preceded it succeeded.
package pipeline
