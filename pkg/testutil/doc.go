// Package testutil provides utilities for testing bootstrap components.
//
// Key components:
//   - NewTestFS / NewReadOnlyTestFS: afero-backed in-memory filesystems
//   - FakeCommand and CallLog: substitutes for external tools that record
//     execution order
//   - WriteFile / ReadFile / ReadLines: fs helpers that fail the test on error
package testutil
