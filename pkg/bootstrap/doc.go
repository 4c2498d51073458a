// Package bootstrap prepares a Python application project for development
// and packaging.
//
// Run builds the default pipeline from configuration:
//
//  1. create the virtual environment
//  2. install the requirements manifest
//  3. add the default entries to the ignore file
//  4. install the pre-commit hooks
//  5. run the pre-commit hooks over every file
//  6. run the project's extra steps, if any
//
// executes it fail-fast and, only when every step succeeded, invokes the
// single-file packager. The packager's output directory is created either way.
package bootstrap
