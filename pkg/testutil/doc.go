// Package testutil provides test doubles and environment helpers shared
// by capstyle's package tests.
//
// Key components:
//   - StubTerminal: predictable formatters.Terminal for output assertions
//   - MockTerminal: testify mock for asserting terminal queries
//   - TestEnvironment: temporary config and state directories with the
//     styling related environment cleared
package testutil
