package testutil

import (
	"fmt"
	"strings"

	"github.com/stretchr/testify/mock"
)

// MockTerminal is a testify mock satisfying formatters.Terminal.
// Use it when a test needs to assert which terminal queries happened.
type MockTerminal struct {
	mock.Mock
}

// DoesStyling returns the mocked value.
func (m *MockTerminal) DoesStyling() bool {
	return m.Called().Bool(0)
}

// NumberOfColors returns the mocked value.
func (m *MockTerminal) NumberOfColors() int {
	return m.Called().Int(0)
}

// Lookup returns the mocked raw capability.
func (m *MockTerminal) Lookup(name string) ([]byte, bool) {
	args := m.Called(name)
	seq, _ := args.Get(0).([]byte)
	return seq, args.Bool(1)
}

// Parameterize returns the mocked substitution.
func (m *MockTerminal) Parameterize(seq []byte, params ...any) ([]byte, error) {
	args := m.Called(seq, params)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}

// Normal returns the mocked reset sequence.
func (m *MockTerminal) Normal() string {
	return m.Called().String(0)
}

// ForegroundColor returns the mocked colour sequence.
func (m *MockTerminal) ForegroundColor(index int) string {
	return m.Called(index).String(0)
}

// BackgroundColor returns the mocked colour sequence.
func (m *MockTerminal) BackgroundColor(index int) string {
	return m.Called(index).String(0)
}

// Sugar returns the mocked alias table.
func (m *MockTerminal) Sugar() map[string]string {
	sugar, _ := m.Called().Get(0).(map[string]string)
	return sugar
}

// StubTerminal is a hand-rolled formatters.Terminal whose answers are
// predictable strings, for tests that care about output rather than calls.
//
// Lookup returns "seq-<name>" unless LookupFunc is set, colours render as
// "seq-<index>", and Parameterize joins the template and its arguments
// with "~".
type StubTerminal struct {
	Styling    bool
	Colors     int
	NormalSeq  string
	Aliases    map[string]string
	LookupFunc func(name string) ([]byte, bool)
	ParamFunc  func(seq []byte, args ...any) ([]byte, error)

	Lookups []string
}

// NewStubTerminal returns a styling, 256 colour stub whose reset is "seq-normal".
func NewStubTerminal() *StubTerminal {
	return &StubTerminal{Styling: true, Colors: 256, NormalSeq: "seq-normal"}
}

// DoesStyling reports Styling.
func (s *StubTerminal) DoesStyling() bool { return s.Styling }

// NumberOfColors reports Colors.
func (s *StubTerminal) NumberOfColors() int { return s.Colors }

// Lookup records the name and answers through LookupFunc or "seq-<name>".
func (s *StubTerminal) Lookup(name string) ([]byte, bool) {
	s.Lookups = append(s.Lookups, name)
	if s.LookupFunc != nil {
		return s.LookupFunc(name)
	}
	return []byte("seq-" + name), true
}

// Parameterize answers through ParamFunc or JoinParams.
func (s *StubTerminal) Parameterize(seq []byte, args ...any) ([]byte, error) {
	if s.ParamFunc != nil {
		return s.ParamFunc(seq, args...)
	}
	return JoinParams(seq, args...)
}

// Normal returns NormalSeq.
func (s *StubTerminal) Normal() string { return s.NormalSeq }

// ForegroundColor returns "seq-<index>".
func (s *StubTerminal) ForegroundColor(index int) string { return fmt.Sprintf("seq-%d", index) }

// BackgroundColor returns "seq-<index>".
func (s *StubTerminal) BackgroundColor(index int) string { return fmt.Sprintf("seq-%d", index) }

// Sugar returns Aliases.
func (s *StubTerminal) Sugar() map[string]string { return s.Aliases }

// JoinParams is a parameterizer that joins the template and its arguments
// with "~", so JoinParams("cap", 1, 2) gives "cap~1~2".
func JoinParams(seq []byte, args ...any) ([]byte, error) {
	parts := []string{string(seq)}
	for _, arg := range args {
		parts = append(parts, fmt.Sprint(arg))
	}
	return []byte(strings.Join(parts, "~")), nil
}
