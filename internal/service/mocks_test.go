package service

import (
	"context"
	"strings"
	"sync"

	"paper-summarizer/internal/domain"
)

// Mock implementations for testing
type MockLogger struct {
	mu       sync.Mutex
	messages []string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{
		messages: []string{},
	}
}

func (m *MockLogger) add(line string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, line)
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.add("INFO: " + msg)
}

func (m *MockLogger) Error(msg string, err error, args ...interface{}) {
	if err == nil {
		m.add("ERROR: " + msg)
		return
	}
	m.add("ERROR: " + msg + " - " + err.Error())
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.add("DEBUG: " + msg)
}

func (m *MockLogger) Warn(msg string, args ...interface{}) {
	m.add("WARN: " + msg)
}

// MockCompleter records prompts and answers from a script.
type MockCompleter struct {
	mu        sync.Mutex
	prompts   []string
	respond   func(call int, prompt string) (string, error)
	callCount int
}

func NewMockCompleter(respond func(call int, prompt string) (string, error)) *MockCompleter {
	return &MockCompleter{respond: respond}
}

// StaticCompleter always answers with resp.
func StaticCompleter(resp string) *MockCompleter {
	return NewMockCompleter(func(int, string) (string, error) { return resp, nil })
}

func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.callCount++
	call := m.callCount
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	return m.respond(call, prompt)
}

func (m *MockCompleter) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

func (m *MockCompleter) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// MockExtractor returns canned text instead of running MuPDF.
type MockExtractor struct {
	mu    sync.Mutex
	text  string
	err   error
	paths []string
}

func (m *MockExtractor) ExtractFile(path string) (*domain.ExtractedText, error) {
	m.mu.Lock()
	m.paths = append(m.paths, path)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ExtractedText{
		Content:       m.text,
		Metadata:      domain.DocumentMetadata{PageCount: 1},
		PagesWithText: boolToInt(strings.TrimSpace(m.text) != ""),
	}, nil
}

func (m *MockExtractor) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.paths)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
