package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// StubUpstream serves canned JSON documents by path and records every requested path.
// Paths with no document decode as JSON null. It is safe for concurrent use.
type StubUpstream struct {
	mu       sync.Mutex
	docs     map[string]string
	failures map[string]error
	paths    []string
}

// NewStubUpstream returns a stub backed by docs (path -> JSON body).
func NewStubUpstream(docs map[string]string) *StubUpstream {
	if docs == nil {
		docs = map[string]string{}
	}
	return &StubUpstream{docs: docs, failures: map[string]error{}}
}

// Fail makes requests for path return err.
func (s *StubUpstream) Fail(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = err
}

// Get implements providers.Upstream.
func (s *StubUpstream) Get(ctx context.Context, path string, dest any) error {
	s.mu.Lock()
	s.paths = append(s.paths, path)
	err := s.failures[path]
	body, ok := s.docs[path]
	s.mu.Unlock()

	if err != nil {
		return err
	}
	if !ok {
		body = "null"
	}
	if decodeErr := json.Unmarshal([]byte(body), dest); decodeErr != nil {
		return fmt.Errorf("stub decode %s: %w", path, decodeErr)
	}
	return nil
}

// Paths returns the requested paths in call order.
func (s *StubUpstream) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.paths...)
}

// Calls returns how many requests were made.
func (s *StubUpstream) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.paths)
}
