package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNew_MemoryStore(t *testing.T) {
	s, err := New(context.Background(), &Config{Type: "memory"}, testLogger())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer s.Close()

	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("Expected *MemoryStore, got %T", s)
	}
}

func TestNew_MemoryStoreCaseInsensitive(t *testing.T) {
	s, err := New(context.Background(), &Config{Type: "MEMORY"}, testLogger())
	if err != nil {
		t.Fatalf("New() failed for upper-case type: %v", err)
	}
	defer s.Close()

	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("Expected *MemoryStore, got %T", s)
	}
}

func TestNew_SQLiteStore(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "factory_test_*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	config := &Config{
		Type:       "sqlite",
		SQLitePath: filepath.Join(tempDir, "products.db"),
	}
	s, err := New(context.Background(), config, testLogger())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer s.Close()

	if _, ok := s.(*SQLiteStore); !ok {
		t.Errorf("Expected *SQLiteStore, got %T", s)
	}
}

func TestNew_DynamoStore(t *testing.T) {
	config := &Config{
		Type:   "dynamo",
		Table:  "products-test",
		Region: "us-east-1",
	}
	s, err := New(context.Background(), config, testLogger())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer s.Close()

	if _, ok := s.(*DynamoStore); !ok {
		t.Errorf("Expected *DynamoStore, got %T", s)
	}
}

func TestNew_UnsupportedType(t *testing.T) {
	_, err := New(context.Background(), &Config{Type: "redis"}, testLogger())
	if err == nil {
		t.Fatal("Expected New() to fail for unsupported type")
	}
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Expected ErrUnsupportedType, got: %v", err)
	}
}

func TestNew_NilConfig(t *testing.T) {
	if _, err := New(context.Background(), nil, testLogger()); err == nil {
		t.Fatal("Expected New() to fail for nil config")
	}
}
