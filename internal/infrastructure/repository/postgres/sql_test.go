package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("sql.ErrNoRows must count as not found")
	}
	if !isNotFound(fmt.Errorf("wrapped: %w", sql.ErrNoRows)) {
		t.Fatalf("wrapped sql.ErrNoRows must count as not found")
	}
	if isNotFound(errors.New("boom")) {
		t.Fatalf("arbitrary error must not count as not found")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pq.Error{Code: uniqueViolationCode}) {
		t.Fatalf("code 23505 must count as unique violation")
	}
	if !isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: uniqueViolationCode})) {
		t.Fatalf("wrapped 23505 must count as unique violation")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatalf("foreign key violation must not count as unique violation")
	}
	if isUniqueViolation(nil) {
		t.Fatalf("nil must not count as unique violation")
	}
}
