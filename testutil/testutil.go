// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/election/cliparse"
	"github.com/danielhkuo/election/db"
)

// TestDBURLEnv names the variable that points tests at a PostgreSQL
// database instead of a throwaway SQLite file
const TestDBURLEnv = "TEST_DATABASE_URL"

// DBType returns the database type the tests run against
func DBType() string {
	if os.Getenv(TestDBURLEnv) != "" {
		return db.TypePostgres
	}
	return db.TypeSQLite
}

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbType := DBType()
	url := os.Getenv(TestDBURLEnv)
	if dbType == db.TypeSQLite {
		path := filepath.Join(t.TempDir(), "election.db")
		url = "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	}

	conn, err := db.Open(dbType, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Clean up tables before each test
	if err := db.DropSchema(conn); err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}
	if err := db.CreateSchema(conn, dbType); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  os.Getenv(TestDBURLEnv),
		DatabaseType: DBType(),
		LogSalt:      "test-log-salt",
	}
}

func rebind(query string) string {
	return sqlx.Rebind(sqlx.BindType(DBType()), query)
}

// CreateTestUser inserts a citizen with the given vote quota and returns its ID
func CreateTestUser(t *testing.T, conn *sql.DB, mynumber string, votes int) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(rebind(`
		INSERT INTO users (name, address, mynumber, votes)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`), "Citizen "+mynumber, "Tokyo", mynumber, votes).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// CreateTestCandidate inserts a candidate and returns its ID
// sex should be "male" or "female"
func CreateTestCandidate(t *testing.T, conn *sql.DB, name, party, sex string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(rebind(`
		INSERT INTO candidates (name, political_party, sex)
		VALUES (?, ?, ?)
		RETURNING id
	`), name, party, sex).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}

	return id
}

// AddTestVotes inserts count vote rows directly, bypassing validation
func AddTestVotes(t *testing.T, conn *sql.DB, userID, candidateID int64, keyword string, count int) {
	t.Helper()

	for i := 0; i < count; i++ {
		_, err := conn.Exec(rebind(`
			INSERT INTO votes (user_id, candidate_id, keyword)
			VALUES (?, ?, ?)
		`), userID, candidateID, keyword)
		if err != nil {
			t.Fatalf("Failed to create test vote: %v", err)
		}
	}
}

// CountVotes returns the number of vote rows, optionally for one user
// (userID > 0)
func CountVotes(t *testing.T, conn *sql.DB, userID int64) int {
	t.Helper()

	var n int
	var err error
	if userID > 0 {
		err = conn.QueryRow(rebind(`SELECT COUNT(*) FROM votes WHERE user_id = ?`), userID).Scan(&n)
	} else {
		err = conn.QueryRow(`SELECT COUNT(*) FROM votes`).Scan(&n)
	}
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}

	return n
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
