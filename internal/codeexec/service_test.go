// internal/codeexec/service_test.go
package codeexec

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"study-tracker/internal/models"
)

func TestValidateRejectsEmptyCode(t *testing.T) {
	v := Validate("   \n\t ")

	require.False(t, v.Valid)
	require.Equal(t, "code cannot be empty", v.Error)
}

func TestValidateRejectsOversizedCode(t *testing.T) {
	v := Validate(strings.Repeat("x", maxCodeLength+1))

	require.False(t, v.Valid)
	require.Contains(t, v.Error, "too long")
}

func TestValidateLengthCountsCharactersNotBytes(t *testing.T) {
	// Each rune is 2 bytes; the limit is on characters.
	atLimit := strings.Repeat("é", maxCodeLength)
	require.True(t, Validate(atLimit).Valid)

	overLimit := strings.Repeat("é", maxCodeLength+1)
	require.False(t, Validate(overLimit).Valid)
}

func TestValidateRejectsBannedPatterns(t *testing.T) {
	cases := []string{
		"import os\nprint(1)",
		"import sys",
		"import subprocess",
		"f = open('x')",
		"__import__('os')",
	}
	for _, code := range cases {
		v := Validate(code)
		require.False(t, v.Valid, "expected %q to be rejected", code)
		require.Equal(t, "some operations are not allowed for security reasons", v.Error)
	}
}

func TestValidateAcceptsHarmlessCode(t *testing.T) {
	v := Validate("print('hello')\nx = 1 + 2")

	require.True(t, v.Valid)
	require.Empty(t, v.Error)
}

func TestExecuteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/code/execute", r.URL.Path)

		var req models.CodeExecutionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, 5, req.Timeout) // default applied

		json.NewEncoder(w).Encode(models.CodeExecutionResult{Success: true, Output: "hello\n"})
	}))
	defer srv.Close()

	result := NewService(srv.URL).Execute(context.Background(), models.CodeExecutionRequest{Code: "print('hello')"})

	require.True(t, result.Success)
	require.Equal(t, "hello\n", result.Output)
	require.GreaterOrEqual(t, result.ExecutionTime, int64(0))
}

func TestExecuteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	result := NewService(srv.URL).Execute(context.Background(), models.CodeExecutionRequest{Code: "print(1)"})

	require.False(t, result.Success)
	require.Contains(t, result.Error, "server error")
}

func TestExecuteConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	result := NewService(srv.URL).Execute(context.Background(), models.CodeExecutionRequest{Code: "print(1)"})

	require.False(t, result.Success)
	require.Contains(t, result.Error, "connection error")
	require.Equal(t, int64(0), result.ExecutionTime)
}
