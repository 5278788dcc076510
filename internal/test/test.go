// Package test holds assertion helpers shared by package tests.
package test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	parsergen "github.com/agelmarc/parser-generator"
)

// ExpectErrorCode asserts that e is a *parsergen.Error carrying the expected code.
func ExpectErrorCode(t *testing.T, expected int, e error) {
	t.Helper()

	require.Error(t, e)
	var pe *parsergen.Error
	require.True(t, errors.As(e, &pe), "expecting *parsergen.Error, got %T (%v)", e, e)
	require.Equal(t, expected, pe.Code, "unexpected error code for %v", e)
}

// ExpectErrorPos asserts that e is a *parsergen.Error reported at the given
// line and column.
func ExpectErrorPos(t *testing.T, line, col int, e error) {
	t.Helper()

	require.Error(t, e)
	var pe *parsergen.Error
	require.True(t, errors.As(e, &pe), "expecting *parsergen.Error, got %T (%v)", e, e)
	require.Equal(t, line, pe.Line, "unexpected line for %v", e)
	require.Equal(t, col, pe.Col, "unexpected column for %v", e)
}
