package model

import (
	"strings"
	"testing"
)

func TestWorkerValidate(t *testing.T) {
	type testCase struct {
		Worker        Worker
		ExpectedError string
	}

	testCases := []testCase{
		{
			Worker: Worker{Name: "Alice", Number: "555-1234", Year: 1990},
		},
		{
			Worker: Worker{Name: "Bob", Year: 1985},
		},
		{
			Worker:        Worker{Number: "555-1234", Year: 1990},
			ExpectedError: "name (required)",
		},
		{
			Worker:        Worker{Name: "Alice"},
			ExpectedError: "year (required)",
		},
		{
			Worker:        Worker{Name: "Alice", Year: -12},
			ExpectedError: "year (gte)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Worker.String(), func(t *testing.T) {
			err := tc.Worker.Validate()

			if tc.ExpectedError == "" {
				if err != nil {
					t.Fatalf("unexpected error: %+v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("expected error containing '%s', got nil", tc.ExpectedError)
			}

			if e, g := tc.ExpectedError, err.Error(); !strings.Contains(g, e) {
				t.Errorf("err.Error(): expected to contain '%s', got '%s'", e, g)
			}
		})
	}
}
