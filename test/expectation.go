// This file is part of Tonegen.
//
// Tonegen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tonegen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tonegen.  If not, see <https://www.gnu.org/licenses/>.

package test

import "testing"

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expectedValue)
		return false
	}
	return true
}

// DemandEquality is used to test equality between one value and another. If
// the test fails it is a testing fatality.
//
// This is particularly useful if the values being tested are used in further
// tests and so must be correct. For example, testing that the lengths of two
// slices are equal before iterating over them in unison.
func DemandEquality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Fatalf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expectedValue)
	}
}

// expect tests argument v for a success condition suitable for its type.
// supported types:
//
//	bool -> bool == true
//	error -> error == nil
//
// a nil value is a success.
func expect(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			return false
		}

	case error:
		if v != nil {
			return false
		}

	case nil:

	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}

	return true
}

// ExpectSuccess tests argument v for a success condition suitable for its
// type. See the expect() function for supported types.
func ExpectSuccess(t *testing.T, v interface{}) bool {
	t.Helper()
	if !expect(t, v) {
		t.Errorf("expected success (%T)", v)
		return false
	}
	return true
}

// ExpectFailure tests argument v for a failure condition suitable for its
// type. See the expect() function for supported types.
func ExpectFailure(t *testing.T, v interface{}) bool {
	t.Helper()
	if expect(t, v) {
		t.Errorf("expected failure (%T)", v)
		return false
	}
	return true
}

// DemandSuccess is used to test for a success value. If the test fails it is
// a testing fatality.
func DemandSuccess(t *testing.T, v interface{}) {
	t.Helper()
	if !expect(t, v) {
		t.Fatalf("a success value is demanded for type %T", v)
	}
}
