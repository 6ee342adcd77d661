// This file is part of glfan.
//
// glfan is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glfan is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glfan.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectSuccess and ExpectFailure functions test for success and failure
// under generic conditions: a bool is successful when it is true and an error
// is successful when it is nil. A nil value is considered to be a success.
//
// The Demand functions are like the Expect functions except that a failure is
// fatal to the test. Use them when later parts of a test depend on the value
// being correct, for example, testing that the lengths of two slices are equal
// before iterating over them in unison.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output for comparison with an expected string.
package test
