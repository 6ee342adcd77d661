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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with Errorf(),
// which takes a pattern string and a list of values in the same way as
// fmt.Errorf().
//
// The pattern string is kept with the error so that callers can test for a
// specific error with Is() or for an error anywhere in a chain of curated
// errors with Has(). By convention the pattern starts with a short tag naming
// the area of the program the error comes from:
//
//	curated.Errorf("shader: %v", err)
//
// When the error message is built, adjacent duplicate parts are removed. So
// a "shader: shader: file not found" message will be shown as "shader: file
// not found".
package curated
