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

// Package modalflag wraps the flag package of the standard library and adds
// program modes. Each mode can have its own set of flags.
//
// Arguments are given once with NewArgs() and then processed one layer at a
// time with Parse(). Flags for the current layer are added before the call to
// Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "CHECK")
//	_, _ = md.Parse()
//
// After Parse() the Mode() function says which mode was selected. If no mode
// was named on the command line the first sub-mode is used. A mode handler
// then starts a new layer with NewMode(), adds its flags and calls Parse()
// again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		watch := md.AddBool("watch", false, "reload shaders when they change")
//		p, err := md.Parse()
//		if err != nil || p != modalflag.ParseContinue {
//			return err
//		}
//	}
//
// Mode names are case insensitive.
package modalflag
