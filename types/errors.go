//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package types

import "errors"

// Errors reported to the user. The text of each is shown by the h command.
var (
	ErrInvalidAddress          = errors.New("Invalid address")
	ErrUnexpectedAddress       = errors.New("Unexpected address")
	ErrInvalidCommandSuffix    = errors.New("Invalid command suffix")
	ErrUnexpectedCommandSuffix = errors.New("Unexpected command suffix")
	ErrUnknownCommand          = errors.New("Unknown command")
	ErrNoCurrentFilename       = errors.New("No current filename")
	ErrCannotOpenOutputFile    = errors.New("Cannot open output file")
	ErrBufferModified          = errors.New("Warning: buffer modified")
	ErrOutOfRange              = errors.New("Line out of range")
)
