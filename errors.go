// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gomove

import "fmt"

// ClientError is returned when the node REST API responds with a non-success
// HTTP status. Code and Message carry the node's own error body when the node
// returned one
type ClientError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e ClientError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("node returned status %d", e.StatusCode)
	}
	return fmt.Sprintf(
		"node returned status %d: %s",
		e.StatusCode,
		e.Message,
	)
}
