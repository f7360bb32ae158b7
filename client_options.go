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

import (
	"log/slog"
	"net/http"
	"time"
)

// ClientOptionFunc is a type that represents functions that modify the Client config
type ClientOptionFunc func(*Client)

// WithNetwork specifies the network. The client talks to the network's public
// REST endpoint unless WithUrl overrides it
func WithNetwork(network Network) ClientOptionFunc {
	return func(c *Client) {
		c.network = network
	}
}

// WithUrl specifies the base URL of the node REST API, overriding the
// network's default endpoint
func WithUrl(url string) ClientOptionFunc {
	return func(c *Client) {
		c.url = url
	}
}

// WithTimeout specifies the per-request timeout. The default is 30 seconds
func WithTimeout(timeout time.Duration) ClientOptionFunc {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRetryCount specifies how many times a failed request is retried. This
// is disabled by default
func WithRetryCount(retryCount int) ClientOptionFunc {
	return func(c *Client) {
		c.retryCount = retryCount
	}
}

// WithLogger specifies the logger to use. If none is provided, slog.Default()
// is used
func WithLogger(logger *slog.Logger) ClientOptionFunc {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHttpClient specifies an existing HTTP client to use. This is useful for
// custom transports and for tests
func WithHttpClient(httpClient *http.Client) ClientOptionFunc {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}
