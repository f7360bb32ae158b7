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

// Package gomove implements support for interacting with MoveVM-based chains
// through a node's REST API. It covers fetching published module ABIs,
// encoding entry and view function arguments into their BCS wire form, and
// executing view functions.
//
// This package is the main entry point into this library. The other packages
// can be used outside of this one, but it's not a primary design goal.
package gomove

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/blinklabs-io/gomove/abi"
	"github.com/blinklabs-io/gomove/ledger"
	"github.com/go-resty/resty/v2"
)

const defaultRequestTimeout = 30 * time.Second

// The Client type is a wrapper around the chain REST API that handles
// fetching module metadata and executing view functions
type Client struct {
	network    Network
	url        string
	timeout    time.Duration
	retryCount int
	logger     *slog.Logger
	httpClient *http.Client
	rest       *resty.Client
}

// NewClient returns a new Client object with the specified options. The
// client talks to the mainnet REST endpoint unless configured otherwise
func NewClient(options ...ClientOptionFunc) *Client {
	c := &Client{
		network: NetworkMainnet,
		timeout: defaultRequestTimeout,
	}
	// Apply provided options functions
	for _, option := range options {
		option(c)
	}
	if c.url == "" {
		c.url = c.network.ApiUrl
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.httpClient != nil {
		c.rest = resty.NewWithClient(c.httpClient)
	} else {
		c.rest = resty.New()
	}
	c.rest.SetBaseURL(c.url).
		SetTimeout(c.timeout).
		SetHeader("Accept", "application/json")
	if c.retryCount > 0 {
		c.rest.SetRetryCount(c.retryCount)
	}
	return c
}

// Network returns the network the client was configured for
func (c *Client) Network() Network {
	return c.network
}

// Url returns the base URL of the node REST API
func (c *Client) Url() string {
	return c.url
}

// AccountModules returns one page of the modules published under the given
// account. A pagination key from a previous response can be passed to fetch
// the next page, and the returned pagination carries the next key, if any
func (c *Client) AccountModules(
	ctx context.Context,
	address ledger.AccAddress,
	pageKey []byte,
) ([]ledger.ModuleInfo, *ledger.Pagination, error) {
	var query map[string]string
	if len(pageKey) > 0 {
		query = map[string]string{
			"pagination.key": base64.StdEncoding.EncodeToString(pageKey),
		}
	}
	var result accountModulesResponse
	err := c.get(
		ctx,
		fmt.Sprintf(
			"/initia/move/v1/accounts/%s/modules",
			address.ShortString(),
		),
		query,
		&result,
	)
	if err != nil {
		return nil, nil, err
	}
	return result.Modules, result.Pagination, nil
}

// AccountModule returns a single module published under the given account
func (c *Client) AccountModule(
	ctx context.Context,
	address ledger.AccAddress,
	moduleName string,
) (*ledger.ModuleInfo, error) {
	var result accountModuleResponse
	err := c.get(
		ctx,
		fmt.Sprintf(
			"/initia/move/v1/accounts/%s/modules/%s",
			address.ShortString(),
			moduleName,
		),
		nil,
		&result,
	)
	if err != nil {
		return nil, err
	}
	return &result.Module, nil
}

// ModuleABI fetches a published module and decodes its ABI document
func (c *Client) ModuleABI(
	ctx context.Context,
	address ledger.AccAddress,
	moduleName string,
) (*abi.ModuleABI, error) {
	module, err := c.AccountModule(ctx, address, moduleName)
	if err != nil {
		return nil, err
	}
	return abi.DecodeModuleABI([]byte(module.Abi))
}

// View executes a view function on the node. The request arguments must
// already be BCS-encoded and base64-wrapped, one per explicit parameter
func (c *Client) View(
	ctx context.Context,
	request ledger.ViewRequest,
) (*ledger.ViewResponse, error) {
	// The node expects empty lists rather than JSON null
	if request.TypeArgs == nil {
		request.TypeArgs = []string{}
	}
	if request.Args == nil {
		request.Args = []string{}
	}
	var result ledger.ViewResponse
	if err := c.post(ctx, "/initia/move/v1/view", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ViewFunction fetches the module ABI, encodes the given arguments against
// it, executes the view function and returns its result JSON document
func (c *Client) ViewFunction(
	ctx context.Context,
	address ledger.AccAddress,
	moduleName string,
	functionName string,
	typeArgs []string,
	args []any,
) (string, error) {
	mod, err := c.ModuleABI(ctx, address, moduleName)
	if err != nil {
		return "", err
	}
	encodedArgs, err := abi.EncodeViewFunctionArgsBase64(
		mod,
		functionName,
		typeArgs,
		args,
	)
	if err != nil {
		return "", err
	}
	result, err := c.View(
		ctx,
		ledger.ViewRequest{
			Address:      address.ShortString(),
			ModuleName:   moduleName,
			FunctionName: functionName,
			TypeArgs:     typeArgs,
			Args:         encodedArgs,
		},
	)
	if err != nil {
		return "", err
	}
	return result.Data, nil
}

// ExecuteArgs fetches the module ABI, encodes the given arguments against it
// and returns a MsgExecute ready for inclusion in a transaction
func (c *Client) ExecuteArgs(
	ctx context.Context,
	sender string,
	moduleAddress ledger.AccAddress,
	moduleName string,
	functionName string,
	typeArgs []string,
	args []any,
) (*ledger.MsgExecute, error) {
	mod, err := c.ModuleABI(ctx, moduleAddress, moduleName)
	if err != nil {
		return nil, err
	}
	encoded, err := abi.EncodeFunctionArgs(mod, functionName, typeArgs, args)
	if err != nil {
		return nil, err
	}
	return ledger.NewMsgExecute(
		sender,
		moduleAddress,
		moduleName,
		functionName,
		typeArgs,
		encoded,
	), nil
}

// AccountInfo returns the auth record for the given bech32 account address
func (c *Client) AccountInfo(
	ctx context.Context,
	address string,
) (*ledger.AccountInfo, error) {
	var result accountInfoResponse
	err := c.get(
		ctx,
		fmt.Sprintf("/cosmos/auth/v1beta1/accounts/%s", address),
		nil,
		&result,
	)
	if err != nil {
		return nil, err
	}
	return &result.Account, nil
}

// Balances returns one page of the coin balances held by the given bech32
// account address
func (c *Client) Balances(
	ctx context.Context,
	address string,
	pageKey []byte,
) ([]ledger.Coin, *ledger.Pagination, error) {
	var query map[string]string
	if len(pageKey) > 0 {
		query = map[string]string{
			"pagination.key": base64.StdEncoding.EncodeToString(pageKey),
		}
	}
	var result balancesResponse
	err := c.get(
		ctx,
		fmt.Sprintf("/cosmos/bank/v1beta1/balances/%s", address),
		query,
		&result,
	)
	if err != nil {
		return nil, nil, err
	}
	return result.Balances, result.Pagination, nil
}

func (c *Client) get(
	ctx context.Context,
	path string,
	query map[string]string,
	result any,
) error {
	var nodeErr nodeError
	req := c.rest.R().
		SetContext(ctx).
		SetResult(result).
		SetError(&nodeErr)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	res, err := req.Get(path)
	return c.checkResponse(path, res, nodeErr, err)
}

func (c *Client) post(
	ctx context.Context,
	path string,
	body any,
	result any,
) error {
	var nodeErr nodeError
	res, err := c.rest.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		SetError(&nodeErr).
		Post(path)
	return c.checkResponse(path, res, nodeErr, err)
}

func (c *Client) checkResponse(
	path string,
	res *resty.Response,
	nodeErr nodeError,
	err error,
) error {
	if err != nil {
		c.logger.Debug(
			"request failed",
			"path", path,
			"error", err,
		)
		return err
	}
	if res.IsError() {
		c.logger.Debug(
			"node returned error",
			"path", path,
			"status", res.StatusCode(),
			"message", nodeErr.Message,
		)
		return ClientError{
			StatusCode: res.StatusCode(),
			Code:       nodeErr.Code,
			Message:    nodeErr.Message,
		}
	}
	return nil
}

// nodeError is the error body returned by the Cosmos REST layer
type nodeError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type accountModulesResponse struct {
	Modules    []ledger.ModuleInfo `json:"modules"`
	Pagination *ledger.Pagination  `json:"pagination"`
}

type accountModuleResponse struct {
	Module ledger.ModuleInfo `json:"module"`
}

type accountInfoResponse struct {
	Account ledger.AccountInfo `json:"account"`
}

type balancesResponse struct {
	Balances   []ledger.Coin      `json:"balances"`
	Pagination *ledger.Pagination `json:"pagination"`
}
