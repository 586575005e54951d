package rpc

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gagliardetto/solana-go"
)

type AccountInfo struct {
	Value *AccountInfoValue `json:"value"`
}

type AccountInfoValue struct {
	Data       []string `json:"data"`
	Owner      string   `json:"owner"`
	Lamports   uint64   `json:"lamports"`
	Executable bool     `json:"executable"`
}

// Bytes base64-decodes the account data payload.
func (v *AccountInfoValue) Bytes() ([]byte, error) {
	if len(v.Data) == 0 {
		return nil, errors.New("account data is empty")
	}
	return base64.StdEncoding.DecodeString(v.Data[0])
}

// MintInfo holds the jsonParsed fields of an SPL token mint account.
type MintInfo struct {
	Decimals        uint8  `json:"decimals"`
	Supply          string `json:"supply"`
	MintAuthority   string `json:"mintAuthority"`
	FreezeAuthority string `json:"freezeAuthority"`
	IsInitialized   bool   `json:"isInitialized"`
}

type RequestBody struct {
	Jsonrpc string      `json:"jsonrpc"`
	ID      int         `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

type ResponseBody struct {
	Jsonrpc string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Client issues JSON-RPC calls against a single Solana HTTP endpoint.
// Timeouts and pooling are whatever the underlying http.Client does.
type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{},
	}
}

func (c *Client) CallRPC(method string, params interface{}) (*ResponseBody, error) {
	requestBody := RequestBody{
		Jsonrpc: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	}

	reqBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", c.url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var reader io.ReadCloser
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		reader, err = gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer reader.Close()
	default:
		reader = resp.Body
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	var responseBody ResponseBody
	if err := json.Unmarshal(body, &responseBody); err != nil {
		return nil, err
	}

	if responseBody.Error != nil {
		return nil, errors.New(responseBody.Error.Message)
	}

	return &responseBody, nil
}

// GetAccountInfo fetches one account with base64-encoded data. A missing
// account comes back with a nil Value, not an error.
func (c *Client) GetAccountInfo(publicKey solana.PublicKey) (*AccountInfo, error) {
	reqParams := []interface{}{
		publicKey,
		map[string]interface{}{
			"encoding":   "base64",
			"commitment": "confirmed",
		},
	}

	response, err := c.CallRPC("getAccountInfo", reqParams)
	if err != nil {
		return nil, err
	}

	var accountInfo AccountInfo
	if err := json.Unmarshal(response.Result, &accountInfo); err != nil {
		return nil, err
	}

	return &accountInfo, nil
}

// GetMintInfo fetches a token mint with jsonParsed encoding. Returns
// (nil, nil) when the account does not exist or is not a mint.
func (c *Client) GetMintInfo(publicKey solana.PublicKey) (*MintInfo, error) {
	reqParams := []interface{}{
		publicKey,
		map[string]interface{}{
			"encoding":   "jsonParsed",
			"commitment": "confirmed",
		},
	}

	response, err := c.CallRPC("getAccountInfo", reqParams)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Value *struct {
			Owner string `json:"owner"`
			Data  struct {
				Program string `json:"program"`
				Parsed  struct {
					Type string          `json:"type"`
					Info json.RawMessage `json:"info"`
				} `json:"parsed"`
			} `json:"data"`
		} `json:"value"`
	}
	if err := json.Unmarshal(response.Result, &parsed); err != nil {
		return nil, err
	}

	if parsed.Value == nil {
		return nil, nil
	}
	if parsed.Value.Data.Parsed.Type != "mint" {
		return nil, fmt.Errorf("account %s is not a token mint", publicKey)
	}

	var mint MintInfo
	if err := json.Unmarshal(parsed.Value.Data.Parsed.Info, &mint); err != nil {
		return nil, err
	}

	return &mint, nil
}
