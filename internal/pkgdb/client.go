// Package pkgdb invokes the external package database engine.
package pkgdb

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gopak/pkgq/internal/executil"
	"github.com/gopak/pkgq/internal/logging"
	"github.com/gopak/pkgq/internal/search"
)

// maxLineSize bounds a single result line; descriptions can be long.
const maxLineSize = 16 << 20

type Client struct {
	command  string
	settings Settings
	stderr   io.Writer
}

func New(command string, settings Settings) *Client {
	return &Client{command: command, settings: settings}
}

// WithStderr redirects the engine's stderr, which is otherwise inherited.
func (c *Client) WithStderr(w io.Writer) *Client {
	c.stderr = w
	return c
}

// Command returns the invocation used for params.
func (c *Client) Command(params search.SearchParams) (executil.Command, error) {
	if err := params.Validate(); err != nil {
		return executil.Command{}, err
	}
	body, err := json.Marshal(params)
	if err != nil {
		return executil.Command{}, fmt.Errorf("encode search params: %w", err)
	}
	args := append([]string{"search"}, c.settings.Args()...)
	args = append(args, string(body))
	return executil.Command{Name: c.command, Args: args, Stderr: c.stderr}, nil
}

// Search runs one blocking engine query. Results keep the engine's rank
// order. A non-zero exit is reported in Response.ExitCode alongside whatever
// results were printed; it is not an error here. Output of a failed engine is
// decoded up to the first malformed line, which is usually a line truncated
// by a crash or kill.
func (c *Client) Search(ctx context.Context, params search.SearchParams) (search.Response, error) {
	cmd, err := c.Command(params)
	if err != nil {
		return search.Response{}, err
	}
	logging.Debugf("running: %s", cmd.String())
	res, err := executil.Run(ctx, cmd)
	if err != nil {
		return search.Response{}, err
	}
	results, err := DecodeResults(res.Stdout)
	if err != nil {
		if res.Success() {
			return search.Response{}, err
		}
		logging.Debugf("dropping engine output after exit status %d: %v", res.Code, err)
	}
	return search.Response{Results: results, ExitCode: res.Code}, nil
}

// DecodeResults parses one JSON result per non-empty line. On error the
// results decoded before the bad line are returned with it.
func DecodeResults(stdout []byte) ([]search.SearchResult, error) {
	sc := bufio.NewScanner(bytes.NewReader(stdout))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var out []search.SearchResult
	line := 0
	for sc.Scan() {
		line++
		b := bytes.TrimSpace(sc.Bytes())
		if len(b) == 0 {
			continue
		}
		var r search.SearchResult
		if err := json.Unmarshal(b, &r); err != nil {
			return out, fmt.Errorf("decode search result on line %d: %w", line, err)
		}
		out = append(out, r)
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("read search results: %w", err)
	}
	return out, nil
}
