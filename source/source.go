// Package source resolves the document the CLI converts and writes the result.
//
// A source argument is read, in order of preference, as an http(s) URL, a path to
// an existing regular file, or literal JSON text. An empty argument reads stdin.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/paularlott/toon/pool"
)

// ErrNoInput is returned when no argument is given and stdin is an interactive terminal.
var ErrNoInput = errors.New("no input provided. Use a file, JSON string, or pipe data via stdin")

// Kind identifies where a document came from.
type Kind string

const (
	KindStdin   Kind = "stdin"
	KindURL     Kind = "url"
	KindFile    Kind = "file"
	KindLiteral Kind = "literal"
)

// Document is raw source text together with its origin.
type Document struct {
	Kind Kind
	Name string
	Data []byte
}

// Options controls how sources are read. The zero value reads os.Stdin and
// fetches URLs through pool.GetPool.
type Options struct {
	Stdin io.Reader
	Pool  pool.HTTPPool
}

// Detect reports how arg would be read without reading it.
func Detect(arg string) Kind {
	switch {
	case arg == "":
		return KindStdin
	case strings.HasPrefix(arg, "http://"), strings.HasPrefix(arg, "https://"):
		return KindURL
	}

	if info, err := os.Stat(arg); err == nil && info.Mode().IsRegular() {
		return KindFile
	}
	return KindLiteral
}

// Resolve reads the document named by arg.
func Resolve(ctx context.Context, arg string, opts *Options) (*Document, error) {
	if opts == nil {
		opts = &Options{}
	}

	kind := Detect(arg)
	doc := &Document{Kind: kind, Name: arg}

	var err error
	switch kind {
	case KindStdin:
		doc.Name = "-"
		doc.Data, err = readStdin(opts.Stdin)
	case KindURL:
		doc.Data, err = fetch(ctx, arg, opts.Pool)
	case KindFile:
		doc.Data, err = os.ReadFile(arg)
	default:
		doc.Name = "argument"
		doc.Data = []byte(arg)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func readStdin(r io.Reader) ([]byte, error) {
	if r == nil {
		r = os.Stdin
	}
	if f, ok := r.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return nil, ErrNoInput
		}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

func fetch(ctx context.Context, url string, p pool.HTTPPool) ([]byte, error) {
	if p == nil {
		p = pool.GetPool()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.GetHTTPClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}
	return data, nil
}
