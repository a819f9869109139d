// SPDX-License-Identifier: MIT
// Package: sssp/internal/tableio
//
// reader.go — tokenizer, header validation and graph assembly.

package tableio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/katalvlaran/sssp/core"
)

// Sentinel errors returned by ReadInput.
var (
	// ErrUnexpectedEOF indicates the input ended before the header or all E edges were read.
	ErrUnexpectedEOF = errors.New("tableio: unexpected end of input")

	// ErrBadToken indicates a token that is not a base-10 integer.
	ErrBadToken = errors.New("tableio: malformed integer token")

	// ErrInvalidHeader indicates the V E S header failed validation.
	ErrInvalidHeader = errors.New("tableio: invalid header")
)

// Header is the leading "V E S" triple of the input.
type Header struct {
	Vertices int `validate:"gte=1"`
	Edges    int `validate:"gte=0"`
	Source   int `validate:"gte=0,ltfield=Vertices"`
}

// Input is a parsed graph description ready for the driver.
type Input struct {
	Header Header
	Graph  *core.Graph
}

// ReadOption customizes ReadInput.
type ReadOption func(*readConfig)

type readConfig struct {
	onEdge func(done, total int)
}

// WithOnEdge registers fn to be called after each edge is inserted, with the
// number of edges read so far and the declared total. A nil fn is ignored.
func WithOnEdge(fn func(done, total int)) ReadOption {
	return func(c *readConfig) {
		if fn != nil {
			c.onEdge = fn
		}
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
	trans        ut.Translator
)

// headerValidator returns the shared validator with English translations registered.
func headerValidator() (*validator.Validate, ut.Translator) {
	validateOnce.Do(func() {
		validate = validator.New()
		english := en.New()
		uni := ut.New(english, english)
		trans, _ = uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	})

	return validate, trans
}

// validateHeader checks h and flattens translated validation messages into one error.
func validateHeader(h Header) error {
	v, tr := headerValidator()
	err := v.Struct(h)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(tr))
	}

	return fmt.Errorf("%w: %s", ErrInvalidHeader, strings.Join(msgs, "; "))
}

// tokenizer yields whitespace-separated integers from r.
type tokenizer struct {
	sc  *bufio.Scanner
	pos int // 1-based index of the last token read
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenizer{sc: sc}
}

// next returns the next integer; what names the value for error context.
func (t *tokenizer) next(what string) (int64, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("tableio: reading %s: %w", what, err)
		}
		return 0, fmt.Errorf("%w: missing %s", ErrUnexpectedEOF, what)
	}
	t.pos++

	tok := t.sc.Text()
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d %q (%s)", ErrBadToken, t.pos, tok, what)
	}

	return v, nil
}

// nextInt is next narrowed to int.
func (t *tokenizer) nextInt(what string) (int, error) {
	v, err := t.next(what)
	if err != nil {
		return 0, err
	}
	if int64(int(v)) != v {
		return 0, fmt.Errorf("%w: token %d overflows int (%s)", ErrBadToken, t.pos, what)
	}

	return int(v), nil
}

// ReadInput parses "V E S" followed by E "src dest weight" triples from r.
//
// Implementation:
//   - Stage 1: Read and validate the header.
//   - Stage 2: Allocate a V-vertex graph.
//   - Stage 3: Read E triples, inserting each edge as it is parsed.
//
// Tokens after the last declared edge are ignored.
//
// Errors:
//   - ErrUnexpectedEOF, ErrBadToken, ErrInvalidHeader.
//   - core.ErrVertexOutOfRange (wrapped) for an edge endpoint outside [0, V).
func ReadInput(r io.Reader, opts ...ReadOption) (*Input, error) {
	cfg := readConfig{onEdge: func(int, int) {}}
	for _, opt := range opts {
		opt(&cfg)
	}

	tk := newTokenizer(r)

	// Stage 1: header.
	var h Header
	var err error
	if h.Vertices, err = tk.nextInt("vertex count"); err != nil {
		return nil, err
	}
	if h.Edges, err = tk.nextInt("edge count"); err != nil {
		return nil, err
	}
	if h.Source, err = tk.nextInt("source vertex"); err != nil {
		return nil, err
	}
	if err = validateHeader(h); err != nil {
		return nil, err
	}

	// Stage 2: graph.
	g, err := core.NewGraph(h.Vertices)
	if err != nil {
		return nil, fmt.Errorf("tableio: %w", err)
	}

	// Stage 3: edges.
	for i := 0; i < h.Edges; i++ {
		src, err := tk.nextInt(fmt.Sprintf("src of edge %d", i))
		if err != nil {
			return nil, err
		}
		dest, err := tk.nextInt(fmt.Sprintf("dest of edge %d", i))
		if err != nil {
			return nil, err
		}
		w, err := tk.next(fmt.Sprintf("weight of edge %d", i))
		if err != nil {
			return nil, err
		}
		if err = g.AddEdge(src, dest, w); err != nil {
			return nil, fmt.Errorf("tableio: edge %d: %w", i, err)
		}
		cfg.onEdge(i+1, h.Edges)
	}

	return &Input{Header: h, Graph: g}, nil
}
