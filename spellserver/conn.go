package spellserver

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Wire format: each message is "Content-Length: N\r\n\r\n" followed by N
// bytes of JSON. Requests carry an id, a method name, and method-specific
// params; every request gets exactly one response with the same id.

const (
	methodFindMisspelled = "findMisspelledWord"
	methodSuggestGuesses = "suggestGuesses"
	methodWordLearned    = "wordWasLearned"
	methodWordForgotten  = "wordWasForgotten"
)

type request struct {
	ID     int64  `json:"id"`
	Method string `json:"method"`
	Params params `json:"params"`
}

type params struct {
	Text      string `json:"text,omitempty"`
	Word      string `json:"word,omitempty"`
	Language  string `json:"language,omitempty"`
	CountOnly bool   `json:"countOnly,omitempty"`
}

type response struct {
	ID     int64    `json:"id"`
	Result any      `json:"result,omitempty"`
	Error  *wireErr `json:"error,omitempty"`
}

type wireErr struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error codes reported to the host.
const (
	codeUnknownMethod   = -32601
	codeUnknownLanguage = -32000
	codeBadRequest      = -32600
)

type findResult struct {
	Range     Range `json:"range"`
	WordCount int   `json:"wordCount"`
}

type guessesResult struct {
	Guesses []string `json:"guesses"`
}

type ackResult struct {
	OK bool `json:"ok"`
}

// Run serves requests from r until EOF or ctx is cancelled, writing
// responses to w. A malformed or unroutable request produces an error
// response, never a dropped connection; only a broken transport ends the
// loop with an error.
func (s *Server) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		body, err := readMessage(br)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("spellserver: read: %w", err)
		}

		var req request
		resp := response{}
		if err := json.Unmarshal(body, &req); err != nil {
			resp.Error = &wireErr{Code: codeBadRequest, Message: err.Error()}
		} else {
			resp = s.dispatch(req)
		}
		if err := writeMessage(bw, resp); err != nil {
			return fmt.Errorf("spellserver: write: %w", err)
		}
	}
}

func (s *Server) dispatch(req request) response {
	resp := response{ID: req.ID}

	d, ok := s.delegate(req.Params.Language)
	if !ok {
		s.log.Debug("request for unregistered language",
			zap.String("language", req.Params.Language),
			zap.String("method", req.Method))
		resp.Error = &wireErr{
			Code:    codeUnknownLanguage,
			Message: fmt.Sprintf("language %q not registered", req.Params.Language),
		}
		return resp
	}

	switch req.Method {
	case methodFindMisspelled:
		rng, n := d.FindMisspelledWord(req.Params.Text, req.Params.Language, req.Params.CountOnly)
		resp.Result = findResult{Range: rng, WordCount: n}
	case methodSuggestGuesses:
		guesses := d.SuggestGuesses(req.Params.Word, req.Params.Language)
		if guesses == nil {
			guesses = []string{}
		}
		resp.Result = guessesResult{Guesses: guesses}
	case methodWordLearned:
		d.WordLearned(req.Params.Word, req.Params.Language)
		resp.Result = ackResult{OK: true}
	case methodWordForgotten:
		d.WordForgotten(req.Params.Word, req.Params.Language)
		resp.Result = ackResult{OK: true}
	default:
		resp.Error = &wireErr{
			Code:    codeUnknownMethod,
			Message: fmt.Sprintf("unknown method %q", req.Method),
		}
	}
	return resp
}

// readMessage reads header lines until the blank separator, then the body.
func readMessage(br *bufio.Reader) ([]byte, error) {
	length := -1
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(name), "Content-Length") {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, fmt.Errorf("bad Content-Length %q", value)
			}
			length = n
		}
	}
	if length < 0 {
		return nil, fmt.Errorf("missing Content-Length header")
	}
	body := make([]byte, length)
	if _, err := io.ReadFull(br, body); err != nil {
		return nil, err
	}
	return body, nil
}

func writeMessage(bw *bufio.Writer, resp response) error {
	body, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "Content-Length: %d\r\n\r\n", len(body)); err != nil {
		return err
	}
	if _, err := bw.Write(body); err != nil {
		return err
	}
	return bw.Flush()
}
