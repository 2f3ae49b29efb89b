package plugin

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"
)

// MaxLineSize bounds a single request line.
const MaxLineSize = 1 << 20

// DefaultConcurrency is the number of commands Serve runs at once.
const DefaultConcurrency = 4

// Request is one line read by Serve.
type Request struct {
	ID      json.RawMessage `json:"id,omitempty"`
	Cmd     string          `json:"cmd"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response is one line written by Serve. Exactly one of Result and Error is
// set.
type Response struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *ErrorResponse  `json:"error,omitempty"`
}

// Serve reads newline-delimited Requests from r, invokes them on reg and
// writes one Response per request to w. Responses may be written out of
// order; hosts match them by id. Serve returns nil at end of input after
// all in-flight commands have answered, or ctx's error if ctx is cancelled.
func Serve(ctx context.Context, reg *Registry, r io.Reader, w io.Writer) error {
	var mu sync.Mutex
	enc := json.NewEncoder(w)
	write := func(resp Response) error {
		mu.Lock()
		defer mu.Unlock()
		return enc.Encode(resp)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultConcurrency)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), MaxLineSize)
	for sc.Scan() {
		if err := gctx.Err(); err != nil {
			break
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			e := NewValidationError(fmt.Sprintf("malformed request: %v", err))
			if err := write(Response{Error: &e}); err != nil {
				return err
			}
			continue
		}
		g.Go(func() error {
			return write(dispatch(gctx, reg, req))
		})
	}
	scanErr := sc.Err()
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if scanErr != nil {
		return fmt.Errorf("read request: %w", scanErr)
	}
	return nil
}

func dispatch(ctx context.Context, reg *Registry, req Request) Response {
	resp := Response{ID: req.ID}
	if req.Cmd == "" {
		e := NewValidationError("missing cmd")
		resp.Error = &e
		return resp
	}
	out, err := reg.Invoke(ctx, req.Cmd, req.Payload)
	if err != nil {
		e := ErrorResponse{Error: ErrInternal, Message: err.Error(), Code: 500}
		resp.Error = &e
		return resp
	}
	if e, ok := AsError(out); ok {
		resp.Error = &e
		return resp
	}
	resp.Result = out
	return resp
}
