// Package syncrpc exposes the reconciliation engine over JSON-RPC so
// an external process can diff snapshots and patch a document hosted
// by this process. It speaks plain jsonrpc2 over any stream, stdio
// included.
package syncrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.lsp.dev/jsonrpc2"

	"github.com/samuraiexx/vyjs"
	"github.com/samuraiexx/vyjs/delta"
	"github.com/samuraiexx/vyjs/doc"
	"github.com/samuraiexx/vyjs/snap"
)

const (
	// MethodSnapshot returns the hosted document's current snapshot.
	MethodSnapshot = "vyjs/snapshot"
	// MethodDiff computes a portable delta between two snapshots.
	MethodDiff = "vyjs/diff"
	// MethodPatch applies a portable delta to the hosted document.
	MethodPatch = "vyjs/patch"
)

type diffParams struct {
	Old json.RawMessage `json:"old"`
	New json.RawMessage `json:"new"`
}

type patchParams struct {
	Delta json.RawMessage `json:"delta"`
}

type patchResult struct {
	Snapshot any      `json:"snapshot"`
	Warnings []string `json:"warnings,omitempty"`
}

// Server serves reconciliation requests against one hosted document.
type Server struct {
	doc  *doc.Doc
	conn jsonrpc2.Conn
}

// Serve runs a server over rwc until the connection closes.
func Serve(ctx context.Context, rwc io.ReadWriteCloser, d *doc.Doc) error {
	stream := jsonrpc2.NewStream(rwc)
	conn := jsonrpc2.NewConn(stream)
	s := &Server{doc: d, conn: conn}
	conn.Go(ctx, s.Handle)
	<-conn.Done()
	return conn.Err()
}

// ServeStdio runs a server over stdin/stdout.
func ServeStdio(ctx context.Context, d *doc.Doc) error {
	return Serve(ctx, &stdioReadWriteCloser{read: os.Stdin, write: os.Stdout}, d)
}

// Handle dispatches one request. It is usable directly as a
// jsonrpc2.Handler for callers managing their own connection.
func (s *Server) Handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	switch req.Method() {
	case MethodSnapshot:
		return reply(ctx, s.doc.Root().Snapshot().ToAny(), nil)
	case MethodDiff:
		var p diffParams
		if err := json.Unmarshal(req.Params(), &p); err != nil {
			return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrParse, err))
		}
		oldSnap, err := snap.ParseJSON(p.Old)
		if err != nil {
			return reply(ctx, nil, fmt.Errorf("%w: old: %s", jsonrpc2.ErrInvalidParams, err))
		}
		newSnap, err := snap.ParseJSON(p.New)
		if err != nil {
			return reply(ctx, nil, fmt.Errorf("%w: new: %s", jsonrpc2.ErrInvalidParams, err))
		}
		return reply(ctx, delta.Make(oldSnap, newSnap).ToAny(), nil)
	case MethodPatch:
		var p patchParams
		if err := json.Unmarshal(req.Params(), &p); err != nil {
			return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrParse, err))
		}
		dv, err := snap.ParseJSON(p.Delta)
		if err != nil {
			return reply(ctx, nil, fmt.Errorf("%w: delta: %s", jsonrpc2.ErrInvalidParams, err))
		}
		var warnings []vyjs.Warning
		err = s.doc.Transact(func() error {
			var applyErr error
			warnings, applyErr = vyjs.ApplyPortable(s.doc.Root(), dv)
			return applyErr
		})
		if err != nil {
			return reply(ctx, nil, err)
		}
		res := patchResult{Snapshot: s.doc.Root().Snapshot().ToAny()}
		for _, w := range warnings {
			res.Warnings = append(res.Warnings, w.String())
		}
		return reply(ctx, res, nil)
	default:
		return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
	}
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (int, error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (int, error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
