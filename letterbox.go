// Package letterbox solves Letter Boxed puzzles: chains of dictionary
// words that cover all twelve board letters, where consecutive letters
// never share a board side and consecutive words join on a letter.
//
// The Engine owns the request lifecycle. Each Solve call fans the
// candidate index space out across workers, collects their chunked
// results in an aggregator and publishes snapshots grouped by word
// count. A newer Solve supersedes the running one.
package letterbox

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/letterbox/board"
	"github.com/hupe1980/letterbox/codec"
	"github.com/hupe1980/letterbox/dictionary"
	"github.com/hupe1980/letterbox/letters"
	"github.com/hupe1980/letterbox/solver"
)

// Snapshot is the aggregator's published view of a request. Buckets
// holds rendered solutions ("WORD WORD ...") indexed by word count
// minus one. FinalOverall is set once every worker has finished.
type Snapshot struct {
	RequestID    uint64
	Buckets      [solver.MaxWords][]string
	FinalOverall bool
}

// Solutions returns the total number of solutions across buckets.
func (s *Snapshot) Solutions() int {
	n := 0
	for _, b := range s.Buckets {
		n += len(b)
	}
	return n
}

// Engine coordinates solve requests over a worker pool.
//
// All methods are safe for concurrent use. Snapshots for a request
// arrive on the channel returned by Solve; the channel closes after the
// final snapshot, or without one when the request was superseded.
type Engine struct {
	opts options

	mu     sync.Mutex
	closed bool
	nextID uint64
	cancel context.CancelFunc

	msgs    chan any
	done    chan struct{}
	aggDone chan struct{}
}

type startMsg struct {
	id      uint64
	workers int
	out     chan Snapshot
	started time.Time
}

type chunkMsg struct {
	chunk solver.Chunk
}

// New creates an Engine and starts its aggregator.
func New(optFns ...Option) *Engine {
	e := &Engine{
		opts:    applyOptions(optFns),
		msgs:    make(chan any),
		done:    make(chan struct{}),
		aggDone: make(chan struct{}),
	}

	go e.aggregate()

	return e
}

// Close cancels the running request and stops the aggregator.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}

	e.closed = true
	if e.cancel != nil {
		e.cancel()
	}
	close(e.done)
	e.mu.Unlock()

	<-e.aggDone

	return nil
}

// Prepare filters a word list against the board and returns the
// encoded candidate buffer workers decode during Solve.
func (e *Engine) Prepare(ctx context.Context, b *board.Board, wordList io.Reader) ([]byte, error) {
	start := time.Now()

	seqs, err := dictionary.Filter(b, wordList)

	e.opts.metricsCollector.RecordFilter(len(seqs), time.Since(start), err)
	e.opts.logger.LogFilter(ctx, b.String(), len(seqs), time.Since(start), err)

	if err != nil {
		return nil, err
	}

	return codec.EncodeSequences(seqs), nil
}

// Solve launches a request for the twelve-letter board input over the
// encoded candidate buffer. A malformed board fails synchronously;
// everything later in the request lifecycle is reported through the
// returned snapshot channel.
//
// The previous request, if still running, is cancelled. Its workers
// observe the cancellation at their next chunk boundary and abandon the
// remainder; chunks they already sent are discarded by request id.
func (e *Engine) Solve(ctx context.Context, input string, encoded []byte) (<-chan Snapshot, error) {
	b, err := board.New(input)
	if err != nil {
		return nil, translateBoardError(err)
	}

	// A bad count header surfaces again inside every worker's decode,
	// where it is logged; here it just means no indices to partition.
	n, _ := codec.SequenceCount(encoded)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil, ErrClosed
	}

	e.nextID++
	id := e.nextID

	if e.cancel != nil {
		e.cancel()
	}

	reqCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.mu.Unlock()

	out := make(chan Snapshot, 1)

	select {
	case e.msgs <- startMsg{id: id, workers: e.opts.workers, out: out, started: time.Now()}:
	case <-e.done:
		cancel()
		return nil, ErrClosed
	}

	e.opts.logger.LogSolveStart(ctx, id, b.String(), e.opts.workers, n)

	g, gctx := errgroup.WithContext(reqCtx)

	for w, r := range solver.SplitN(0, n, e.opts.workers) {
		g.Go(func() error {
			e.runWorker(gctx, id, w, r, b, encoded)
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		cancel()
	}()

	return out, nil
}

// runWorker decodes the shared candidate buffer and solves its index
// range. A decode failure still emits a final empty chunk so the
// aggregator's pending count stays balanced.
func (e *Engine) runWorker(ctx context.Context, id uint64, worker int, r solver.Range, b *board.Board, encoded []byte) {
	emit := func(c solver.Chunk) {
		select {
		case e.msgs <- chunkMsg{chunk: c}:
		case <-e.done:
		}
	}

	seqs, err := codec.DecodeSequences(encoded)
	if err != nil {
		e.opts.metricsCollector.RecordDecodeError()
		e.opts.logger.LogWorkerDecodeError(ctx, id, worker, err)
		emit(solver.Chunk{RequestID: id, Final: true})

		return
	}

	s := solver.New(seqs, b.FullMask())
	if err := s.Solve(ctx, id, r.Lo, r.Hi, emit); err != nil {
		// Cancelled between sub-ranges. The final chunk keeps the
		// aggregator's pending count balanced so the request can close.
		emit(solver.Chunk{RequestID: id, Final: true})
	}
}

// request is the aggregator's per-request state.
type request struct {
	id      uint64
	out     chan Snapshot
	pending int
	started time.Time
	buckets [solver.MaxWords][]string
}

func (e *Engine) aggregate() {
	defer close(e.aggDone)

	var cur *request

	for {
		select {
		case <-e.done:
			if cur != nil {
				close(cur.out)
			}
			return
		case m := <-e.msgs:
			switch m := m.(type) {
			case startMsg:
				if cur != nil {
					e.opts.metricsCollector.RecordSupersede()
					e.opts.logger.LogSuperseded(context.Background(), cur.id, m.id)
					close(cur.out)
				}

				cur = &request{
					id:      m.id,
					out:     m.out,
					pending: m.workers,
					started: m.started,
				}
			case chunkMsg:
				cur = e.applyChunk(cur, m.chunk)
			}
		}
	}
}

// applyChunk folds one chunk into the current request, publishing a
// snapshot. Returns nil when the request completed.
func (e *Engine) applyChunk(cur *request, c solver.Chunk) *request {
	if cur == nil || c.RequestID != cur.id {
		return cur
	}

	e.opts.metricsCollector.RecordChunk(len(c.Solutions))

	for _, path := range c.Solutions {
		words := len(path)
		cur.buckets[words-1] = append(cur.buckets[words-1], renderSolution(path))
	}

	if c.Final {
		cur.pending--
	}

	snap := Snapshot{
		RequestID:    cur.id,
		FinalOverall: cur.pending == 0,
	}
	for i, b := range cur.buckets {
		snap.Buckets[i] = append([]string(nil), b...)
	}

	publish(cur.out, snap)

	if !snap.FinalOverall {
		return cur
	}

	total := snap.Solutions()
	e.opts.metricsCollector.RecordSolve(total, time.Since(cur.started))
	e.opts.logger.LogSolveComplete(context.Background(), cur.id, total, time.Since(cur.started))
	close(cur.out)

	return nil
}

func renderSolution(path []letters.Sequence) string {
	var sb strings.Builder
	for i, w := range path {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w.String())
	}

	return sb.String()
}

// publish delivers snap with latest-wins coalescing: a slow receiver
// only ever misses intermediate snapshots, never the one sent last.
func publish(out chan Snapshot, snap Snapshot) {
	select {
	case out <- snap:
		return
	default:
	}

	select {
	case <-out:
	default:
	}

	select {
	case out <- snap:
	default:
	}
}
