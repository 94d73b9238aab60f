package mockfx

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Live is the real-effect interpreter: the same capability surface as Sim,
// backed by the process terminal, the real clock and filesystem, a seeded
// math/rand generator, and net/http. It exists so code written against
// Effects runs unchanged in production; everything deterministic about Sim
// (tick clock, scripted responses, snapshots) does not apply here.
//
// Live keeps the same captured-fault discipline as Sim: failing operations
// record a *Fault and return zero values, and Attempt reports the fault
// captured after the inner computation ran.
type Live struct {
	in      *bufio.Reader
	out     *bufio.Writer
	errOut  *bufio.Writer
	echo    bool
	fault   *Fault
	rng     *rand.Rand
	client  *http.Client
	session Session
}

var _ Effects = (*Live)(nil)

// NewLive wires the interpreter to the process stdin, stdout, and stderr.
func NewLive() *Live {
	return NewLiveIO(os.Stdin, os.Stdout, os.Stderr)
}

// NewLiveIO wires the interpreter to caller-supplied streams. Useful for
// exercising the live console against in-memory buffers.
func NewLiveIO(in io.Reader, out, errOut io.Writer) *Live {
	return &Live{
		in:      bufio.NewReader(in),
		out:     bufio.NewWriter(out),
		errOut:  bufio.NewWriter(errOut),
		echo:    true,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		client:  &http.Client{Timeout: 30 * time.Second},
		session: Session{ID: fmt.Sprintf("live-%d", time.Now().UnixNano())},
	}
}

// Fault returns the currently captured fault, nil when none.
func (l *Live) Fault() *Fault {
	return l.fault
}

// ClearFault resets the captured fault between independent scenarios.
func (l *Live) ClearFault() {
	l.fault = nil
}

func (l *Live) writer(h HandleID) *bufio.Writer {
	if h == Stderr {
		return l.errOut
	}
	return l.out
}

// --- Console ---

func (l *Live) InputEcho() bool { return l.echo }

func (l *Live) SetInputEcho(on bool) { l.echo = on }

func (l *Live) StdinHandle() HandleID { return Stdin }

func (l *Live) StdoutHandle() HandleID { return Stdout }

func (l *Live) ReadChar(HandleID) rune {
	c, _, err := l.in.ReadRune()
	if err != nil {
		l.fault = &Fault{Kind: FaultEndOfInput, Msg: "read char", Cause: errors.Wrap(err, "console")}
		return 0
	}
	return c
}

func (l *Live) ReadLine(HandleID) string {
	line, err := l.in.ReadString('\n')
	if err != nil && line == "" {
		l.fault = &Fault{Kind: FaultEndOfInput, Msg: "read line", Cause: errors.Wrap(err, "console")}
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}

func (l *Live) WriteChar(h HandleID, c rune) {
	if _, err := l.writer(h).WriteRune(c); err != nil {
		l.fault = &Fault{Kind: FaultStorageFull, Msg: h.String(), Cause: errors.Wrap(err, "console")}
	}
}

func (l *Live) WriteString(h HandleID, s string) {
	if _, err := l.writer(h).WriteString(s); err != nil {
		l.fault = &Fault{Kind: FaultStorageFull, Msg: h.String(), Cause: errors.Wrap(err, "console")}
	}
}

func (l *Live) WriteLine(h HandleID, s string) {
	l.WriteString(h, s+"\n")
}

func (l *Live) Flush(h HandleID) {
	if err := l.writer(h).Flush(); err != nil {
		l.fault = &Fault{Kind: FaultStorageFull, Msg: h.String(), Cause: errors.Wrap(err, "flush")}
	}
}

// --- Timer ---

func (l *Live) Sleep(d time.Duration) { time.Sleep(d) }

func (l *Live) Now() Tick { return Tick(time.Now().UnixNano()) }

// --- Trier ---

// Attempt runs fn, converting a panic into a RAISED fault, and returns the
// fault captured afterwards.
func (l *Live) Attempt(fn func()) *Fault {
	func() {
		defer func() {
			if r := recover(); r != nil {
				l.fault = NewFault(FaultRaised, fmt.Sprint(r))
			}
		}()
		fn()
	}()
	return l.fault
}

// --- Files ---

func (l *Live) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (l *Live) ReadFile(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		kind := FaultEndOfInput
		if os.IsNotExist(err) {
			kind = FaultNotFound
		}
		l.fault = &Fault{Kind: kind, Msg: path, Cause: errors.Wrap(err, "read file")}
		return nil
	}
	return data
}

func (l *Live) WriteFile(path string, data []byte) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		l.fault = &Fault{Kind: FaultStorageFull, Msg: path, Cause: errors.Wrap(err, "write file")}
	}
}

// --- Random ---

func (l *Live) NextInt() int64 { return l.rng.Int63() }

func (l *Live) IntBetween(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + l.rng.Int63n(hi-lo+1)
}

// --- HTTP ---

func (l *Live) Get(url string) *Response {
	resp, err := l.client.Get(url)
	if err != nil {
		l.fault = &Fault{Kind: FaultTransport, Msg: url, Cause: errors.Wrap(err, "get")}
		return nil
	}
	return l.consume(url, resp)
}

func (l *Live) Post(url string, body []byte) *Response {
	resp, err := l.client.Post(url, "application/octet-stream", bytes.NewReader(body))
	if err != nil {
		l.fault = &Fault{Kind: FaultTransport, Msg: url, Cause: errors.Wrap(err, "post")}
		return nil
	}
	return l.consume(url, resp)
}

func (l *Live) Delete(url string) *Response {
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		l.fault = &Fault{Kind: FaultTransport, Msg: url, Cause: errors.Wrap(err, "delete")}
		return nil
	}
	resp, err := l.client.Do(req)
	if err != nil {
		l.fault = &Fault{Kind: FaultTransport, Msg: url, Cause: errors.Wrap(err, "delete")}
		return nil
	}
	return l.consume(url, resp)
}

func (l *Live) NewSession() Session { return l.session }

func (l *Live) consume(url string, resp *http.Response) *Response {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		l.fault = &Fault{Kind: FaultTransport, Msg: url, Cause: errors.Wrap(err, "read body")}
		return nil
	}
	header := make(map[string]string, len(resp.Header))
	for k := range resp.Header {
		header[k] = resp.Header.Get(k)
	}
	return &Response{Status: resp.StatusCode, Header: header, Body: body}
}
