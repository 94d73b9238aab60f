package mockfx

// HandleWrite records one write to a named handle.
type HandleWrite struct {
	Handle HandleID
	Text   string
}

// InputQueue models simulated console input: Pending lines are consumed
// front-to-back, and once they run out every further read yields Default.
type InputQueue struct {
	Pending []string
	Default string
}

// GetHandler scripts a simulated GET. It receives the current client-local
// state and returns the response, the successor state, and a transport error
// (nil on success).
type GetHandler[S any] func(state S, url string) (*Response, S, error)

// PostHandler scripts a simulated POST, additionally carrying the payload.
type PostHandler[S any] func(state S, url string, body []byte) (*Response, S, error)

// DeleteHandler scripts a simulated DELETE.
type DeleteHandler[S any] func(state S, url string) (*Response, S, error)

// Responder is the scripted HTTP back end: one pure handler per verb. The
// interpreter threads the client-local state through every call, so a
// responder can model stateful server behavior (request counters, resources
// that must be created before they can be fetched, cookies).
type Responder[S any] struct {
	Get    GetHandler[S]
	Post   PostHandler[S]
	Delete DeleteHandler[S]
}

// Env is the complete simulated environment for one run: every resource the
// mock interpreter can touch lives in this one value. Operations never
// mutate an Env in place; each step builds a successor, so any Env you hold
// on to stays a valid snapshot of the moment it was taken.
//
// Type parameter S is the test author's client-local state, threaded through
// the scripted HTTP responder.
type Env[S any] struct {
	// PrintLog records every handle write in chronological order.
	PrintLog []HandleWrite

	// ConsoleOut holds every write to Stdout, most recent first.
	// ConsoleLines returns the chronological view.
	ConsoleOut []string

	// Input feeds simulated line and character reads.
	Input InputQueue

	// Echo is the console input-echo flag. It is plain state: the mock
	// neither reads nor acts on it beyond get/set.
	Echo bool

	// Clock advances by exactly one Tick after every capability call.
	Clock Tick

	// Fault is the captured failure, nil when no operation has failed.
	// It persists until explicitly replaced or cleared.
	Fault *Fault

	// Responder serves simulated HTTP calls.
	Responder Responder[S]

	// Session is the single simulated session handle, fixed at
	// construction and returned by every NewSession call.
	Session Session

	// FileExists and FileFull are the filesystem fault switches.
	FileExists bool
	FileFull   bool

	// FileOut holds written payloads, most recent first.
	FileOut [][]byte

	// FileIn holds payloads available to be read, consumed front-to-back.
	FileIn [][]byte

	// Seed is the deterministic generator state.
	Seed Seed

	// Client is the client-local state threaded through the responder.
	Client S
}

// NewEnv builds the environment a fresh simulated run starts from:
// clock at zero, echo on, empty console buffers, an existing and
// non-full filesystem with nothing queued, and the default seed.
func NewEnv[S any](r Responder[S], session Session, initial S) Env[S] {
	return Env[S]{
		Echo:       true,
		Responder:  r,
		Session:    session,
		FileExists: true,
		Seed:       DefaultSeed,
		Client:     initial,
	}
}

// ConsoleLines returns the Stdout writes in chronological order.
func (e Env[S]) ConsoleLines() []string {
	out := make([]string, len(e.ConsoleOut))
	for i, s := range e.ConsoleOut {
		out[len(out)-1-i] = s
	}
	return out
}

// FileWrites returns the written payloads in chronological order.
func (e Env[S]) FileWrites() [][]byte {
	out := make([][]byte, len(e.FileOut))
	for i, b := range e.FileOut {
		out[len(out)-1-i] = b
	}
	return out
}
