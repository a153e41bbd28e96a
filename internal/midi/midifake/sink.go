// Package midifake provides an in-memory Sink that records calls and can be
// told to fail.
package midifake

import (
	"sync"

	"github.com/leandrodaf/midiout/sdk/contracts"
)

// Call is one recorded sink invocation.
type Call struct {
	Op          string // "open", "send" or "close".
	DeviceIndex uint
	Handle      contracts.Handle
	Message     uint32
	Code        contracts.ResultCode // Result returned to the caller.
}

// Sink is a fake contracts.Sink. The zero value is ready to use.
type Sink struct {
	mu    sync.Mutex
	calls []Call
	fail  map[string]contracts.ResultCode
	open  map[contracts.Handle]bool
	next  contracts.Handle
}

// New returns an empty fake sink.
func New() *Sink {
	return &Sink{}
}

// FailOn makes every later call to op return code. ResultOK clears it.
func (s *Sink) FailOn(op string, code contracts.ResultCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail == nil {
		s.fail = make(map[string]contracts.ResultCode)
	}
	if code == contracts.ResultOK {
		delete(s.fail, op)
		return
	}
	s.fail[op] = code
}

// Calls returns a copy of every recorded call, failed ones included.
func (s *Sink) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// Sent returns the words of successfully sent messages.
func (s *Sink) Sent() []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sent []uint32
	for _, c := range s.calls {
		if c.Op == "send" && c.Code == contracts.ResultOK {
			sent = append(sent, c.Message)
		}
	}
	return sent
}

// OpenHandles reports how many handles are currently open.
func (s *Sink) OpenHandles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.open)
}

func (s *Sink) Open(deviceIndex uint) (contracts.Handle, contracts.ResultCode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if code, ok := s.fail["open"]; ok {
		s.record(Call{Op: "open", DeviceIndex: deviceIndex, Code: code})
		return 0, code
	}
	if s.open == nil {
		s.open = make(map[contracts.Handle]bool)
	}
	s.next++
	s.open[s.next] = true
	s.record(Call{Op: "open", DeviceIndex: deviceIndex, Handle: s.next})
	return s.next, contracts.ResultOK
}

func (s *Sink) Send(h contracts.Handle, msg uint32) contracts.ResultCode {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := s.check("send", h)
	s.record(Call{Op: "send", Handle: h, Message: msg, Code: code})
	return code
}

// Close releases h unless close is scripted to fail.
func (s *Sink) Close(h contracts.Handle) contracts.ResultCode {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := s.check("close", h)
	s.record(Call{Op: "close", Handle: h, Code: code})
	if code == contracts.ResultOK {
		delete(s.open, h)
	}
	return code
}

func (s *Sink) check(op string, h contracts.Handle) contracts.ResultCode {
	if !s.open[h] {
		return contracts.ResultInvalidHandle
	}
	if code, ok := s.fail[op]; ok {
		return code
	}
	return contracts.ResultOK
}

func (s *Sink) record(c Call) {
	s.calls = append(s.calls, c)
}
