// Package numbering assigns the human-readable document numbers
// (OS-0001, ORC-0001, CT-MAN-001, 000001).
package numbering

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Namespace is a document-number family: a textual prefix plus a zero-padded
// counter of fixed width.
type Namespace struct {
	Prefix string
	Width  int
}

var (
	ServiceOrders        = Namespace{Prefix: "OS-", Width: 4}
	Quotes               = Namespace{Prefix: "ORC-", Width: 4}
	MaintenanceContracts = Namespace{Prefix: "CT-MAN-", Width: 3}
	Invoices             = Namespace{Prefix: "", Width: 6}
)

// NextNumber formats currentCount+1 zero-padded to width and joins it to prefix.
func NextNumber(prefix string, width, currentCount int) string {
	return Format(Namespace{Prefix: prefix, Width: width}, currentCount+1)
}

func Format(ns Namespace, n int) string {
	return fmt.Sprintf("%s%0*d", ns.Prefix, ns.Width, n)
}

// Parse extracts the counter from a number of this namespace.
func (ns Namespace) Parse(number string) (int, bool) {
	if !strings.HasPrefix(number, ns.Prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(number, ns.Prefix))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Sequence keeps one counter per namespace. Next must be called inside the
// same critical section as the insert that consumes the number.
type Sequence struct {
	mu       sync.Mutex
	counters map[Namespace]int
}

func NewSequence() *Sequence {
	return &Sequence{counters: make(map[Namespace]int)}
}

func (s *Sequence) Next(ns Namespace) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[ns]++
	return Format(ns, s.counters[ns])
}

// Current returns the last number handed out (0 when none).
func (s *Sequence) Current(ns Namespace) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[ns]
}

// Observe raises the counter to the value carried by an existing number, so
// that sequences resume after seeded or hydrated records.
func (s *Sequence) Observe(ns Namespace, numbers ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, number := range numbers {
		if n, ok := ns.Parse(number); ok && n > s.counters[ns] {
			s.counters[ns] = n
		}
	}
}

// Rollback returns number to the sequence when the insert that consumed it
// failed. Only the most recent number can be returned.
func (s *Sequence) Rollback(ns Namespace, number string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n, ok := ns.Parse(number); ok && n == s.counters[ns] {
		s.counters[ns]--
	}
}
