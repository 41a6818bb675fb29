package planner

import (
	"sort"
	"strconv"
	"strings"

	"github.com/wteng/netpath/internal/domain"
)

// memoTable caches sub-results of the combination search. It is owned by a
// single Search invocation and never shared across calls, so repeated searches
// cannot contaminate each other and every test starts from a cold cache.
type memoTable struct {
	entries map[string][]scored
}

func newMemoTable() *memoTable {
	return &memoTable{entries: make(map[string][]scored)}
}

func (m *memoTable) lookup(key string) ([]scored, bool) {
	res, ok := m.entries[key]
	return res, ok
}

func (m *memoTable) store(key string, results []scored) {
	m.entries[key] = results
}

// memoKey builds a deterministic key from the running true cost, the set of
// paths chosen so far (identified structurally, order-insensitive) and the
// destinations still unassigned. Two selection orders reaching the same
// partial state map to the same key.
func memoKey(runningCost float64, chosen []domain.ChosenPath, remaining []string) string {
	sigs := make([]string, 0, len(chosen))
	for _, choice := range chosen {
		sigs = append(sigs, candidateSignature(choice.Candidate))
	}
	sort.Strings(sigs)

	rest := append([]string(nil), remaining...)
	sort.Strings(rest)

	var b strings.Builder
	b.WriteString(strconv.FormatFloat(runningCost, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString(strings.Join(sigs, ";"))
	b.WriteByte('|')
	b.WriteString(strings.Join(rest, ","))
	return b.String()
}

// candidateSignature is the stable structural identity of a chosen candidate:
// its node sequence plus its raw cost. Placeholders all share one signature.
func candidateSignature(c domain.Candidate) string {
	if c.Unavailable {
		return "<unavailable>"
	}
	return c.Path.Route() + "@" + strconv.FormatFloat(c.RawCost, 'g', -1, 64)
}
