package pet

// LedgerEntry is one monetary transaction. Negative cost is income.
type LedgerEntry struct {
	Item string `json:"item"`
	Cost int    `json:"cost"`
	Time string `json:"time"`
}

// Ledger is an append-only bounded log of transactions, oldest evicted
// first. It records movements only; the running expense total lives on the
// profile so eviction never rewrites history.
type Ledger struct {
	maxEntries int
	entries    []LedgerEntry
}

// NewLedger creates an empty ledger bounded to maxEntries.
func NewLedger(maxEntries int) *Ledger {
	return &Ledger{maxEntries: maxEntries}
}

// Restore replaces the ledger contents from a persisted snapshot, trimming
// to the bound.
func (l *Ledger) Restore(entries []LedgerEntry) {
	if len(entries) > l.maxEntries {
		entries = entries[len(entries)-l.maxEntries:]
	}
	l.entries = append(l.entries[:0], entries...)
}

// Append pushes an entry stamped with the current clock time, evicting from
// the front past the bound.
func (l *Ledger) Append(item string, cost int) {
	l.entries = append(l.entries, LedgerEntry{
		Item: item,
		Cost: cost,
		Time: TimeNow().Format("15:04"),
	})
	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}
}

// Len returns the number of retained entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Recent returns up to n entries, most recent first.
func (l *Ledger) Recent(n int) []LedgerEntry {
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]LedgerEntry, 0, n)
	for i := len(l.entries) - 1; i >= len(l.entries)-n; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

// Entries returns the retained entries in insertion order, for persistence.
func (l *Ledger) Entries() []LedgerEntry {
	out := make([]LedgerEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
