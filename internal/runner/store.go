package runner

// Keys used in the persistent scalar store.
const (
	KeyHighScore = "highScore"
	KeyTheme     = "theme"
)

// Store is the persistent scalar store: named integers that survive across
// sessions. A missing key reports ok == false.
type Store interface {
	Int(key string) (value int, ok bool, err error)
	SetInt(key string, value int) error
}

// MemoryStore is a Store that lives only as long as the process.
type MemoryStore struct {
	values map[string]int
	writes int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

// Int implements Store.
func (m *MemoryStore) Int(key string) (int, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// SetInt implements Store.
func (m *MemoryStore) SetInt(key string, value int) error {
	m.values[key] = value
	m.writes++
	return nil
}

// Writes returns how many SetInt calls the store has seen.
func (m *MemoryStore) Writes() int {
	return m.writes
}

// ScoreSink receives score updates, like the score labels next to the
// game. Implementations must not call back into the game.
type ScoreSink interface {
	SetScore(score int)
	SetHighScore(score int)
}

type nopSink struct{}

func (nopSink) SetScore(int)     {}
func (nopSink) SetHighScore(int) {}
