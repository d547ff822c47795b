// Package memory implements the repository ports on process memory. It backs
// STORE_DRIVER=memory and the end-to-end tests.
package memory

import (
	"sync"
	"time"
)

// DB holds the three tables. Each table has its own lock and id sequence.
type DB struct {
	users      *userTable
	formations *formationTable
	contacts   *contactTable
	now        func() time.Time
}

// Open returns an empty DB.
func Open() *DB {
	return &DB{
		users:      &userTable{rows: make(map[int64]*userRow)},
		formations: &formationTable{rows: make(map[int64]*formationRow)},
		contacts:   &contactTable{rows: make(map[int64]*contactRow)},
		now:        time.Now,
	}
}

type table struct {
	mu  sync.RWMutex
	seq int64
}

func (t *table) nextID() int64 {
	t.seq++
	return t.seq
}
