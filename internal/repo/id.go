package repo

import (
	"strconv"
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// nextID returns a millisecond-timestamp identifier, bumped when two calls
// land on the same tick. The stored format expects plain decimal ids.
func nextID() string {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return strconv.FormatInt(id, 10)
}

func nowRFC3339() string {
	return time.Now().Format(time.RFC3339)
}
