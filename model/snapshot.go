package model

import (
	"crypto/md5"
	"fmt"
)

// Snapshot is a detached copy of one generation. Cells is row-major.
type Snapshot struct {
	Rows       int
	Cols       int
	Generation int
	Cells      []bool
}

// Alive reports whether (row, col) is alive; positions outside the snapshot are dead.
func (s Snapshot) Alive(row, col int) bool {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return false
	}
	return s.Cells[row*s.Cols+col]
}

// Population returns the number of live cells in the snapshot
func (s Snapshot) Population() (count int) {
	for _, alive := range s.Cells {
		if alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 fingerprint of the snapshot's cells
func (s Snapshot) Hash() string {
	return hashCells(s.Cells)
}

func hashCells(cells []bool) string {
	h := md5.New()
	for _, alive := range cells {
		if alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
