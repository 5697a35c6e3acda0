// Package save reads and writes the single-slot checkpoint file.
//
// The file is one line of space separated integers:
//
//	playerX playerY coinActive health score currentLevel [collected_0 ... collected_N-1]
//
// Fields that are missing or fail to parse decode as zero. There is no
// version field and no checksum.
package save

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoSave is returned by Load when the slot has never been written.
var ErrNoSave = errors.New("save: no save file")

// Record is the persisted game state.
type Record struct {
	X, Y       int16
	CoinActive bool
	Health     int
	Score      int
	Level      int
	Collected  []bool
}

// Encode writes r as a single line.
func Encode(w io.Writer, r Record) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d %d %d %d %d", r.X, r.Y, boolInt(r.CoinActive), r.Health, r.Score, r.Level)
	for _, c := range r.Collected {
		fmt.Fprintf(&sb, " %d", boolInt(c))
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// Decode reads the first line of rd. Scanning stops at the first field that
// is not an integer; it and everything after it stay zero.
func Decode(rd io.Reader) (Record, error) {
	line, err := bufio.NewReader(rd).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return Record{}, fmt.Errorf("save: read: %w", err)
	}

	var vals []int
	for _, f := range strings.Fields(line) {
		v, err := strconv.Atoi(f)
		if err != nil {
			break
		}
		vals = append(vals, v)
	}

	field := func(i int) int {
		if i < len(vals) {
			return vals[i]
		}
		return 0
	}

	r := Record{
		X:          int16(field(0)),
		Y:          int16(field(1)),
		CoinActive: field(2) != 0,
		Health:     field(3),
		Score:      field(4),
		Level:      field(5),
	}
	if len(vals) > 6 {
		r.Collected = make([]bool, len(vals)-6)
		for i := range r.Collected {
			r.Collected[i] = vals[6+i] != 0
		}
	}
	return r, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// FileStore keeps the slot in a plain file that is overwritten in place on
// every save.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Save(r Record) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("save: create %s: %w", s.Path, err)
	}
	if err := Encode(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("save: write %s: %w", s.Path, err)
	}
	return f.Close()
}

func (s *FileStore) Load() (Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, fmt.Errorf("%w: %w", ErrNoSave, err)
		}
		return Record{}, fmt.Errorf("save: open %s: %w", s.Path, err)
	}
	defer f.Close()
	return Decode(f)
}
