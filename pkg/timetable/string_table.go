package timetable

import (
	"bufio"
	"bytes"
	"os"

	"github.com/lintang-b-s/Transitx/pkg/util"
	"golang.org/x/text/encoding/charmap"
)

// StringTable. interned strings shared by every table of a timetable directory.
type StringTable []string

func (st StringTable) Get(index int) string {
	return st[index]
}

func (st StringTable) Size() int {
	return len(st)
}

// ReadStringTable reads one ISO-8859-1 string per line.
func ReadStringTable(path string) (StringTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrNotFound, "read string table %s", path)
	}
	return DecodeStringTable(raw)
}

func DecodeStringTable(raw []byte) (StringTable, error) {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "decode string table")
	}

	table := make(StringTable, 0, bytes.Count(decoded, []byte{'\n'})+1)
	sc := bufio.NewScanner(bytes.NewReader(decoded))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		table = append(table, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "scan string table")
	}
	return table, nil
}

// EncodeStringTable is the inverse of DecodeStringTable, runes outside Latin-1 are rejected.
func EncodeStringTable(table []string) ([]byte, error) {
	var buf bytes.Buffer
	enc := charmap.ISO8859_1.NewEncoder()
	for _, s := range table {
		b, err := enc.String(s)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "string %q is not ISO-8859-1", s)
		}
		buf.WriteString(b)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
