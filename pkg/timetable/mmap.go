package timetable

import (
	"os"

	"github.com/lintang-b-s/Transitx/pkg/util"
	"golang.org/x/sys/unix"
)

// mappedFile. read-only memory mapping of a whole file.
type mappedFile struct {
	path string
	data []byte
}

func mapFile(path string) (*mappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrNotFound, "open %s", path)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "stat %s", path)
	}
	size := fi.Size()
	if size == 0 {
		// mmap rejects zero length, an empty table is still valid
		return &mappedFile{path: path, data: []byte{}}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "mmap %s", path)
	}
	return &mappedFile{path: path, data: data}, nil
}

func (m *mappedFile) Bytes() []byte {
	return m.data
}

func (m *mappedFile) Close() error {
	if len(m.data) == 0 {
		return nil
	}
	data := m.data
	m.data = nil
	if err := unix.Munmap(data); err != nil {
		return util.WrapErrorf(err, util.ErrInternalServerError, "munmap %s", m.path)
	}
	return nil
}
