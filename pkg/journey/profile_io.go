package journey

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/Transitx/pkg/datastructure"
	"github.com/lintang-b-s/Transitx/pkg/timetable"
	"github.com/lintang-b-s/Transitx/pkg/util"
)

/*
profile text format: line i holds the front of station i as comma separated hexadecimal criteria,
an empty line is an empty front.
*/

func WriteProfile(w io.Writer, p *Profile) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < p.NumStations(); i++ {
		first := true
		p.ForStation(i).ForEach(func(c datastructure.PackedCriteria) {
			if !first {
				bw.WriteByte(',')
			}
			first = false
			bw.WriteString(strconv.FormatUint(uint64(c), 16))
		})
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadProfile parses a profile, each front is rebuilt through a builder so a malformed file cannot break its invariant.
// criteria of one line must all carry departure minutes or none of them.
func ReadProfile(r io.Reader, tt timetable.TimeTable, date time.Time, arrStationId int) (*Profile, error) {
	var fronts []*datastructure.ParetoFront
	b := datastructure.NewParetoFrontBuilder()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			fronts = append(fronts, datastructure.EmptyParetoFront)
			continue
		}
		b.Clear()
		var first datastructure.PackedCriteria
		for i, tok := range strings.Split(text, ",") {
			v, err := strconv.ParseUint(strings.TrimSpace(tok), 16, 64)
			if err != nil {
				return nil, util.WrapErrorf(err, util.ErrBadParamInput, "profile line %d: invalid criteria %q", line, tok)
			}
			c := datastructure.PackedCriteria(v)
			if i == 0 {
				first = c
			} else if c.HasDepMins() != first.HasDepMins() {
				return nil, util.NewErrorf(util.ErrBadParamInput,
					"profile line %d: criteria %q and %#x disagree on departure minutes", line, tok, uint64(first))
			}
			if err := checkCriteria(c); err != nil {
				return nil, util.WrapErrorf(err, util.ErrBadParamInput, "profile line %d", line)
			}
			b.Add(c)
		}
		fronts = append(fronts, b.Build())
	}
	if err := sc.Err(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "read profile")
	}
	return NewProfile(tt, date, arrStationId, fronts)
}

// checkCriteria rejects minutes that decode outside [MIN_MINS, MAX_MINS).
func checkCriteria(c datastructure.PackedCriteria) error {
	if arr := c.ArrMins(); arr < datastructure.MIN_MINS || arr >= datastructure.MAX_MINS {
		return util.NewErrorf(util.ErrBadParamInput, "criteria %#x: arrival minutes %d out of range", uint64(c), arr)
	}
	if !c.HasDepMins() {
		return nil
	}
	dep, err := c.DepMins()
	if err != nil {
		return err
	}
	if dep < datastructure.MIN_MINS || dep >= datastructure.MAX_MINS {
		return util.NewErrorf(util.ErrBadParamInput, "criteria %#x: departure minutes %d out of range", uint64(c), dep)
	}
	return nil
}

func isBzip2(path string) bool {
	return strings.HasSuffix(path, ".bz2")
}

// WriteProfileFile writes p to path, bzip2 compressed when path ends in .bz2.
func WriteProfileFile(path string, p *Profile) error {
	f, err := os.Create(path)
	if err != nil {
		return util.WrapErrorf(err, util.ErrInternalServerError, "create %s", path)
	}
	defer f.Close()

	if !isBzip2(path) {
		if err := WriteProfile(f, p); err != nil {
			return err
		}
		return f.Close()
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	if err := WriteProfile(bz, p); err != nil {
		bz.Close()
		return err
	}
	if err := bz.Close(); err != nil {
		return err
	}
	return f.Close()
}

func ReadProfileFile(path string, tt timetable.TimeTable, date time.Time, arrStationId int) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrNotFound, "open profile %s", path)
	}
	defer f.Close()

	if !isBzip2(path) {
		return ReadProfile(f, tt, date, arrStationId)
	}

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "open bzip2 profile %s", path)
	}
	defer bz.Close()
	return ReadProfile(bz, tt, date, arrStationId)
}
