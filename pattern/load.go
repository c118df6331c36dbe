package pattern

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// LoadProbs parses a patterns.prob file: lines beginning with # are
// comments, non-comment lines have the form
//
//	<prob> <id1> <id2> (s:<spatial_id>)
//
// and the result maps spatial_id to prob. id1/id2 are part of the
// michi-family format but carry no information the matcher needs, so
// they're parsed only to validate the line shape.
func LoadProbs(r io.Reader) (map[int]float64, error) {
	probs := make(map[int]float64)
	scanner := bufio.NewScanner(r)
	var errs *multierror.Error
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		open := strings.IndexByte(line, '(')
		if open < 0 {
			errs = multierror.Append(errs, errors.Errorf("pattern: line %d: missing spatial id group: %q", lineNo, line))
			continue
		}
		head := strings.Fields(line[:open])
		if len(head) != 3 {
			errs = multierror.Append(errs, errors.Errorf("pattern: line %d: expected 3 fields before '(': %q", lineNo, line))
			continue
		}
		prob, err := strconv.ParseFloat(head[0], 64)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "pattern: line %d: bad probability", lineNo))
			continue
		}
		tail := strings.TrimSuffix(strings.TrimSpace(line[open:]), ")")
		tail = strings.TrimPrefix(tail, "(s:")
		id, err := strconv.Atoi(strings.TrimPrefix(tail, "("))
		if err != nil {
			id, err = strconv.Atoi(tail)
		}
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "pattern: line %d: bad spatial id", lineNo))
			continue
		}
		probs[id] = prob
	}
	if err := scanner.Err(); err != nil {
		errs = multierror.Append(errs, errors.Wrap(err, "pattern: reading probs"))
	}
	return probs, errs.ErrorOrNil()
}

// LoadSpat parses a patterns.spat file: each line is "<id> <d> <pattern>"
// where pattern is a string over {X,O,.,#,x,o,?} in canonical gridcular
// ring order. Every line is expanded through the 8-element symmetry
// closure and inserted into dict under the probability looked up from
// probs (entries with no known probability are skipped: the dictionary
// only ever needs to answer probability queries).
func LoadSpat(r io.Reader, probs map[int]float64, dict *LargeDict) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var errs *multierror.Error
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, " ", 3)
		if len(fields) != 3 {
			errs = multierror.Append(errs, errors.Errorf("pattern: line %d: expected 3 fields: %q", lineNo, line))
			continue
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "pattern: line %d: bad id", lineNo))
			continue
		}
		prob, ok := probs[id]
		if !ok {
			continue
		}
		pat := strings.TrimSpace(fields[2])
		for _, key := range spatialSignatures(pat) {
			dict.Insert(key, int32(id), prob)
		}
	}
	if err := scanner.Err(); err != nil {
		errs = multierror.Append(errs, errors.Wrap(err, "pattern: reading spat"))
	}
	return errs.ErrorOrNil()
}

// flatOffsets lists every gridcular offset in canonical ring order: this
// is the position order a spat pattern string is written in, one
// character per offset, as many leading rings as the string covers.
var flatOffsets = buildFlatOffsets()

func buildFlatOffsets() []offset {
	var out []offset
	for r := 0; r < NumRings; r++ {
		out = append(out, rings[r]...)
	}
	return out
}

// spatialTransforms are the 8 board symmetries applied directly to
// gridcular (dx,dy) offsets, mirroring dihedralPerms but operating on
// coordinates instead of a fixed 3x3 index set so it generalizes to the
// variable-length large-pattern strings.
var spatialTransforms = [8]func(dx, dy int) (int, int){
	func(dx, dy int) (int, int) { return dx, dy },
	func(dx, dy int) (int, int) { return -dy, dx },
	func(dx, dy int) (int, int) { return -dx, -dy },
	func(dx, dy int) (int, int) { return dy, -dx },
	func(dx, dy int) (int, int) { return -dx, dy },
	func(dx, dy int) (int, int) { return dx, -dy },
	func(dx, dy int) (int, int) { return dy, dx },
	func(dx, dy int) (int, int) { return -dy, -dx },
}

// spatialSignatures computes the Zobrist key of pat and each of its 7
// further symmetries, by permuting the character string itself into every
// symmetric arrangement and re-running the same ring accumulation the
// live matcher uses (via signatureOf, which reads colors from the
// pattern characters rather than a live Position).
func spatialSignatures(pat string) []uint64 {
	n := len(pat)
	if n > len(flatOffsets) {
		n = len(flatOffsets)
	}
	offsetIndex := make(map[offset]int, n)
	for i := 0; i < n; i++ {
		offsetIndex[flatOffsets[i]] = i
	}

	keys := make([]uint64, 0, 8)
	seen := map[uint64]bool{}
	for _, transform := range spatialTransforms {
		permuted := make([]byte, n)
		ok := true
		for i := 0; i < n; i++ {
			off := flatOffsets[i]
			tx, ty := transform(off.dx, off.dy)
			j, present := offsetIndex[offset{tx, ty}]
			if !present {
				ok = false
				break
			}
			permuted[j] = pat[i]
		}
		if !ok {
			continue
		}
		key, complete := signatureOf(permuted)
		if !complete {
			continue
		}
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

// signatureOf hashes a parsed pattern string (alphabet X/O/./#, already
// resolved of any x/o/? wildcard since loaded patterns are concrete) ring
// by ring. It returns complete=false if the string doesn't cover at least
// one full ring, since a signature must be anchored to one of the
// matcher's probed radii.
func signatureOf(pat []byte) (uint64, bool) {
	var acc uint64
	pos := 0
	matchedAnyRing := false
	for r := 0; r < NumRings; r++ {
		ring := rings[r]
		if pos+len(ring) > len(pat) {
			break
		}
		for i, off := range ring {
			code := concreteCharCode(pat[pos+i], off)
			acc ^= zobristWords[r][i][code]
		}
		pos += len(ring)
		matchedAnyRing = true
	}
	return acc, matchedAnyRing
}

func concreteCharCode(c byte, _ offset) uint8 {
	switch c {
	case '.':
		return 0
	case '#':
		return 1
	case 'O':
		return 2
	case 'X':
		return 3
	default:
		return 0
	}
}
