package invoke

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Format renders a frame as a single raw dump line:
//
//	CPUID 00000000:00 = 0000000d 756e6547 6c65746e 49656e69 | ....GenuntelineI
func Format(regs Regs) string {
	data := regs.Bytes()
	ascii := make([]byte, len(data))
	for n, b := range data {
		if b < 0x20 || b > 0x7e {
			b = '.'
		}
		ascii[n] = b
	}

	return fmt.Sprintf("CPUID %08x:%02x = %08x %08x %08x %08x | %s",
		regs.In.Leaf, regs.In.Subleaf,
		regs.Eax, regs.Ebx, regs.Ecx, regs.Edx,
		ascii)
}

var dumpLine = regexp.MustCompile(`^CPUID\s+([0-9a-fA-F]+):([0-9a-fA-F]+)\s*=\s*(\S+)\s+(\S+)\s+(\S+)\s+(\S+)`)

// parseHex parses a register value written without a 0x prefix.
func parseHex(word string) (value uint32, err error) {
	v64, err := strconv.ParseUint(strings.TrimPrefix(word, "0x"), 16, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint32(v64)
	return
}

// parseLine decodes one raw dump line. Lines that are not raw
// register lines return ok == false.
func parseLine(line string) (regs Regs, ok bool, err error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "CPUID") {
		return
	}

	match := dumpLine.FindStringSubmatch(line)
	if match == nil {
		err = ErrDumpLine
		return
	}

	var values [6]uint32
	for n, word := range match[1:] {
		values[n], err = parseHex(word)
		if err != nil {
			return
		}
	}

	regs = Regs{
		In:  In{Leaf: values[0], Subleaf: values[1]},
		Eax: values[2],
		Ebx: values[3],
		Ecx: values[4],
		Edx: values[5],
	}
	ok = true
	return
}

// Unmarshal loads raw dump lines from a reader into the map.
// Decoded text interleaved with the raw lines is ignored.
func (s Static) Unmarshal(r io.Reader) (err error) {
	scanner := bufio.NewScanner(r)

	var lineno int
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		regs, ok, err := parseLine(line)
		if err != nil {
			return ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
		if !ok {
			continue
		}
		s[regs.In] = regs
	}

	return scanner.Err()
}

// Marshal writes the map as raw dump lines, ordered by input.
func (s Static) Marshal(w io.Writer) (err error) {
	for _, in := range s.Inputs() {
		_, err = fmt.Fprintln(w, Format(s[in]))
		if err != nil {
			return
		}
	}

	return
}
