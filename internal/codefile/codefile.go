// Package codefile loads method code regions from disk, either as raw bytes
// or as hex text.
package codefile

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"
)

// ErrRange is returned when a requested region lies outside the code.
var ErrRange = errors.New("region outside code")

type Image struct {
	Path string
	All  []byte // mapped file contents, read-only
	Code []byte // code region: All itself, or the bytes parsed from hex text
	Hex  bool   // file was hex text
	f    *os.File
}

// Open maps path read-only. Hex text is detected and parsed; anything else is
// taken as raw code bytes.
func Open(path string) (*Image, error) {
	of, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	fi, err := of.Stat()
	if err != nil {
		of.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}

	im := &Image{Path: path, f: of}
	if fi.Size() == 0 {
		return im, nil
	}

	all, err := syscall.Mmap(int(of.Fd()), 0, int(fi.Size()), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		of.Close()
		return nil, fmt.Errorf("mmap file: %w", err)
	}
	im.All = all
	im.Code, im.Hex = Parse(all)
	return im, nil
}

// Parse returns data as code bytes, decoding it first when it is hex text.
// hex reports which case applied.
func Parse(data []byte) (code []byte, hex bool) {
	if len(data) > 0 && isText(data) {
		if parsed, err := ParseHex(string(data)); err == nil {
			return parsed, true
		}
	}
	return data, false
}

// Close unmaps the file. Code must not be used afterwards unless it was
// parsed from hex.
func (im *Image) Close() error {
	var err1, err2 error
	if im.All != nil {
		err1 = syscall.Munmap(im.All)
		im.All = nil
	}
	if im.f != nil {
		err2 = im.f.Close()
		im.f = nil
	}
	if err1 != nil {
		return err1
	}
	return err2
}

// Slice returns size bytes of the code starting at off. A negative size
// means everything from off to the end.
func (im *Image) Slice(off, size int) ([]byte, error) {
	if off < 0 || off > len(im.Code) {
		return nil, fmt.Errorf("offset %d of %d bytes: %w", off, len(im.Code), ErrRange)
	}
	if size < 0 {
		return im.Code[off:], nil
	}
	if size > len(im.Code)-off {
		return nil, fmt.Errorf("%d bytes at %d of %d: %w", size, off, len(im.Code), ErrRange)
	}
	return im.Code[off : off+size], nil
}

func isText(b []byte) bool {
	for _, c := range b {
		if c == '\n' || c == '\r' || c == '\t' {
			continue
		}
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}

// ParseHex parses hex text such as "2a b7 00 01 b1". Bytes may be run
// together or separated by whitespace or commas, carry a 0x prefix, and '#'
// starts a comment running to the end of the line.
func ParseHex(s string) ([]byte, error) {
	var digits strings.Builder
	for lineNo, line := range strings.Split(s, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == '\t' || r == '\r' || r == ','
		})
		for _, f := range fields {
			f = strings.TrimPrefix(strings.TrimPrefix(f, "0x"), "0X")
			if len(f)%2 != 0 {
				return nil, fmt.Errorf("line %d: odd number of hex digits in %q", lineNo+1, f)
			}
			digits.WriteString(f)
		}
	}
	out, err := hex.DecodeString(digits.String())
	if err != nil {
		return nil, fmt.Errorf("parse hex: %w", err)
	}
	return out, nil
}
