package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/golang/snappy"
)

var ErrNotRegular = errors.New("not a regular file")

// framedMagic starts every snappy framed stream (stream identifier chunk).
const framedMagic = "\xff\x06\x00\x00sNaPpY"

type Compression int

const (
	CompressionNone Compression = iota
	CompressionSnappyFramed
	CompressionSnappyBlock
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionSnappyFramed:
		return "snappy-framed"
	case CompressionSnappyBlock:
		return "snappy-block"
	default:
		return "unknown"
	}
}

// Buffer is the complete input text held in memory. Plain files are
// mmap'd read-only; compressed files are decoded into the heap.
type Buffer struct {
	path        string
	file        *os.File
	mapped      mmap.MMap
	data        []byte
	compression Compression
}

// Open reads the file at path into a Buffer. Files starting with the snappy
// stream identifier are decoded as framed streams; files with a ".snappy"
// extension are decoded as a single snappy block.
func Open(path string) (*Buffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if !stat.Mode().IsRegular() {
		file.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}

	b := &Buffer{path: path}

	// mmap rejects zero-length mappings
	if stat.Size() == 0 {
		file.Close()
		return b, nil
	}

	mapped, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to mmap %s: %w", path, err)
	}

	switch {
	case bytes.HasPrefix(mapped, []byte(framedMagic)):
		b.compression = CompressionSnappyFramed
		b.data, err = io.ReadAll(snappy.NewReader(bytes.NewReader(mapped)))
	case strings.EqualFold(filepath.Ext(path), ".snappy"):
		b.compression = CompressionSnappyBlock
		b.data, err = snappy.Decode(nil, mapped)
	default:
		b.file = file
		b.mapped = mapped
		b.data = mapped
		return b, nil
	}

	// Compressed input was decoded into the heap; the mapping is no longer needed.
	mapped.Unmap()
	file.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
	}
	return b, nil
}

// Path returns the file path.
func (b *Buffer) Path() string { return b.path }

// Len returns the size of the decoded text in bytes.
func (b *Buffer) Len() int { return len(b.data) }

// Compression reports how the file was encoded.
func (b *Buffer) Compression() Compression { return b.compression }

// Text returns the buffer contents as a string.
func (b *Buffer) Text() string {
	return string(b.data)
}

// Close releases the mapping and the file.
func (b *Buffer) Close() error {
	b.data = nil
	if b.mapped != nil {
		if err := b.mapped.Unmap(); err != nil {
			return err
		}
		b.mapped = nil
	}
	if b.file != nil {
		err := b.file.Close()
		b.file = nil
		return err
	}
	return nil
}
