package internal

import (
	"bytes"
	"compress/bzip2"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
)

// Container identifies a compressed wrapper recognised by TryDecompress.
type Container string

const (
	ContainerNone  Container = "none"
	ContainerGZIP  Container = "gzip"
	ContainerZSTD  Container = "zstd"
	ContainerZIP   Container = "zip"
	ContainerBZIP2 Container = "bzip2"
)

var (
	magicGZIP  = []byte{0x1f, 0x8b}
	magicZSTD  = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicZIP   = []byte("PK\x03\x04")
	magicBZIP2 = []byte("BZh")
)

// DetectContainer sniffs the leading magic bytes of data.
func DetectContainer(data []byte) Container {
	switch {
	case bytes.HasPrefix(data, magicGZIP):
		return ContainerGZIP
	case bytes.HasPrefix(data, magicZSTD):
		return ContainerZSTD
	case bytes.HasPrefix(data, magicZIP):
		return ContainerZIP
	case bytes.HasPrefix(data, magicBZIP2):
		return ContainerBZIP2
	default:
		return ContainerNone
	}
}

// TryDecompress unwraps data when it is a recognised, intact compressed
// container. It returns false for plain data and for anything that fails to
// decode; the caller then reads the original bytes as plain text.
func TryDecompress(data []byte) ([]byte, bool) {
	var (
		out []byte
		err error
	)
	switch DetectContainer(data) {
	case ContainerGZIP:
		out, err = gunzip(data)
	case ContainerZSTD:
		out, err = unzstd(data)
	case ContainerZIP:
		out, err = unzip(data)
	case ContainerBZIP2:
		out, err = io.ReadAll(bzip2.NewReader(bytes.NewReader(data)))
	default:
		return nil, false
	}
	if err != nil {
		return nil, false
	}
	return out, true
}

func gunzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func unzstd(data []byte) ([]byte, error) {
	d, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	return d.DecodeAll(data, nil)
}

// unzip concatenates every regular entry of the archive, in archive order.
// Entries are joined with a newline so a missing trailing newline in one
// entry cannot glue two words together.
func unzip(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	for _, f := range zr.File {
		if !f.Mode().IsRegular() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		_, err = io.Copy(&buf, rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
