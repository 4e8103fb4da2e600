package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression encodes/decodes blob bytes. Implementations must be safe
// for concurrent use.
type Compression interface {
	Name() string
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// CompressedStore wraps a Store, transparently compressing blobs on Put
// and decompressing them on Get. Spectral envelopes are already small,
// but batches of them stored under a common prefix still shrink
// noticeably; the wrapper keeps that concern out of the codec itself.
type CompressedStore struct {
	inner Store
	comp  Compression
}

// NewCompressedStore wraps inner with the given compression.
func NewCompressedStore(inner Store, comp Compression) *CompressedStore {
	return &CompressedStore{inner: inner, comp: comp}
}

// Put compresses data and writes it to the inner store.
func (s *CompressedStore) Put(ctx context.Context, name string, data []byte) error {
	compressed, err := s.comp.Compress(data)
	if err != nil {
		return fmt.Errorf("%s compress: %w", s.comp.Name(), err)
	}
	return s.inner.Put(ctx, name, compressed)
}

// Get reads from the inner store and decompresses.
func (s *CompressedStore) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	decompressed, err := s.comp.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%s decompress: %w", s.comp.Name(), err)
	}
	return decompressed, nil
}

// Delete removes a blob from the inner store.
func (s *CompressedStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

// List lists blobs in the inner store.
func (s *CompressedStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Zstd is a Compression backed by klauspost/compress. The zero value is
// ready to use.
type Zstd struct{}

// Name implements Compression.
func (Zstd) Name() string { return "zstd" }

// Compress implements Compression.
func (Zstd) Compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

// Decompress implements Compression.
func (Zstd) Decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

// LZ4 is a Compression backed by pierrec/lz4. The zero value is ready to
// use.
type LZ4 struct{}

// Name implements Compression.
func (LZ4) Name() string { return "lz4" }

// Compress implements Compression.
func (LZ4) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress implements Compression.
func (LZ4) Decompress(data []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(data))
	return io.ReadAll(r)
}
