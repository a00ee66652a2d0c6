// pkg/util/decode.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Encoding identifies how a data file is serialized, as given by its
// filename extension(s): "fleet.json", "fleet.msgpack.zst", and so forth.
type Encoding struct {
	MsgPack    bool
	Compressed bool
}

func EncodingForPath(path string) (Encoding, error) {
	var enc Encoding
	base := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(base, ".zst") {
		enc.Compressed = true
		base = strings.TrimSuffix(base, ".zst")
	}

	switch filepath.Ext(base) {
	case ".json":
	case ".msgpack":
		enc.MsgPack = true
	default:
		return enc, fmt.Errorf("%s: unknown file type; expected .json or .msgpack, optionally with .zst", path)
	}
	return enc, nil
}

// DecodeFile reads the file at path and decodes it into out, handling
// zstd decompression and picking JSON or msgpack based on the filename.
func DecodeFile[T any](path string, out *T) error {
	enc, err := EncodingForPath(path)
	if err != nil {
		return err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := Decode(bytes.NewReader(b), enc, out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func Decode[T any](r io.Reader, enc Encoding, out *T) error {
	if enc.Compressed {
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(0))
		if err != nil {
			return err
		}
		defer zr.Close()
		r = zr
	}

	if enc.MsgPack {
		return msgpack.NewDecoder(r).Decode(out)
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return UnmarshalJSON(b, out)
}

// EncodeFile is the inverse of DecodeFile; it's used to write fixtures in
// whichever format the filename asks for.
func EncodeFile(path string, obj any) error {
	enc, err := EncodingForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	var w io.Writer = f
	var zw *zstd.Encoder
	if enc.Compressed {
		if zw, err = zstd.NewWriter(f); err != nil {
			f.Close()
			return err
		}
		w = zw
	}

	if enc.MsgPack {
		err = msgpack.NewEncoder(w).Encode(obj)
	} else {
		err = encodeJSON(w, obj)
	}
	if err != nil {
		if zw != nil {
			zw.Close()
		}
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	if zw != nil {
		if err := zw.Close(); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}
