// Package msgpack stores the declaration index as a compact MessagePack
// cache artifact.
//
// An artifact is a 4-byte magic, the big-endian xxhash64 of the payload and
// the MessagePack payload itself. The checksum lets a truncated or foreign
// file fail loudly instead of decoding into a partial index.
package msgpack

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/citelean"
	"github.com/vmihailenco/msgpack/v5"
)

// Magic identifies a citelean cache artifact.
const Magic = "CLI1"

const headerSize = len(Magic) + 8

type fastData struct {
	DocURL       string            `msgpack:"doc_url,omitempty"`
	Declarations map[string]string `msgpack:"declarations"`
}

// Encode writes idx to w as a cache artifact.
func Encode(w io.Writer, idx *citelean.Index) error {
	payload, err := msgpack.Marshal(&fastData{
		DocURL:       idx.Root(),
		Declarations: idx.Declarations(),
	})
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}

	header := make([]byte, headerSize)
	copy(header, Magic)
	binary.BigEndian.PutUint64(header[len(Magic):], xxhash.Sum64(payload))

	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// Decode reads a cache artifact from r.
// Returns ECORRUPT if the bytes are not a valid artifact.
func Decode(r io.Reader) (*citelean.Index, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decode(data)
}

func decode(data []byte) (*citelean.Index, error) {
	if len(data) < headerSize || !bytes.Equal(data[:len(Magic)], []byte(Magic)) {
		return nil, citelean.Errorf(citelean.ECORRUPT, "not a citelean cache artifact")
	}

	payload := data[headerSize:]
	if sum := binary.BigEndian.Uint64(data[len(Magic):headerSize]); sum != xxhash.Sum64(payload) {
		return nil, citelean.Errorf(citelean.ECORRUPT, "cache checksum mismatch")
	}

	var fd fastData
	if err := msgpack.Unmarshal(payload, &fd); err != nil {
		return nil, citelean.Errorf(citelean.ECORRUPT, "decode cache: %v", err)
	}

	return citelean.NewIndex(fd.DocURL, fd.Declarations), nil
}
