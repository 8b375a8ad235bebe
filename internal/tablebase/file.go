// Package tablebase reads and writes the generated Squadro data files.
//
// Each file is a ZIP archive of bitset chunks named chunk<N>. Chunks cover
// 2^23 bits each; chunks without any set bit are omitted, and trailing
// zero bytes are truncated from the stored chunks. Bit b of chunk N holds
// the value for state ID N*2^23 + b, at byte b/8, bit b%8.
package tablebase

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Paths of the data files, resolved against the working directory.
const AllStatesPath = "all_states.data"

// WinningStatesPath holds the per-player winning-state files.
var WinningStatesPath = [2]string{"player_0_wins.data", "player_1_wins.data"}

const (
	chunkSizeBytes        = 1024 * 1024
	chunkSizeBits  uint64 = chunkSizeBytes * 8
)

// chunkName returns the archive entry name of the given chunk.
func chunkName(chunkID uint64) string {
	return "chunk" + strconv.FormatUint(chunkID, 10)
}

// ReadBit returns the value of bit stateID in the chunked bitset file at
// path. Absent chunks and truncated trailing bytes read as false.
func ReadBit(path string, stateID uint64) (bool, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer archive.Close()

	chunkID := stateID / chunkSizeBits
	bitIndex := stateID % chunkSizeBits
	byteIndex := bitIndex / 8

	// The archive's file system view keeps a sorted name index, so the
	// chunk lookup is logarithmic in the number of stored chunks.
	chunk, err := archive.Open(chunkName(chunkID))
	if errors.Is(err, fs.ErrNotExist) {
		// Chunks made only of 0s are not stored.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("opening chunk %d in %s: %w", chunkID, path, err)
	}
	defer chunk.Close()

	info, err := chunk.Stat()
	if err != nil {
		return false, fmt.Errorf("sizing chunk %d in %s: %w", chunkID, path, err)
	}
	if byteIndex >= uint64(info.Size()) {
		// The byte is part of the truncated zero tail of the chunk.
		return false, nil
	}

	if byteIndex > 0 {
		if _, err := io.CopyN(io.Discard, chunk, int64(byteIndex)); err != nil {
			return false, fmt.Errorf("skipping to byte %d of chunk %d in %s: %w", byteIndex, chunkID, path, err)
		}
	}

	var buf [1]byte
	if _, err := io.ReadFull(chunk, buf[:]); err != nil {
		return false, fmt.Errorf("reading byte %d of chunk %d in %s: %w", byteIndex, chunkID, path, err)
	}

	return (buf[0]>>(bitIndex%8))&1 == 1, nil
}

// WriteBitmap stores the set bits of states as a chunked bitset file at
// path. The file must not already exist; generated data is never
// overwritten.
func WriteBitmap(path string, states *roaring64.Bitmap) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	archive := zip.NewWriter(f)

	var chunkBuf []byte
	var chunkID uint64
	if !states.IsEmpty() {
		chunkID = states.Minimum() / chunkSizeBits
	}

	flush := func() error {
		if len(chunkBuf) == 0 {
			return nil
		}
		// Chunks are stored without compression, so the byte offset of a
		// bit in the stored entry equals its offset in the chunk.
		w, err := archive.CreateHeader(&zip.FileHeader{
			Name:   chunkName(chunkID),
			Method: zip.Store,
		})
		if err != nil {
			return fmt.Errorf("creating chunk %d in %s: %w", chunkID, path, err)
		}
		if _, err := w.Write(chunkBuf); err != nil {
			return fmt.Errorf("writing chunk %d to %s: %w", chunkID, path, err)
		}
		return nil
	}

	it := states.Iterator()
	for it.HasNext() {
		stateID := it.Next()

		if stateID/chunkSizeBits > chunkID {
			if err := flush(); err != nil {
				return err
			}
			chunkBuf = chunkBuf[:0]
			chunkID = stateID / chunkSizeBits
		}

		bitIndex := stateID % chunkSizeBits
		byteIndex := int(bitIndex / 8)

		if byteIndex >= len(chunkBuf) {
			chunkBuf = append(chunkBuf, make([]byte, byteIndex+1-len(chunkBuf))...)
		}

		chunkBuf[byteIndex] |= 1 << (bitIndex % 8)
	}

	if err := flush(); err != nil {
		return err
	}

	if err := archive.Close(); err != nil {
		return fmt.Errorf("finalizing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}
