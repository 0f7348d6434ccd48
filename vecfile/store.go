// SPDX-License-Identifier: MIT

package vecfile

import (
	"bufio"
	"os"
)

// storePerm is the mode for files Store creates (before umask).
const storePerm = 0o644

// Store writes values to the text file at path, one per line.
// MAIN DESCRIPTION:
//   - Scoped resource: the file is created or truncated, written and closed within this call.
//
// Implementation:
//   - Stage 1: open write-only with create+truncate; failure → ErrIO.
//   - Stage 2: wrap with the codec and a bufio.Writer; encode every value.
//   - Stage 3: flush buffer, finish the codec frame, close the file.
//
// Behavior highlights:
//   - Format: fixed notation, DefaultPrecision (6) fractional digits, e.g. "3.140000".
//   - Lenient (default): write, flush and close failures are not reported; Store
//     returns nil and logs the first failure at warn level. A short or corrupt
//     file is therefore possible on a full disk.
//   - Strict (WithStrict): writing stops at the first failure and ErrWrite is
//     returned once the file has been closed.
//   - The file handle is closed on every path after a successful open.
//
// Complexity:
//   - Time O(len(values)), Space O(1) beyond the write buffers.
func Store(path string, values []float64, opts ...Option) error {
	o := gatherOptions(opts...)
	log := o.logger.WithPath(path)

	f, err := o.fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, storePerm)
	if err != nil {
		err = vecfileErrorf(opStore, path, ErrIO, err)
		log.LogStore(0, err)
		return err
	}

	var first error
	keep := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}

	written := 0
	cw, err := o.codec.resolve(path).writer(f)
	if err != nil {
		keep(err)
	} else {
		bw := bufio.NewWriter(cw)
		written, err = encode(bw, values, o.precision, o.strict)
		keep(err)
		if first == nil || !o.strict {
			keep(bw.Flush())
		}
		keep(cw.Close())
	}
	keep(f.Close())

	if first != nil {
		if o.strict {
			err = vecfileErrorf(opStore, path, ErrWrite, first)
			log.LogStore(written, err)
			return err
		}
		log.LogSuppressed(opStore, first)
	}
	log.LogStore(written, nil)

	return nil
}
