// SPDX-License-Identifier: MIT

package vecfile

import (
	"fmt"
	"os"
)

const (
	opLoad  = "Load"
	opStore = "Store"
)

// Load reads up to capacity float64 values from the text file at path.
// MAIN DESCRIPTION:
//   - Scoped resource: the file is opened, read and closed within this call.
//
// Implementation:
//   - Stage 1: reject capacity < 0 (ErrInvalidCapacity) before touching the file.
//   - Stage 2: open read-only; failure → ErrIO (cause kept in the chain).
//   - Stage 3: resolve the codec, decode up to capacity tokens in file order.
//   - Stage 4: release decoder and file via defer on every path.
//
// Behavior highlights:
//   - Fewer than capacity tokens → shorter result, nil error.
//   - capacity == 0 → empty result once the open succeeded.
//   - Lenient (default): a malformed token or read failure ends the read; the
//     values before it are returned with a nil error and the cause is logged.
//   - Strict (WithStrict): the same conditions return ErrMalformed / ErrRead
//     alongside the values decoded so far.
//
// Complexity:
//   - Time O(bytes read), Space O(values read).
func Load(path string, capacity int, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	log := o.logger.WithPath(path)

	if capacity < 0 {
		err := vecfileErrorf(opLoad, path, ErrInvalidCapacity, nil)
		log.LogLoad(capacity, 0, err)
		return nil, err
	}

	f, err := o.fsys.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		err = vecfileErrorf(opLoad, path, ErrIO, err)
		log.LogLoad(capacity, 0, err)
		return nil, err
	}
	defer f.Close() // read-only handle: a close failure cannot lose data

	codec := o.codec.resolve(path)
	r, release, err := codec.reader(f)
	if err != nil {
		if o.strict {
			err = vecfileErrorf(opLoad, path, ErrRead, err)
			log.LogLoad(capacity, 0, err)
			return nil, err
		}
		log.LogSuppressed(opLoad, err)
		log.LogLoad(capacity, 0, nil)
		return []float64{}, nil
	}
	defer release()

	values, stop := decode(r, capacity)
	if stop != nil {
		if o.strict {
			err = fmt.Errorf("%s %s: %w", opLoad, path, stop)
			log.LogLoad(capacity, len(values), err)
			return values, err
		}
		log.LogSuppressed(opLoad, stop)
	}
	log.LogLoad(capacity, len(values), nil)

	return values, nil
}
