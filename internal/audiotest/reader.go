// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
)

// FragmentedReader hands out its data a few bytes at a time, cycling through
// Sizes, the way a slow network connection would.
type FragmentedReader struct {
	data  []byte
	Sizes []int
	step  int
}

// NewFragmentedReader returns a reader that yields 1, 2, 3, 1, 2, 3... bytes
// per Read call.
func NewFragmentedReader(data []byte) *FragmentedReader {
	return &FragmentedReader{data: data, Sizes: []int{1, 2, 3}}
}

func (f *FragmentedReader) Read(p []byte) (int, error) {
	if len(f.data) == 0 {
		return 0, io.EOF
	}

	size := f.Sizes[f.step%len(f.Sizes)]
	f.step++

	n := copy(p[:min(size, len(p))], f.data)
	f.data = f.data[n:]

	return n, nil
}

// ErrBroken is returned by FailingReader once its data runs out.
var ErrBroken = errors.New("connection reset")

// FailingReader returns its data and then fails with Err (ErrBroken when nil)
// instead of io.EOF.
type FailingReader struct {
	Data []byte
	Err  error
}

func (f *FailingReader) Read(p []byte) (int, error) {
	if len(f.Data) == 0 {
		if f.Err != nil {
			return 0, f.Err
		}
		return 0, ErrBroken
	}

	n := copy(p, f.Data)
	f.Data = f.Data[n:]

	return n, nil
}

// CloseTracker wraps a reader and records Close calls.
type CloseTracker struct {
	io.Reader
	Closed int
}

func (c *CloseTracker) Close() error {
	c.Closed++
	return nil
}
