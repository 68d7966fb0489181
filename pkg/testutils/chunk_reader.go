// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package testutils

import "io"

// ChunkReader returns at most Size bytes per Read call no matter how big
// the destination buffer is. It exists to exercise code whose behavior
// must not depend on how the underlying reads split the input.
type ChunkReader struct {
	R    io.Reader
	Size int
}

func (c *ChunkReader) Read(p []byte) (int, error) {
	if c.Size > 0 && len(p) > c.Size {
		p = p[:c.Size]
	}
	return c.R.Read(p)
}
