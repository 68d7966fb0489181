// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package index

import (
	"github.com/pckhoi/meow"
	"github.com/wrgl/csvt/pkg/encoding"
	"github.com/wrgl/csvt/pkg/slice"
)

// RowHasher produces the primary key sum and whole-row sum of a row.
type RowHasher struct {
	primaryKeyIndices []uint32
	seed              uint64
	rowEncoder        *encoding.RowEncoder
	keyEncoder        *encoding.RowEncoder
}

// NewRowHasher creates a RowHasher keyed on the given column indices.
// With no indices the whole row serves as its own key.
func NewRowHasher(primaryKeyIndices []uint32, seed uint64) *RowHasher {
	return &RowHasher{
		primaryKeyIndices: primaryKeyIndices,
		seed:              seed,
		rowEncoder:        encoding.NewRowEncoder(true),
		keyEncoder:        encoding.NewRowEncoder(true),
	}
}

// Sum returns the key sum, the row sum and the encoded row bytes.
// rowContent stays valid until the next call.
func (s *RowHasher) Sum(record []string) (keyHash, rowHash, rowContent []byte) {
	rowContent = s.rowEncoder.Encode(record)
	rowHashArr := meow.Checksum(s.seed, rowContent)
	rowHash = rowHashArr[:]

	if len(s.primaryKeyIndices) == 0 {
		return rowHash, rowHash, rowContent
	}
	keyContent := s.keyEncoder.Encode(slice.IndicesToValues(record, s.primaryKeyIndices))
	keyHashArr := meow.Checksum(s.seed, keyContent)
	keyHash = keyHashArr[:]
	return
}
