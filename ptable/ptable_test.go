/*
 * ptable_test.go, part of chemimport.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ptable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableConsistency(Te *testing.T) {
	assert.Equal(Te, 118, Len())
	for i, e := range elements {
		assert.Equal(Te, i+1, e.Number, "element %s out of place", e.Symbol)
		n, err := SymbolToAtomicNumber(e.Symbol)
		assert.NoError(Te, err)
		assert.Equal(Te, e.Number, n)
		assert.Greater(Te, e.Mass, 0.0)
	}
}

func TestSymbolToAtomicNumber(Te *testing.T) {
	cases := map[string]int{"H": 1, "O": 8, "Cl": 17, "CL": 17, "cl": 17, "og": 118, "Fe": 26}
	for s, want := range cases {
		n, err := SymbolToAtomicNumber(s)
		assert.NoError(Te, err, s)
		assert.Equal(Te, want, n, s)
	}
	for _, s := range []string{"", "X", "Xx", "C1", "Uuo"} {
		_, err := SymbolToAtomicNumber(s)
		assert.Error(Te, err, s)
	}
}

func TestAtomicNumberToSymbol(Te *testing.T) {
	s, ok := AtomicNumberToSymbol(6)
	assert.True(Te, ok)
	assert.Equal(Te, "C", s)
	_, ok = AtomicNumberToSymbol(0)
	assert.False(Te, ok)
	_, ok = AtomicNumberToSymbol(119)
	assert.False(Te, ok)

	assert.Equal(Te, "Zn", Label(30))
	assert.Equal(Te, "X", Label(-1))
	assert.Equal(Te, "X", Label(-2))
	assert.Equal(Te, "?(0)", Label(0))
	assert.Equal(Te, "?(200)", Label(200))
}
