package redline

import "sort"

// opTag labels one opcode of an alignment.
type opTag int

const (
	opEqual opTag = iota
	opDelete
	opInsert
	opReplace
)

// opcode covers the contiguous token ranges a[i1:i2] and b[j1:j2].
type opcode struct {
	tag            opTag
	i1, i2, j1, j2 int
}

// matcher computes a longest-common-subsequence alignment between two token
// sequences. It follows the classic Ratcliff/Obershelp recursion: find the
// longest matching block, then match the pieces to its left and right. The
// result is a deterministic function of the two inputs only.
type matcher struct {
	a, b []string
	b2j  map[string][]int
}

func newMatcher(a, b []string) *matcher {
	m := &matcher{a: a, b: b, b2j: make(map[string][]int, len(b))}
	for j, tok := range b {
		m.b2j[tok] = append(m.b2j[tok], j)
	}
	return m
}

type block struct {
	a, b, size int
}

// findLongestMatch returns the longest block of tokens equal in
// a[alo:ahi] and b[blo:bhi]. Tie-break: among maximal blocks, the one
// starting earliest in a wins, then earliest in b.
func (m *matcher) findLongestMatch(alo, ahi, blo, bhi int) block {
	besti, bestj, bestsize := alo, blo, 0
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		newj2len := map[int]int{}
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return block{besti, bestj, bestsize}
}

// matchingBlocks returns all maximal matching blocks in (a, b) order,
// terminated by a zero-length sentinel at (len(a), len(b)).
func (m *matcher) matchingBlocks() []block {
	type span struct{ alo, ahi, blo, bhi int }
	queue := []span{{0, len(m.a), 0, len(m.b)}}
	var blocks []block

	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		bl := m.findLongestMatch(s.alo, s.ahi, s.blo, s.bhi)
		if bl.size == 0 {
			continue
		}
		blocks = append(blocks, bl)
		if s.alo < bl.a && s.blo < bl.b {
			queue = append(queue, span{s.alo, bl.a, s.blo, bl.b})
		}
		if bl.a+bl.size < s.ahi && bl.b+bl.size < s.bhi {
			queue = append(queue, span{bl.a + bl.size, s.ahi, bl.b + bl.size, s.bhi})
		}
	}

	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].a != blocks[j].a {
			return blocks[i].a < blocks[j].a
		}
		return blocks[i].b < blocks[j].b
	})

	// Coalesce adjacent blocks.
	merged := blocks[:0]
	for _, bl := range blocks {
		if n := len(merged); n > 0 &&
			merged[n-1].a+merged[n-1].size == bl.a &&
			merged[n-1].b+merged[n-1].size == bl.b {
			merged[n-1].size += bl.size
			continue
		}
		merged = append(merged, bl)
	}

	return append(merged, block{len(m.a), len(m.b), 0})
}

// opcodes converts matching blocks into a minimal ordered opcode list.
func (m *matcher) opcodes() []opcode {
	var ops []opcode
	i, j := 0, 0
	for _, bl := range m.matchingBlocks() {
		if i < bl.a && j < bl.b {
			ops = append(ops, opcode{opReplace, i, bl.a, j, bl.b})
		} else if i < bl.a {
			ops = append(ops, opcode{opDelete, i, bl.a, j, bl.b})
		} else if j < bl.b {
			ops = append(ops, opcode{opInsert, i, bl.a, j, bl.b})
		}
		i, j = bl.a+bl.size, bl.b+bl.size
		if bl.size > 0 {
			ops = append(ops, opcode{opEqual, bl.a, i, bl.b, j})
		}
	}
	return ops
}
