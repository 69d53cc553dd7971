package lzw

import "testing"

func TestHashCapacity(t *testing.T) {
	tests := map[int]int{
		256:     512,
		512:     1024,
		16384:   32768,
		1 << 20: 1 << 21,
	}

	for maxDict, want := range tests {
		if got := hashCapacity(maxDict); got != want {
			t.Errorf("hashCapacity(%d) = %d, want %d", maxDict, got, want)
		}
	}
}

func TestHashIndex_LookupInsert(t *testing.T) {
	h := acquireHashIndex(hashCapacity(512))
	defer releaseHashIndex(h)

	if _, ok := h.lookup(65, 'B'); ok {
		t.Fatal("lookup on an empty index hit")
	}

	// Fill to the maximum load factor with keys that share low bits.
	code := uint32(256)
	for prefix := uint32(0); prefix < 16; prefix++ {
		for suffix := range 16 {
			h.insert(prefix*256, byte(suffix), code)
			code++
		}
	}

	code = 256
	for prefix := uint32(0); prefix < 16; prefix++ {
		for suffix := range 16 {
			got, ok := h.lookup(prefix*256, byte(suffix))
			if !ok || got != code {
				t.Fatalf("lookup(%d, %d) = %d, %v; want %d", prefix*256, suffix, got, ok, code)
			}
			code++
		}
	}

	if _, ok := h.lookup(15*256, 16); ok {
		t.Fatal("lookup of an absent key hit")
	}
	if h.probes < h.lookups {
		t.Fatalf("probes %d < lookups %d", h.probes, h.lookups)
	}
}

func TestHashIndex_PoolResetsSlots(t *testing.T) {
	h := acquireHashIndex(512)
	h.insert(1, 2, 300)
	releaseHashIndex(h)

	h = acquireHashIndex(512)
	defer releaseHashIndex(h)

	if _, ok := h.lookup(1, 2); ok {
		t.Fatal("recycled index kept an entry from a previous call")
	}
	if h.lookups != 1 {
		t.Fatalf("telemetry not reset: lookups=%d", h.lookups)
	}
}

func TestEncodeDict_SequenceAndCap(t *testing.T) {
	d := newEncodeDict(256, 259)
	defer d.close()

	if !d.add('A', 'B') || !d.add(256, 'C') || !d.add(257, 'D') {
		t.Fatal("add failed below the cap")
	}
	if d.add('X', 'Y') {
		t.Fatal("add succeeded on a full dictionary")
	}
	if !d.full() || d.size() != 259 {
		t.Fatalf("size %d, full %v", d.size(), d.full())
	}

	if got := string(d.sequence(258)); got != "ABCD" {
		t.Fatalf("sequence(258) = %q", got)
	}
	if got := string(d.sequence('Z')); got != "Z" {
		t.Fatalf("sequence('Z') = %q", got)
	}

	code, ok := d.lookup(256, 'C')
	if !ok || code != 257 {
		t.Fatalf("lookup(256, 'C') = %d, %v", code, ok)
	}
	if _, ok := d.lookup('X', 'Y'); ok {
		t.Fatal("entry rejected by the cap is indexed")
	}
}
