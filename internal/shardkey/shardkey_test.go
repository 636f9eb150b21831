package shardkey

import (
	"errors"
	"testing"
)

func TestIndexIsDeterministic(t *testing.T) {
	h := uint64(0x1234_5678_9abc_def0)
	if Index(h, 8) != Index(h, 8) {
		t.Fatalf("Index is not deterministic for the same hash")
	}
}

func TestIndexStaysInRange(t *testing.T) {
	const shardCount = 6
	for _, h := range []uint64{0, 1, ^uint64(0), 0xdead_beef_0000_0000, 0x0000_0000_dead_beef} {
		idx := Index(h, shardCount)
		if idx < 0 || idx >= shardCount {
			t.Fatalf("Index(%#x, %d) = %d; out of range", h, shardCount, idx)
		}
	}
}

func TestIndexUsesHighBits(t *testing.T) {
	// Two hashes that differ only in their low bits must land in the same
	// shard, since Index is documented to derive the shard from the high
	// bits only.
	a := Index(0xffff_0000_0000_0000, 4)
	b := Index(0xffff_0000_0000_ffff, 4)
	if a != b {
		t.Fatalf("Index should ignore low bits: got %d and %d", a, b)
	}
}

func TestPartitionExactDivision(t *testing.T) {
	caps, err := Partition(100, 4)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	want := []int{25, 25, 25, 25}
	for i := range want {
		if caps[i] != want[i] {
			t.Fatalf("caps = %v; want %v", caps, want)
		}
	}
}

func TestPartitionRemainderGoesToShardZero(t *testing.T) {
	caps, err := Partition(103, 4)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	want := []int{28, 25, 25, 25}
	for i := range want {
		if caps[i] != want[i] {
			t.Fatalf("caps = %v; want %v", caps, want)
		}
	}
	sum := 0
	for _, c := range caps {
		sum += c
	}
	if sum != 103 {
		t.Fatalf("sum of partitioned capacities = %d; want 103", sum)
	}
}

func TestPartitionTooManyShards(t *testing.T) {
	if _, err := Partition(3, 4); !errors.Is(err, ErrTooManyShards) {
		t.Fatalf("Partition with shardCount > capacity = %v; want ErrTooManyShards", err)
	}
}

func TestPartitionRejectsNonPositiveShardCount(t *testing.T) {
	if _, err := Partition(10, 0); err == nil {
		t.Fatalf("Partition with shardCount 0 should return an error")
	}
	if _, err := Partition(10, -1); err == nil {
		t.Fatalf("Partition with negative shardCount should return an error")
	}
}

func TestPartitionSingleShardTakesAll(t *testing.T) {
	caps, err := Partition(50, 1)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	if len(caps) != 1 || caps[0] != 50 {
		t.Fatalf("caps = %v; want [50]", caps)
	}
}
