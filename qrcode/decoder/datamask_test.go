package decoder

import "testing"

// specMask reproduces the eight mask conditions literally, independent of
// the bit-twiddled forms in DataMasks, so the two can be checked against
// each other across the full (i,j) range the symbol table covers.
func specMask(pattern, i, j int) bool {
	switch pattern {
	case 0:
		return (i+j)%2 == 0
	case 1:
		return i%2 == 0
	case 2:
		return j%3 == 0
	case 3:
		return (i+j)%3 == 0
	case 4:
		return (i/2+j/3)%2 == 0
	case 5:
		return (i*j)%2+(i*j)%3 == 0
	case 6:
		return ((i*j)%2+(i*j)%3)%2 == 0
	case 7:
		return ((i*j)%3+(i+j)%2)%2 == 0
	}
	panic("bad pattern")
}

func TestDataMasksMatchTruthTable(t *testing.T) {
	for pattern := 0; pattern < 8; pattern++ {
		for i := 0; i < 40; i++ {
			for j := 0; j < 40; j++ {
				got := DataMasks[pattern](i, j)
				want := specMask(pattern, i, j)
				if got != want {
					t.Fatalf("pattern %d at (%d,%d): got %v, want %v", pattern, i, j, got, want)
				}
			}
		}
	}
}
