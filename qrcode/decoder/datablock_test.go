package decoder

import "testing"

func TestGetDataBlocksSingleBlockVersion(t *testing.T) {
	version, err := GetVersionForNumber(1)
	if err != nil {
		t.Fatalf("GetVersionForNumber failed: %v", err)
	}
	ecBlocks := version.ECBlocksForLevel(ECLevelM)
	if ecBlocks.NumBlocks() != 1 {
		t.Fatalf("expected version 1-M to have 1 block, got %d", ecBlocks.NumBlocks())
	}

	raw := make([]byte, version.TotalCodewords)
	for i := range raw {
		raw[i] = byte(i)
	}

	blocks := GetDataBlocks(raw, version, ECLevelM)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	for i, c := range blocks[0].Codewords {
		if c != byte(i) {
			t.Errorf("codeword[%d] = %d, want %d", i, c, i)
		}
	}
}

func TestGetDataBlocksMultiBlockVersionCoversAllCodewords(t *testing.T) {
	version, err := GetVersionForNumber(5)
	if err != nil {
		t.Fatalf("GetVersionForNumber failed: %v", err)
	}
	ecBlocks := version.ECBlocksForLevel(ECLevelH)
	if ecBlocks.NumBlocks() < 2 {
		t.Fatalf("expected version 5-H to have multiple blocks, got %d", ecBlocks.NumBlocks())
	}

	raw := make([]byte, version.TotalCodewords)
	for i := range raw {
		raw[i] = byte(i)
	}

	blocks := GetDataBlocks(raw, version, ECLevelH)

	totalDataCodewords := 0
	totalCodewords := 0
	seen := make(map[byte]int)
	for _, b := range blocks {
		totalDataCodewords += b.NumDataCodewords
		totalCodewords += len(b.Codewords)
		for _, c := range b.Codewords {
			seen[c]++
		}
	}
	if totalCodewords != len(raw) {
		t.Errorf("total codewords across blocks = %d, want %d", totalCodewords, len(raw))
	}
	for i := range raw {
		if seen[byte(i)] != 1 {
			t.Errorf("codeword %d appears %d times across blocks, want exactly 1", i, seen[byte(i)])
		}
	}
	wantDataCodewords := 0
	for _, b := range ecBlocks.Blocks {
		wantDataCodewords += b.Count * b.DataCodewords
	}
	if totalDataCodewords != wantDataCodewords {
		t.Errorf("total data codewords = %d, want %d", totalDataCodewords, wantDataCodewords)
	}
}
