package dictionary

import "testing"

func sampleEntries() []Entry {
	return []Entry{
		{Word: "a", Frequency: 100, Path: []Point{{X: 0, Y: 0}}},
		{Word: "hi", Frequency: 42, Path: []Point{{X: 4.5, Y: 1}, {X: 6, Y: 0}}},
		{Word: "hello", Frequency: 7, Path: []Point{
			{X: 4.5, Y: 1}, {X: 3, Y: 0}, {X: 4.5, Y: 1}, {X: 3, Y: 0}, {X: 8.5, Y: 1},
		}},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	entries := sampleEntries()
	data := Encode(entries)

	asset, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(asset.Entries) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(asset.Entries))
	}
	for i, want := range entries {
		got := asset.Entries[i]
		if got.Word != want.Word || got.Frequency != want.Frequency {
			t.Fatalf("entry %d: want %+v, got %+v", i, want, got)
		}
		if len(got.Path) != len(want.Path) {
			t.Fatalf("entry %d: path length mismatch: want %d, got %d", i, len(want.Path), len(got.Path))
		}
		for j := range want.Path {
			if got.Path[j] != want.Path[j] {
				t.Fatalf("entry %d point %d: want %+v, got %+v", i, j, want.Path[j], got.Path[j])
			}
		}
	}
}

func TestDecodeRejectsTruncated(t *testing.T) {
	data := Encode(sampleEntries())
	if _, err := Decode(data[:len(data)-4]); err != ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if _, err := Decode(data[:headerSize-1]); err != ErrTruncated {
		t.Fatalf("expected ErrTruncated for a buffer shorter than the header, got %v", err)
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	data := Encode(sampleEntries())
	data[0] = 'X'
	if _, err := Decode(data); err != ErrBadMagic {
		t.Fatalf("expected ErrBadMagic, got %v", err)
	}
}

func TestDecodeRejectsBadVersion(t *testing.T) {
	data := Encode(sampleEntries())
	data[4] = 0xFF
	data[5] = 0xFF
	if _, err := Decode(data); err != ErrVersion {
		t.Fatalf("expected ErrVersion, got %v", err)
	}
}

func TestLoadUnknownLanguage(t *testing.T) {
	if _, err := Load("xx"); err != ErrUnknownLanguage {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
}

func TestLoadEmbeddedEnglish(t *testing.T) {
	asset, err := Load("en")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(asset.Entries) == 0 {
		t.Fatalf("expected a non-empty embedded English asset")
	}
}
