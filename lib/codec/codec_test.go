package codec

import (
	"reflect"
	"testing"
	"time"
)

// testCodecs is a map of codec name to factory function
var testCodecs = map[string]func() Codec{
	"JSON": NewJSONCodec,
	"GOB":  NewGOBCodec,
}

// record mirrors the shape of the values the application stores: strings,
// ints, timestamps and nested slices.
type record struct {
	ID      string
	Title   string
	Rating  int
	Created time.Time
	Tags    []string
}

func testRecords() []record {
	return []record{
		{},
		{ID: "1", Title: "Dune", Rating: 5, Created: time.Unix(1700000000, 0).UTC()},
		{ID: "2", Title: "unicode ✓ öäü", Rating: 0, Tags: []string{"a", "b"}},
	}
}

// TestCodecRoundTrip tests that records survive a marshal/unmarshal cycle
// with every codec.
func TestCodecRoundTrip(t *testing.T) {
	records := testRecords()

	for name, factory := range testCodecs {
		t.Run(name, func(t *testing.T) {
			c := factory()

			for i, rec := range records {
				data, err := c.Marshal(rec)
				if err != nil {
					t.Errorf("Failed to marshal record %d: %v", i, err)
					continue
				}

				var result record
				if err := c.Unmarshal(data, &result); err != nil {
					t.Errorf("Failed to unmarshal record %d: %v", i, err)
					continue
				}

				if !reflect.DeepEqual(rec, result) {
					t.Errorf("Record %d doesn't match after round trip:\nOriginal: %+v\nResult: %+v",
						i, rec, result)
				}
			}
		})
	}
}

// TestUnmarshalGarbage tests that corrupt value bytes surface an error
// instead of a zero-value record.
func TestUnmarshalGarbage(t *testing.T) {
	for name, factory := range testCodecs {
		t.Run(name, func(t *testing.T) {
			c := factory()

			var result record
			if err := c.Unmarshal([]byte("\x00\x01 not a record"), &result); err == nil {
				t.Errorf("Expected an error for garbage input")
			}
		})
	}
}

// Collections are stored as one serialized slice per user; make sure
// slices of records round trip as a whole.
func TestSliceRoundTrip(t *testing.T) {
	for name, factory := range testCodecs {
		t.Run(name, func(t *testing.T) {
			c := factory()
			records := testRecords()

			data, err := c.Marshal(records)
			if err != nil {
				t.Fatalf("Failed to marshal slice: %v", err)
			}

			var result []record
			if err := c.Unmarshal(data, &result); err != nil {
				t.Fatalf("Failed to unmarshal slice: %v", err)
			}

			if !reflect.DeepEqual(records, result) {
				t.Errorf("Slice doesn't match after round trip:\nOriginal: %+v\nResult: %+v", records, result)
			}
		})
	}
}
