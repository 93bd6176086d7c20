package storage

import "testing"

func TestParseURI(t *testing.T) {
	tests := []struct {
		name       string
		uri        string
		wantBucket string
		wantObject string
		wantErr    bool
	}{
		{"well formed", "gs://receipts/org/doc.pdf", "receipts", "org/doc.pdf", false},
		{"nested path", "gs://b/a/b/c.png", "b", "a/b/c.png", false},
		{"missing scheme", "receipts/doc.pdf", "", "", true},
		{"no object", "gs://receipts", "", "", true},
		{"empty object", "gs://receipts/", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, object, err := parseURI(tt.uri)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if bucket != tt.wantBucket || object != tt.wantObject {
				t.Errorf("parseURI(%q) = %q/%q, want %q/%q", tt.uri, bucket, object, tt.wantBucket, tt.wantObject)
			}
		})
	}
}
