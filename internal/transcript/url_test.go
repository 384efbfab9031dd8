package transcript

import (
	"errors"
	"testing"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "short domain", url: "https://youtu.be/ABC123", want: "ABC123"},
		{name: "standard domain", url: "https://www.youtube.com/watch?v=ABC123", want: "ABC123"},
		{name: "bare domain", url: "https://youtube.com/watch?v=BIvuigQkelk", want: "BIvuigQkelk"},
		{name: "unknown host", url: "https://vimeo.com/12345", wantErr: true},
		{name: "missing v parameter", url: "https://www.youtube.com/watch?t=10", wantErr: true},
		{name: "empty short path", url: "https://youtu.be/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVideoID(tt.url)
			if tt.wantErr {
				if !errors.Is(err, ErrUnrecognizedURL) {
					t.Fatalf("got err %v, want ErrUnrecognizedURL", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractVideoID failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
