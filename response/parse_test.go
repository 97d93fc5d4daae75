// response/parse_test.go
package response

import (
	"reflect"
	"testing"
)

func TestParseContentTypeHeader(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantMime   string
		wantParams map[string]string
	}{
		{
			name:       "mime only",
			header:     "application/json",
			wantMime:   "application/json",
			wantParams: map[string]string{},
		},
		{
			name:       "with charset",
			header:     "application/xml;charset=UTF-8",
			wantMime:   "application/xml",
			wantParams: map[string]string{"charset": "UTF-8"},
		},
		{
			name:       "with spaces and quoted value",
			header:     `text/html; charset="ISO-8859-1"`,
			wantMime:   "text/html",
			wantParams: map[string]string{"charset": "ISO-8859-1"},
		},
		{
			name:       "multiple parameters",
			header:     "multipart/form-data; boundary=xyz; charset=utf-8",
			wantMime:   "multipart/form-data",
			wantParams: map[string]string{"boundary": "xyz", "charset": "utf-8"},
		},
		{
			name:       "empty header",
			header:     "",
			wantMime:   "",
			wantParams: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMime, gotParams := ParseContentTypeHeader(tt.header)
			if gotMime != tt.wantMime {
				t.Errorf("ParseContentTypeHeader() mime = %v, want %v", gotMime, tt.wantMime)
			}
			if !reflect.DeepEqual(gotParams, tt.wantParams) {
				t.Errorf("ParseContentTypeHeader() params = %v, want %v", gotParams, tt.wantParams)
			}
		})
	}
}
