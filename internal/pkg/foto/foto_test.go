package foto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", Placeholder},
		{"whitespace only", "   ", Placeholder},
		{"absolute http", "http://cdn.example.com/barco.jpg", "http://cdn.example.com/barco.jpg"},
		{"absolute https", "https://cdn.example.com/barco.jpg", "https://cdn.example.com/barco.jpg"},
		{"uppercase scheme", "HTTPS://cdn.example.com/barco.jpg", "HTTPS://cdn.example.com/barco.jpg"},
		{"already rooted", "/uploads/barco.jpg", "/uploads/barco.jpg"},
		{"bare filename", "barco.jpg", "/uploads/barco.jpg"},
		{"fakepath prefix", `C:\fakepath\barco.jpg`, "/uploads/barco.jpg"},
		{"fakepath without drive", `fakepath\barco.jpg`, "/uploads/barco.jpg"},
		{"drive letter prefix", `D:\barco.jpg`, "/uploads/barco.jpg"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.raw))
		})
	}
}
